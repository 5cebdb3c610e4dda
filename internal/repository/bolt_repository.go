package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"keepnote/internal/entity"
	"keepnote/internal/pkg/serverutils"
)

var (
	noteBucket     = []byte("note")
	reminderBucket = []byte("reminder")
	userBucket     = []byte("user")
)

// OpenBolt opens the file at path and makes sure every bucket exists.
func OpenBolt(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w: %w", path, serverutils.ErrStorageUnavailable, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{noteBucket, reminderBucket, userBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// boltBucket stores JSON encoded values under byte keys. Iteration follows
// bolt's key order.
type boltBucket[V any] struct {
	db   *bolt.DB
	name []byte
}

func (b *boltBucket[V]) insertTx(tx *bolt.Tx, key []byte, v *V) error {
	bkt := tx.Bucket(b.name)
	if bkt.Get(key) != nil {
		return fmt.Errorf("insert %s/%s: %w", b.name, key, serverutils.ErrAlreadyExists)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", b.name, err)
	}
	if err := bkt.Put(key, raw); err != nil {
		return fmt.Errorf("insert %s/%s: %w: %w", b.name, key, serverutils.ErrCreationFailed, err)
	}
	return nil
}

func (b *boltBucket[V]) insert(key []byte, v *V) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return b.insertTx(tx, key, v)
	})
}

func (b *boltBucket[V]) get(key []byte) (*V, error) {
	var v V
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(b.name).Get(key)
		if raw == nil {
			return fmt.Errorf("get %s/%s: %w", b.name, key, serverutils.ErrNotFound)
		}
		return json.Unmarshal(raw, &v)
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (b *boltBucket[V]) all() ([]*V, error) {
	res := make([]*V, 0)
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(b.name).ForEach(func(_, raw []byte) error {
			var v V
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("decode %s: %w", b.name, err)
			}
			res = append(res, &v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (b *boltBucket[V]) replace(key []byte, v *V) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(b.name)
		if bkt.Get(key) == nil {
			return fmt.Errorf("update %s/%s: %w", b.name, key, serverutils.ErrNotFound)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", b.name, err)
		}
		return bkt.Put(key, raw)
	})
}

func (b *boltBucket[V]) remove(key []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(b.name)
		if bkt.Get(key) == nil {
			return fmt.Errorf("delete %s/%s: %w", b.name, key, serverutils.ErrNotFound)
		}
		return bkt.Delete(key)
	})
}

func (b *boltBucket[V]) ping() error {
	return b.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(b.name) == nil {
			return fmt.Errorf("bucket %s missing: %w", b.name, serverutils.ErrStorageUnavailable)
		}
		return nil
	})
}

// noteKey zero-pads ids so byte order matches numeric order.
func noteKey(id int) []byte {
	return []byte(fmt.Sprintf("%020d", id))
}

type boltNoteRepository struct {
	bucket *boltBucket[entity.Note]
}

func NewBoltNoteRepository(db *bolt.DB) INoteRepository {
	return &boltNoteRepository{bucket: &boltBucket[entity.Note]{db: db, name: noteBucket}}
}

func (r *boltNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	if note.Id != 0 {
		return r.bucket.insert(noteKey(note.Id), note)
	}

	return r.bucket.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(r.bucket.name)
		for {
			seq, err := bkt.NextSequence()
			if err != nil {
				return fmt.Errorf("next note id: %w: %w", serverutils.ErrCreationFailed, err)
			}
			id := int(seq)
			if bkt.Get(noteKey(id)) != nil {
				continue
			}
			note.Id = id
			if err := r.bucket.insertTx(tx, noteKey(id), note); err != nil {
				note.Id = 0
				return err
			}
			return nil
		}
	})
}

func (r *boltNoteRepository) GetById(ctx context.Context, id int) (*entity.Note, error) {
	return r.bucket.get(noteKey(id))
}

func (r *boltNoteRepository) GetAll(ctx context.Context) ([]*entity.Note, error) {
	return r.bucket.all()
}

func (r *boltNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	return r.bucket.replace(noteKey(note.Id), note)
}

func (r *boltNoteRepository) DeleteById(ctx context.Context, id int) error {
	return r.bucket.remove(noteKey(id))
}

func (r *boltNoteRepository) Ping(ctx context.Context) error { return r.bucket.ping() }

type boltReminderRepository struct {
	bucket *boltBucket[entity.Reminder]
}

func NewBoltReminderRepository(db *bolt.DB) IReminderRepository {
	return &boltReminderRepository{bucket: &boltBucket[entity.Reminder]{db: db, name: reminderBucket}}
}

func (r *boltReminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	return r.bucket.insert([]byte(reminder.Id), reminder)
}

func (r *boltReminderRepository) GetById(ctx context.Context, id string) (*entity.Reminder, error) {
	return r.bucket.get([]byte(id))
}

func (r *boltReminderRepository) GetAll(ctx context.Context) ([]*entity.Reminder, error) {
	return r.bucket.all()
}

func (r *boltReminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	return r.bucket.replace([]byte(reminder.Id), reminder)
}

func (r *boltReminderRepository) DeleteById(ctx context.Context, id string) error {
	return r.bucket.remove([]byte(id))
}

func (r *boltReminderRepository) Ping(ctx context.Context) error { return r.bucket.ping() }

type boltUserRepository struct {
	bucket *boltBucket[entity.User]
}

func NewBoltUserRepository(db *bolt.DB) IUserRepository {
	return &boltUserRepository{bucket: &boltBucket[entity.User]{db: db, name: userBucket}}
}

func (r *boltUserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.bucket.insert([]byte(user.Id), user)
}

func (r *boltUserRepository) GetById(ctx context.Context, id string) (*entity.User, error) {
	return r.bucket.get([]byte(id))
}

func (r *boltUserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	return r.bucket.all()
}

func (r *boltUserRepository) Update(ctx context.Context, user *entity.User) error {
	return r.bucket.replace([]byte(user.Id), user)
}

func (r *boltUserRepository) DeleteById(ctx context.Context, id string) error {
	return r.bucket.remove([]byte(id))
}

func (r *boltUserRepository) Ping(ctx context.Context) error { return r.bucket.ping() }
