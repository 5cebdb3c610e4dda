package repository

import (
	"context"
	"fmt"
	"sync"

	"keepnote/internal/entity"
	"keepnote/internal/pkg/serverutils"
)

// memoryTable keeps rows by key in insertion order. Values are stored and
// handed out as copies so callers never alias stored state.
type memoryTable[K comparable, V any] struct {
	mu    sync.RWMutex
	rows  map[K]V
	order []K
	clone func(V) V
}

func newMemoryTable[K comparable, V any](clone func(V) V) *memoryTable[K, V] {
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return &memoryTable[K, V]{rows: make(map[K]V), clone: clone}
}

func (t *memoryTable[K, V]) insertLocked(key K, v V) error {
	if _, ok := t.rows[key]; ok {
		return fmt.Errorf("insert %v: %w", key, serverutils.ErrAlreadyExists)
	}
	t.rows[key] = t.clone(v)
	t.order = append(t.order, key)
	return nil
}

func (t *memoryTable[K, V]) insert(key K, v V) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insertLocked(key, v)
}

func (t *memoryTable[K, V]) get(key K) (*V, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[key]
	if !ok {
		return nil, fmt.Errorf("get %v: %w", key, serverutils.ErrNotFound)
	}
	c := t.clone(v)
	return &c, nil
}

func (t *memoryTable[K, V]) all() []*V {
	t.mu.RLock()
	defer t.mu.RUnlock()

	res := make([]*V, 0, len(t.order))
	for _, key := range t.order {
		c := t.clone(t.rows[key])
		res = append(res, &c)
	}
	return res
}

func (t *memoryTable[K, V]) replace(key K, v V) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return fmt.Errorf("update %v: %w", key, serverutils.ErrNotFound)
	}
	t.rows[key] = t.clone(v)
	return nil
}

func (t *memoryTable[K, V]) remove(key K) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return fmt.Errorf("delete %v: %w", key, serverutils.ErrNotFound)
	}
	delete(t.rows, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

type memoryNoteRepository struct {
	table *memoryTable[int, entity.Note]
	seq   int
}

func NewMemoryNoteRepository() INoteRepository {
	return &memoryNoteRepository{table: newMemoryTable[int](cloneNote)}
}

func (r *memoryNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.table.mu.Lock()
	defer r.table.mu.Unlock()

	if note.Id == 0 {
		for {
			r.seq++
			if _, taken := r.table.rows[r.seq]; !taken {
				break
			}
		}
		note.Id = r.seq
	}
	return r.table.insertLocked(note.Id, *note)
}

func (r *memoryNoteRepository) GetById(ctx context.Context, id int) (*entity.Note, error) {
	return r.table.get(id)
}

func (r *memoryNoteRepository) GetAll(ctx context.Context) ([]*entity.Note, error) {
	return r.table.all(), nil
}

func (r *memoryNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	return r.table.replace(note.Id, *note)
}

func (r *memoryNoteRepository) DeleteById(ctx context.Context, id int) error {
	return r.table.remove(id)
}

func (r *memoryNoteRepository) Ping(ctx context.Context) error { return nil }

type memoryReminderRepository struct {
	table *memoryTable[string, entity.Reminder]
}

func NewMemoryReminderRepository() IReminderRepository {
	return &memoryReminderRepository{table: newMemoryTable[string, entity.Reminder](nil)}
}

func (r *memoryReminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	return r.table.insert(reminder.Id, *reminder)
}

func (r *memoryReminderRepository) GetById(ctx context.Context, id string) (*entity.Reminder, error) {
	return r.table.get(id)
}

func (r *memoryReminderRepository) GetAll(ctx context.Context) ([]*entity.Reminder, error) {
	return r.table.all(), nil
}

func (r *memoryReminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	return r.table.replace(reminder.Id, *reminder)
}

func (r *memoryReminderRepository) DeleteById(ctx context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryReminderRepository) Ping(ctx context.Context) error { return nil }

type memoryUserRepository struct {
	table *memoryTable[string, entity.User]
}

func NewMemoryUserRepository() IUserRepository {
	return &memoryUserRepository{table: newMemoryTable[string, entity.User](nil)}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.table.insert(user.Id, *user)
}

func (r *memoryUserRepository) GetById(ctx context.Context, id string) (*entity.User, error) {
	return r.table.get(id)
}

func (r *memoryUserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	return r.table.all(), nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *entity.User) error {
	return r.table.replace(user.Id, *user)
}

func (r *memoryUserRepository) DeleteById(ctx context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryUserRepository) Ping(ctx context.Context) error { return nil }

func cloneNote(n entity.Note) entity.Note {
	if n.Category != nil {
		c := *n.Category
		if c.CreatedAt != nil {
			t := *c.CreatedAt
			c.CreatedAt = &t
		}
		n.Category = &c
	}
	if n.Reminders != nil {
		n.Reminders = append([]entity.Reminder(nil), n.Reminders...)
	}
	return n
}
