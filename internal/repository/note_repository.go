package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"keepnote/internal/entity"
	"keepnote/internal/pkg/serverutils"
	"keepnote/pkg/database"
)

type INoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	GetById(ctx context.Context, id int) (*entity.Note, error)
	GetAll(ctx context.Context) ([]*entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	DeleteById(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}

type noteRepository struct {
	db database.DatabaseBeginner
}

func NewNoteRepository(db *pgxpool.Pool) INoteRepository {
	return &noteRepository{db: db}
}

const noteColumns = `id, title, content, status, category, reminders, created_by, created_at`

// Create inserts the note. A zero Id lets the identity column pick one. An
// explicit Id also advances the sequence past it, in the same transaction,
// so later generated ids do not collide.
func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	category, reminders, err := encodeNoteAssociations(note)
	if err != nil {
		return err
	}

	if note.Id == 0 {
		err = r.db.QueryRow(
			ctx,
			`INSERT INTO note (title, content, status, category, reminders, created_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			note.Title,
			note.Content,
			note.Status,
			category,
			reminders,
			note.CreatedBy,
			note.CreatedAt,
		).Scan(&note.Id)
		return translateError("create note", err)
	}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO note (id, title, content, status, category, reminders, created_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			note.Id,
			note.Title,
			note.Content,
			note.Status,
			category,
			reminders,
			note.CreatedBy,
			note.CreatedAt,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			ctx,
			`SELECT setval(pg_get_serial_sequence('note', 'id'), GREATEST($1, (SELECT COALESCE(MAX(id), 1) FROM note)))`,
			note.Id,
		)
		return err
	})
	return translateError("create note", err)
}

func (r *noteRepository) GetById(ctx context.Context, id int) (*entity.Note, error) {
	row := r.db.QueryRow(ctx, `SELECT `+noteColumns+` FROM note WHERE id = $1`, id)

	note, err := scanNote(row)
	if err != nil {
		return nil, translateError("get note", err)
	}
	return note, nil
}

func (r *noteRepository) GetAll(ctx context.Context) ([]*entity.Note, error) {
	rows, err := r.db.Query(ctx, `SELECT `+noteColumns+` FROM note ORDER BY id ASC`)
	if err != nil {
		return nil, translateError("list notes", err)
	}
	defer rows.Close()

	res := make([]*entity.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, translateError("scan note", err)
		}
		res = append(res, note)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list notes", err)
	}
	return res, nil
}

// Update overwrites every mutable column. created_at is left untouched.
func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	category, reminders, err := encodeNoteAssociations(note)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE note
		 SET title = $1, content = $2, status = $3, category = $4, reminders = $5, created_by = $6
		 WHERE id = $7`,
		note.Title,
		note.Content,
		note.Status,
		category,
		reminders,
		note.CreatedBy,
		note.Id,
	)
	if err != nil {
		return translateError("update note", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update note %d: %w", note.Id, serverutils.ErrNotFound)
	}
	return nil
}

func (r *noteRepository) DeleteById(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM note WHERE id = $1`, id)
	if err != nil {
		return translateError("delete note", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete note %d: %w", id, serverutils.ErrNotFound)
	}
	return nil
}

func (r *noteRepository) Ping(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `SELECT 1`)
	return translateError("ping", err)
}

func encodeNoteAssociations(note *entity.Note) ([]byte, []byte, error) {
	var category []byte
	if note.Category != nil {
		b, err := json.Marshal(note.Category)
		if err != nil {
			return nil, nil, fmt.Errorf("encode category: %w", err)
		}
		category = b
	}

	reminders := note.Reminders
	if reminders == nil {
		reminders = []entity.Reminder{}
	}
	b, err := json.Marshal(reminders)
	if err != nil {
		return nil, nil, fmt.Errorf("encode reminders: %w", err)
	}
	return category, b, nil
}

func scanNote(row pgx.Row) (*entity.Note, error) {
	var (
		note      entity.Note
		category  []byte
		reminders []byte
	)
	err := row.Scan(
		&note.Id,
		&note.Title,
		&note.Content,
		&note.Status,
		&category,
		&reminders,
		&note.CreatedBy,
		&note.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(category) > 0 {
		note.Category = &entity.Category{}
		if err := json.Unmarshal(category, note.Category); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
	}
	if len(reminders) > 0 {
		if err := json.Unmarshal(reminders, &note.Reminders); err != nil {
			return nil, fmt.Errorf("decode reminders: %w", err)
		}
	}
	return &note, nil
}
