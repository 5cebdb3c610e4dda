package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"keepnote/internal/entity"
	"keepnote/internal/pkg/serverutils"
	"keepnote/pkg/database"
)

type IReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	GetById(ctx context.Context, id string) (*entity.Reminder, error)
	GetAll(ctx context.Context) ([]*entity.Reminder, error)
	Update(ctx context.Context, reminder *entity.Reminder) error
	DeleteById(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type reminderRepository struct {
	db database.DatabaseQueryer
}

func NewReminderRepository(db *pgxpool.Pool) IReminderRepository {
	return &reminderRepository{db: db}
}

const reminderColumns = `id, name, description, type, created_by, created_at`

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO reminder (id, name, description, type, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		reminder.Id,
		reminder.Name,
		reminder.Description,
		reminder.Type,
		reminder.CreatedBy,
		reminder.CreatedAt,
	)
	return translateError("create reminder", err)
}

func (r *reminderRepository) GetById(ctx context.Context, id string) (*entity.Reminder, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reminderColumns+` FROM reminder WHERE id = $1`, id)

	reminder, err := scanReminder(row)
	if err != nil {
		return nil, translateError("get reminder", err)
	}
	return reminder, nil
}

func (r *reminderRepository) GetAll(ctx context.Context) ([]*entity.Reminder, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reminderColumns+` FROM reminder ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, translateError("list reminders", err)
	}
	defer rows.Close()

	res := make([]*entity.Reminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, translateError("scan reminder", err)
		}
		res = append(res, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list reminders", err)
	}
	return res, nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE reminder SET name = $1, description = $2, type = $3, created_by = $4 WHERE id = $5`,
		reminder.Name,
		reminder.Description,
		reminder.Type,
		reminder.CreatedBy,
		reminder.Id,
	)
	if err != nil {
		return translateError("update reminder", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update reminder %s: %w", reminder.Id, serverutils.ErrNotFound)
	}
	return nil
}

func (r *reminderRepository) DeleteById(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reminder WHERE id = $1`, id)
	if err != nil {
		return translateError("delete reminder", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete reminder %s: %w", id, serverutils.ErrNotFound)
	}
	return nil
}

func (r *reminderRepository) Ping(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `SELECT 1`)
	return translateError("ping", err)
}

func scanReminder(row pgx.Row) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := row.Scan(
		&reminder.Id,
		&reminder.Name,
		&reminder.Description,
		&reminder.Type,
		&reminder.CreatedBy,
		&reminder.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}
