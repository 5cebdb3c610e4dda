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

type IUserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetById(ctx context.Context, id string) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	DeleteById(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type userRepository struct {
	db database.DatabaseQueryer
}

func NewUserRepository(db *pgxpool.Pool) IUserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, password, mobile, created_at`

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO app_user (id, name, password, mobile, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.Id,
		user.Name,
		user.Password,
		user.Mobile,
		user.CreatedAt,
	)
	return translateError("create user", err)
}

func (r *userRepository) GetById(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM app_user WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		return nil, translateError("get user", err)
	}
	return user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM app_user ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, translateError("list users", err)
	}
	defer rows.Close()

	res := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, translateError("scan user", err)
		}
		res = append(res, user)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list users", err)
	}
	return res, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE app_user SET name = $1, password = $2, mobile = $3 WHERE id = $4`,
		user.Name,
		user.Password,
		user.Mobile,
		user.Id,
	)
	if err != nil {
		return translateError("update user", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update user %s: %w", user.Id, serverutils.ErrNotFound)
	}
	return nil
}

func (r *userRepository) DeleteById(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM app_user WHERE id = $1`, id)
	if err != nil {
		return translateError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete user %s: %w", id, serverutils.ErrNotFound)
	}
	return nil
}

func (r *userRepository) Ping(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `SELECT 1`)
	return translateError("ping", err)
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(&user.Id, &user.Name, &user.Password, &user.Mobile, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
