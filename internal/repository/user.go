package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	getUserByEmailQuery = `SELECT id, name, email, password FROM users WHERE email = $1`

	getUserByIDQuery = `SELECT id, name, email, password FROM users WHERE id = $1`

	addUserQuery = `
INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING id, name, email, password`
)

// UserRepository reads and inserts rows of the users table.
type UserRepository struct {
	db     database.Querier
	logger *zerolog.Logger
}

func NewUserRepository(db database.Querier, logger *zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

// GetUserByEmail returns the user whose email matches exactly
// (case-sensitive), or nil when there is none.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, errs.ErrEmailRequired
	}
	return r.getOne(ctx, "GetUserByEmail", getUserByEmailQuery, email)
}

// GetUserByID returns the user with the given id, or nil when there is none.
// Ids are positive; zero or less is treated as no id.
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	if id <= 0 {
		return nil, errs.ErrIDRequired
	}
	if !fitsInt4(id) {
		return nil, nil
	}
	return r.getOne(ctx, "GetUserByID", getUserByIDQuery, id)
}

func (r *UserRepository) getOne(ctx context.Context, op, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(ctx, r.logger, op, err)
	}
	return &u, nil
}

// AddUser inserts u and returns the stored row, including its generated id.
//
// Email uniqueness is left to the store; a duplicate surfaces as a
// USER_ALREADY_EXISTS bad request.
func (r *UserRepository) AddUser(ctx context.Context, u *model.NewUser) (*model.User, error) {
	if u == nil {
		return nil, errs.NewBadRequestError("User is required", true, nil, nil)
	}

	var created model.User
	err := r.db.QueryRow(ctx, addUserQuery, u.Name, u.Email, u.Password).
		Scan(&created.ID, &created.Name, &created.Email, &created.Password)
	if err != nil {
		return nil, storeError(ctx, r.logger, "AddUser", err)
	}
	return &created, nil
}
