package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

// UserStore is the slice of the user repository the service needs.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, u *model.NewUser) (*model.User, error)
}

type UserService struct {
	users  UserStore
	logger *zerolog.Logger
}

func NewUserService(users UserStore, logger *zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// GetByEmail returns errs.ErrUserNotFound when no user has the email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errs.ErrUserNotFound
	}
	return u, nil
}

// GetByID returns errs.ErrUserNotFound when no user has the id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errs.ErrUserNotFound
	}
	return u, nil
}

// Create validates u and inserts it.
func (s *UserService) Create(ctx context.Context, u *model.NewUser) (*model.User, error) {
	if u == nil {
		return nil, errs.NewBadRequestError("User is required", true, nil, nil)
	}
	if err := u.Validate(); err != nil {
		return nil, errs.ValidationError(err)
	}

	created, err := s.users.AddUser(ctx, u)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}
