package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type GetUserRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetUserRequest) Validate() error { return validate.Struct(r) }

type FindUserRequest struct {
	Email string `query:"email" validate:"required"`
}

func (r *FindUserRequest) Validate() error { return validate.Struct(r) }

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

func (r *CreateUserRequest) Validate() error { return validate.Struct(r) }

// UserResponse is a user as served over HTTP; the stored password never
// leaves the service.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResponse(u *model.User) *UserResponse {
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

// GetUser serves GET /api/users/:id.
func (h *UserHandler) GetUser(c echo.Context, req *GetUserRequest) (*UserResponse, error) {
	u, err := h.users.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return newUserResponse(u), nil
}

// FindUser serves GET /api/users?email=.
func (h *UserHandler) FindUser(c echo.Context, req *FindUserRequest) (*UserResponse, error) {
	u, err := h.users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return nil, err
	}
	return newUserResponse(u), nil
}

// CreateUser serves POST /api/users.
func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*UserResponse, error) {
	u, err := h.users.Create(c.Request().Context(), &model.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}
	return newUserResponse(u), nil
}
