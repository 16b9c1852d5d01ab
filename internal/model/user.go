package model

import "github.com/go-playground/validator/v10"

// User is a row of the users table.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser is the payload for inserting a user. The store generates the id.
type NewUser struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

var validate = validator.New()

// Validate checks the struct tags on u.
func (u *NewUser) Validate() error {
	return validate.Struct(u)
}
