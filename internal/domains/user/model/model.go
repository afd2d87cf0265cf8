package model

import (
	"net/http"
	"time"

	"hotel/shared/failure"
	"hotel/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldCPF       = "cpf"
	FieldBirthDate = "birth_date"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

var (
	ErrUserNotFound       = failure.New(http.StatusNotFound, "User not found", "The requested user does not exist.")
	ErrEmailTaken         = failure.New(http.StatusConflict, "Email already registered", "A user with this email already exists.")
	ErrCPFTaken           = failure.New(http.StatusConflict, "CPF already registered", "A user with this CPF already exists.")
	ErrInvalidCredentials = failure.New(http.StatusUnauthorized, "Invalid credentials", "Invalid email or password.")
	ErrInactiveUser       = failure.New(http.StatusForbidden, "Inactive user", "This user account is deactivated.")
	ErrInvalidToken       = failure.New(http.StatusUnauthorized, "Invalid token", "The token is invalid or expired.")
)

type User struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	CPF       string     `db:"cpf"`
	BirthDate time.Time  `db:"birth_date"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
