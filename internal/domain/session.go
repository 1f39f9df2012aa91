package domain

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const RoleSuperAdmin = "superadmin"

const (
	SessionTokenKey = "adminToken"
	SessionUserKey  = "adminUser"
)

type SessionUser struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func (u SessionUser) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

type Session struct {
	Token string
	User  SessionUser
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	err := validation.Errors{
		"username": validation.Validate(strings.TrimSpace(c.Username), validation.Required),
		"password": validation.Validate(c.Password, validation.Required),
	}.Filter()
	if err != nil {
		return newValidationError("Username and password are required", err)
	}
	return nil
}
