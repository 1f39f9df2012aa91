package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const MinPasswordLength = 6

type UserID string

// UserRole is either a bare role id or a populated role, depending on the
// endpoint that returned the user.
type UserRole struct {
	ID      RoleID   `json:"_id,omitempty"`
	Name    string   `json:"name,omitempty"`
	Screens []Screen `json:"screens,omitempty"`
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*r = UserRole{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return err
		}
		*r = UserRole{ID: RoleID(id)}
		return nil
	}

	type plain UserRole
	var decoded plain
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return err
	}
	*r = UserRole(decoded)
	return nil
}

type User struct {
	ID       UserID   `json:"_id,omitempty"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
}

func (u User) IsSuperAdmin() bool {
	return u.Role.Name == RoleSuperAdmin
}

// UserInput is the create payload; Role holds the role id.
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     RoleID `json:"role"`
}

func (in UserInput) Validate() error {
	const allRequired = "All fields are required"

	err := validation.Errors{
		"username": validation.Validate(strings.TrimSpace(in.Username), validation.Required),
		"password": validation.Validate(strings.TrimSpace(in.Password), validation.Required),
		"name":     validation.Validate(strings.TrimSpace(in.Name), validation.Required),
		"role":     validation.Validate(string(in.Role), validation.Required),
	}.Filter()
	if err != nil {
		return newValidationError(allRequired, err)
	}

	if err := validation.Validate(in.Password,
		validation.Length(MinPasswordLength, 0).Error("Password must be at least 6 characters long"),
	); err != nil {
		return newValidationError(err.Error(), err)
	}

	return nil
}
