package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
)

const usersEndpoint = "/users"

type UserService struct {
	api   ports.APIClient
	roles *RoleService
}

func NewUserService(api ports.APIClient, roles *RoleService) *UserService {
	return &UserService{api: api, roles: roles}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	resp, err := s.api.Call(ctx, usersEndpoint, domain.Request{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users, err := decodeList[domain.User](resp, "users", "data")
	if err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// Create resolves cmd.Role against the roles the API knows, by id first and
// then by case-insensitive name, and posts the user with the role id.
func (s *UserService) Create(ctx context.Context, cmd CreateUserCommand) (domain.User, error) {
	input := domain.UserInput{
		Username: strings.TrimSpace(cmd.Username),
		Password: cmd.Password,
		Name:     strings.TrimSpace(cmd.Name),
		Role:     domain.RoleID(strings.TrimSpace(cmd.Role)),
	}
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	roles, err := s.roles.List(ctx)
	if err != nil {
		return domain.User{}, err
	}
	role, ok := matchRole(roles, string(input.Role))
	if !ok {
		return domain.User{}, &domain.ValidationError{Message: fmt.Sprintf("Unknown role %q", cmd.Role)}
	}
	input.Role = role.ID

	resp, err := s.api.Call(ctx, usersEndpoint, domain.Request{Method: domain.MethodPost, Body: input})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	user, err := decodeItem[domain.User](resp, "user", "data")
	if err != nil || user.Username == "" {
		user = domain.User{Username: input.Username, Name: input.Name}
	}
	if user.Role.Name == "" {
		user.Role = domain.UserRole{ID: role.ID, Name: role.Name, Screens: role.Screens}
	}
	return user, nil
}

// Delete refuses to remove superadmin accounts.
func (s *UserService) Delete(ctx context.Context, id domain.UserID) error {
	path, err := resourcePath(usersEndpoint, string(id))
	if err != nil {
		return err
	}

	users, err := s.List(ctx)
	if err != nil {
		return err
	}

	var target *domain.User
	for i := range users {
		if users[i].ID == id {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("delete user %s: %w", id, domain.ErrUserNotFound)
	}
	if target.IsSuperAdmin() {
		return fmt.Errorf("delete user %s: %w", id, domain.ErrProtectedUser)
	}

	if _, err := s.api.Call(ctx, path, domain.Request{Method: domain.MethodDelete}); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

func matchRole(roles []domain.Role, ref string) (domain.Role, bool) {
	for _, role := range roles {
		if string(role.ID) == ref {
			return role, true
		}
	}
	for _, role := range roles {
		if strings.EqualFold(role.Name, ref) {
			return role, true
		}
	}
	return domain.Role{}, false
}
