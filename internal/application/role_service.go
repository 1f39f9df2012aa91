package application

import (
	"context"
	"fmt"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
)

const rolesEndpoint = "/roles"

type RoleService struct {
	api ports.APIClient
}

func NewRoleService(api ports.APIClient) *RoleService {
	return &RoleService{api: api}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	resp, err := s.api.Call(ctx, rolesEndpoint, domain.Request{})
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	roles, err := decodeList[domain.Role](resp, "roles", "data")
	if err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	return roles, nil
}

func (s *RoleService) Get(ctx context.Context, id domain.RoleID) (domain.Role, error) {
	path, err := resourcePath(rolesEndpoint, string(id))
	if err != nil {
		return domain.Role{}, err
	}

	resp, err := s.api.Call(ctx, path, domain.Request{})
	if err != nil {
		return domain.Role{}, fmt.Errorf("get role %s: %w", id, err)
	}

	role, err := decodeItem[domain.Role](resp, "role", "data")
	if err != nil {
		return domain.Role{}, fmt.Errorf("decode role: %w", err)
	}
	return role, nil
}

// Create validates input before anything is sent.
func (s *RoleService) Create(ctx context.Context, input domain.RoleInput) (domain.Role, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Role{}, err
	}

	resp, err := s.api.Call(ctx, rolesEndpoint, domain.Request{Method: domain.MethodPost, Body: input})
	if err != nil {
		return domain.Role{}, fmt.Errorf("create role: %w", err)
	}

	return roleFromResponse(resp, "", input), nil
}

func (s *RoleService) Update(ctx context.Context, id domain.RoleID, input domain.RoleInput) (domain.Role, error) {
	path, err := resourcePath(rolesEndpoint, string(id))
	if err != nil {
		return domain.Role{}, err
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Role{}, err
	}

	resp, err := s.api.Call(ctx, path, domain.Request{Method: domain.MethodPut, Body: input})
	if err != nil {
		return domain.Role{}, fmt.Errorf("update role %s: %w", id, err)
	}

	return roleFromResponse(resp, id, input), nil
}

func (s *RoleService) Delete(ctx context.Context, id domain.RoleID) error {
	path, err := resourcePath(rolesEndpoint, string(id))
	if err != nil {
		return err
	}

	if _, err := s.api.Call(ctx, path, domain.Request{Method: domain.MethodDelete}); err != nil {
		return fmt.Errorf("delete role %s: %w", id, err)
	}
	return nil
}

// roleFromResponse prefers the server's echo of the role and falls back to
// what was sent.
func roleFromResponse(resp domain.Response, id domain.RoleID, input domain.RoleInput) domain.Role {
	fallback := domain.Role{ID: id, Name: input.Name, Screens: input.Screens}

	role, err := decodeItem[domain.Role](resp, "role", "data")
	if err != nil || role.Name == "" {
		return fallback
	}
	if role.ID == "" {
		role.ID = id
	}
	return role
}
