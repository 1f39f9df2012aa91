package application

import (
	"github.com/bnema/estate-admin-cli/internal/domain"
)

type LoginCommand struct {
	Username string
	Password string
}

type CreateUserCommand struct {
	Username string
	Password string
	Name     string
	// Role is a role id or a role name; it is matched against GET /roles.
	Role string
}

type CreateProjectCommand struct {
	Input     domain.ProjectInput
	Images    []domain.FormFile
	Videos    []domain.FormFile
	Brochures []domain.FormFile
}

func (c CreateProjectCommand) hasFiles() bool {
	return len(c.Images)+len(c.Videos)+len(c.Brochures) > 0
}

type UpdateProjectCommand struct {
	ID       domain.ProjectID
	Input    domain.ProjectInput
	Existing domain.ExistingFiles
	Remove   domain.MediaRemoval

	Images    []domain.FormFile
	Videos    []domain.FormFile
	Documents []domain.FormFile
}

type UseEnvironmentCommand struct {
	// Name is "local", "remote" or "auto"; auto clears the stored choice.
	Name string
}
