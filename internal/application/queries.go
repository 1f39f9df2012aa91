package application

import (
	"strings"
	"time"

	"github.com/bnema/estate-admin-cli/internal/domain"
)

// ProjectFilter narrows a project listing on the client side. Empty fields
// match everything.
type ProjectFilter struct {
	Status domain.ProjectStatus
	Type   string
	Search string
}

func (f ProjectFilter) Match(p domain.Project) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Type != "" && !strings.EqualFold(p.Type, f.Type) {
		return false
	}
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		return strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Description), search)
	}
	return true
}

type EnvironmentStatus struct {
	Profiles   domain.EnvironmentProfiles    `json:"profiles"`
	Active     domain.EnvironmentProfile     `json:"active"`
	Source     domain.ResolutionSource       `json:"source,omitempty"`
	Resolved   bool                          `json:"resolved"`
	Preference *domain.EnvironmentPreference `json:"preference,omitempty"`
}

type DetectResult struct {
	Profile   domain.EnvironmentProfile `json:"profile"`
	Source    domain.ResolutionSource   `json:"source"`
	Reachable bool                      `json:"localReachable"`
	Elapsed   time.Duration             `json:"elapsed"`
}
