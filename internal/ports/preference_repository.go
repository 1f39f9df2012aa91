package ports

import (
	"context"

	"github.com/bnema/estate-admin-cli/internal/domain"
)

type EnvironmentPreferenceRepository interface {
	Get(ctx context.Context) (domain.EnvironmentPreference, error)
	Save(ctx context.Context, pref domain.EnvironmentPreference) error
	Clear(ctx context.Context) error
}
