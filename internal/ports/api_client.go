package ports

import (
	"context"

	"github.com/bnema/estate-admin-cli/internal/domain"
)

type APIClient interface {
	Call(ctx context.Context, endpoint string, req domain.Request) (domain.Response, error)
}

// TokenSource supplies the bearer token attached to outgoing calls. An empty
// token means no Authorization header is sent.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// OriginResolver yields the environment every call is sent to.
type OriginResolver interface {
	Resolve(ctx context.Context) (domain.EnvironmentProfile, error)
}
