package ports

import "context"

// Prober checks whether a backend origin answers. A nil error means reachable.
type Prober interface {
	Probe(ctx context.Context, baseURL string) error
}
