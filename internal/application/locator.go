package application

import (
	"context"
	"sync"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const resolveKey = "resolve"

type Resolution struct {
	Profile domain.EnvironmentProfile
	Source  domain.ResolutionSource
}

// Locator decides which backend origin every API call targets. The decision
// is taken once, either by probing the local profile or by an explicit
// override, and is never revisited for the lifetime of the Locator.
type Locator struct {
	profiles domain.EnvironmentProfiles
	prober   ports.Prober
	logger   zerolog.Logger

	mu       sync.RWMutex
	resolved *Resolution
	group    singleflight.Group
}

var _ ports.OriginResolver = (*Locator)(nil)

func NewLocator(profiles domain.EnvironmentProfiles, prober ports.Prober, logger zerolog.Logger) *Locator {
	return &Locator{
		profiles: profiles,
		prober:   prober,
		logger:   logger,
	}
}

func (l *Locator) Profiles() domain.EnvironmentProfiles {
	return l.profiles
}

// Current returns the resolution if one has been made.
func (l *Locator) Current() (Resolution, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.resolved == nil {
		return Resolution{}, false
	}
	return *l.resolved, true
}

// Resolve returns the active profile, probing the local backend on first use.
// Concurrent callers share a single probe.
func (l *Locator) Resolve(ctx context.Context) (domain.EnvironmentProfile, error) {
	if current, ok := l.Current(); ok {
		return current.Profile, nil
	}

	probeCtx := context.WithoutCancel(ctx)
	results := l.group.DoChan(resolveKey, func() (interface{}, error) {
		return l.detect(probeCtx), nil
	})

	select {
	case <-ctx.Done():
		return domain.EnvironmentProfile{}, ctx.Err()
	case result := <-results:
		return result.Val.(Resolution).Profile, nil
	}
}

func (l *Locator) UseLocal() {
	l.set(l.profiles.Local, domain.ResolvedByOverride)
}

func (l *Locator) UseRemote() {
	l.set(l.profiles.Remote, domain.ResolvedByOverride)
}

func (l *Locator) Use(name domain.EnvironmentName) error {
	profile, err := l.profiles.ByName(name)
	if err != nil {
		return err
	}
	l.set(profile, domain.ResolvedByOverride)
	return nil
}

func (l *Locator) detect(ctx context.Context) Resolution {
	if current, ok := l.Current(); ok {
		return current
	}

	selected := l.profiles.Local
	if err := l.prober.Probe(ctx, l.profiles.Local.BaseURL); err != nil {
		l.logger.Debug().
			Err(err).
			Str("local", l.profiles.Local.BaseURL).
			Str("fallback", l.profiles.Remote.BaseURL).
			Msg("local backend unreachable, using remote")
		selected = l.profiles.Remote
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// An override that landed while the probe was running wins.
	if l.resolved == nil {
		l.resolved = &Resolution{Profile: selected, Source: domain.ResolvedByProbe}
		l.logger.Debug().
			Str("environment", string(selected.Name)).
			Str("base_url", selected.BaseURL).
			Dur("timeout", selected.Timeout).
			Msg("api environment resolved")
	}

	return *l.resolved
}

func (l *Locator) set(profile domain.EnvironmentProfile, source domain.ResolutionSource) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.resolved = &Resolution{Profile: profile, Source: source}
	l.logger.Debug().
		Str("environment", string(profile.Name)).
		Str("base_url", profile.BaseURL).
		Str("source", string(source)).
		Msg("api environment set")
}
