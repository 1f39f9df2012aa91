package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
	"github.com/rs/zerolog"
)

const EnvironmentAuto = "auto"

// EnvironmentService connects the locator with the persisted environment
// choice.
type EnvironmentService struct {
	locator *Locator
	prefs   ports.EnvironmentPreferenceRepository
	prober  ports.Prober
	clock   ports.Clock
	logger  zerolog.Logger
}

func NewEnvironmentService(
	locator *Locator,
	prefs ports.EnvironmentPreferenceRepository,
	prober ports.Prober,
	clock ports.Clock,
	logger zerolog.Logger,
) *EnvironmentService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &EnvironmentService{
		locator: locator,
		prefs:   prefs,
		prober:  prober,
		clock:   clock,
		logger:  logger,
	}
}

// ApplyPreference pins the locator to the stored environment, if any.
func (s *EnvironmentService) ApplyPreference(ctx context.Context) error {
	pref, err := s.prefs.Get(ctx)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load environment preference: %w", err)
	}

	if err := s.locator.Use(pref.Environment); err != nil {
		return fmt.Errorf("apply environment preference: %w", err)
	}
	return nil
}

func (s *EnvironmentService) Status(ctx context.Context) (EnvironmentStatus, error) {
	status := EnvironmentStatus{Profiles: s.locator.Profiles()}

	pref, err := s.prefs.Get(ctx)
	switch {
	case err == nil:
		status.Preference = &pref
	case !errors.Is(err, domain.ErrPreferenceNotFound):
		return EnvironmentStatus{}, fmt.Errorf("load environment preference: %w", err)
	}

	if current, ok := s.locator.Current(); ok {
		status.Active = current.Profile
		status.Source = current.Source
		status.Resolved = true
	}

	return status, nil
}

// Use pins an environment for this and later invocations. "auto" removes the
// stored choice so the next invocation probes again.
func (s *EnvironmentService) Use(ctx context.Context, cmd UseEnvironmentCommand) (EnvironmentStatus, error) {
	if strings.EqualFold(strings.TrimSpace(cmd.Name), EnvironmentAuto) {
		if err := s.prefs.Clear(ctx); err != nil {
			return EnvironmentStatus{}, fmt.Errorf("clear environment preference: %w", err)
		}
		status, err := s.Status(ctx)
		if err != nil {
			return EnvironmentStatus{}, err
		}
		// The pin applied at startup came from the preference just cleared.
		if status.Source == domain.ResolvedByOverride {
			status.Active = domain.EnvironmentProfile{}
			status.Source = ""
			status.Resolved = false
		}
		return status, nil
	}

	name, err := domain.ParseEnvironmentName(cmd.Name)
	if err != nil {
		return EnvironmentStatus{}, err
	}
	if err := s.locator.Use(name); err != nil {
		return EnvironmentStatus{}, err
	}

	pref := domain.EnvironmentPreference{Environment: name, UpdatedAt: s.clock.Now()}
	if err := s.prefs.Save(ctx, pref); err != nil {
		return EnvironmentStatus{}, fmt.Errorf("save environment preference: %w", err)
	}

	return s.Status(ctx)
}

// Detect probes afresh, ignoring overrides and the stored preference.
func (s *EnvironmentService) Detect(ctx context.Context) (DetectResult, error) {
	probe := NewLocator(s.locator.Profiles(), s.prober, s.logger)

	started := s.clock.Now()
	profile, err := probe.Resolve(ctx)
	if err != nil {
		return DetectResult{}, fmt.Errorf("detect environment: %w", err)
	}

	return DetectResult{
		Profile:   profile,
		Source:    domain.ResolvedByProbe,
		Reachable: profile.Name == domain.EnvironmentLocal,
		Elapsed:   s.clock.Now().Sub(started),
	}, nil
}
