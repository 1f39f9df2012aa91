package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type EnvironmentName string

const (
	EnvironmentLocal  EnvironmentName = "local"
	EnvironmentRemote EnvironmentName = "remote"
)

const (
	DefaultLocalBaseURL  = "http://localhost:8000"
	DefaultRemoteBaseURL = "https://real-estate-crm-backend-yfxi.onrender.com"
	DefaultLocalTimeout  = 10 * time.Second
	DefaultRemoteTimeout = 15 * time.Second
)

func ParseEnvironmentName(raw string) (EnvironmentName, error) {
	name := EnvironmentName(strings.ToLower(strings.TrimSpace(raw)))
	switch name {
	case EnvironmentLocal, EnvironmentRemote:
		return name, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, raw)
	}
}

// EnvironmentProfile is a named backend origin together with the request
// timeout used for every call sent to it.
type EnvironmentProfile struct {
	Name        EnvironmentName `json:"name"`
	Label       string          `json:"label"`
	BaseURL     string          `json:"baseURL"`
	Timeout     time.Duration   `json:"-"`
	Description string          `json:"description"`
}

type environmentProfileJSON struct {
	Name        EnvironmentName `json:"name"`
	Label       string          `json:"label"`
	BaseURL     string          `json:"baseURL"`
	Timeout     string          `json:"timeout"`
	TimeoutMs   int64           `json:"timeoutMs"`
	Description string          `json:"description"`
}

// MarshalJSON renders the timeout the way the config file spells it, with
// the millisecond count alongside.
func (p EnvironmentProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(environmentProfileJSON{
		Name:        p.Name,
		Label:       p.Label,
		BaseURL:     p.BaseURL,
		Timeout:     p.Timeout.String(),
		TimeoutMs:   p.Timeout.Milliseconds(),
		Description: p.Description,
	})
}

func (p *EnvironmentProfile) UnmarshalJSON(data []byte) error {
	var raw environmentProfileJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	timeout := time.Duration(raw.TimeoutMs) * time.Millisecond
	if raw.Timeout != "" {
		parsed, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("environment %q timeout: %w", raw.Name, err)
		}
		timeout = parsed
	}

	*p = EnvironmentProfile{
		Name:        raw.Name,
		Label:       raw.Label,
		BaseURL:     raw.BaseURL,
		Timeout:     timeout,
		Description: raw.Description,
	}
	return nil
}

type EnvironmentProfiles struct {
	Local  EnvironmentProfile `json:"local"`
	Remote EnvironmentProfile `json:"remote"`
}

func DefaultEnvironmentProfiles() EnvironmentProfiles {
	return EnvironmentProfiles{
		Local: EnvironmentProfile{
			Name:        EnvironmentLocal,
			Label:       "Local Development",
			BaseURL:     DefaultLocalBaseURL,
			Timeout:     DefaultLocalTimeout,
			Description: "Local backend server",
		},
		Remote: EnvironmentProfile{
			Name:        EnvironmentRemote,
			Label:       "Remote Production",
			BaseURL:     DefaultRemoteBaseURL,
			Timeout:     DefaultRemoteTimeout,
			Description: "Remote backend server",
		},
	}
}

func (p EnvironmentProfiles) ByName(name EnvironmentName) (EnvironmentProfile, error) {
	switch name {
	case EnvironmentLocal:
		return p.Local, nil
	case EnvironmentRemote:
		return p.Remote, nil
	default:
		return EnvironmentProfile{}, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
}

// ResolutionSource records how the active environment was chosen.
type ResolutionSource string

const (
	ResolvedByProbe    ResolutionSource = "probe"
	ResolvedByOverride ResolutionSource = "override"
)

// EnvironmentPreference is an operator override persisted between runs.
type EnvironmentPreference struct {
	Environment EnvironmentName `json:"environment"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
