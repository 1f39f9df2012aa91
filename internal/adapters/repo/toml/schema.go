package toml

import (
	"fmt"
	"time"
)

const currentSchemaVersion = 1

type preferenceFileSchema struct {
	Version     int               `toml:"version"`
	Environment environmentSchema `toml:"environment"`
}

type environmentSchema struct {
	Name      string     `toml:"name"`
	UpdatedAt *time.Time `toml:"updated_at,omitempty"`
}

func timestampOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func (e environmentSchema) updatedAt() time.Time {
	if e.UpdatedAt == nil {
		return time.Time{}
	}
	return *e.UpdatedAt
}

func (s *preferenceFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s preferenceFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported environment schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
