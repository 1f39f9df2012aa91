// Package chain layers two session stores: pass when it works, plain files
// when it does not.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/estate-admin-cli/internal/adapters/session/file"
	passstore "github.com/bnema/estate-admin-cli/internal/adapters/session/pass"
	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
	"github.com/rs/zerolog"
)

var errNilBackend = errors.New("session store backend is nil")

// Store writes to the primary backend and falls back to the secondary when the
// primary fails. Reads consult both so a session written by either is found;
// deletes always clear both.
type Store struct {
	primary  ports.SessionStore
	fallback ports.SessionStore
	logger   zerolog.Logger
}

var _ ports.SessionStore = (*Store)(nil)

func New(primary ports.SessionStore, fallback ports.SessionStore, logger zerolog.Logger) (*Store, error) {
	if primary == nil || fallback == nil {
		return nil, errNilBackend
	}

	return &Store{primary: primary, fallback: fallback, logger: logger}, nil
}

func NewPassFirstWithFileFallback(passPrefix string, fileRoot string, logger zerolog.Logger) (*Store, error) {
	return New(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot), logger)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil || isContextError(err) {
		return err
	}

	s.logger.Debug().Err(err).Str("key", key).Msg("session write falling back to file store")
	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("store session %s: %w", key, errors.Join(err, fallbackErr))
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextError(err) {
		return "", err
	}

	value, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return value, nil
	}

	if errors.Is(err, domain.ErrSessionKeyNotFound) && errors.Is(fallbackErr, domain.ErrSessionKeyNotFound) {
		return "", domain.ErrSessionKeyNotFound
	}
	return "", fmt.Errorf("read session %s: %w", key, errors.Join(err, fallbackErr))
}

// Delete fails only when neither backend could remove the key.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if isContextError(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	if err == nil || fallbackErr == nil {
		if err != nil {
			s.logger.Debug().Err(err).Str("key", key).Msg("primary session store delete failed")
		}
		return nil
	}

	return fmt.Errorf("delete session %s: %w", key, errors.Join(err, fallbackErr))
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
