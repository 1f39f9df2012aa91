package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
	"github.com/rs/zerolog"
)

const loginEndpoint = "/auth/login"

// SessionKeeper reads and writes the signed-in operator from the session
// store. It is also the token source of the API client.
type SessionKeeper struct {
	store  ports.SessionStore
	logger zerolog.Logger
}

var _ ports.TokenSource = (*SessionKeeper)(nil)

func NewSessionKeeper(store ports.SessionStore, logger zerolog.Logger) *SessionKeeper {
	return &SessionKeeper{store: store, logger: logger}
}

// Current returns the stored session. A missing key, a blank token, a user
// record that does not parse or a non superadmin user all yield
// domain.ErrNotLoggedIn; an unparsable record is also removed.
func (k *SessionKeeper) Current(ctx context.Context) (domain.Session, error) {
	token, err := k.store.Get(ctx, domain.SessionTokenKey)
	if err != nil {
		return domain.Session{}, notLoggedIn(err)
	}
	rawUser, err := k.store.Get(ctx, domain.SessionUserKey)
	if err != nil {
		return domain.Session{}, notLoggedIn(err)
	}

	var user domain.SessionUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		k.logger.Warn().Err(err).Msg("stored session user is malformed, clearing session")
		if clearErr := k.Clear(ctx); clearErr != nil {
			return domain.Session{}, fmt.Errorf("clear malformed session: %w", clearErr)
		}
		return domain.Session{}, domain.ErrNotLoggedIn
	}

	if strings.TrimSpace(token) == "" || !user.IsSuperAdmin() {
		return domain.Session{}, domain.ErrNotLoggedIn
	}

	return domain.Session{Token: token, User: user}, nil
}

func (k *SessionKeeper) Token(ctx context.Context) (string, error) {
	session, err := k.Current(ctx)
	if errors.Is(err, domain.ErrNotLoggedIn) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

func (k *SessionKeeper) Save(ctx context.Context, session domain.Session) error {
	encoded, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	if err := k.store.Put(ctx, domain.SessionTokenKey, session.Token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	if err := k.store.Put(ctx, domain.SessionUserKey, string(encoded)); err != nil {
		if rollbackErr := k.store.Delete(ctx, domain.SessionTokenKey); rollbackErr != nil {
			return fmt.Errorf("store session user and rollback token: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("store session user: %w", err)
	}

	return nil
}

// Clear removes both session keys. Clearing an empty session succeeds.
func (k *SessionKeeper) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{domain.SessionTokenKey, domain.SessionUserKey} {
		if err := k.store.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func notLoggedIn(err error) error {
	if errors.Is(err, domain.ErrSessionKeyNotFound) {
		return domain.ErrNotLoggedIn
	}
	return fmt.Errorf("read session: %w", err)
}

type SessionService struct {
	api    ports.APIClient
	keeper *SessionKeeper
	logger zerolog.Logger
}

func NewSessionService(api ports.APIClient, keeper *SessionKeeper, logger zerolog.Logger) *SessionService {
	return &SessionService{api: api, keeper: keeper, logger: logger}
}

type loginResponse struct {
	Token string             `json:"token"`
	User  domain.SessionUser `json:"user"`
}

// Login exchanges credentials for a token. Only superadmin accounts may sign
// in; anything else is rejected without touching the store.
func (s *SessionService) Login(ctx context.Context, cmd LoginCommand) (domain.Session, error) {
	creds := domain.Credentials{
		Username: strings.TrimSpace(cmd.Username),
		Password: cmd.Password,
	}
	if err := creds.Validate(); err != nil {
		return domain.Session{}, err
	}

	resp, err := s.api.Call(ctx, loginEndpoint, domain.Request{Method: domain.MethodPost, Body: creds})
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	var payload loginResponse
	if err := resp.Decode(&payload); err != nil {
		return domain.Session{}, fmt.Errorf("decode login response: %w", err)
	}
	if strings.TrimSpace(payload.Token) == "" {
		return domain.Session{}, errors.New("decode login response: token is empty")
	}
	if !payload.User.IsSuperAdmin() {
		s.logger.Debug().Str("user", payload.User.Name).Str("role", payload.User.Role).Msg("login rejected")
		return domain.Session{}, domain.ErrNotSuperAdmin
	}

	session := domain.Session{Token: payload.Token, User: payload.User}
	if err := s.keeper.Save(ctx, session); err != nil {
		return domain.Session{}, err
	}

	return session, nil
}

func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	return s.keeper.Current(ctx)
}

func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.keeper.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
