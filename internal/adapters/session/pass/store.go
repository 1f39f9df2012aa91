// Package pass stores session values in the password-store under a fixed
// prefix, shelling out to the pass command.
package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"strings"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
)

const DefaultPrefix = "estate-admin"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Store struct {
	prefix string
	run    runFunc
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	return &Store{prefix: strings.Trim(prefix, "/"), run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := s.entry(key)
	_, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", entry)
	if err != nil {
		return formatError("put", entry, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entry := s.entry(key)
	stdout, stderr, err := s.run(ctx, "", "show", entry)
	if err != nil {
		if isNotFound(stderr) {
			return "", fmt.Errorf("pass get %q: %w", entry, domain.ErrSessionKeyNotFound)
		}
		return "", formatError("get", entry, err, stderr)
	}

	stdout = strings.TrimSuffix(stdout, "\n")
	stdout = strings.TrimSuffix(stdout, "\r")

	return stdout, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := s.entry(key)
	_, stderr, err := s.run(ctx, "", "rm", "-f", entry)
	if err != nil && !isNotFound(stderr) {
		return formatError("delete", entry, err, stderr)
	}

	return nil
}

func (s *Store) entry(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

func isNotFound(stderr string) bool {
	return strings.Contains(stderr, "is not in the password store")
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, key string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
}
