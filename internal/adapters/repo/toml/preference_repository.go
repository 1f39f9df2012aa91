// Package toml persists the operator's environment choice in a small TOML file
// so `ea env use` survives between invocations.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	PreferencesPathKey = "preferences.path"

	appConfigDir       = ".estate-admin"
	preferenceFile     = "environment.toml"
	preferenceFileMode = 0o600
	preferenceDirMode  = 0o700
	tempFilePattern    = ".environment-*.toml.tmp"
)

type PreferenceRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.EnvironmentPreferenceRepository = (*PreferenceRepository)(nil)

// NewPreferenceRepository reads the file location from cfg's preferences.path,
// defaulting to ~/.estate-admin/environment.toml.
func NewPreferenceRepository(cfg *viper.Viper) (*PreferenceRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(PreferencesPathKey) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetDefault(PreferencesPathKey, filepath.Join(homeDir, appConfigDir, preferenceFile))
	}

	path := cfg.GetString(PreferencesPathKey)
	if path == "" {
		return nil, errors.New("preferences path is empty")
	}
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &PreferenceRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *PreferenceRepository) Path() string {
	return r.path
}

func (r *PreferenceRepository) Get(ctx context.Context) (domain.EnvironmentPreference, error) {
	if err := ctx.Err(); err != nil {
		return domain.EnvironmentPreference{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, found, err := r.readSchema()
	if err != nil {
		return domain.EnvironmentPreference{}, err
	}
	if !found || file.Environment.Name == "" {
		return domain.EnvironmentPreference{}, domain.ErrPreferenceNotFound
	}

	name, err := domain.ParseEnvironmentName(file.Environment.Name)
	if err != nil {
		return domain.EnvironmentPreference{}, fmt.Errorf("decode environment preference: %w", err)
	}

	return domain.EnvironmentPreference{Environment: name, UpdatedAt: file.Environment.updatedAt()}, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, pref domain.EnvironmentPreference) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := domain.ParseEnvironmentName(string(pref.Environment)); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := preferenceFileSchema{
		Environment: environmentSchema{
			Name:      string(pref.Environment),
			UpdatedAt: timestampOrNil(pref.UpdatedAt),
		},
	}

	return r.writeSchema(file)
}

// Clear removes the stored preference. Clearing a missing file is not an error.
func (r *PreferenceRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove environment file: %w", err)
	}

	return nil
}

func (r *PreferenceRepository) readSchema() (preferenceFileSchema, bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return preferenceFileSchema{}, false, nil
		}
		return preferenceFileSchema{}, false, fmt.Errorf("read environment file: %w", err)
	}

	var file preferenceFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return preferenceFileSchema{}, false, fmt.Errorf("decode environment file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return preferenceFileSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func (r *PreferenceRepository) writeSchema(file preferenceFileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), preferenceDirMode); err != nil {
		return fmt.Errorf("create environment directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode environment file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp environment file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp environment file: %w", err)
	}

	if err := tempFile.Chmod(preferenceFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp environment file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp environment file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace environment file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve preferences path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
