package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*PreferenceRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "environment.toml")
	config := viper.New()
	config.Set(PreferencesPathKey, path)

	repo, err := NewPreferenceRepository(config)
	require.NoError(t, err)
	return repo, path
}

func TestPreferenceRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	updated := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	require.NoError(t, repo.Save(context.Background(), domain.EnvironmentPreference{
		Environment: domain.EnvironmentRemote,
		UpdatedAt:   updated,
	}))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.EnvironmentRemote, got.Environment)
	assert.True(t, updated.Equal(got.UpdatedAt))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(preferenceFileMode), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "name = 'remote'")
	assert.Contains(t, string(data), "updated_at = 2026-10-19T09:30:00Z")
}

func TestPreferenceRepositoryOmitsZeroTimestamp(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.EnvironmentPreference{Environment: domain.EnvironmentLocal}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "updated_at")

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.EnvironmentLocal, got.Environment)
	assert.True(t, got.UpdatedAt.IsZero())
}

func TestPreferenceRepositoryMissingFileIsNotFound(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrPreferenceNotFound)
}

func TestPreferenceRepositoryClear(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.EnvironmentPreference{Environment: domain.EnvironmentLocal}))

	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, repo.Clear(context.Background()))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, err = repo.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrPreferenceNotFound)
}

func TestPreferenceRepositoryRejectsUnknownEnvironment(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)

	err := repo.Save(context.Background(), domain.EnvironmentPreference{Environment: "staging"})
	require.ErrorIs(t, err, domain.ErrUnknownEnvironment)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[environment]\nname = 'staging'\n"), 0o600))

	_, err = repo.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownEnvironment)
}

func TestPreferenceRepositoryRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("version = 9\n[environment]\nname = 'local'\n"), 0o600))

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported environment schema version 9")
}

func TestPreferenceRepositoryConcurrentSavesLeaveValidFile(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := domain.EnvironmentLocal
			if i%2 == 0 {
				name = domain.EnvironmentRemote
			}
			assert.NoError(t, repo.Save(context.Background(), domain.EnvironmentPreference{Environment: name}))
		}(i)
	}
	wg.Wait()

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Contains(t, []domain.EnvironmentName{domain.EnvironmentLocal, domain.EnvironmentRemote}, got.Environment)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), entry.Name())
	}
}
