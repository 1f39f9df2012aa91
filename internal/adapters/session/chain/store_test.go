package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/estate-admin-cli/internal/domain"
	portmocks "github.com/bnema/estate-admin-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *portmocks.MockSessionStore, *portmocks.MockSessionStore) {
	t.Helper()

	primary := portmocks.NewMockSessionStore(t)
	fallback := portmocks.NewMockSessionStore(t)
	store, err := New(primary, fallback, zerolog.Nop())
	require.NoError(t, err)
	return store, primary, fallback
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, domain.SessionTokenKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), domain.SessionTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, domain.SessionTokenKey).Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, domain.SessionTokenKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), domain.SessionTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsPlainNotFoundWhenBothMiss(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, domain.SessionUserKey).Return("", domain.ErrSessionKeyNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, domain.SessionUserKey).Return("", domain.ErrSessionKeyNotFound).Once()

	_, err := store.Get(context.Background(), domain.SessionUserKey)
	assert.Equal(t, domain.ErrSessionKeyNotFound, err)
}

func TestStoreGetKeepsBothCausesWhenPrimaryBreaks(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, domain.SessionUserKey).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, domain.SessionUserKey).Return("", domain.ErrSessionKeyNotFound).Once()

	_, err := store.Get(context.Background(), domain.SessionUserKey)
	require.ErrorIs(t, err, domain.ErrSessionKeyNotFound)
	assert.ErrorContains(t, err, "read session adminUser")
	assert.ErrorContains(t, err, "pass failed")
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Put(mock.Anything, domain.SessionTokenKey, "jwt").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, domain.SessionTokenKey, "jwt").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), domain.SessionTokenKey, "jwt"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Put(mock.Anything, domain.SessionTokenKey, "jwt").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), domain.SessionTokenKey, "jwt"))
}

func TestStorePutFailsWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Put(mock.Anything, domain.SessionTokenKey, "jwt").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, domain.SessionTokenKey, "jwt").Return(errors.New("disk full")).Once()

	err := store.Put(context.Background(), domain.SessionTokenKey, "jwt")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "disk full")
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, domain.SessionTokenKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, domain.SessionTokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), domain.SessionTokenKey))
}

func TestStoreDeleteFailsOnlyWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, domain.SessionTokenKey).Return(errors.New("pass failed")).Twice()
	fallback.EXPECT().Delete(mock.Anything, domain.SessionTokenKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, domain.SessionTokenKey).Return(errors.New("disk failed")).Once()

	require.NoError(t, store.Delete(context.Background(), domain.SessionTokenKey))

	err := store.Delete(context.Background(), domain.SessionTokenKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk failed")
}

func TestStoreSkipsFallbackOnCanceledContext(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, domain.SessionTokenKey).Return("", context.Canceled).Once()
	primary.EXPECT().Put(mock.Anything, domain.SessionTokenKey, "jwt").Return(context.DeadlineExceeded).Once()

	_, err := store.Get(context.Background(), domain.SessionTokenKey)
	require.ErrorIs(t, err, context.Canceled)

	err = store.Put(context.Background(), domain.SessionTokenKey, "jwt")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := New(nil, portmocks.NewMockSessionStore(t), zerolog.Nop())
	require.ErrorIs(t, err, errNilBackend)

	_, err = New(portmocks.NewMockSessionStore(t), nil, zerolog.Nop())
	require.ErrorIs(t, err, errNilBackend)
}
