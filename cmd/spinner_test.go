package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithProgressRunsPlainWhenNotATerminal(t *testing.T) {
	var output bytes.Buffer

	value, err := withProgress(context.Background(), &output, "Counting", func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Empty(t, output.String())

	_, err = withProgress(context.Background(), &output, "Counting", func(context.Context) (int, error) {
		return 0, errors.New("boom")
	})
	assert.EqualError(t, err, "boom")
}

func TestProgressModelShowsElapsedTime(t *testing.T) {
	started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	model := newProgressModel[string]("Probing local backend", started, nil)

	assert.Contains(t, model.View(), "Probing local backend")
	assert.NotContains(t, model.View(), "0s")

	next, _ := model.Update(spinner.TickMsg{Time: started.Add(3 * time.Second)})
	model = next.(progressModel[string])
	assert.Contains(t, model.View(), "Probing local backend")
	assert.Contains(t, model.View(), "3s")
}

func TestProgressModelQuitsWithOutcome(t *testing.T) {
	model := newProgressModel[string]("Probing local backend", time.Now(), nil)

	next, cmd := model.Update(outcome[string]{value: "local"})
	model = next.(progressModel[string])

	require.NotNil(t, model.result)
	assert.Equal(t, "local", model.result.value)
	assert.NoError(t, model.result.err)
	assert.Empty(t, model.View())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
