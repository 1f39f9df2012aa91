package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	elapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type outcome[T any] struct {
	value T
	err   error
}

type progressModel[T any] struct {
	spinner spinner.Model
	label   string
	run     tea.Cmd
	started time.Time
	elapsed time.Duration
	result  *outcome[T]
}

func newProgressModel[T any](label string, started time.Time, run tea.Cmd) progressModel[T] {
	return progressModel[T]{
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(spinnerStyle)),
		label:   label,
		run:     run,
		started: started,
	}
}

func (m progressModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m progressModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcome[T]:
		m.result = &msg
		return m, tea.Quit
	case spinner.TickMsg:
		if !msg.Time.IsZero() {
			m.elapsed = msg.Time.Sub(m.started)
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel[T]) View() string {
	if m.result != nil {
		return ""
	}

	view := m.spinner.View() + " " + m.label
	if m.elapsed >= time.Second {
		view += " " + elapsedStyle.Render(fmt.Sprintf("%.0fs", m.elapsed.Seconds()))
	}
	return view
}

// withProgress runs task and animates label on output while it is pending.
// Output that is not a terminal gets no animation.
func withProgress[T any](ctx context.Context, output io.Writer, label string, task func(context.Context) (T, error)) (T, error) {
	if !isTerminal(output) {
		return task(ctx)
	}

	run := func() tea.Msg {
		value, err := task(ctx)
		return outcome[T]{value: value, err: err}
	}

	final, err := tea.NewProgram(
		newProgressModel[T](label, time.Now(), run),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		var zero T
		return zero, err
	}

	model, ok := final.(progressModel[T])
	if !ok || model.result == nil {
		var zero T
		return zero, fmt.Errorf("progress for %q ended without a result", label)
	}
	return model.result.value, model.result.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
