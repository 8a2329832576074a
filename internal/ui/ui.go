package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordkeep/wordkeep/internal/config"
	"github.com/wordkeep/wordkeep/internal/lexicon"
	"github.com/wordkeep/wordkeep/internal/speech"
	"github.com/wordkeep/wordkeep/internal/store"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *store.Store
	Lexicon    *lexicon.Lexicon
	Speech     *speech.Queue
	Config     config.Config
	ConfigPath string
}

// Run starts the TUI and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		// Cancellation (SIGINT/SIGTERM) is a clean shutdown, not a failure.
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// speechEventMsg delivers one speech worker event into the update loop.
type speechEventMsg speech.Event

// searchDebounceMsg fires after the search debounce interval. Stale
// sequence numbers are ignored so only the latest keystroke triggers a
// recompute.
type searchDebounceMsg struct{ seq int }

// listenSpeech waits for the next speech event. The command re-arms itself
// from Update after each delivery.
func listenSpeech(q *speech.Queue) tea.Cmd {
	if q == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-q.Events()
		if !ok {
			return nil
		}
		return speechEventMsg(ev)
	}
}
