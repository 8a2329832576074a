package app

import (
	"context"
	"fmt"

	"github.com/wordkeep/wordkeep/internal/config"
	"github.com/wordkeep/wordkeep/internal/lexicon"
	"github.com/wordkeep/wordkeep/internal/speech"
	"github.com/wordkeep/wordkeep/internal/store"
	"github.com/wordkeep/wordkeep/internal/ui"
)

// Options configure the wordkeep application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/wordkeep/config.toml
}

// Run boots the wordkeep TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg := config.Load(opts.ConfigPath)

	st := store.Open(cfg.DataPath)

	// A corrupt lexicon only disables the random-word screen; the rest of
	// the app still works.
	lex, err := lexicon.Load(cfg.LexiconPath)
	if err != nil {
		lex = lexicon.Empty()
	}

	engine, err := speech.NewCommandEngine(cfg.SpeechCommand)
	if err != nil {
		return fmt.Errorf("init speech engine: %w", err)
	}
	queue := speech.NewQueue(engine)
	queue.Start()

	uiOpts := ui.Options{
		Context:    ctx,
		Store:      st,
		Lexicon:    lex,
		Speech:     queue,
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
	}
	return ui.Run(uiOpts)
}
