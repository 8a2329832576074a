// Package app provides the orchestration layer for the wordkeep application.
//
// # Overview
//
// This package wires together configuration, deck storage, the random-word
// lexicon, the speech queue, and the UI to create the complete wordkeep TUI
// experience. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/wordkeep/config.toml
//  2. Open the deck store (seeding a Default deck when the data file is
//     missing or unreadable)
//  3. Load the random-word lexicon (optional; a missing or corrupt file
//     only disables the random-word screen)
//  4. Create the speech queue around an external synthesizer command and
//     start its worker goroutine
//  5. Start the TUI and block until the user quits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read wordkeep config
//	       ├─────> store.Open()           Load decks from disk
//	       ├─────> lexicon.Load()         Load random-word list
//	       ├─────> speech.NewQueue()      Speech worker + event channel
//	       └─────> ui.Run()               Start TUI (blocks)
//
// The UI owns all state after startup: it mutates the store in the
// foreground event loop and receives speech outcomes as messages from the
// queue's event channel. No background goroutine touches UI state directly.
package app
