// Package config handles loading and saving wordkeep configuration files.
//
// # Overview
//
// Wordkeep reads a small TOML file at startup to discover where its deck
// data lives, where the optional random-word lexicon is, which external
// speech synthesizer to run, and which color theme to use.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/wordkeep/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/wordkeep/config.toml
//   - Deck data: ~/.local/share/wordkeep/decks.toml
//   - Lexicon: ~/.local/share/wordkeep/lexicon.json
//   - Speech command: "say -r 130" on macOS, "espeak -s 130" elsewhere
//   - Theme: Navy
//
// # TOML Format
//
// Example config.toml:
//
//	data_path = "~/.local/share/wordkeep/decks.toml"
//	lexicon_path = "~/.local/share/wordkeep/lexicon.json"
//	speech_command = ["espeak", "-s", "130"]
//	theme = "Navy"
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load never fails. A missing, unreadable, or malformed config file degrades
// to defaults so wordkeep works out-of-the-box without any configuration.
// Save returns errors because writing is an explicit user action.
package config
