// Package config handles wordkeep configuration persistence.
// Configuration lives in ~/.config/wordkeep/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything wordkeep reads at startup.
type Config struct {
	DataPath      string   // deck data file
	LexiconPath   string   // random-word lexicon (optional)
	SpeechCommand []string // argv of the external synthesizer
	Theme         string
}

const (
	defaultConfigPath  = "~/.config/wordkeep/config.toml"
	defaultDataPath    = "~/.local/share/wordkeep/decks.toml"
	defaultLexiconPath = "~/.local/share/wordkeep/lexicon.json"
	defaultTheme       = "Navy"
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

func defaultSpeechCommand() []string {
	if runtime.GOOS == "darwin" {
		return []string{"say", "-r", "130"}
	}
	return []string{"espeak", "-s", "130"}
}

// Load reads the config from the given path, falling back to defaults when
// the file is missing or unreadable. A malformed file degrades gracefully to
// defaults rather than failing startup.
func Load(path string) Config {
	cfg := Config{
		DataPath:      mustExpand(defaultDataPath),
		LexiconPath:   mustExpand(defaultLexiconPath),
		SpeechCommand: defaultSpeechCommand(),
		Theme:         defaultTheme,
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return cfg
	}

	var raw struct {
		DataPath      string   `toml:"data_path"`
		LexiconPath   string   `toml:"lexicon_path"`
		SpeechCommand []string `toml:"speech_command"`
		Theme         string   `toml:"theme"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return cfg
	}

	if v := strings.TrimSpace(raw.DataPath); v != "" {
		cfg.DataPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LexiconPath); v != "" {
		cfg.LexiconPath = mustExpand(v)
	}
	if len(raw.SpeechCommand) > 0 && strings.TrimSpace(raw.SpeechCommand[0]) != "" {
		cfg.SpeechCommand = raw.SpeechCommand
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	return cfg
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	raw := struct {
		DataPath      string   `toml:"data_path"`
		LexiconPath   string   `toml:"lexicon_path"`
		SpeechCommand []string `toml:"speech_command"`
		Theme         string   `toml:"theme"`
	}{cfg.DataPath, cfg.LexiconPath, cfg.SpeechCommand, cfg.Theme}

	data, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
