package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// CommandEngine speaks text by running an external synthesizer command
// (say, espeak, flite, ...) with the text appended as the final argument.
// Cancellation kills the running process via exec.CommandContext.
type CommandEngine struct {
	name string
	args []string
}

// NewCommandEngine builds an engine from an argv-style command line.
func NewCommandEngine(argv []string) (*CommandEngine, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, fmt.Errorf("speech command is empty")
	}
	args := make([]string, len(argv)-1)
	copy(args, argv[1:])
	return &CommandEngine{name: argv[0], args: args}, nil
}

// Speak runs the synthesizer and blocks until it exits or ctx is cancelled.
func (e *CommandEngine) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, e.name, append(append([]string{}, e.args...), text)...)
	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		if detail := bytes.TrimSpace(out); len(detail) > 0 {
			return fmt.Errorf("speech command %s: %w: %s", e.name, err, detail)
		}
		return fmt.Errorf("speech command %s: %w", e.name, err)
	}
	return nil
}
