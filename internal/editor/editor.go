// Package editor launches the user's text editor on a snippet file as a
// blocking foreground process and implements the "did the user add real
// content" check used by the add flow.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrLaunch indicates the external editor process failed to start.
var ErrLaunch = errors.New("failed to launch editor")

// Bridge runs the configured editor on snippet files.
type Bridge struct {
	editor string

	// run is swappable in tests so no real editor is spawned.
	run func(cmd *exec.Cmd) error
}

// New creates a Bridge for the given editor command. The command may
// contain arguments ("code --wait"); it is split on the shell when needed.
func New(editorCmd string) *Bridge {
	return &Bridge{
		editor: editorCmd,
		run:    func(cmd *exec.Cmd) error { return cmd.Run() },
	}
}

// Edit opens path in the editor and blocks until the editor exits.
// If path does not exist and template is non-empty, the template is
// written first so the user starts from it.
func (b *Bridge) Edit(path, template string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) && template != "" {
		if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
			return fmt.Errorf("write template: %w", err)
		}
	}

	cmd := b.command(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := b.run(cmd); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The editor started; a nonzero exit is not a launch failure.
			return nil
		}
		return fmt.Errorf("%w: %s: %v", ErrLaunch, b.editor, err)
	}
	return nil
}

// command builds the exec.Cmd for the editor. Compound commands like
// "open -a Cursor" or "code --wait" go through the shell so their
// arguments survive.
func (b *Bridge) command(path string) *exec.Cmd {
	if strings.Contains(b.editor, " ") {
		return exec.Command("sh", "-c", b.editor+" "+shellQuote(path))
	}
	return exec.Command(b.editor, path)
}

// shellQuote quotes a string for safe use in shell commands.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}

// ContentAdded reports whether an edited file holds meaningfully more than
// the template it started from: non-blank, not the untouched template, and
// longer than half the template. This is a crude length heuristic, not a
// content diff: a user who replaces the template with very short real
// content is misclassified as having cancelled.
func ContentAdded(content, template string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}
	if content == template {
		return false
	}
	return len(content) > len(template)/2
}
