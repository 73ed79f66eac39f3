package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jwhitaker/snip/internal/editor"
	"github.com/jwhitaker/snip/internal/index"
	"github.com/jwhitaker/snip/internal/store"
	"github.com/jwhitaker/snip/internal/ui"
)

// stdin is shared by every interactive read in a command, so type-ahead
// buffered past the first line survives across sequential prompts.
// Swapped out in tests.
var stdin = bufio.NewReader(os.Stdin)

// codeFor maps core package errors to stable CLI error codes.
func codeFor(err error) string {
	switch {
	case errors.Is(err, index.ErrValidation):
		return ErrValidation
	case errors.Is(err, index.ErrNotFound), errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, editor.ErrLaunch):
		return ErrEditorLaunch
	default:
		return ErrStore
	}
}

// prompt reads one line of input with a styled label. An empty response
// returns defaultValue.
func prompt(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Printf("%s %s: ", ui.Bold.Render(label), ui.Hint("["+defaultValue+"]"))
	} else {
		fmt.Printf("%s: ", ui.Bold.Render(label))
	}

	// A final line without a trailing newline still counts.
	line, err := stdin.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// parseTags splits a comma-separated tag string into clean tokens.
func parseTags(input string) []string {
	var tags []string
	for _, t := range strings.Split(input, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseID parses a snippet ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snippet id %q", arg)
	}
	return id, nil
}

// getSnippet looks up one snippet by its string ID argument.
func getSnippet(db *index.Database, arg string) (index.Snippet, error) {
	id, err := parseID(arg)
	if err != nil {
		return index.Snippet{}, err
	}
	return db.Get(id)
}
