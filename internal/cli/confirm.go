package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/jwhitaker/snip/internal/ui"
)

// confirmDeletion asks before a destructive operation. Only an explicit
// "y"/"yes" proceeds; without a terminal on both ends the answer is no, so
// piped invocations never delete by accident.
func confirmDeletion(message string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return false
	}

	fmt.Printf("%s %s ", message, ui.Hint("[y/N]"))
	line, err := stdin.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "y", "yes":
		return true
	}
	return false
}
