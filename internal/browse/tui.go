package browse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/jwhitaker/snip/internal/ui"
)

// Terminal control sequences.
const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J\x1b[H"
)

// key events decoded from raw input.
type key int

const (
	keyNone key = iota
	keyRune
	keyUp
	keyDown
	keyEnter
	keyBackspace
	keyQuit
)

var (
	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("#6C7086"))

	selectedStyle = ui.AccentBold
)

// TUI drives a Session from a raw-mode terminal. The layout mirrors the
// session contract: a search line on top, the result list on the left and
// the rendered detail pane on the right.
type TUI struct {
	session *Session
	display *ui.DisplayContext
	in      *os.File
	out     io.Writer

	offset int // first visible list entry
}

// NewTUI creates a terminal frontend for the session.
func NewTUI(session *Session, display *ui.DisplayContext) *TUI {
	return &TUI{
		session: session,
		display: display,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// Run enters raw mode and processes input events until the user quits.
// Each event is handled fully (search, file read, redraw) before the next
// key is read; opening the editor suspends the terminal UI entirely.
func (t *TUI) Run() error {
	fd := t.in.Fd()
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		fmt.Fprint(t.out, showCursor, leaveAltScreen)
		_ = term.Restore(fd, state)
	}()

	fmt.Fprint(t.out, enterAltScreen, hideCursor)

	reader := bufio.NewReader(t.in)
	t.render()

	for {
		k, r, err := readKey(reader)
		if err != nil {
			return err
		}

		switch k {
		case keyQuit:
			return nil
		case keyRune:
			if err := t.session.SetQuery(t.session.Query() + string(r)); err != nil {
				return err
			}
			t.offset = 0
		case keyBackspace:
			q := t.session.Query()
			if q == "" {
				continue
			}
			runes := []rune(q)
			if err := t.session.SetQuery(string(runes[:len(runes)-1])); err != nil {
				return err
			}
			t.offset = 0
		case keyUp:
			t.session.MoveSelection(-1)
		case keyDown:
			t.session.MoveSelection(1)
		case keyEnter:
			if _, ok := t.session.Current(); !ok {
				continue
			}
			// Hand the terminal to the editor for the duration of the edit.
			fmt.Fprint(t.out, showCursor, leaveAltScreen)
			_ = term.Restore(fd, state)

			editErr := t.session.OpenSelected()

			state, err = term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("re-enter raw mode: %w", err)
			}
			fmt.Fprint(t.out, enterAltScreen, hideCursor)
			if editErr != nil {
				return editErr
			}
		case keyNone:
			continue
		}

		t.render()
	}
}

// readKey decodes one input event. Escape sequences arrive as a burst, so
// a lone ESC with nothing buffered behind it is treated as quit.
func readKey(reader *bufio.Reader) (key, rune, error) {
	r, _, err := reader.ReadRune()
	if err != nil {
		return keyQuit, 0, nil // stdin closed: end the session
	}

	switch r {
	case 0x03, 0x04: // ctrl+c, ctrl+d
		return keyQuit, 0, nil
	case 0x1b:
		if reader.Buffered() < 2 {
			return keyQuit, 0, nil
		}
		b1, _ := reader.ReadByte()
		b2, _ := reader.ReadByte()
		if b1 != '[' {
			return keyNone, 0, nil
		}
		switch b2 {
		case 'A':
			return keyUp, 0, nil
		case 'B':
			return keyDown, 0, nil
		}
		return keyNone, 0, nil
	case '\r', '\n':
		return keyEnter, 0, nil
	case 0x7f, 0x08:
		return keyBackspace, 0, nil
	case 0x10: // ctrl+p
		return keyUp, 0, nil
	case 0x0e: // ctrl+n
		return keyDown, 0, nil
	}

	if r >= 0x20 {
		return keyRune, r, nil
	}
	return keyNone, 0, nil
}

// render redraws the full frame. Raw mode needs explicit carriage returns.
func (t *TUI) render() {
	frame := t.frame()
	frame = strings.ReplaceAll(frame, "\n", "\r\n")
	fmt.Fprint(t.out, clearScreen, frame)
}

// frame assembles the search line, list pane, and detail pane.
func (t *TUI) frame() string {
	width, height := t.display.TermWidth, t.display.TermHeight
	paneHeight := height - 3
	if paneHeight < 1 {
		paneHeight = 1
	}
	listWidth := width * 2 / 5
	if listWidth < 20 {
		listWidth = 20
	}
	detailWidth := width - listWidth - 1

	searchLine := ui.Bold.Render("Search: ") + t.session.Query() + ui.Accent.Render("█")
	hintLine := ui.Hint("↑/↓ select · enter edit · esc quit")

	list := t.renderList(listWidth-2, paneHeight)
	detail := t.renderDetail(detailWidth, paneHeight)

	listPane := listPaneStyle.Width(listWidth - 1).Height(paneHeight).Render(list)
	detailPane := lipgloss.NewStyle().Width(detailWidth).Height(paneHeight).Render(detail)

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
	return searchLine + "\n" + hintLine + "\n" + body
}

// renderList formats the visible window of result entries, two lines per
// entry: title with tags, then the truncated description.
func (t *TUI) renderList(width, height int) string {
	results := t.session.Results()
	if len(results) == 0 {
		return ui.Hint("No snippets found")
	}

	perEntry := 2
	visible := height / perEntry
	if visible < 1 {
		visible = 1
	}
	t.scrollTo(visible)

	var lines []string
	end := t.offset + visible
	if end > len(results) {
		end = len(results)
	}
	for i := t.offset; i < end; i++ {
		s := results[i]

		head := s.Title
		if tags := ListTags(s); tags != "" {
			head += " " + tags
		}
		head = truncateRunes(head, width)

		desc := truncateRunes(TruncateDescription(s.Description), width-2)

		if i == t.session.Selected() {
			lines = append(lines, selectedStyle.Render("▌ "+head))
		} else {
			lines = append(lines, "  "+head)
		}
		lines = append(lines, "  "+ui.Muted.Render(desc))
	}
	return strings.Join(lines, "\n")
}

// scrollTo adjusts the window offset so the selection stays visible.
func (t *TUI) scrollTo(visible int) {
	selected := t.session.Selected()
	if selected == NoSelection {
		t.offset = 0
		return
	}
	if selected < t.offset {
		t.offset = selected
	}
	if selected >= t.offset+visible {
		t.offset = selected - visible + 1
	}
}

// renderDetail renders the composed detail markdown, cut to pane height.
func (t *TUI) renderDetail(width, height int) string {
	detail := t.session.Detail()
	if detail == "" {
		return ""
	}

	rendered, err := ui.RenderMarkdown(detail, width)
	if err != nil {
		// Fall back to raw text when rendering fails.
		rendered = detail
	}

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
