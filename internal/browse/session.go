// Package browse implements the interactive browse session: a synchronous
// state machine holding the current query, result set, and selection, plus
// the terminal frontend that drives it. Every input event fully resolves
// (index query, file read, render) before the next event is processed.
package browse

import (
	"fmt"

	"github.com/jwhitaker/snip/internal/index"
)

// Searcher is the slice of the metadata index the session needs.
type Searcher interface {
	Search(query string) ([]index.Snippet, error)
}

// ContentReader is the slice of the content store the session needs.
type ContentReader interface {
	Read(path string) ([]byte, error)
}

// Opener launches an external editor on a snippet file and blocks until
// it exits.
type Opener interface {
	Edit(path, template string) error
}

// NoSelection is the selection index when the result set is empty.
const NoSelection = -1

// Session holds the browse state. It is not safe for concurrent use and
// does not need to be: events are handled one at a time.
type Session struct {
	idx    Searcher
	files  ContentReader
	editor Opener

	query    string
	results  []index.Snippet
	selected int
}

// NewSession creates a session and runs the initial query so results and
// selection are populated immediately.
func NewSession(idx Searcher, files ContentReader, editor Opener, initialQuery string) (*Session, error) {
	s := &Session{
		idx:      idx,
		files:    files,
		editor:   editor,
		selected: NoSelection,
	}
	if err := s.SetQuery(initialQuery); err != nil {
		return nil, err
	}
	return s, nil
}

// Query returns the current query text.
func (s *Session) Query() string { return s.query }

// Results returns the current result set, most recently modified first.
func (s *Session) Results() []index.Snippet { return s.results }

// Selected returns the current selection index, or NoSelection.
func (s *Session) Selected() int { return s.selected }

// SetQuery handles a query-changed event: re-runs the search, replaces the
// result set, and resets the selection to the first result (or none).
func (s *Session) SetQuery(query string) error {
	results, err := s.idx.Search(query)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}
	s.query = query
	s.results = results
	if len(results) > 0 {
		s.selected = 0
	} else {
		s.selected = NoSelection
	}
	return nil
}

// Select handles a selection-changed event. Out-of-range indexes are
// rejected so arrow keys at the list edges are no-ops; returns whether the
// selection changed.
func (s *Session) Select(i int) bool {
	if i < 0 || i >= len(s.results) {
		return false
	}
	s.selected = i
	return true
}

// MoveSelection moves the selection by delta, clamped to the result set.
func (s *Session) MoveSelection(delta int) bool {
	if s.selected == NoSelection {
		return false
	}
	i := s.selected + delta
	if i < 0 {
		i = 0
	}
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	return s.Select(i)
}

// Current returns the selected snippet, if any.
func (s *Session) Current() (index.Snippet, bool) {
	if s.selected == NoSelection {
		return index.Snippet{}, false
	}
	return s.results[s.selected], true
}

// OpenSelected handles an open-requested event: launches the editor on the
// selected snippet's file and blocks until it exits. The caller re-renders
// afterwards, which picks up any edits. No selection is a no-op.
func (s *Session) OpenSelected() error {
	current, ok := s.Current()
	if !ok {
		return nil
	}
	return s.editor.Edit(current.FilePath, "")
}

// Detail returns the detail-pane markdown for the current selection: the
// metadata header composed with the file content. A missing file renders
// as an inline error instead of failing the session.
func (s *Session) Detail() string {
	current, ok := s.Current()
	if !ok {
		return ""
	}
	content, err := s.files.Read(current.FilePath)
	if err != nil {
		return ComposeDetail(current, fmt.Sprintf("*Error: cannot read %s*", current.FilePath))
	}
	return ComposeDetail(current, string(content))
}
