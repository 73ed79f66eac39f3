package browse

import (
	"errors"
	"strings"
	"testing"

	"github.com/jwhitaker/snip/internal/index"
	"github.com/jwhitaker/snip/internal/testutil"
)

type fakeSearcher struct {
	byQuery map[string][]index.Snippet
	err     error
	queries []string
}

func (f *fakeSearcher) Search(query string) ([]index.Snippet, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.byQuery[query], nil
}

type fakeReader struct {
	contents map[string]string
}

func (f *fakeReader) Read(path string) ([]byte, error) {
	content, ok := f.contents[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return []byte(content), nil
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Edit(path, template string) error {
	f.opened = append(f.opened, path)
	return f.err
}

func snippetFixtures() []index.Snippet {
	return []index.Snippet{
		{ID: 3, Title: "Walk a directory", Tags: []string{"python", "files"}, FilePath: "/files/walk.md"},
		{ID: 2, Title: "HTTP retry", Tags: []string{"python", "network"}, FilePath: "/files/retry.md"},
		{ID: 1, Title: "Git bisect notes", FilePath: "/files/bisect.md"},
	}
}

func newTestSession(t *testing.T) (*Session, *fakeSearcher, *fakeReader, *fakeOpener) {
	t.Helper()
	all := snippetFixtures()
	idx := &fakeSearcher{byQuery: map[string][]index.Snippet{
		"":       all,
		"python": all[:2],
		"zzz":    nil,
	}}
	files := &fakeReader{contents: map[string]string{
		"/files/walk.md": "Use os.walk.\n",
	}}
	opener := &fakeOpener{}

	s, err := NewSession(idx, files, opener, "")
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s, idx, files, opener
}

func TestNewSessionRunsInitialQuery(t *testing.T) {
	s, idx, _, _ := newTestSession(t)

	if len(idx.queries) != 1 || idx.queries[0] != "" {
		t.Errorf("initial queries = %v, want one empty query", idx.queries)
	}
	if got := len(s.Results()); got != 3 {
		t.Errorf("Results() len = %d, want 3", got)
	}
	if s.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", s.Selected())
	}
}

func TestNewSessionSearchError(t *testing.T) {
	idx := &fakeSearcher{err: errors.New("index closed")}
	if _, err := NewSession(idx, &fakeReader{}, &fakeOpener{}, ""); err == nil {
		t.Fatal("NewSession() with failing searcher expected error, got nil")
	}
}

func TestSetQueryResetsSelection(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	if !s.Select(2) {
		t.Fatal("Select(2) = false, want true")
	}
	if err := s.SetQuery("python"); err != nil {
		t.Fatalf("SetQuery() error = %v", err)
	}
	if s.Selected() != 0 {
		t.Errorf("Selected() after narrowing = %d, want 0", s.Selected())
	}
	if got := len(s.Results()); got != 2 {
		t.Errorf("Results() len = %d, want 2", got)
	}
}

func TestSetQueryEmptyResults(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	if err := s.SetQuery("zzz"); err != nil {
		t.Fatalf("SetQuery() error = %v", err)
	}
	if s.Selected() != NoSelection {
		t.Errorf("Selected() = %d, want NoSelection", s.Selected())
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() ok = true with empty results")
	}
	if s.Detail() != "" {
		t.Errorf("Detail() = %q, want empty", s.Detail())
	}
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	for _, i := range []int{-1, 3, 99} {
		if s.Select(i) {
			t.Errorf("Select(%d) = true, want false", i)
		}
	}
	if s.Selected() != 0 {
		t.Errorf("Selected() = %d after rejected selects, want 0", s.Selected())
	}
}

func TestMoveSelectionClamps(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	s.MoveSelection(-1)
	if s.Selected() != 0 {
		t.Errorf("Selected() after move up at top = %d, want 0", s.Selected())
	}

	s.MoveSelection(1)
	s.MoveSelection(1)
	s.MoveSelection(1)
	if s.Selected() != 2 {
		t.Errorf("Selected() after moves past bottom = %d, want 2", s.Selected())
	}
}

func TestOpenSelected(t *testing.T) {
	s, _, _, opener := newTestSession(t)

	s.Select(1)
	if err := s.OpenSelected(); err != nil {
		t.Fatalf("OpenSelected() error = %v", err)
	}
	if len(opener.opened) != 1 || opener.opened[0] != "/files/retry.md" {
		t.Errorf("opened = %v, want [/files/retry.md]", opener.opened)
	}
}

func TestOpenSelectedNoSelection(t *testing.T) {
	s, _, _, opener := newTestSession(t)

	if err := s.SetQuery("zzz"); err != nil {
		t.Fatalf("SetQuery() error = %v", err)
	}
	if err := s.OpenSelected(); err != nil {
		t.Errorf("OpenSelected() with no selection error = %v, want nil", err)
	}
	if len(opener.opened) != 0 {
		t.Errorf("opened = %v, want none", opener.opened)
	}
}

func TestDetailIncludesContent(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	detail := s.Detail()
	if !strings.Contains(detail, "# Walk a directory") {
		t.Errorf("Detail() missing title header:\n%s", detail)
	}
	if !strings.Contains(detail, "Use os.walk.") {
		t.Errorf("Detail() missing file content:\n%s", detail)
	}
}

func TestSessionAgainstRealHome(t *testing.T) {
	home := testutil.NewHome(t)

	walk := home.WriteFile("walk.md", "# Walk\n\nUse os.walk.\n")
	home.MustInsert("Walk a directory", []string{"python", "files"}, "Recursive traversal", walk)
	home.MustInsert("HTTP retry", []string{"python", "network"}, "Backoff loop", "/gone/retry.md")

	opener := &fakeOpener{}
	s, err := NewSession(home.DB, home.Files, opener, "python files")
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	if got := len(s.Results()); got != 1 {
		t.Fatalf("Results() len = %d, want 1", got)
	}
	if detail := s.Detail(); !strings.Contains(detail, "Use os.walk.") {
		t.Errorf("Detail() missing file content:\n%s", detail)
	}

	if err := s.SetQuery("retry"); err != nil {
		t.Fatalf("SetQuery() error = %v", err)
	}
	if detail := s.Detail(); !strings.Contains(detail, "*Error: cannot read /gone/retry.md*") {
		t.Errorf("Detail() missing inline read error:\n%s", detail)
	}

	if err := s.OpenSelected(); err != nil {
		t.Fatalf("OpenSelected() error = %v", err)
	}
	if len(opener.opened) != 1 || opener.opened[0] != "/gone/retry.md" {
		t.Errorf("opened = %v, want [/gone/retry.md]", opener.opened)
	}
}

func TestDetailMissingFile(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	s.Select(1)
	detail := s.Detail()
	if !strings.Contains(detail, "# HTTP retry") {
		t.Errorf("Detail() missing title header:\n%s", detail)
	}
	if !strings.Contains(detail, "*Error: cannot read /files/retry.md*") {
		t.Errorf("Detail() missing inline read error:\n%s", detail)
	}
}
