package browse

import (
	"fmt"
	"strings"

	"github.com/jwhitaker/snip/internal/index"
)

// DescriptionLimit is where list-entry descriptions are cut.
const DescriptionLimit = 60

// ComposeDetail builds the detail-pane markdown for a snippet: a metadata
// header (title, inline-code tags, description, separator) followed by the
// raw file content.
func ComposeDetail(s index.Snippet, content string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", s.Title)

	if len(s.Tags) > 0 {
		quoted := make([]string, len(s.Tags))
		for i, tag := range s.Tags {
			quoted[i] = "`" + strings.TrimSpace(tag) + "`"
		}
		fmt.Fprintf(&b, "**Tags:** %s\n\n", strings.Join(quoted, ", "))
	}
	if s.Description != "" {
		fmt.Fprintf(&b, "**Description:** %s\n\n", s.Description)
	}

	b.WriteString("---\n\n")
	b.WriteString(content)
	return b.String()
}

// ListTags formats tags for a list entry, e.g. "[python, files]".
func ListTags(s index.Snippet) string {
	if len(s.Tags) == 0 {
		return ""
	}
	trimmed := make([]string, len(s.Tags))
	for i, tag := range s.Tags {
		trimmed[i] = strings.TrimSpace(tag)
	}
	return "[" + strings.Join(trimmed, ", ") + "]"
}

// TruncateDescription cuts a description for list display, appending an
// ellipsis marker when it exceeds DescriptionLimit runes.
func TruncateDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) <= DescriptionLimit {
		return desc
	}
	return string(runes[:DescriptionLimit]) + "..."
}
