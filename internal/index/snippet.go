package index

import (
	"strings"
	"time"
)

// TagDelimiter separates tag tokens in the persisted tags column.
// Tag tokens themselves must never contain it.
const TagDelimiter = ","

// TimeLayout is the persisted timestamp format: fixed-width UTC text so
// lexicographic order matches chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// Snippet is one indexed record. The content itself lives in the file at
// FilePath; the index owns only the metadata.
type Snippet struct {
	ID          int64
	Title       string
	Tags        []string
	Description string
	FilePath    string
	Created     string
	Modified    string
}

// TagString returns the tags joined for display and search,
// e.g. "python,files,io".
func (s Snippet) TagString() string {
	return strings.Join(s.Tags, TagDelimiter)
}

// SplitTags parses a persisted tags column back into tokens.
func SplitTags(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, TagDelimiter)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// Now returns the current time in the persisted timestamp format.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}
