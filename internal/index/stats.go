package index

import (
	"fmt"
	"sort"
)

// TagCount is one tag with its usage count.
type TagCount struct {
	Tag   string
	Count int
}

// Stats summarizes the record store for the stats command.
type Stats struct {
	SnippetCount int
	UniqueTags   int
	TopTags      []TagCount
}

// Stats aggregates tag frequency over all records. topN limits TopTags;
// ties are broken alphabetically so the output is stable.
func (d *Database) Stats(topN int) (Stats, error) {
	rows, err := d.db.Query(`SELECT tags FROM snippets`)
	if err != nil {
		return Stats{}, fmt.Errorf("collect stats: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	total := 0
	for rows.Next() {
		var joined string
		if err := rows.Scan(&joined); err != nil {
			return Stats{}, fmt.Errorf("collect stats: %w", err)
		}
		total++
		for _, tag := range SplitTags(joined) {
			counts[tag]++
		}
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("collect stats: %w", err)
	}

	top := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		top = append(top, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Tag < top[j].Tag
	})

	stats := Stats{
		SnippetCount: total,
		UniqueTags:   len(counts),
		TopTags:      top,
	}
	if topN > 0 && len(stats.TopTags) > topN {
		stats.TopTags = stats.TopTags[:topN]
	}
	return stats, nil
}
