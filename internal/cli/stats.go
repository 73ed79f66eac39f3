package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/ui"
)

const statsTopTags = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show snippet statistics",
	Long: `Displays aggregate statistics: total snippets, unique tags, and the
most used tags.

Examples:
  snip stats
  snip stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openIndex()
		if err != nil {
			return handleError(ErrStore, err, "")
		}
		defer db.Close()

		stats, err := db.Stats(statsTopTags)
		if err != nil {
			return handleError(ErrStore, err, "")
		}

		if isJSONOutput() {
			tags := make([]map[string]interface{}, 0, len(stats.TopTags))
			for _, tc := range stats.TopTags {
				tags = append(tags, map[string]interface{}{"tag": tc.Tag, "count": tc.Count})
			}
			outputSuccess(map[string]interface{}{
				"snippets":    stats.SnippetCount,
				"unique_tags": stats.UniqueTags,
				"top_tags":    tags,
			}, nil)
			return nil
		}

		if stats.SnippetCount == 0 {
			fmt.Println(ui.Warning("No snippets yet!"))
			return nil
		}

		fmt.Println(ui.Header("Snippet Statistics"))
		fmt.Println()
		fmt.Printf("%s %s\n", ui.Muted.Render("Total snippets:"), ui.Accent.Render(fmt.Sprintf("%d", stats.SnippetCount)))
		fmt.Printf("%s %s\n", ui.Muted.Render("Unique tags:   "), ui.Accent.Render(fmt.Sprintf("%d", stats.UniqueTags)))
		fmt.Println()
		fmt.Println(ui.Bold.Render(fmt.Sprintf("Top %d tags:", len(stats.TopTags))))
		for _, tc := range stats.TopTags {
			fmt.Printf("  %s: %d\n", tc.Tag, tc.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
