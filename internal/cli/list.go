package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/browse"
	"github.com/jwhitaker/snip/internal/index"
	"github.com/jwhitaker/snip/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all snippets",
	Long: `Prints every snippet, most recently modified first.

Examples:
  snip list
  snip list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openIndex()
		if err != nil {
			return handleError(ErrStore, err, "")
		}
		defer db.Close()

		results, err := db.Search("")
		if err != nil {
			return handleError(ErrStore, err, "")
		}
		return printFlatList(results)
	},
}

// snippetJSON is the scripting shape of one record.
type snippetJSON struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
	File        string   `json:"file"`
	Created     string   `json:"created"`
	Modified    string   `json:"modified"`
}

func toJSON(s index.Snippet) snippetJSON {
	return snippetJSON{
		ID:          s.ID,
		Title:       s.Title,
		Tags:        s.Tags,
		Description: s.Description,
		File:        s.FilePath,
		Created:     s.Created,
		Modified:    s.Modified,
	}
}

// printFlatList prints results in the non-interactive format, shared by
// `snip list` and non-TTY browse invocations.
func printFlatList(results []index.Snippet) error {
	if isJSONOutput() {
		items := make([]snippetJSON, 0, len(results))
		for _, s := range results {
			items = append(items, toJSON(s))
		}
		outputSuccess(map[string]interface{}{"items": items}, &Meta{Count: len(items)})
		return nil
	}

	if len(results) == 0 {
		fmt.Println(ui.Warning("No snippets found. Use 'snip add' to create one!"))
		return nil
	}

	fmt.Println(ui.Header(fmt.Sprintf("Found %d snippets:", len(results))))
	fmt.Println()
	for _, s := range results {
		fmt.Printf("%s %s %s\n",
			ui.Hint(fmt.Sprintf("%4d", s.ID)),
			ui.Bold.Render(s.Title),
			ui.Accent.Render(browse.ListTags(s)))
		if s.Description != "" {
			fmt.Printf("     %s\n", ui.Muted.Render(browse.TruncateDescription(s.Description)))
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
