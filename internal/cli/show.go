package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/browse"
	"github.com/jwhitaker/snip/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render one snippet in the terminal",
	Long: `Renders a snippet's metadata header and content as markdown.

Examples:
  snip show 12
  snip show 12 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openIndex()
		if err != nil {
			return handleError(ErrStore, err, "")
		}
		defer db.Close()

		s, err := getSnippet(db, args[0])
		if err != nil {
			return handleError(codeFor(err), err, "Run 'snip list' to see snippet IDs")
		}

		content, err := newStore().Read(s.FilePath)
		if err != nil {
			return handleError(codeFor(err), err, "")
		}

		if isJSONOutput() {
			item := toJSON(s)
			outputSuccess(map[string]interface{}{
				"snippet": item,
				"content": string(content),
			}, nil)
			return nil
		}

		detail := browse.ComposeDetail(s, string(content))
		display := ui.NewDisplayContext()
		if !display.IsTTY {
			fmt.Print(detail)
			return nil
		}

		rendered, err := ui.RenderMarkdown(detail, display.TermWidth)
		if err != nil {
			fmt.Print(detail)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
