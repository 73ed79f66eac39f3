package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Open a snippet in your editor",
	Long: `Opens a snippet's content file in your configured editor and waits for
it to exit. Only the file changes; metadata is untouched (use 'snip set'
for that).

Examples:
  snip edit 12`,
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

		if err := newEditor().Edit(s.FilePath, ""); err != nil {
			return handleError(codeFor(err), err, "Set 'editor' in config.toml or $EDITOR")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"file": s.FilePath}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Edited %s", ui.FilePath(s.FilePath)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
