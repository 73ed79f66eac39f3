package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/index"
	"github.com/jwhitaker/snip/internal/ui"
)

var (
	setTitle string
	setTags  string
	setDesc  string
)

var setCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update snippet metadata",
	Long: `Updates the title, tags, or description of a snippet. Only the supplied
fields change; the modified timestamp is bumped.

Examples:
  snip set 12 --title "Git rebase onto"
  snip set 12 --tags git,rebase
  snip set 12 --desc "Replaying commits onto a new base"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fields index.Fields
		if cmd.Flags().Changed("title") {
			fields.Title = &setTitle
		}
		if cmd.Flags().Changed("tags") {
			fields.Tags = parseTags(setTags)
		}
		if cmd.Flags().Changed("desc") {
			fields.Description = &setDesc
		}
		if fields.Empty() {
			return handleErrorMsg(ErrMissingArgument, "nothing to update",
				"Pass at least one of --title, --tags, --desc")
		}

		id, err := parseID(args[0])
		if err != nil {
			return handleErrorMsg(ErrInvalidInput, err.Error(), "")
		}

		db, err := openIndex()
		if err != nil {
			return handleError(ErrStore, err, "")
		}
		defer db.Close()

		if err := db.Update(id, fields); err != nil {
			return handleError(codeFor(err), err, "Run 'snip list' to see snippet IDs")
		}

		if isJSONOutput() {
			s, err := db.Get(id)
			if err != nil {
				return handleError(codeFor(err), err, "")
			}
			outputSuccess(map[string]interface{}{"snippet": toJSON(s)}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Updated snippet %d", id))
		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&setTitle, "title", "", "New title")
	setCmd.Flags().StringVar(&setTags, "tags", "", "New comma-separated tags (replaces existing)")
	setCmd.Flags().StringVar(&setDesc, "desc", "", "New description")
	rootCmd.AddCommand(setCmd)
}
