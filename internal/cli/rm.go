package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/store"
	"github.com/jwhitaker/snip/internal/ui"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a snippet",
	Long: `Deletes a snippet's record and its content file. Prompts for
confirmation unless --force is given.

Examples:
  snip rm 12
  snip rm 12 --force`,
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

		if !rmForce && !isJSONOutput() {
			if !confirmDeletion(fmt.Sprintf("Delete '%s'?", s.Title)) {
				fmt.Println(ui.Hint("Cancelled"))
				return nil
			}
		}

		if err := db.Delete(s.ID); err != nil {
			return handleError(codeFor(err), err, "")
		}

		// The record is gone; a missing file at this point is fine.
		if err := newStore().Delete(s.FilePath); err != nil && !errors.Is(err, store.ErrNotFound) {
			return handleError(ErrFileWrite, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"deleted": s.ID}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Deleted snippet %d ('%s')", s.ID, s.Title))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}
