package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/ui"
)

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Show the snippets directory paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := getLayout()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"root":     l.Root,
				"files":    l.FilesDir,
				"database": l.Database,
			}, nil)
			return nil
		}

		fmt.Printf("%s %s\n", ui.Muted.Render("Snippets directory:"), ui.FilePath(l.Root))
		fmt.Printf("%s %s\n", ui.Muted.Render("Files directory:   "), ui.FilePath(l.FilesDir))
		fmt.Printf("%s %s\n", ui.Muted.Render("Database:          "), ui.FilePath(l.Database))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dirCmd)
}
