package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/markdown"
)

var codeCmd = &cobra.Command{
	Use:   "code <id> [n]",
	Short: "Print a snippet's code block",
	Long: `Prints the nth code block of a snippet (first by default), without the
surrounding prose. Handy for piping into a shell or clipboard tool:

  snip code 12 | pbcopy
  snip code 12 2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 2 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil || parsed < 1 {
				return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("invalid block number %q", args[1]), "")
			}
			n = parsed
		}

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

		blocks := markdown.ExtractCodeBlocks(string(content))
		if len(blocks) < n {
			return handleErrorMsg(ErrNotFound,
				fmt.Sprintf("snippet %d has %d code blocks, wanted block %d", s.ID, len(blocks), n), "")
		}
		block := blocks[n-1]

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"language": block.Language,
				"code":     block.Code,
			}, &Meta{Count: len(blocks)})
			return nil
		}

		fmt.Print(block.Code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(codeCmd)
}
