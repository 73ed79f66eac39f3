package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/store"
	"github.com/jwhitaker/snip/internal/ui"
)

const importPreviewBytes = 300

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import an existing markdown file as a snippet",
	Long: `Copies a markdown file into the snippets directory and prompts for
metadata. The title defaults to the filename.

Examples:
  snip import ~/notes/git-rebase.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]

		if filepath.Ext(src) != store.Extension {
			return handleErrorMsg(ErrValidation, "only markdown (.md) files can be imported", "")
		}

		content, err := os.ReadFile(src)
		if err != nil {
			if os.IsNotExist(err) {
				return handleErrorMsg(ErrNotFound, fmt.Sprintf("file not found: %s", src), "")
			}
			return handleError(ErrFileRead, err, "")
		}

		name := filepath.Base(src)
		stem := strings.TrimSuffix(name, store.Extension)

		fmt.Println(ui.Header("Importing: " + name))
		fmt.Println()
		printPreview(string(content))
		fmt.Println()

		title, err := prompt("Title", stem)
		if err != nil {
			return err
		}

		tagsInput, err := prompt("Tags (comma-separated)", "")
		if err != nil {
			return err
		}
		tags := parseTags(tagsInput)
		if len(tags) == 0 {
			return handleErrorMsg(ErrValidation, "at least one tag is required", "")
		}

		description, err := prompt("Description", "")
		if err != nil {
			return err
		}

		dst, err := newStore().ImportFile(src)
		if err != nil {
			return handleError(codeFor(err), err, "")
		}

		db, err := openIndex()
		if err != nil {
			return handleError(ErrStore, err, "")
		}
		defer db.Close()

		id, err := db.Insert(title, tags, description, dst)
		if err != nil {
			// Keep the record set and file area consistent on failure.
			_ = os.Remove(dst)
			return handleError(codeFor(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"id":   id,
				"file": dst,
			}, nil)
			return nil
		}

		fmt.Println()
		fmt.Println(ui.Successf("Imported '%s'", ui.Bold.Render(title)))
		fmt.Println(ui.Hint(fmt.Sprintf("ID: %d | File: %s", id, dst)))
		return nil
	},
}

// previewText cuts content for the import preview, backing up to a rune
// boundary so a multibyte character is never split.
func previewText(content string) string {
	if len(content) <= importPreviewBytes {
		return content
	}
	cut := importPreviewBytes
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "..."
}

// printPreview shows the first few hundred bytes of the file being
// imported, dimmed.
func printPreview(content string) {
	fmt.Println(ui.Hint("Preview:"))
	for _, line := range strings.Split(strings.TrimRight(previewText(content), "\n"), "\n") {
		fmt.Println(ui.Muted.Render("  " + line))
	}
}

func init() {
	rootCmd.AddCommand(importCmd)
}
