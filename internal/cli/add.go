package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/editor"
	"github.com/jwhitaker/snip/internal/index"
	"github.com/jwhitaker/snip/internal/store"
	"github.com/jwhitaker/snip/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new snippet interactively",
	Long: `Prompts for title, tags, and description, then opens your editor on a
pre-filled template. The snippet is only recorded when you actually add
content: leaving the template (roughly) unchanged cancels the operation
and removes the file.

The editor is determined by (in order):
  1. The 'editor' setting in ~/.config/snip/config.toml
  2. The $EDITOR environment variable
  3. The $VISUAL environment variable
  4. vim`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.Header("Add New Snippet"))
		fmt.Println()

		title, err := prompt("Title", "")
		if err != nil {
			return err
		}
		if title == "" {
			return handleErrorMsg(ErrValidation, "title cannot be empty", "")
		}

		tagsInput, err := prompt("Tags (comma-separated, e.g. 'python,files,io')", "")
		if err != nil {
			return err
		}
		tags := parseTags(tagsInput)
		if len(tags) == 0 {
			return handleErrorMsg(ErrValidation, "at least one tag is required", "")
		}

		description, err := prompt("Description (short summary)", "")
		if err != nil {
			return err
		}

		db, err := openIndex()
		if err != nil {
			return handleError(ErrStore, err, "")
		}
		defer db.Close()

		fmt.Println()
		fmt.Printf("Opening %s to write your snippet...\n", ui.Accent.Render(getConfig().GetEditor()))
		fmt.Println(ui.Hint("Write your code examples, notes, and explanations. Save and close when done."))
		fmt.Println()

		id, path, created, err := runAddFlow(db, newStore(), newEditor(), title, tags, description)
		if err != nil {
			return handleError(codeFor(err), err, "Set 'editor' in config.toml or $EDITOR")
		}
		if !created {
			fmt.Println(ui.Warning("Snippet creation cancelled (no content added)"))
			return nil
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"id":   id,
				"file": path,
			}, nil)
			return nil
		}

		fmt.Println()
		fmt.Println(ui.Successf("Snippet '%s' created", ui.Bold.Render(title)))
		fmt.Println(ui.Hint(fmt.Sprintf("ID: %d | File: %s", id, path)))
		return nil
	},
}

// snippetOpener is the slice of the editor bridge the add flow needs.
type snippetOpener interface {
	Edit(path, template string) error
}

// runAddFlow reserves a content file, hands it to the editor seeded with
// the snippet template, and records the snippet only when the user added
// real content. A cancelled or failed edit leaves no file behind; created
// reports whether a record was inserted.
func runAddFlow(db *index.Database, files *store.Store, ed snippetOpener, title string, tags []string, description string) (int64, string, bool, error) {
	path := files.CreateFile(title)
	template := snippetTemplate(title, description)

	if err := ed.Edit(path, template); err != nil {
		_ = os.Remove(path)
		return 0, path, false, err
	}

	content, err := files.Read(path)
	if err != nil || !editor.ContentAdded(string(content), template) {
		_ = os.Remove(path)
		return 0, path, false, nil
	}

	id, err := db.Insert(title, tags, description, path)
	if err != nil {
		_ = os.Remove(path)
		return 0, path, false, err
	}
	return id, path, true, nil
}

// snippetTemplate is the starting content for a new snippet file.
func snippetTemplate(title, description string) string {
	return fmt.Sprintf(`# %s

%s

## Example

`+"```"+`
// Write your code examples here
// You can use multiple code blocks, add notes, explanations, etc.
`+"```"+`

## Notes

- Add any important points, gotchas, or reminders here
`, title, description)
}

func init() {
	rootCmd.AddCommand(addCmd)
}
