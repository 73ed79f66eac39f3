package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jwhitaker/snip/internal/atomicfile"
	"github.com/jwhitaker/snip/internal/ui"
)

var exportOutput string

// exportRecord is the YAML shape of one exported snippet.
type exportRecord struct {
	ID          int64    `yaml:"id"`
	Title       string   `yaml:"title"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description,omitempty"`
	File        string   `yaml:"file"`
	Created     string   `yaml:"created"`
	Modified    string   `yaml:"modified"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all snippet metadata as YAML",
	Long: `Dumps every record as a YAML document, for backups or migration. The
content files themselves stay where they are; the export references them
by path.

Examples:
  snip export
  snip export -o snippets.yaml`,
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

		records := make([]exportRecord, 0, len(results))
		for _, s := range results {
			records = append(records, exportRecord{
				ID:          s.ID,
				Title:       s.Title,
				Tags:        s.Tags,
				Description: s.Description,
				File:        s.FilePath,
				Created:     s.Created,
				Modified:    s.Modified,
			})
		}

		data, err := yaml.Marshal(records)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if exportOutput == "" {
			_, err := os.Stdout.Write(data)
			return err
		}

		if err := atomicfile.WriteFile(exportOutput, data, 0o644); err != nil {
			return handleError(ErrFileWrite, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"file": exportOutput}, &Meta{Count: len(records)})
			return nil
		}
		fmt.Println(ui.Successf("Exported %d snippets to %s", len(records), ui.FilePath(exportOutput)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
