// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwhitaker/snip/internal/browse"
	"github.com/jwhitaker/snip/internal/config"
	"github.com/jwhitaker/snip/internal/editor"
	"github.com/jwhitaker/snip/internal/index"
	"github.com/jwhitaker/snip/internal/paths"
	"github.com/jwhitaker/snip/internal/store"
	"github.com/jwhitaker/snip/internal/ui"
)

var (
	// Global flags
	dirFlag        string
	configPathFlag string

	// Resolved values
	cfg    *config.Config
	layout paths.Layout
)

// rootCmd represents the base command. It is runnable so that bare
// invocations and unrecognized first tokens open the browse session with
// the arguments joined as the initial query.
var rootCmd = &cobra.Command{
	Use:   "snip [search terms...]",
	Short: "snip - a fast terminal snippet manager",
	Long: `snip stores short code examples and cheat sheets as markdown files
with searchable metadata.

Examples:
  snip                  Open the interactive browser
  snip python files     Browse snippets matching 'python' and 'files'
  snip add              Add a new snippet`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if strings.TrimSpace(configPathFlag) != "" {
			cfg, err = config.LoadFrom(configPathFlag)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		layout, err = paths.Resolve(dirFlag, cfg.SnippetsDir)
		if err != nil {
			return err
		}
		return layout.Ensure()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(strings.Join(args, " "))
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Snippets directory (default ~/.snippets)")
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// getLayout returns the resolved snippet home layout.
func getLayout() paths.Layout {
	return layout
}

// openIndex opens the record store for the resolved layout.
func openIndex() (*index.Database, error) {
	return index.Open(layout.Database)
}

// newStore returns the content store for the resolved layout.
func newStore() *store.Store {
	return store.New(layout.FilesDir)
}

// newEditor returns the editor bridge for the configured editor.
func newEditor() *editor.Bridge {
	return editor.New(cfg.GetEditor())
}

// runBrowse starts the interactive session, falling back to the flat list
// when stdout is not a terminal.
func runBrowse(initialQuery string) error {
	db, err := openIndex()
	if err != nil {
		return handleError(ErrStore, err, "")
	}
	defer db.Close()

	session, err := browse.NewSession(db, newStore(), newEditor(), initialQuery)
	if err != nil {
		return handleError(ErrStore, err, "")
	}

	display := ui.NewDisplayContext()
	if !display.IsTTY || isJSONOutput() {
		return printFlatList(session.Results())
	}

	return browse.NewTUI(session, display).Run()
}
