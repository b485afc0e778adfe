// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/bifrost/internal/config"
)

var (
	// Global flags
	repoFlag    string
	configFlag  string
	verboseFlag bool

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bifrost",
	Short: "Bifrost - plugin marketplace metadata pipeline",
	Long: `Bifrost keeps a plugin marketplace catalog in sync with its source tree.

It extracts metadata from each plugin's skill document, assigns a category,
synthesizes search keywords, writes per-plugin manifests, and aggregates
everything into a single marketplace catalog.

Named for the bridge between realms: it carries plugin metadata from
authored documents to the published catalog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}

		var err error
		cfg, err = config.Load(repoFlag, configFlag)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", ".", "marketplace repository root")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path (default <repo>/"+config.DefaultFilename+")")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "verbose output")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}
