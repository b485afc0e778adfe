package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/bifrost/internal/marketplace"
	"github.com/aidanlsb/bifrost/internal/pipeline"
)

var (
	syncDryRun    bool
	syncCheckDeps bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize plugin manifests and the marketplace catalog",
	Long: `Runs the full metadata pipeline over every plugin directory:
extract front-matter, categorize, synthesize keywords, write plugin.json
manifests, and regenerate marketplace.json.

Per-plugin failures are skipped and counted; the run only fails when the
final catalog document does not validate.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Syncing marketplace: %s\n\n", repoFlag)

		_, err := pipeline.Run(cmd.Context(), pipeline.Options{
			Root:      repoFlag,
			Config:    cfg,
			DryRun:    syncDryRun,
			Verbose:   verboseFlag,
			CheckDeps: syncCheckDeps,
			Out:       os.Stdout,
		})
		if err != nil {
			if errors.Is(err, marketplace.ErrAggregateInvalid) {
				return err
			}
			return fmt.Errorf("sync failed: %w", err)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "print intended changes without writing")
	syncCmd.Flags().BoolVar(&syncCheckDeps, "check-deps", false, "look up declared dependencies against the package registry")
}
