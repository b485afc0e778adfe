package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/bifrost/internal/buildinfo"
)

const defaultModulePath = "github.com/aidanlsb/bifrost"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show Bifrost version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := buildinfo.Version
		commit := buildinfo.Commit
		modulePath := defaultModulePath

		if info, ok := debug.ReadBuildInfo(); ok {
			if modPath := strings.TrimSpace(info.Main.Path); modPath != "" {
				modulePath = modPath
			}
			if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
				version = info.Main.Version
			}
			if commit == "" {
				for _, s := range info.Settings {
					if s.Key == "vcs.revision" {
						commit = s.Value
					}
				}
			}
		}
		if version == "" {
			version = "devel"
		}

		fmt.Printf("bifrost %s\n", version)
		fmt.Printf("module: %s\n", modulePath)
		if commit != "" {
			fmt.Printf("commit: %s\n", commit)
		}
		if buildinfo.Date != "" {
			fmt.Printf("built: %s\n", buildinfo.Date)
		}
		fmt.Printf("go: %s\n", runtime.Version())
		fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return nil
	},
}
