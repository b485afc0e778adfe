package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/bifrost/internal/skilldoc"
	"github.com/aidanlsb/bifrost/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <plugin>",
	Short: "Render a plugin's skill document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		path := filepath.Join(repoFlag, cfg.PluginsDir, name, "skills", name, skilldoc.Filename)

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("plugin %q has no skill document at %s", name, path)
			}
			return fmt.Errorf("read skill document: %w", err)
		}

		if !ui.IsTTY() {
			fmt.Print(string(data))
			return nil
		}

		rendered, err := ui.RenderMarkdown(string(data), ui.TermWidth())
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		fmt.Print(rendered)
		return nil
	},
}
