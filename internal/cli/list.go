package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/aidanlsb/bifrost/internal/jsondoc"
	"github.com/aidanlsb/bifrost/internal/marketplace"
	"github.com/aidanlsb/bifrost/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plugins in the current marketplace catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := marketplace.Path(repoFlag)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("no catalog at %s (run 'bifrost sync' first)", path)
			}
			return fmt.Errorf("read catalog: %w", err)
		}

		entries, err := jsondoc.Get(data, "plugins")
		if err != nil {
			return fmt.Errorf("catalog %s: %w", path, err)
		}

		count := 0
		entries.ForEach(func(_, entry gjson.Result) bool {
			count++
			name := entry.Get("name").String()
			cat := entry.Get("category").String()
			desc := entry.Get("description").String()
			fmt.Printf("%s %s\n", ui.Accent.Render(name), ui.Muted.Render("["+cat+"]"))
			if verboseFlag {
				fmt.Printf("  %s\n", desc)
				fmt.Printf("  keywords: %d, source: %s\n",
					len(entry.Get("keywords").Array()), entry.Get("source").String())
			}
			return true
		})

		fmt.Println()
		fmt.Println(ui.Success(fmt.Sprintf("%d plugins in catalog", count)))
		return nil
	},
}
