package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevenpixels/datawalk/pkg/convert/math"
	"github.com/sevenpixels/datawalk/pkg/walk"
)

// listCommand creates the list command showing sources, converter keys
// and mapping presets.
func (c *CLI) listCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sources, converter keys and digit mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := loadManifest(manifestPath)
			if err != nil {
				return fmt.Errorf("load manifest: %w", err)
			}

			fmt.Println(StyleTitle.Render("Sources"))
			for _, src := range manifest.Sources {
				label := src.Name
				if src.Subcategory != "" {
					label += " " + StyleDim.Render("("+src.Category+"/"+src.Subcategory+")")
				}
				printKeyValue(src.ID, label)
			}

			printNewline()
			fmt.Println(StyleTitle.Render("Generated converter keys"))
			for _, key := range math.Keys() {
				printDetail("%s", key)
			}

			printNewline()
			fmt.Println(StyleTitle.Render("Mappings"))
			seen := make(map[string]bool)
			names := walk.Names()
			for _, name := range names {
				seen[name] = true
			}
			for name := range manifest.Mappings {
				if !seen[name] {
					names = append(names, name)
				}
			}
			sort.Strings(names)
			printDetail("%s", strings.Join(names, ", "))

			printNewline()
			printNextStep("Walk a source", "datawalk walk pi")

			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "source manifest (YAML); built-in math sources if unset")

	return cmd
}
