package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zaqqye/portfolio_backend/internal/ui"
)

// navCmd jumps to a page section the way the mobile menu does. Sections with a
// listing (skills, projects) print it after the section name.
func navCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nav [section]",
		Short: "Jump to a section (" + strings.Join(ui.Sections, ", ") + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, s := range ui.Sections {
					fmt.Fprintln(out, s)
				}
				return nil
			}

			menu := ui.NewMobileMenu(nil)
			menu.Open()
			section := menu.Navigate(strings.ToLower(strings.TrimSpace(args[0])))
			fmt.Fprintln(out, section)

			var listing *cobra.Command
			switch section {
			case "projects":
				listing = projectsCmd()
			case "skills":
				listing = skillsCmd()
			default:
				return nil
			}
			listing.SetOut(out)
			listing.SetContext(cmd.Context())
			return listing.RunE(listing, nil)
		},
	}
}
