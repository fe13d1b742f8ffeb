package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zaqqye/portfolio_backend/internal/prefs"
	"github.com/zaqqye/portfolio_backend/internal/ui"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [show|toggle]",
		Short:     "Show or toggle the saved light/dark theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"show", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := prefs.Open(filepath.Join(home, "prefs.db"))
			if err != nil {
				return err
			}
			defer store.Close()

			theme, err := ui.LoadTheme(store)
			if err != nil {
				return err
			}
			current := theme.Current()
			if len(args) == 1 && args[0] == "toggle" {
				if current, err = theme.Toggle(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), current)
			return nil
		},
	}
	return cmd
}
