// Package commands implements the portfolioctl CLI: a terminal front end for the
// portfolio API that keeps its own theme preference.
package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zaqqye/portfolio_backend/internal/client"
)

var (
	home   string
	apiURL string
	token  string

	api *client.HTTPClient
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolioctl",
		Short:        "Browse and manage the portfolio site from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".portfolio")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if token == "" {
				token = os.Getenv("PORTFOLIO_TOKEN")
			}
			api = client.NewHTTP(apiURL)
			api.Token = token
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.portfolio)")
	root.PersistentFlags().StringVar(&apiURL, "api", "http://127.0.0.1:5000", "API base URL")
	root.PersistentFlags().StringVar(&token, "token", "", "admin bearer token (or PORTFOLIO_TOKEN)")

	root.AddCommand(projectsCmd(), skillsCmd(), contactCmd(), themeCmd(), loginCmd(), navCmd())
	return root
}
