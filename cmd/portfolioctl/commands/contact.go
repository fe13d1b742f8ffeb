package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zaqqye/portfolio_backend/internal/ui"
)

func contactCmd() *cobra.Command {
	var name, email, message string
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := ui.NewContactForm(api)
			form.SetFields(name, email, message)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.StatusSendingText)
			status := form.Submit(cmd.Context())
			fmt.Fprintln(out, form.StatusText())
			if status == ui.FormError {
				return fmt.Errorf("contact submission failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "your email address")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	return cmd
}
