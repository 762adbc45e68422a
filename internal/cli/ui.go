package cli

import (
	"github.com/spf13/cobra"

	"sphereoftech/internal/tui"
)

// newUICmd creates the command that starts the interactive dashboard.
func newUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui"},
		Short:   "Open the interactive dashboard",
		Long: `Open the full-screen dashboard.

Use tab or the digit keys to move between views and ? to list every key.
Setting changes are saved when the dashboard closes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The dashboard draws its own toasts.
			app.bindToasts(nil)

			nav := app.Navigator()
			if err := tui.Run(cmd.Context(), nav, app.Notifier, app.Theme); err != nil {
				return err
			}
			return saveSettings(app, nav.Settings())
		},
	}
}
