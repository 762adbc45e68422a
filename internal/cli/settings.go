package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sphereoftech/internal/config"
	"sphereoftech/internal/theme"
	"sphereoftech/internal/views"
)

// addSettingsCommands adds the settings view commands.
func addSettingsCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change user settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			v := openView(app, output, "/settings").Settings()
			return showSettings(output, v)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting and save it",
		Example: `  sphere settings set locale.language Spanish
  sphere settings set notifications.enabled false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			v := openView(app, output, "/settings").Settings()
			if err := v.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := saveSettings(app, v); err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]interface{}{args[0]: v.Values()[args[0]]})
			}
			output.Success("✓ %s = %v", args[0], v.Values()[args[0]])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "theme",
		Short: "Toggle between light and dark theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			v := openView(app, output, "/settings").Settings()
			mode := v.ToggleTheme()
			app.Theme = theme.For(mode)
			if err := saveSettings(app, v); err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]string{"theme": string(mode)})
			}
			output = NewOutput(cmd, app)
			output.Success("✓ Theme set to %s", mode)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "integration <notion|slack>",
		Short:     "Connect or disconnect an integration",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"notion", "slack"},
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			v := openView(app, output, "/settings").Settings()
			connected, err := v.ToggleIntegration(args[0])
			if err != nil {
				return err
			}
			if err := saveSettings(app, v); err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{args[0]: connected})
			}
			if connected {
				output.Success("✓ %s connected", args[0])
			} else {
				output.Info("%s disconnected", args[0])
			}
			return nil
		},
	})

	rootCmd.AddCommand(cmd)
}

func showSettings(output *Output, v *views.Settings) error {
	values := v.Values()
	if output.IsJSON() {
		return output.JSON(values)
	}
	table := NewTable(output, "SETTING", "VALUE")
	for _, key := range v.Keys() {
		table.AddRow(key, fmt.Sprintf("%v", values[key]))
	}
	table.Render()
	return nil
}

// saveSettings writes the edited configuration when it changed.
func saveSettings(app *App, v *views.Settings) error {
	if !v.Dirty() {
		return nil
	}
	if err := config.Save(app.ConfigDir, v.Config()); err != nil {
		app.Notifier.Error("Could not save settings")
		return err
	}
	app.Notifier.Success("Settings saved")
	return nil
}
