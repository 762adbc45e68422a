// Package cli provides the command-line interface for the SphereOfTech dashboard.
package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sphereoftech/internal/action"
	"sphereoftech/internal/config"
	apperrors "sphereoftech/internal/errors"
	"sphereoftech/internal/logging"
	"sphereoftech/internal/models"
	"sphereoftech/internal/notify"
	"sphereoftech/internal/routes"
	"sphereoftech/internal/store"
	"sphereoftech/internal/theme"
	"sphereoftech/internal/views"
)

// Version information, set at build time with
// -ldflags "-X sphereoftech/internal/cli.Version=... -X sphereoftech/internal/cli.BuildDate=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	ConfigDir string
	Logger    zerolog.Logger
	Theme     theme.Theme
	Notifier  *notify.Notifier
	Store     store.SessionStore
	Scheduler action.Scheduler
	Clipboard views.Clipboard

	navOnce sync.Once
	nav     *views.Navigator
	toastMu sync.Mutex
	toastTo *Output
}

// NewApp wires the session store and notifier for cfg.
func NewApp(cfg *config.Config, configDir string, logger zerolog.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	sessionStore, err := store.NewSQLiteStore()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to initialize session store")
	}
	logger.Debug().Msg("session store initialized")

	n := notify.NewNotifier()
	n.SetEnabled(cfg.Notifications.Enabled)

	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
		Logger:    logger,
		Theme:     theme.For(cfg.UI.Theme),
		Notifier:  n,
		Store:     sessionStore,
		Scheduler: action.RealScheduler{},
		Clipboard: views.SystemClipboard{},
	}
	n.AddHandler(app.printToast)
	return app, nil
}

// Navigator returns the view navigator, creating it at the landing route.
func (a *App) Navigator() *views.Navigator {
	a.navOnce.Do(func() {
		env := &views.Env{
			Scheduler: a.Scheduler,
			Notifier:  a.Notifier,
			Store:     a.Store,
			Clipboard: a.Clipboard,
			Logger:    a.Logger,
		}
		a.nav = views.NewNavigator(env, a.Config, a.Config.UI.LandingRoute)
	})
	return a.nav
}

// Close releases the session store.
func (a *App) Close() error {
	if a.nav != nil {
		a.nav.CancelPending()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// bindToasts routes delivered toasts to out for the running command.
func (a *App) bindToasts(out *Output) {
	a.toastMu.Lock()
	defer a.toastMu.Unlock()
	a.toastTo = out
}

func (a *App) printToast(t notify.Toast) {
	a.toastMu.Lock()
	defer a.toastMu.Unlock()
	if a.toastTo != nil {
		a.toastTo.Toast(t)
	}
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sphere",
		Short: "SphereOfTech - AI-powered learning dashboard",
		Long: `SphereOfTech is a learning dashboard that pairs course progress with
market tracking, news summaries, study planning and AI risk alerts.

All data is demo data and every AI result is simulated.

Use 'sphere ui' for the interactive dashboard.
Use 'sphere routes' to list the navigable views.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			if mode, _ := cmd.Flags().GetString("theme"); mode != "" {
				m := models.ThemeMode(strings.ToLower(mode))
				if !m.Valid() {
					return apperrors.NewValidationError("theme", mode, "expected light or dark")
				}
				app.Theme = theme.For(m)
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), app.Logger.With().Str("command", cmd.Name()).Logger()))
			app.bindToasts(NewOutput(cmd, app))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/sphereoftech)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("theme", "", "override the theme for this run (light or dark)")

	addCoreCommands(rootCmd, app)
	addAuthCommands(rootCmd, app)
	addMarketCommands(rootCmd, app)
	addLearningCommands(rootCmd, app)
	addSettingsCommands(rootCmd, app)
	rootCmd.AddCommand(newUICmd(app))

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newRoutesCmd(app))
	rootCmd.AddCommand(newOpenCmd(app))
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			if output.IsJSON() {
				return output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			}
			output.Printf("SphereOfTech v%s\n", Version)
			output.Dim("Build date: %s", BuildDate)
			return nil
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and validate the application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			if output.IsJSON() {
				return output.JSON(map[string]string{"path": app.ConfigDir})
			}
			output.Println(app.ConfigDir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{"valid": true})
			}
			output.Success("✓ Configuration is valid")
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Profile")
	output.Printf("  Name:          %s\n", cfg.Profile.Name)
	output.Printf("  Email:         %s\n", cfg.Profile.Email)
	output.Println()

	output.Bold("Interface")
	output.Printf("  Theme:         %s\n", cfg.UI.Theme)
	output.Printf("  Color:         %v\n", cfg.UI.ColorEnabled)
	output.Printf("  Landing route: %s\n", cfg.UI.LandingRoute)
	output.Println()

	output.Bold("Preferences")
	output.Printf("  Notifications: %v\n", cfg.Notifications.Enabled)
	output.Printf("  Two-factor:    %v\n", cfg.Security.TwoFactor)
	output.Printf("  Language:      %s\n", cfg.Locale.Language)
	output.Printf("  Region:        %s\n", cfg.Locale.Region)
	output.Println()

	output.Bold("Integrations")
	output.Printf("  Notion:        %v\n", cfg.Integrations.Notion)
	output.Printf("  Slack:         %v\n", cfg.Integrations.Slack)
}

func newRoutesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the navigable views",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			if output.IsJSON() {
				return output.JSON(routes.All())
			}

			table := NewTable(output, "PATH", "VIEW", "TITLE", "SIDEBAR")
			for _, r := range routes.All() {
				sidebar := ""
				if i := routes.SidebarIndex(r.Path); i >= 0 && r.Chrome {
					sidebar = fmt.Sprintf("%d", i+1)
				}
				table.AddRow(r.Path, string(r.View), r.Title, sidebar)
			}
			table.Render()
			return nil
		},
	}
}

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Resolve a path to its view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			nav := app.Navigator()
			r := nav.Open(args[0])

			if output.IsJSON() {
				return output.JSON(r)
			}
			if r.View == routes.ViewNotFound {
				nf := nav.NotFound()
				output.Box("404", []string{nf.Message(), "Return to Home: " + nf.HomePath()})
				return nil
			}
			output.Success("%s → %s", r.Path, r.Title)
			return nil
		},
	}
}

// await waits for a pending simulated action with a spinner.
func await[P any](cmd *cobra.Command, output *Output, act *action.Action[P], message string) (P, error) {
	logger := logging.FromContext(cmd.Context())
	logger.Debug().Str("action", message).Msg("waiting")

	spinner := NewSpinner(output, message)
	spinner.Start()
	defer spinner.Stop()
	payload, err := act.Wait(cmd.Context())
	if err != nil {
		logger.Debug().Err(err).Str("action", message).Msg("wait ended early")
	}
	return payload, err
}

// openView moves the navigator to path and prints the view title.
func openView(app *App, output *Output, path string) *views.Navigator {
	nav := app.Navigator()
	r := nav.Open(path)
	if !output.IsJSON() {
		output.Bold("%s", r.Title)
		output.Println()
	}
	return nav
}

// marker returns the row prefix for the selected record.
func marker(selected bool) string {
	if selected {
		return "›"
	}
	return " "
}
