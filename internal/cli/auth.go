package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"sphereoftech/internal/action"
	"sphereoftech/internal/theme"
	"sphereoftech/internal/views"
)

// addAuthCommands adds the sign-in and sign-up commands.
func addAuthCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newLoginCmd(app))
	rootCmd.AddCommand(newSignupCmd(app))
}

func newLoginCmd(app *App) *cobra.Command {
	var (
		demo  bool
		creds views.Credentials
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to SphereOfTech",
		Long: `Sign in with any non-blank email and password.

Without flags an interactive form is shown when stdin is a terminal.`,
		Example: `  sphere login --demo
  sphere login --email alex@sphereoftech.com --password demo123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			v := openView(app, output, "/login").Login()

			switch {
			case demo:
				v.FillDemo()
			case creds.Email == "" && creds.Password == "" && stdinIsTerminal():
				if err := runCredentialsForm(app.Theme, &creds, false); err != nil {
					return err
				}
				v.SetCredentials(creds)
			default:
				v.SetCredentials(creds)
			}

			return submitAuth(cmd, output, app, v.Submit, v.Action(), "Signing in...")
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "use the demo account")
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")

	return cmd
}

func newSignupCmd(app *App) *cobra.Command {
	var creds views.Credentials

	cmd := &cobra.Command{
		Use:     "signup",
		Short:   "Create a SphereOfTech account",
		Example: `  sphere signup --name "Sam Lee" --email sam@example.com --password secret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			v := openView(app, output, "/signup").Signup()

			if creds.Name == "" && creds.Email == "" && creds.Password == "" && stdinIsTerminal() {
				if err := runCredentialsForm(app.Theme, &creds, true); err != nil {
					return err
				}
			}
			v.SetCredentials(creds)

			return submitAuth(cmd, output, app, v.Submit, v.Action(), "Creating your account...")
		},
	}

	cmd.Flags().StringVar(&creds.Name, "name", "", "full name")
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")

	return cmd
}

// submitAuth submits the form, waits for the simulated sign-in and reports
// the recorded session.
func submitAuth(cmd *cobra.Command, output *Output, app *App, submit func(ctx context.Context) error, act *action.Action[string], message string) error {
	if err := submit(cmd.Context()); err != nil {
		return err
	}
	if _, err := await(cmd, output, act, message); err != nil {
		return err
	}

	session, err := app.Store.CurrentSession(cmd.Context())
	if err != nil {
		return err
	}
	if output.IsJSON() {
		return output.JSON(map[string]interface{}{
			"session": session,
			"route":   app.Navigator().Current(),
		})
	}
	output.Dim("Signed in as %s · now at %s", session.Email, app.Navigator().Current().Title)
	return nil
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// runCredentialsForm asks for the credentials with a huh form.
func runCredentialsForm(t theme.Theme, creds *views.Credentials, withName bool) error {
	var fields []huh.Field
	if withName {
		fields = append(fields, huh.NewInput().
			Title("Full name").
			Placeholder("Alex Johnson").
			Value(&creds.Name))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Email").
			Placeholder(views.DemoEmail).
			Value(&creds.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password),
	)

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(formTheme(t))
	return form.Run()
}

func formTheme(t theme.Theme) *huh.Theme {
	if t.IsDark() {
		return huh.ThemeDracula()
	}
	return huh.ThemeCharm()
}
