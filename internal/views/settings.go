package views

import (
	"github.com/rs/zerolog"

	"sphereoftech/internal/config"
	"sphereoftech/internal/logging"
	"sphereoftech/internal/models"
)

// Settings is the settings view. It edits the loaded configuration; saving is
// left to the caller.
type Settings struct {
	env    *Env
	logger zerolog.Logger
	cfg    *config.Config
	dirty  bool
}

// NewSettings creates the view over cfg.
func NewSettings(env *Env, cfg *config.Config) *Settings {
	return &Settings{
		env:    env,
		logger: logging.WithView(env.Logger, "settings"),
		cfg:    cfg,
	}
}

// Config returns the edited configuration.
func (v *Settings) Config() *config.Config {
	return v.cfg
}

// Values returns the settings keyed by dotted path.
func (v *Settings) Values() map[string]interface{} {
	return v.cfg.Settings()
}

// Keys returns the setting keys in display order.
func (v *Settings) Keys() []string {
	return v.cfg.SettingKeys()
}

// Set changes one setting. Rejected values raise an error toast.
func (v *Settings) Set(key, value string) error {
	if err := v.cfg.Set(key, value); err != nil {
		v.env.notifier().Error("%v", err)
		return err
	}
	if key == "notifications.enabled" {
		v.env.notifier().SetEnabled(v.cfg.Notifications.Enabled)
	}
	v.dirty = true
	v.logger.Debug().Str("key", key).Str("value", logging.MaskValue(key, value)).Msg("setting changed")
	return nil
}

// Theme returns the selected theme mode.
func (v *Settings) Theme() models.ThemeMode {
	return v.cfg.UI.Theme
}

// ToggleTheme flips the theme and returns the new mode.
func (v *Settings) ToggleTheme() models.ThemeMode {
	v.dirty = true
	return v.cfg.ToggleTheme()
}

// ToggleIntegration flips the Notion or Slack connection.
func (v *Settings) ToggleIntegration(name string) (bool, error) {
	key := "integrations." + name
	current, ok := v.cfg.Settings()[key].(bool)
	if !ok {
		return false, v.Set(key, "")
	}
	next := !current
	if err := v.Set(key, boolString(next)); err != nil {
		return current, err
	}
	return next, nil
}

// Dirty reports whether anything changed since the view was created.
func (v *Settings) Dirty() bool {
	return v.dirty
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
