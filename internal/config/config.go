// Package config provides configuration management for the dashboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	apperrors "sphereoftech/internal/errors"
	"sphereoftech/internal/models"
)

// Languages lists the selectable interface languages.
var Languages = []string{"English", "Spanish", "French", "German", "Chinese"}

// Regions lists the selectable regions.
var Regions = []string{"United States", "Canada", "United Kingdom", "India", "Australia"}

// Config holds all application configuration.
type Config struct {
	Profile       ProfileConfig      `mapstructure:"profile" json:"profile"`
	UI            UIConfig           `mapstructure:"ui" json:"ui"`
	Notifications NotificationConfig `mapstructure:"notifications" json:"notifications"`
	Security      SecurityConfig     `mapstructure:"security" json:"security"`
	Locale        LocaleConfig       `mapstructure:"locale" json:"locale"`
	Integrations  IntegrationConfig  `mapstructure:"integrations" json:"integrations"`
	Logging       LoggingConfig      `mapstructure:"logging" json:"logging"`
}

// ProfileConfig holds the account profile.
type ProfileConfig struct {
	Name  string `mapstructure:"name" json:"name"`
	Email string `mapstructure:"email" json:"email"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	Theme        models.ThemeMode `mapstructure:"theme" json:"theme"`
	ColorEnabled bool             `mapstructure:"color_enabled" json:"color_enabled"`
	LandingRoute string           `mapstructure:"landing_route" json:"landing_route"`
}

// NotificationConfig holds notification configuration.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
}

// SecurityConfig holds security-related configuration.
type SecurityConfig struct {
	TwoFactor bool `mapstructure:"two_factor" json:"two_factor"`
}

// LocaleConfig holds language and region.
type LocaleConfig struct {
	Language string `mapstructure:"language" json:"language"`
	Region   string `mapstructure:"region" json:"region"`
}

// IntegrationConfig holds the third-party integration toggles.
type IntegrationConfig struct {
	Notion bool `mapstructure:"notion" json:"notion"`
	Slack  bool `mapstructure:"slack" json:"slack"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level" json:"level"`
	File  bool   `mapstructure:"file" json:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/sphereoftech"
	}
	return filepath.Join(home, ".config", "sphereoftech")
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Profile:       ProfileConfig{Name: "Alex Johnson", Email: "alex.johnson@email.com"},
		UI:            UIConfig{Theme: models.ThemeLight, ColorEnabled: true, LandingRoute: "/dashboard"},
		Notifications: NotificationConfig{Enabled: true},
		Locale:        LocaleConfig{Language: "English", Region: "United States"},
		Logging:       LoggingConfig{Level: "warn", File: true},
	}
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing file is
// replaced by the commented template.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}
	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, apperrors.Wrapf(err, "loading config.toml from %s", configDir)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "validating config")
	}

	return cfg, nil
}

func newViper(configDir, name string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	for key, value := range Default().Settings() {
		v.SetDefault(key, value)
	}
	return v
}

func loadConfigFile(configDir, name string, target *Config) error {
	v := newViper(configDir, name)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		if _, err := createTemplateConfig(configDir, name); err != nil {
			return err
		}
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	return v.Unmarshal(target)
}

// Save writes the configuration to config.toml in configDir.
func Save(configDir string, cfg *Config) error {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	for key, value := range cfg.Settings() {
		v.Set(key, value)
	}
	return v.WriteConfigAs(filepath.Join(configDir, "config.toml"))
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SPHERE_THEME"); v != "" {
		cfg.UI.Theme = models.ThemeMode(strings.ToLower(v))
	}
	if v := os.Getenv("SPHERE_EMAIL"); v != "" {
		cfg.Profile.Email = v
	}
	if v := os.Getenv("SPHERE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !c.UI.Theme.Valid() {
		return fmt.Errorf("%w: theme must be 'light' or 'dark', got %q", apperrors.ErrConfigInvalid, c.UI.Theme)
	}
	if c.Profile.Email != "" && !strings.Contains(c.Profile.Email, "@") {
		return fmt.Errorf("%w: invalid email %q", apperrors.ErrConfigInvalid, c.Profile.Email)
	}
	if !contains(Languages, c.Locale.Language) {
		return fmt.Errorf("%w: unsupported language %q", apperrors.ErrConfigInvalid, c.Locale.Language)
	}
	if !contains(Regions, c.Locale.Region) {
		return fmt.Errorf("%w: unsupported region %q", apperrors.ErrConfigInvalid, c.Locale.Region)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: invalid log level %q", apperrors.ErrConfigInvalid, c.Logging.Level)
	}
	return nil
}

// Settings returns every user-editable setting keyed by its dotted path.
func (c *Config) Settings() map[string]interface{} {
	return map[string]interface{}{
		"profile.name":          c.Profile.Name,
		"profile.email":         c.Profile.Email,
		"ui.theme":              string(c.UI.Theme),
		"ui.color_enabled":      c.UI.ColorEnabled,
		"ui.landing_route":      c.UI.LandingRoute,
		"notifications.enabled": c.Notifications.Enabled,
		"security.two_factor":   c.Security.TwoFactor,
		"locale.language":       c.Locale.Language,
		"locale.region":         c.Locale.Region,
		"integrations.notion":   c.Integrations.Notion,
		"integrations.slack":    c.Integrations.Slack,
		"logging.level":         c.Logging.Level,
		"logging.file":          c.Logging.File,
	}
}

// SettingKeys returns the setting keys in sorted order.
func (c *Config) SettingKeys() []string {
	settings := c.Settings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set updates one setting from its string form and validates the result.
// The configuration is left unchanged when the new value is rejected.
func (c *Config) Set(key, value string) error {
	next := *c
	var err error

	switch key {
	case "profile.name":
		next.Profile.Name = value
	case "profile.email":
		next.Profile.Email = value
	case "ui.theme":
		next.UI.Theme = models.ThemeMode(strings.ToLower(value))
	case "ui.color_enabled":
		next.UI.ColorEnabled, err = strconv.ParseBool(value)
	case "ui.landing_route":
		next.UI.LandingRoute = value
	case "notifications.enabled":
		next.Notifications.Enabled, err = strconv.ParseBool(value)
	case "security.two_factor":
		next.Security.TwoFactor, err = strconv.ParseBool(value)
	case "locale.language":
		next.Locale.Language = value
	case "locale.region":
		next.Locale.Region = value
	case "integrations.notion":
		next.Integrations.Notion, err = strconv.ParseBool(value)
	case "integrations.slack":
		next.Integrations.Slack, err = strconv.ParseBool(value)
	case "logging.level":
		next.Logging.Level = value
	case "logging.file":
		next.Logging.File, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownSetting, key)
	}
	if err != nil {
		return apperrors.NewValidationError(key, value, "expected true or false")
	}
	if err := next.Validate(); err != nil {
		return err
	}

	*c = next
	return nil
}

// ToggleTheme flips between light and dark and returns the new mode.
func (c *Config) ToggleTheme() models.ThemeMode {
	c.UI.Theme = c.UI.Theme.Toggle()
	return c.UI.Theme
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
