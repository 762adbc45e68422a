package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# SphereOfTech Dashboard Configuration

[profile]
# Display name and account email shown on the dashboard and settings view
name = "Alex Johnson"
email = "alex.johnson@email.com"

[ui]
# Theme: "light" or "dark"
theme = "light"
# Enable colored output
color_enabled = true
# Route opened by 'sphere ui'
landing_route = "/dashboard"

[notifications]
# Show success and info toasts (errors are always shown)
enabled = true

[security]
# Two-factor authentication toggle (cosmetic)
two_factor = false

[locale]
# One of: English, Spanish, French, German, Chinese
language = "English"
# One of: United States, Canada, United Kingdom, India, Australia
region = "United States"

[integrations]
notion = false
slack = false

[logging]
# debug, info, warn, error
level = "warn"
# Write logs to logs/sphere.log in the config directory
file = true
`

func createTemplateConfig(configDir, name string) (string, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return "", fmt.Errorf("writing config template: %w", err)
	}

	return path, nil
}
