package views

import "fmt"

// NotFound is the catch-all view for unknown paths.
type NotFound struct {
	Path string
}

// NewNotFound records the unknown path and logs it.
func NewNotFound(env *Env, path string) *NotFound {
	env.Logger.Error().Str("path", path).Msg("404: user attempted to access non-existent route")
	return &NotFound{Path: path}
}

// Message returns the page text.
func (v *NotFound) Message() string {
	return fmt.Sprintf("Oops! Page not found: %s", v.Path)
}

// HomePath is the link offered back to safety.
func (v *NotFound) HomePath() string {
	return "/"
}
