// Package theme manages the persisted light/dark appearance preference and
// the terminal styles derived from it.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"kalemci/internal/prefs"
)

const (
	// Light and Dark are the two valid theme names.
	Light = "light"
	Dark  = "dark"

	// prefKey is the preference-store key holding the theme name.
	prefKey = "theme"
)

// Theme holds the styles for one color scheme.
type Theme struct {
	Name string

	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Title   lipgloss.Style
}

// byName returns the Theme for the given name, defaulting to light for
// anything unrecognized.
func byName(name string) Theme {
	if name == Dark {
		return Theme{
			Name:    Dark,
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4")),
		}
	}
	return Theme{
		Name:    Light,
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#40a02b")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d20f39")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1e66f5")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca0b0")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4c4f69")),
	}
}

// Current loads the persisted preference and returns the matching theme.
// An unset or unreadable preference yields the light theme.
func Current(p *prefs.Store) Theme {
	return byName(p.Get(prefKey))
}

// Set persists the given theme name and returns its Theme.
func Set(p *prefs.Store, name string) (Theme, error) {
	if name != Light && name != Dark {
		return Theme{}, fmt.Errorf("theme set: unknown theme %q", name)
	}
	if err := p.Set(prefKey, name); err != nil {
		return Theme{}, err
	}
	return byName(name), nil
}

// Toggle flips the persisted preference between light and dark and returns
// the new theme.
func Toggle(p *prefs.Store) (Theme, error) {
	next := Dark
	if Current(p).Name == Dark {
		next = Light
	}
	return Set(p, next)
}
