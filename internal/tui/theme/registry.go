package theme

import "fmt"

// current is read by every component on every frame; it is set once at
// startup before the program runs.
var current = NewCatppuccinMocha()

// Current returns the active theme.
func Current() *Theme {
	return current
}

// SetCurrent replaces the active theme.
func SetCurrent(t *Theme) {
	if t != nil {
		current = t
	}
}

// ByName resolves a configured theme name.
func ByName(name string) (*Theme, error) {
	switch name {
	case "mocha", "catppuccin-mocha", "dark", "":
		return NewCatppuccinMocha(), nil
	case "latte", "catppuccin-latte", "light":
		return NewCatppuccinLatte(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}
