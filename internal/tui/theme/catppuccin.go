package theme

// NewCatppuccinMocha creates the default Catppuccin Mocha theme.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "catppuccin-mocha",
		IsDark: true,

		// Semantic colors
		Primary:   "#cba6f7", // Mauve
		Secondary: "#89b4fa", // Blue
		Tertiary:  "#b4befe", // Lavender

		// Background hierarchy
		BgBase:     "#1e1e2e", // Base background
		BgMantle:   "#181825", // Slightly darker than base
		BgCrust:    "#11111b", // Darkest shade for deep backgrounds
		BgSurface0: "#313244", // Surface overlay (light)
		BgSurface1: "#45475a", // Surface overlay (medium)
		BgShadow:   "#11111b", // Drop shadow fill behind dialogs

		// Foreground hierarchy
		FgMuted:  "#6c7086", // Overlay0, hints and pending tabs
		FgSubtle: "#a6adc8", // Subtext0, secondary info
		FgBase:   "#cdd6f4", // Main text color
		FgBright: "#f5e0dc", // Rosewater, emphasized text

		// Status colors
		Success: "#a6e3a1", // Green
		Warning: "#f9e2af", // Yellow
		Error:   "#f38ba8", // Red
	}
}

// NewCatppuccinLatte creates the light Catppuccin Latte theme.
func NewCatppuccinLatte() *Theme {
	return &Theme{
		Name:   "catppuccin-latte",
		IsDark: false,

		// Semantic colors
		Primary:   "#8839ef", // Mauve
		Secondary: "#1e66f5", // Blue
		Tertiary:  "#7287fd", // Lavender

		// Background hierarchy
		BgBase:     "#eff1f5", // Base background
		BgMantle:   "#e6e9ef",
		BgCrust:    "#dce0e8",
		BgSurface0: "#ccd0da",
		BgSurface1: "#bcc0cc",
		BgShadow:   "#9ca0b0",

		// Foreground hierarchy
		FgMuted:  "#9ca0b0",
		FgSubtle: "#6c6f85",
		FgBase:   "#4c4f69",
		FgBright: "#dc8a78", // Rosewater

		// Status colors
		Success: "#40a02b",
		Warning: "#df8e1d",
		Error:   "#d20f39",
	}
}
