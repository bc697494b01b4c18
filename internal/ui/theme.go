package ui

import "os"

// Theme holds the colors shared by the animated components.
type Theme struct {
	NoColor bool
	Colors  ThemeColors
}

// ThemeColors are hex color strings.
type ThemeColors struct {
	Primary   string
	Secondary string
}

// NewTheme returns the default theme. Color is disabled when NO_COLOR is set.
func NewTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		NoColor: noColor,
		Colors: ThemeColors{
			Primary:   "#C45A3C",
			Secondary: "#5B8DB8",
		},
	}
}
