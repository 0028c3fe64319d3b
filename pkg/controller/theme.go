package controller

import "askhub/pkg/apiclient"

// Theme carries the two brand colors applied to the rendering context.
type Theme struct {
	PrimaryColor   string
	SecondaryColor string
}

// DefaultTheme is the un-tenanted platform theme.
var DefaultTheme = Theme{
	PrimaryColor:   "#2563eb",
	SecondaryColor: "#1e40af",
}

// ThemeFor derives the theme for a tenant. It is a pure function: the same
// company always yields the same theme, and a nil company yields the default.
func ThemeFor(company *apiclient.Company) Theme {
	if company == nil {
		return DefaultTheme
	}
	theme := DefaultTheme
	if company.PrimaryColor != "" {
		theme.PrimaryColor = company.PrimaryColor
	}
	if company.SecondaryColor != "" {
		theme.SecondaryColor = company.SecondaryColor
	}
	return theme
}
