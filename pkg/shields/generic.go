package shields

// Generic describes a static label/message badge.
type Generic struct {
	Label     string
	Message   string
	Color     string
	IsLarge   bool
	Link      string // click target; empty renders a bare image
	Logo      string
	LogoColor string
}

// Appearance returns the logo settings of g.
func (g Generic) Appearance() LogoAppearance {
	return LogoAppearance{Logo: g.Logo, LogoColor: g.LogoColor, IsLarge: g.IsLarge}
}

// ImageURL returns the static badge URL of g including logo parameters.
func (g Generic) ImageURL() string {
	return BuildURL(StaticBadgeURL(g.Label, g.Message, g.Color), LogoQueryParams(g.Appearance()))
}

// AltText is "<label> - <message>", or just the message when there is no
// label.
func (g Generic) AltText() string {
	if g.Label == "" {
		return g.Message
	}
	return g.Label + " - " + g.Message
}
