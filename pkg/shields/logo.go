package shields

// Query keys understood by shields.io.
const (
	ParamLogo      = "logo"
	ParamLogoColor = "logoColor"
	ParamStyle     = "style"
)

// StyleLarge is the shields.io style used for large badges. Small badges
// send no style and get the renderer's default ("flat").
const StyleLarge = "for-the-badge"

// LogoAppearance holds the optional visual customization of a badge.
// Empty strings and false mean "not set".
type LogoAppearance struct {
	// Logo is a simple-icons slug, e.g. "react".
	Logo string `toml:"logo" yaml:"logo" json:"logo,omitempty"`
	// LogoColor is a colour name or hex without '#'.
	LogoColor string `toml:"logo_color" yaml:"logo_color" json:"logoColor,omitempty"`
	IsLarge   bool   `toml:"large" yaml:"large" json:"isLarge,omitempty"`
}

// WithLarge returns a copy of a with IsLarge set to large.
func (a LogoAppearance) WithLarge(large bool) LogoAppearance {
	a.IsLarge = large
	return a
}

// Merge returns a copy of a with empty fields filled from defaults.
// IsLarge is taken from a as-is.
func (a LogoAppearance) Merge(defaults LogoAppearance) LogoAppearance {
	if a.Logo == "" {
		a.Logo = defaults.Logo
	}
	if a.LogoColor == "" {
		a.LogoColor = defaults.LogoColor
	}
	return a
}

// LogoQueryParams maps a to shields.io query parameters in the order logo,
// logoColor, style. Unset fields are omitted entirely.
func LogoQueryParams(a LogoAppearance) Params {
	var p Params
	if a.Logo != "" {
		p.Set(ParamLogo, a.Logo)
	}
	if a.LogoColor != "" {
		p.Set(ParamLogoColor, a.LogoColor)
	}
	if a.IsLarge {
		p.Set(ParamStyle, StyleLarge)
	}
	return p
}
