package shields

// StaticPreset fixes the label, colour and size of a static badge.
type StaticPreset struct {
	Label   string
	Color   string
	IsLarge bool
}

// DynamicPreset fixes the size of a dynamic badge.
type DynamicPreset struct {
	IsLarge bool
}

// ShieldPreset is a fully fixed dynamic badge: appearance, alt text and link.
type ShieldPreset struct {
	LogoAppearance
	AltText    string
	LinkTarget string
}

// StaticDependency is the flat "dependency | <name>" badge.
func StaticDependency() StaticPreset {
	return StaticPreset{
		Label:   "dependency",
		Color:   "blue",
		IsLarge: false,
	}
}

// NodeVersionBadge overrides the caller's size for package.json badges.
func NodeVersionBadge() DynamicPreset {
	return DynamicPreset{IsLarge: true}
}

// GoModuleShield is the go.mod Go version badge.
func GoModuleShield() ShieldPreset {
	return ShieldPreset{
		LogoAppearance: LogoAppearance{
			Logo:      "go",
			LogoColor: "white",
			IsLarge:   true,
		},
		AltText:    "Go Version",
		LinkTarget: "https://go.dev",
	}
}
