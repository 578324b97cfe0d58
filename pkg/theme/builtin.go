package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDarkTheme(),
		thLightTheme(),
		thNightTheme(),
	} {
		thRegister(t)
	}
}

// thDarkTheme is the default kiosk palette: deep blue-gray with a teal
// accent that reads well on a wall display across the room.
func thDarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: "#14161f",
		Foreground: "#d8dee9",
		Dim:        "#636a7a",
		Accent:     "#2dd4bf",

		Border:      "#343a49",
		BorderFocus: "#2dd4bf",
		Title:       "#d8dee9",

		StatusOK:    "#4ade80",
		StatusWarn:  "#facc15",
		StatusError: "#f87171",

		ChartLine: "#60a5fa",
	}
}

// thLightTheme is the daylight palette for bright rooms.
func thLightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: "#f5f3ec",
		Foreground: "#2b2f36",
		Dim:        "#8a8f99",
		Accent:     "#0f766e",

		Border:      "#c9c5b8",
		BorderFocus: "#0f766e",
		Title:       "#2b2f36",

		StatusOK:    "#15803d",
		StatusWarn:  "#a16207",
		StatusError: "#b91c1c",

		ChartLine: "#1d4ed8",
	}
}

// thNightTheme dims everything for overnight display between Isha and Fajr.
func thNightTheme() Theme {
	return Theme{
		Name:       "night",
		Background: "#0b0c10",
		Foreground: "#8b93a5",
		Dim:        "#424857",
		Accent:     "#b45309",

		Border:      "#1f232e",
		BorderFocus: "#b45309",
		Title:       "#8b93a5",

		StatusOK:    "#3f6212",
		StatusWarn:  "#854d0e",
		StatusError: "#7f1d1d",

		ChartLine: "#334155",
	}
}
