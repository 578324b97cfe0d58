package weather

// Condition is a human-readable rendering of a WMO weather code.
type Condition struct {
	Label string
	Glyph string
}

// Describe maps WMO interpretation codes (as published by Open-Meteo)
// to a short label and a display glyph. Unknown codes come back blank-ish
// rather than failing the panel.
func Describe(code int) Condition {
	switch {
	case code == 0:
		return Condition{"Clear", "☀"}
	case code == 1:
		return Condition{"Mostly clear", "🌤"}
	case code == 2:
		return Condition{"Partly cloudy", "⛅"}
	case code == 3:
		return Condition{"Overcast", "☁"}
	case code == 45 || code == 48:
		return Condition{"Fog", "🌫"}
	case code >= 51 && code <= 57:
		return Condition{"Drizzle", "🌦"}
	case code >= 61 && code <= 67:
		return Condition{"Rain", "🌧"}
	case code >= 71 && code <= 77:
		return Condition{"Snow", "❄"}
	case code >= 80 && code <= 82:
		return Condition{"Showers", "🌧"}
	case code == 85 || code == 86:
		return Condition{"Snow showers", "❄"}
	case code >= 95:
		return Condition{"Thunderstorm", "⛈"}
	default:
		return Condition{"Unknown", "·"}
	}
}
