package theme

import "strings"

// Theme identifies a background/display theme for a weather condition.
type Theme string

const (
	ThemeThunderstorm Theme = "thunderstorm"
	ThemeRain         Theme = "rain"
	ThemeSnow         Theme = "snow"
	ThemeMist         Theme = "mist"
	ThemeClearDay     Theme = "clear-day"
	ThemeClearNight   Theme = "clear-night"
	ThemeCloudsDay    Theme = "clouds-day"
	ThemeCloudsNight  Theme = "clouds-night"
)

// Classify maps an OpenWeatherMap condition code plus icon token to a theme.
// Day/night is taken from the icon token's trailing "n" convention, never
// computed from timestamps. Unknown or future condition codes fall back to a
// clear-sky theme rather than failing.
//
// Condition code groups: 2xx thunderstorm, 3xx drizzle, 5xx rain, 6xx snow,
// 7xx atmosphere (mist/fog/haze), 800 clear, 801-899 clouds.
func Classify(icon string, code int) Theme {
	night := strings.HasSuffix(icon, "n")

	switch {
	case code >= 200 && code < 300:
		return ThemeThunderstorm
	case code >= 300 && code < 600:
		return ThemeRain
	case code >= 600 && code < 700:
		return ThemeSnow
	case code >= 700 && code < 800:
		return ThemeMist
	case code == 800:
		if night {
			return ThemeClearNight
		}
		return ThemeClearDay
	case code > 800 && code < 900:
		if night {
			return ThemeCloudsNight
		}
		return ThemeCloudsDay
	default:
		if night {
			return ThemeClearNight
		}
		return ThemeClearDay
	}
}
