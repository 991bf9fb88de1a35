package theme

import "testing"

// Every icon token the provider documents, with a representative condition
// code for the group it belongs to.
var documentedIcons = []struct {
	icon string
	code int
}{
	{"01d", 800}, {"01n", 800},
	{"02d", 801}, {"02n", 801},
	{"03d", 802}, {"03n", 802},
	{"04d", 804}, {"04n", 804},
	{"09d", 520}, {"09n", 520},
	{"10d", 500}, {"10n", 500},
	{"11d", 211}, {"11n", 211},
	{"13d", 601}, {"13n", 601},
	{"50d", 741}, {"50n", 741},
}

func TestClassifyCoversDocumentedVocabulary(t *testing.T) {
	for _, tc := range documentedIcons {
		if got := Classify(tc.icon, tc.code); got == "" {
			t.Errorf("Classify(%q, %d) returned an empty theme", tc.icon, tc.code)
		}
	}
}

func TestClassifyConditionGroups(t *testing.T) {
	cases := []struct {
		icon string
		code int
		want Theme
	}{
		{"11d", 200, ThemeThunderstorm},
		{"11n", 232, ThemeThunderstorm},
		{"09d", 301, ThemeRain},
		{"10d", 502, ThemeRain},
		{"13d", 622, ThemeSnow},
		{"50d", 701, ThemeMist},
		{"50n", 781, ThemeMist},
		{"01d", 800, ThemeClearDay},
		{"01n", 800, ThemeClearNight},
		{"03d", 802, ThemeCloudsDay},
		{"04n", 804, ThemeCloudsNight},
	}

	for _, tc := range cases {
		if got := Classify(tc.icon, tc.code); got != tc.want {
			t.Errorf("Classify(%q, %d) = %q, want %q", tc.icon, tc.code, got, tc.want)
		}
	}
}

func TestClassifyUnknownCodeFallsBack(t *testing.T) {
	if got := Classify("01d", 999); got != ThemeClearDay {
		t.Errorf("Classify(01d, 999) = %q, want %q", got, ThemeClearDay)
	}
	if got := Classify("01n", 999); got != ThemeClearNight {
		t.Errorf("Classify(01n, 999) = %q, want %q", got, ThemeClearNight)
	}
	if got := Classify("", 0); got == "" {
		t.Error("Classify with empty inputs returned an empty theme")
	}
}
