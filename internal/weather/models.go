package weather

// Coordinates identifies the location a fetch is performed for.
// Produced by geocoding, consumed once per fetch.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a geocoded location: coordinates plus a display name
// such as "Bogor, ID".
type Place struct {
	Coordinates Coordinates `json:"coord"`
	Name        string      `json:"name"`
}

// ConditionInfo is one provider weather condition. The provider may report
// several simultaneous conditions; the first entry is the primary one.
type ConditionInfo struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Precipitation carries optional rain volume in millimeters.
type Precipitation struct {
	OneHour   float64 `json:"1h,omitempty"`
	ThreeHour float64 `json:"3h,omitempty"`
}

// CurrentConditions is the normalized current-weather snapshot.
// Timestamps are Unix seconds, temperatures rounded to whole degrees.
type CurrentConditions struct {
	ObservedAt int64           `json:"dt"`
	Sunrise    int64           `json:"sunrise"`
	Sunset     int64           `json:"sunset"`
	Temp       int             `json:"temp"`
	FeelsLike  int             `json:"feels_like"`
	Pressure   int             `json:"pressure"`
	Humidity   int             `json:"humidity"`
	Clouds     int             `json:"clouds"`
	Visibility int             `json:"visibility"`
	WindSpeed  float64         `json:"wind_speed"`
	WindDeg    int             `json:"wind_deg"`
	Weather    []ConditionInfo `json:"weather"`
	Rain       *Precipitation  `json:"rain,omitempty"`
}

// HourlySample is one re-sampled forecast entry. The series holds at most 48
// samples in ascending time order; the upstream 5-day forecast is evenly
// spaced at 3-hour steps.
type HourlySample struct {
	ObservedAt int64           `json:"dt"`
	Temp       int             `json:"temp"`
	FeelsLike  int             `json:"feels_like"`
	Pressure   int             `json:"pressure"`
	Humidity   int             `json:"humidity"`
	Clouds     int             `json:"clouds"`
	Visibility int             `json:"visibility"`
	WindSpeed  float64         `json:"wind_speed"`
	WindDeg    int             `json:"wind_deg"`
	Weather    []ConditionInfo `json:"weather"`
	Pop        float64         `json:"pop"`
	Rain       *Precipitation  `json:"rain,omitempty"`
}

// TempRange is the day's temperature envelope. Min never exceeds Max and the
// range bounds every sample in the day's bucket.
type TempRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DailySummary aggregates one calendar day of forecast samples. Sunrise and
// sunset repeat today's values across all days: the provider's coarse
// forecast carries no per-day solar times, so the pipeline does not invent
// them.
type DailySummary struct {
	ObservedAt int64           `json:"dt"`
	Sunrise    int64           `json:"sunrise"`
	Sunset     int64           `json:"sunset"`
	Temp       TempRange       `json:"temp"`
	Humidity   int             `json:"humidity"`
	Weather    []ConditionInfo `json:"weather"`
	Pop        float64         `json:"pop"`
	Date       string          `json:"date"`
	Weekday    string          `json:"weekday"`
}

// Report is the unified normalized weather model: current conditions, up to
// 48 hourly samples and up to 7 daily summaries.
type Report struct {
	Current CurrentConditions `json:"current"`
	Hourly  []HourlySample    `json:"hourly"`
	Daily   []DailySummary    `json:"daily"`
}
