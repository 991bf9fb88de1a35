package weather

// Raw payload shapes for the provider's "current weather" and
// "5 day / 3 hour forecast" endpoints. The gateway decodes into these
// verbatim; normalization happens in BuildReport. Required sections are
// pointers so a missing field is distinguishable from a zero value.

// PayloadMain is the "main" block shared by both endpoints.
type PayloadMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// PayloadWind is the "wind" block.
type PayloadWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// PayloadClouds is the "clouds" block.
type PayloadClouds struct {
	All int `json:"all"`
}

// PayloadSys carries the solar times of the current-conditions payload.
type PayloadSys struct {
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}

// CurrentPayload is the raw current-conditions response.
type CurrentPayload struct {
	Dt         int64           `json:"dt"`
	Main       *PayloadMain    `json:"main"`
	Wind       *PayloadWind    `json:"wind"`
	Clouds     *PayloadClouds  `json:"clouds"`
	Sys        *PayloadSys     `json:"sys"`
	Visibility int             `json:"visibility"`
	Weather    []ConditionInfo `json:"weather"`
	Rain       *Precipitation  `json:"rain"`
}

// ForecastEntry is one 3-hour step of the raw forecast series.
type ForecastEntry struct {
	Dt         int64           `json:"dt"`
	Main       *PayloadMain    `json:"main"`
	Wind       *PayloadWind    `json:"wind"`
	Clouds     *PayloadClouds  `json:"clouds"`
	Visibility int             `json:"visibility"`
	Weather    []ConditionInfo `json:"weather"`
	Pop        float64         `json:"pop"`
	Rain       *Precipitation  `json:"rain"`
}

// ForecastPayload is the raw forecast-series response.
type ForecastPayload struct {
	List []ForecastEntry `json:"list"`
}
