package httpapi

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/skydash/weather-pipeline/internal/compass"
	"github.com/skydash/weather-pipeline/internal/theme"
	"github.com/skydash/weather-pipeline/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		coords, err := parseCoordsQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		useCache := c.QueryBool("cache", true)

		report, err := service.Fetch(c.Context(), coords, useCache)
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(newWeatherResponse("", report))
	})

	v1.Get("/weather/search", func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "q query parameter is required")
		}

		place, report, err := service.Search(c.Context(), query)
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(newWeatherResponse(place.Name, report))
	})
}

// weatherResponse is the presentation envelope: the normalized report plus
// the derived display fields the original UI computed client-side.
type weatherResponse struct {
	Place         string                    `json:"place,omitempty"`
	Current       weather.CurrentConditions `json:"current"`
	Hourly        []weather.HourlySample    `json:"hourly"`
	Daily         []weather.DailySummary    `json:"daily"`
	Theme         theme.Theme               `json:"theme"`
	WindDirection string                    `json:"wind_direction"`
	NextSolar     weather.SolarEvent        `json:"next_solar_event"`
}

func newWeatherResponse(place string, report weather.Report) weatherResponse {
	resp := weatherResponse{
		Place:     place,
		Current:   report.Current,
		Hourly:    report.Hourly,
		Daily:     report.Daily,
		NextSolar: weather.NextSolarEvent(report.Current, report.Daily),
	}

	if len(report.Current.Weather) > 0 {
		primary := report.Current.Weather[0]
		resp.Theme = theme.Classify(primary.Icon, primary.ID)
	}

	if dir, err := compass.Cardinal(float64(report.Current.WindDeg)); err == nil {
		resp.WindDirection = dir
	}

	return resp
}

// coordsQuery holds the validated coordinate parameters.
type coordsQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func parseCoordsQuery(c *fiber.Ctx) (weather.Coordinates, error) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return weather.Coordinates{}, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("invalid lat: %v", err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("invalid lon: %v", err)
	}

	q := coordsQuery{Lat: lat, Lon: lon}
	if err := validate.Struct(q); err != nil {
		return weather.Coordinates{}, err
	}

	return weather.Coordinates{Lat: lat, Lon: lon}, nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, weather.ErrPlaceNotFound):
		return fiber.NewError(fiber.StatusNotFound, "location not found")
	case errors.Is(err, weather.ErrMalformedPayload):
		return fiber.NewError(fiber.StatusBadGateway, "provider returned unusable data")
	default:
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
}
