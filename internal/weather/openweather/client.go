package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/skydash/weather-pipeline/internal/weather"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client implements weather.Gateway against the OpenWeatherMap REST API:
// the current-weather and 5-day/3-hour forecast endpoints, plus city-name
// geocoding through the current-weather query endpoint. Units are fixed
// metric. Each request is a single attempt behind a circuit breaker; there
// is no retry loop.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a Client using the supplied shared HTTP client.
func NewClient(client *http.Client, apiKey string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  client,
		circuit: cb,
	}
}

// CurrentConditions fetches the current-weather snapshot for coords.
func (c *Client) CurrentConditions(ctx context.Context, coords weather.Coordinates) (*weather.CurrentPayload, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", coords.Lat))
	values.Set("lon", fmt.Sprintf("%f", coords.Lon))

	var payload weather.CurrentPayload
	if err := c.getJSON(ctx, "/weather", values, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Forecast fetches the 5-day/3-hour forecast series for coords.
func (c *Client) Forecast(ctx context.Context, coords weather.Coordinates) (*weather.ForecastPayload, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", coords.Lat))
	values.Set("lon", fmt.Sprintf("%f", coords.Lon))

	var payload weather.ForecastPayload
	if err := c.getJSON(ctx, "/forecast", values, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Geocode resolves a city name to coordinates and a "City, CC" display name
// using the current-weather query endpoint, matching how the upstream app
// resolves searches.
func (c *Client) Geocode(ctx context.Context, query string) (weather.Place, error) {
	values := url.Values{}
	values.Set("q", query)

	var payload struct {
		Coord weather.Coordinates `json:"coord"`
		Name  string              `json:"name"`
		Sys   struct {
			Country string `json:"country"`
		} `json:"sys"`
	}
	if err := c.getJSON(ctx, "/weather", values, &payload); err != nil {
		var provErr *weather.ProviderError
		if errors.As(err, &provErr) && provErr.Status == http.StatusNotFound {
			return weather.Place{}, fmt.Errorf("%w: %s", weather.ErrPlaceNotFound, query)
		}
		return weather.Place{}, err
	}

	name := payload.Name
	if payload.Sys.Country != "" {
		name = fmt.Sprintf("%s, %s", payload.Name, payload.Sys.Country)
	}
	return weather.Place{Coordinates: payload.Coord, Name: name}, nil
}

// getJSON issues one GET through the circuit breaker and decodes the body
// into out. Non-2xx responses are decoded into a ProviderError carrying the
// provider's message field when present.
func (c *Client) getJSON(ctx context.Context, path string, values url.Values, out interface{}) error {
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	_, err = c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, decodeProviderError(resp)
		}

		if decErr := json.NewDecoder(resp.Body).Decode(out); decErr != nil {
			return nil, fmt.Errorf("%w: %v", weather.ErrMalformedPayload, decErr)
		}
		return nil, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("provider unavailable: %w", err)
	}
	return err
}

// decodeProviderError extracts the {"cod","message"} error body the provider
// returns alongside non-2xx statuses.
func decodeProviderError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	// Best effort; an undecodable body still yields the status code.
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return &weather.ProviderError{
		Status:  resp.StatusCode,
		Message: body.Message,
	}
}
