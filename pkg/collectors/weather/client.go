// Package weather fetches current conditions, today's hourly temperatures,
// and the 7-day outlook from the Open-Meteo forecast API for the fixed
// kiosk coordinates. Like the prayer schedule, weather is fetched once per
// session with no retry; a failure leaves the panel showing "no weather yet".
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com"

// apiResponse is the subset of the Open-Meteo response the kiosk reads.
type apiResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"hourly"`
	Daily struct {
		Time        []string  `json:"time"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"daily"`
}

// Current holds the present conditions.
type Current struct {
	TempC       float64 `json:"temp_c"`
	HumidityPct float64 `json:"humidity_pct"`
	WindKmh     float64 `json:"wind_kmh"`
	Code        int     `json:"code"`
}

// HourPoint is one hourly sample from today's series.
type HourPoint struct {
	Hour  int     `json:"hour"`
	TempC float64 `json:"temp_c"`
	Code  int     `json:"code"`
}

// DayPoint is one day of the outlook.
type DayPoint struct {
	Date string  `json:"date"` // "2026-08-31"
	MinC float64 `json:"min_c"`
	MaxC float64 `json:"max_c"`
	Code int     `json:"code"`
}

// Report is the collector payload.
type Report struct {
	Current   Current     `json:"current"`
	Hourly    []HourPoint `json:"hourly"` // today only
	Daily     []DayPoint  `json:"daily"`  // 7 days starting today
	FetchedAt time.Time   `json:"fetched_at"`
}

// Client calls the Open-Meteo forecast endpoint for one fixed place.
type Client struct {
	baseURL    string
	latitude   float64
	longitude  float64
	timezone   string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientConfig configures a weather Client.
type ClientConfig struct {
	BaseURL   string // empty = DefaultBaseURL
	Latitude  float64
	Longitude float64
	Timezone  string
	Logger    *slog.Logger
}

// NewClient creates a Client for the fixed kiosk coordinates.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		latitude:   cfg.Latitude,
		longitude:  cfg.Longitude,
		timezone:   cfg.Timezone,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     cfg.Logger,
	}
}

// Forecast fetches the full report. day selects which calendar date the
// hourly series is filtered to.
func (c *Client) Forecast(ctx context.Context, day time.Time) (*Report, error) {
	q := url.Values{
		"latitude":      {fmt.Sprintf("%.4f", c.latitude)},
		"longitude":     {fmt.Sprintf("%.4f", c.longitude)},
		"timezone":      {c.timezone},
		"current":       {"temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"},
		"hourly":        {"temperature_2m,weather_code"},
		"daily":         {"temperature_2m_max,temperature_2m_min,weather_code"},
		"forecast_days": {"7"},
	}
	endpoint := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: unexpected status %s", resp.Status)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("weather: decode: %w", err)
	}

	r := &Report{
		Current: Current{
			TempC:       body.Current.Temperature,
			HumidityPct: body.Current.Humidity,
			WindKmh:     body.Current.WindSpeed,
			Code:        body.Current.WeatherCode,
		},
		FetchedAt: time.Now(),
	}

	// Hourly entries look like "2026-08-31T14:00"; keep today's.
	today := day.Format("2006-01-02")
	for i, ts := range body.Hourly.Time {
		if i >= len(body.Hourly.Temperature) {
			break
		}
		datePart, hourPart, ok := strings.Cut(ts, "T")
		if !ok || datePart != today {
			continue
		}
		var hour int
		fmt.Sscanf(hourPart, "%d", &hour)
		p := HourPoint{Hour: hour, TempC: body.Hourly.Temperature[i]}
		if i < len(body.Hourly.WeatherCode) {
			p.Code = body.Hourly.WeatherCode[i]
		}
		r.Hourly = append(r.Hourly, p)
	}

	for i, date := range body.Daily.Time {
		if i >= len(body.Daily.TempMin) || i >= len(body.Daily.TempMax) {
			break
		}
		p := DayPoint{Date: date, MinC: body.Daily.TempMin[i], MaxC: body.Daily.TempMax[i]}
		if i < len(body.Daily.WeatherCode) {
			p.Code = body.Daily.WeatherCode[i]
		}
		r.Daily = append(r.Daily, p)
	}

	return r, nil
}
