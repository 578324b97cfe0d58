// Package prayertimes fetches today's prayer schedule from the Al Adhan
// API. The kiosk fetches once per session at startup; a failure leaves the
// schedule at its midnight defaults with no error surface.
package prayertimes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"gitlab.com/tinyland/lab/minaret/pkg/prayer"
)

// DefaultBaseURL is the public Al Adhan API endpoint.
const DefaultBaseURL = "https://api.aladhan.com"

// apiResponse is the subset of the Al Adhan response the kiosk reads.
type apiResponse struct {
	Code int    `json:"code"`
	Data apiData `json:"data"`
}

type apiData struct {
	Timings map[string]string `json:"timings"`
	Date    apiDate           `json:"date"`
}

type apiDate struct {
	Readable string   `json:"readable"`
	Hijri    apiHijri `json:"hijri"`
}

type apiHijri struct {
	Day         string `json:"day"`
	Year        string `json:"year"`
	Month       struct {
		En string `json:"en"`
	} `json:"month"`
	Designation struct {
		Abbreviated string `json:"abbreviated"`
	} `json:"designation"`
}

// format returns the Hijri date as "DD Month YYYY AH", or "" when absent.
func (h apiHijri) format() string {
	if h.Day == "" || h.Month.En == "" || h.Year == "" {
		return ""
	}
	abbr := h.Designation.Abbreviated
	if abbr == "" {
		abbr = "AH"
	}
	return h.Day + " " + h.Month.En + " " + h.Year + " " + abbr
}

// Timings is the collector payload: the parsed schedule plus the Hijri
// date line for the clock panel.
type Timings struct {
	Schedule  prayer.Schedule `json:"schedule"`
	HijriDate string          `json:"hijri_date"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Client calls the Al Adhan timingsByCity endpoint for one fixed location.
type Client struct {
	baseURL    string
	city       string
	country    string
	method     int
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientConfig configures a prayer-times Client.
type ClientConfig struct {
	BaseURL string // empty = DefaultBaseURL
	City    string
	Country string
	Method  int // Al Adhan calculation method id
	Logger  *slog.Logger
}

// NewClient creates a Client for the fixed kiosk location.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		city:       cfg.City,
		country:    cfg.Country,
		method:     cfg.Method,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     cfg.Logger,
	}
}

// Timings fetches the schedule for the given calendar day. Timing fields
// that do not contain an HH:MM substring stay at the midnight default.
func (c *Client) Timings(ctx context.Context, day time.Time) (*Timings, error) {
	endpoint := fmt.Sprintf("%s/v1/timingsByCity/%s?%s",
		c.baseURL,
		day.Format("02-01-2006"),
		url.Values{
			"city":    {c.city},
			"country": {c.country},
			"method":  {fmt.Sprint(c.method)},
		}.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("prayertimes: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prayertimes: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prayertimes: unexpected status %s", resp.Status)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("prayertimes: decode: %w", err)
	}

	t := &Timings{
		HijriDate: body.Data.Date.Hijri.format(),
		FetchedAt: time.Now(),
	}
	for _, n := range prayer.Names {
		raw, ok := body.Data.Timings[n.String()]
		if !ok {
			c.logger.Warn("prayer timing missing from response", "prayer", n.String())
			continue
		}
		clock, ok := prayer.ParseClock(raw)
		if !ok {
			c.logger.Warn("prayer timing unparseable", "prayer", n.String(), "raw", raw)
			continue
		}
		t.Schedule.Set(n, clock)
	}
	return t, nil
}
