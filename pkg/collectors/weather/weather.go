package weather

import (
	"context"
	"time"

	"gitlab.com/tinyland/lab/minaret/pkg/collectors"
)

// SourceName is the DataUpdateEvent source identifier for this collector.
const SourceName = "weather"

// Collector adapts the Open-Meteo client to the collectors interface.
type Collector struct {
	collectors.Health
	client  *Client
	nowFunc func() time.Time
}

// NewCollector wraps the client. nowFunc defaults to time.Now; tests
// override it to pin the hourly-series date filter.
func NewCollector(client *Client) *Collector {
	return &Collector{client: client, nowFunc: time.Now}
}

// Name implements collectors.Collector.
func (c *Collector) Name() string {
	return SourceName
}

// Collect fetches the forecast once. The result is a *Report.
func (c *Collector) Collect(ctx context.Context) (interface{}, error) {
	r, err := c.client.Forecast(ctx, c.nowFunc())
	c.Record(err)
	if err != nil {
		return nil, err
	}
	return r, nil
}

var _ collectors.Collector = (*Collector)(nil)
