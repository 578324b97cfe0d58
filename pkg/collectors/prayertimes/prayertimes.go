package prayertimes

import (
	"context"
	"time"

	"gitlab.com/tinyland/lab/minaret/pkg/collectors"
)

// SourceName is the DataUpdateEvent source identifier for this collector.
const SourceName = "prayertimes"

// Collector adapts the Al Adhan client to the collectors interface.
type Collector struct {
	collectors.Health
	client  *Client
	nowFunc func() time.Time
}

// NewCollector wraps the client. nowFunc defaults to time.Now; tests
// override it to pin the requested day.
func NewCollector(client *Client) *Collector {
	return &Collector{client: client, nowFunc: time.Now}
}

// Name implements collectors.Collector.
func (c *Collector) Name() string {
	return SourceName
}

// Collect fetches today's timings once. The result is a *Timings.
func (c *Collector) Collect(ctx context.Context) (interface{}, error) {
	t, err := c.client.Timings(ctx, c.nowFunc())
	c.Record(err)
	if err != nil {
		return nil, err
	}
	return t, nil
}

var _ collectors.Collector = (*Collector)(nil)
