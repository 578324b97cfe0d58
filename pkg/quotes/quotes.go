// Package quotes supplies the rotating quote panel. A built-in pack ships
// with the binary; an optional YAML pack file replaces it. The rotation
// order is shuffled deterministically per calendar day so every kiosk
// showing the same pack shows the same sequence.
package quotes

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Quote is one displayable quote.
type Quote struct {
	Text   string `yaml:"text"`
	Source string `yaml:"source"`
}

// pack is the YAML pack file shape.
type pack struct {
	Quotes []Quote `yaml:"quotes"`
}

// LoadPack reads a YAML quote pack. Entries with empty text are dropped;
// an empty resulting pack is an error so the caller can fall back to the
// built-in set.
func LoadPack(path string) ([]Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quote pack: %w", err)
	}
	var p pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse quote pack: %w", err)
	}
	var out []Quote
	for _, q := range p.Quotes {
		if q.Text == "" {
			continue
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("quote pack %s has no usable quotes", path)
	}
	return out, nil
}

// Rotator cycles through a pack. The order reshuffles once per calendar
// day, seeded from the date, so the sequence is stable across restarts
// within a day.
type Rotator struct {
	quotes []Quote
	order  []int
	day    string
	idx    int
}

// NewRotator creates a rotator over the given pack. Falls back to the
// built-in pack when quotes is empty.
func NewRotator(quotes []Quote) *Rotator {
	if len(quotes) == 0 {
		quotes = Builtin()
	}
	return &Rotator{quotes: quotes}
}

// Current returns the quote on display at now, reshuffling first if the
// calendar day rolled over.
func (r *Rotator) Current(now time.Time) Quote {
	r.ensureDay(now)
	return r.quotes[r.order[r.idx]]
}

// Advance steps to the next quote and returns it.
func (r *Rotator) Advance(now time.Time) Quote {
	r.ensureDay(now)
	r.idx = (r.idx + 1) % len(r.order)
	return r.quotes[r.order[r.idx]]
}

// Len reports the pack size.
func (r *Rotator) Len() int {
	return len(r.quotes)
}

func (r *Rotator) ensureDay(now time.Time) {
	day := now.Format("2006-01-02")
	if day == r.day && r.order != nil {
		return
	}
	r.day = day
	r.idx = 0
	r.order = dailyOrder(day, len(r.quotes))
}

// dailyOrder is a permutation of [0,n) seeded from the date string.
func dailyOrder(day string, n int) []int {
	var seed uint64
	for _, b := range []byte(day) {
		seed = seed*31 + uint64(b)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}
