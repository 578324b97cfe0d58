package prayertimes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/minaret/pkg/prayer"
)

// ptTestResponse mimics the Al Adhan timingsByCity payload, including the
// timezone suffixes the API sometimes appends.
const ptTestResponse = `{
  "code": 200,
  "status": "OK",
  "data": {
    "timings": {
      "Fajr": "05:21",
      "Sunrise": "06:48",
      "Dhuhr": "12:34 (WEST)",
      "Asr": "16:05",
      "Maghrib": "19:12",
      "Isha": "20:31"
    },
    "date": {
      "readable": "31 Aug 2026",
      "hijri": {
        "day": "18",
        "year": "1448",
        "month": {"en": "Rabi al-Awwal"},
        "designation": {"abbreviated": "AH"}
      }
    }
  }
}`

func ptTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{
		BaseURL: srv.URL,
		City:    "Rabat",
		Country: "Morocco",
		Method:  3,
	})
}

func TestTimings(t *testing.T) {
	var gotPath, gotQuery string
	c := ptTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(ptTestResponse))
	})

	day := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	got, err := c.Timings(context.Background(), day)
	if err != nil {
		t.Fatalf("Timings: %v", err)
	}

	if gotPath != "/v1/timingsByCity/31-08-2026" {
		t.Errorf("request path = %q", gotPath)
	}
	for _, want := range []string{"city=Rabat", "country=Morocco", "method=3"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}

	wantTimes := map[prayer.Name]prayer.Clock{
		prayer.Fajr:    {Hour: 5, Minute: 21},
		prayer.Dhuhr:   {Hour: 12, Minute: 34},
		prayer.Asr:     {Hour: 16, Minute: 5},
		prayer.Maghrib: {Hour: 19, Minute: 12},
		prayer.Isha:    {Hour: 20, Minute: 31},
	}
	for n, want := range wantTimes {
		if got.Schedule.At(n) != want {
			t.Errorf("%s = %v, want %v", n, got.Schedule.At(n), want)
		}
	}

	if got.HijriDate != "18 Rabi al-Awwal 1448 AH" {
		t.Errorf("HijriDate = %q", got.HijriDate)
	}
}

func TestTimingsMissingFieldsDefaultToMidnight(t *testing.T) {
	c := ptTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"data":{"timings":{"Fajr":"05:21","Dhuhr":"not a time"}}}`))
	})

	got, err := c.Timings(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Timings: %v", err)
	}
	if got.Schedule.At(prayer.Fajr) != (prayer.Clock{Hour: 5, Minute: 21}) {
		t.Errorf("Fajr = %v", got.Schedule.At(prayer.Fajr))
	}
	for _, n := range []prayer.Name{prayer.Dhuhr, prayer.Asr, prayer.Maghrib, prayer.Isha} {
		if got.Schedule.At(n) != (prayer.Clock{}) {
			t.Errorf("%s = %v, want midnight default", n, got.Schedule.At(n))
		}
	}
}

func TestTimingsHTTPError(t *testing.T) {
	c := ptTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	if _, err := c.Timings(context.Background(), time.Now()); err == nil {
		t.Error("HTTP 502 did not error")
	}
}

func TestTimingsMalformedJSON(t *testing.T) {
	c := ptTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{nope"))
	})
	if _, err := c.Timings(context.Background(), time.Now()); err == nil {
		t.Error("malformed body did not error")
	}
}

func TestCollectorHealth(t *testing.T) {
	fail := true
	c := ptTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(ptTestResponse))
	})

	col := NewCollector(c)
	if col.Name() != SourceName {
		t.Errorf("Name() = %q", col.Name())
	}
	if !col.Healthy() {
		t.Error("collector unhealthy before first run")
	}

	if _, err := col.Collect(context.Background()); err == nil {
		t.Fatal("Collect did not propagate failure")
	}
	if col.Healthy() {
		t.Error("collector healthy after failed fetch")
	}

	fail = false
	data, err := col.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if _, ok := data.(*Timings); !ok {
		t.Errorf("Collect returned %T, want *Timings", data)
	}
	if !col.Healthy() {
		t.Error("collector unhealthy after success")
	}
}

func TestScheduleSnapshotRoundtrip(t *testing.T) {
	// Provider snapshots pass through the JSON state store.
	in := Timings{HijriDate: "18 Rabi al-Awwal 1448 AH", FetchedAt: time.Now()}
	in.Schedule.Set(prayer.Maghrib, prayer.Clock{Hour: 19, Minute: 12})

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out Timings
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Schedule.At(prayer.Maghrib) != (prayer.Clock{Hour: 19, Minute: 12}) {
		t.Errorf("schedule lost in roundtrip: %v", out.Schedule.At(prayer.Maghrib))
	}
	if out.HijriDate != in.HijriDate {
		t.Errorf("hijri date lost: %q", out.HijriDate)
	}
}
