package instant_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-assistant/pkg/instant"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/latest/USD", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","base_code":"USD","time_last_update_utc":"Mon, 01 Jan 2024 00:00:01 +0000","rates":{"USD":1,"EUR":0.9}}`))
	})
	mux.HandleFunc("/latest/OLD", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","conversion_rates":{"EUR":2}}`))
	})
	mux.HandleFunc("/latest/XXX", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	})
	mux.HandleFunc("/geo", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "Nowhere" {
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(`{"results":[{"name":"Paris","latitude":48.85,"longitude":2.35,"country":"France"}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("latitude") != "48.85" || r.URL.Query().Get("forecast_days") != "3" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{
			"current":{"time":"2024-01-01T12:00","temperature_2m":7.5,"weather_code":3},
			"daily":{"time":["2024-01-01"],"temperature_2m_max":[9],"temperature_2m_min":[2],"precipitation_probability_max":[40],"weather_code":[61]}
		}`))
	})
	return httptest.NewServer(mux)
}

func TestClient(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	client := instant.New().
		WithCurrencyURL(ts.URL + "/latest").
		WithGeocodeURL(ts.URL + "/geo").
		WithWeatherURL(ts.URL + "/forecast").
		WithHTTPClient(ts.Client())

	t.Run("Rates", func(t *testing.T) {
		rates, err := client.Rates(context.Background(), "usd")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates.Rates["EUR"] != 0.9 {
			t.Errorf("unexpected EUR rate: %v", rates.Rates["EUR"])
		}
	})

	t.Run("Legacy rates key", func(t *testing.T) {
		rates, err := client.Rates(context.Background(), "OLD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates.Rates["EUR"] != 2 {
			t.Errorf("expected legacy rates to be used")
		}
	})

	t.Run("Rates API error", func(t *testing.T) {
		if _, err := client.Rates(context.Background(), "XXX"); err == nil {
			t.Fatalf("expected error")
		}
		if _, err := client.Rates(context.Background(), "DOLLARS"); err == nil {
			t.Fatalf("expected invalid code error")
		}
	})

	t.Run("Geocode", func(t *testing.T) {
		place, err := client.Geocode(context.Background(), "Paris")
		if err != nil || place == nil {
			t.Fatalf("unexpected result: %v %v", place, err)
		}
		if place.Country != "France" {
			t.Errorf("unexpected country: %s", place.Country)
		}
		none, err := client.Geocode(context.Background(), "Nowhere")
		if err != nil || none != nil {
			t.Fatalf("expected no match, got %v %v", none, err)
		}
	})

	t.Run("Forecast", func(t *testing.T) {
		f, err := client.Forecast(context.Background(), 48.85, 2.35)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Current.Temperature == nil || *f.Current.Temperature != 7.5 {
			t.Errorf("unexpected temperature")
		}
		if f.Current.WindSpeed != nil {
			t.Errorf("missing wind should stay nil")
		}
		if len(f.Daily.Time) != 1 || f.Daily.WeatherCode[0] != 61 {
			t.Errorf("unexpected daily: %+v", f.Daily)
		}
	})
}
