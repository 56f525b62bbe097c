package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-api/internal/domain/model"
	pkghttp "weather-api/pkg/http"
)

func TestForecastFetchDailySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("timezone") != "auto" {
			t.Errorf("timezone = %q, want auto", query.Get("timezone"))
		}
		if query.Get("daily") != dailyVariables {
			t.Errorf("daily = %q, want the fixed variable set", query.Get("daily"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"latitude": 32.08,
			"longitude": 34.78,
			"timezone": "Asia/Jerusalem",
			"daily": {
				"time": ["2024-05-05", "2024-05-06"],
				"temperature_2m_min": [18.3, 17.9],
				"temperature_2m_max": [24.7, 25.1],
				"weathercode": [0, 3],
				"relative_humidity_2m_min": [40, 45],
				"relative_humidity_2m_max": [65, 70]
			}
		}`))
	}))
	defer server.Close()

	gateway := NewForecastGateway(server.URL, pkghttp.ClientOptions{})

	daily, err := gateway.FetchDaily(model.Coordinates{Latitude: 32.08, Longitude: 34.78})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(daily.Time) != 2 {
		t.Fatalf("got %d days, want 2", len(daily.Time))
	}
	if daily.Time[0] != "2024-05-05" || daily.TemperatureMin[0] != 18.3 || daily.WeatherCode[1] != 3 {
		t.Errorf("daily block parsed incorrectly: %+v", daily)
	}
}

func TestForecastFetchDailyMissingContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude": 32.08, "longitude": 34.78}`))
	}))
	defer server.Close()

	gateway := NewForecastGateway(server.URL, pkghttp.ClientOptions{})

	_, err := gateway.FetchDaily(model.Coordinates{Latitude: 32.08, Longitude: 34.78})
	if !errors.Is(err, ErrMissingDailyData) {
		t.Fatalf("got %v, want ErrMissingDailyData", err)
	}
}

func TestForecastFetchDailyTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":true,"reason":"out of capacity"}`))
	}))
	defer server.Close()

	gateway := NewForecastGateway(server.URL, pkghttp.ClientOptions{})

	_, err := gateway.FetchDaily(model.Coordinates{Latitude: 32.08, Longitude: 34.78})
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if errors.Is(err, ErrMissingDailyData) {
		t.Fatal("transport failure must not be reported as missing daily data")
	}
}
