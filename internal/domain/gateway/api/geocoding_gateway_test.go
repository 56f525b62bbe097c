package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkghttp "weather-api/pkg/http"
)

func TestGeocodingResolveSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("name") != "Tel Aviv" || query.Get("country") != "Israel" || query.Get("count") != "1" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"name":"Tel Aviv","country":"Israel","latitude":32.08,"longitude":34.78}]}`))
	}))
	defer server.Close()

	gateway := NewGeocodingGateway(server.URL, pkghttp.ClientOptions{})

	coords, err := gateway.Resolve("Tel Aviv", "Israel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Latitude != 32.08 || coords.Longitude != 34.78 {
		t.Errorf("got coordinates (%v, %v), want (32.08, 34.78)", coords.Latitude, coords.Longitude)
	}
}

func TestGeocodingResolveNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer server.Close()

	gateway := NewGeocodingGateway(server.URL, pkghttp.ClientOptions{})

	_, err := gateway.Resolve("Nowhereland", "Atlantis")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("got %v, want ErrLocationNotFound", err)
	}
}

func TestGeocodingResolveTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":true,"reason":"upstream unavailable"}`))
	}))
	defer server.Close()

	gateway := NewGeocodingGateway(server.URL, pkghttp.ClientOptions{})

	_, err := gateway.Resolve("Tel Aviv", "Israel")
	if err == nil {
		t.Fatal("expected an error for a 502 response")
	}
	if errors.Is(err, ErrLocationNotFound) {
		t.Fatal("transport failure must not be reported as not-found")
	}
}
