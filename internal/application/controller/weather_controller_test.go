package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
)

type fakeSearchUseCase struct {
	result    *model.SearchResult
	searchErr error
	entries   []model.HistoryEntry
	recentErr error
	lastLimit int
}

func (f *fakeSearchUseCase) Search(city, country string) (*model.SearchResult, error) {
	if strings.TrimSpace(city) == "" || strings.TrimSpace(country) == "" {
		return nil, model.BadInput("Missing city or country input.")
	}
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.result, nil
}

func (f *fakeSearchUseCase) Recent(limit int) ([]model.HistoryEntry, error) {
	f.lastLimit = limit
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.entries, nil
}

func setupWeatherRoutes(useCase *fakeSearchUseCase) *echo.Echo {
	e := echo.New()
	api := e.Group("")
	controller := NewWeatherController(api, useCase, 10)
	controller.InitWeatherRoutes()
	return e
}

func doRequest(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSearchEndpointSuccess(t *testing.T) {
	useCase := &fakeSearchUseCase{result: &model.SearchResult{
		City:    "Tel Aviv",
		Country: "Israel",
		Forecast: []model.DailyForecast{{
			Date:        "Sunday, 05 May",
			TempMin:     18.3,
			TempMax:     24.7,
			HumidityMin: 40,
			HumidityMax: 65,
			Description: "Clear sky",
			Icon:        "01d",
		}},
	}}
	e := setupWeatherRoutes(useCase)

	rec := doRequest(e, "/search?city=Tel+Aviv&country=Israel")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}

	var body model.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.City != "Tel Aviv" || len(body.Forecast) != 1 || body.Forecast[0].Date != "Sunday, 05 May" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestSearchEndpointMissingCity(t *testing.T) {
	e := setupWeatherRoutes(&fakeSearchUseCase{})

	rec := doRequest(e, "/search?country=Israel")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["error"] == "" {
		t.Error("error message missing from body")
	}
}

func TestSearchEndpointStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"location not found", model.BadInput("City 'Nowhereland, Atlantis' not found."), http.StatusBadRequest},
		{"no forecast data", model.NoData("No forecast data found for 'Tel Aviv, Israel'."), http.StatusNotFound},
		{"unclassified fault", model.Internal("unexpected fault"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setupWeatherRoutes(&fakeSearchUseCase{searchErr: tt.err})
			rec := doRequest(e, "/search?city=Nowhereland&country=Atlantis")
			if rec.Code != tt.want {
				t.Fatalf("got status %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHistoryEndpoint(t *testing.T) {
	useCase := &fakeSearchUseCase{entries: []model.HistoryEntry{
		{City: "Tel Aviv", Country: "Israel", TempMax: 24.7, TempMin: 18.3, Description: "Clear sky", Icon: "01d"},
	}}
	e := setupWeatherRoutes(useCase)

	rec := doRequest(e, "/history")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if useCase.lastLimit != 10 {
		t.Errorf("default limit = %d, want 10", useCase.lastLimit)
	}

	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("got %d entries, want 1", len(body))
	}
	if _, hasID := body[0]["id"]; hasID {
		t.Error("history entries must not expose an internal id")
	}
}

func TestHistoryEndpointClampsLimit(t *testing.T) {
	useCase := &fakeSearchUseCase{}
	e := setupWeatherRoutes(useCase)

	doRequest(e, "/history?limit=50")
	if useCase.lastLimit != 10 {
		t.Errorf("limit = %d, want clamp to 10", useCase.lastLimit)
	}

	doRequest(e, "/history?limit=-3")
	if useCase.lastLimit != 1 {
		t.Errorf("limit = %d, want clamp to 1", useCase.lastLimit)
	}
}

func TestHistoryEndpointStoreFailure(t *testing.T) {
	e := setupWeatherRoutes(&fakeSearchUseCase{recentErr: model.Internal("Failed to read search history: connection refused")})

	rec := doRequest(e, "/history")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", rec.Code)
	}
}

func TestHealthRoutes(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	healthController := NewHealthController(api)
	healthController.InitHealthRoutes()

	rec := doRequest(e, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	var health map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if health["status"] != "OK" {
		t.Errorf("status = %q, want OK", health["status"])
	}

	rec = doRequest(e, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	var home map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &home); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if home["message"] != "Weather API is running" {
		t.Errorf("message = %q", home["message"])
	}
}
