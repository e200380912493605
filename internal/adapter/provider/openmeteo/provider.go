// Package openmeteo fetches geocoding and daily weather forecasts from the
// Open-Meteo public APIs and digests them into a trip-level summary.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/seongjinkim/tripday-backend/internal/config"
	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// Provider fetches forecasts from Open-Meteo. Both endpoints are keyless.
type Provider struct {
	geocodingURL string
	forecastURL  string
	timezone     string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewProvider creates a Provider from WeatherConfig.
func NewProvider(cfg config.WeatherConfig, logger *slog.Logger) *Provider {
	return &Provider{
		geocodingURL: cfg.GeocodingBaseURL,
		forecastURL:  cfg.ForecastBaseURL,
		timezone:     cfg.Timezone,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		log:          logger.With("adapter", "openmeteo"),
	}
}

// NewProviderWithURLs creates a Provider pointed at explicit base URLs.
// Useful for testing with httptest servers.
func NewProviderWithURLs(geocodingURL, forecastURL string, logger *slog.Logger) *Provider {
	return &Provider{
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		timezone:     "Asia/Seoul",
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "openmeteo"),
	}
}

// Summary geocodes the region, fetches the daily forecast over the date range
// and digests it: max of the daily maxima, min of the daily minima, and the
// description of the most severe weather code seen.
func (p *Provider) Summary(ctx context.Context, region, startDate, endDate string) (*domain.WeatherSummary, error) {
	lat, lon, err := p.geocode(ctx, region)
	if err != nil {
		return nil, err
	}

	daily, err := p.forecast(ctx, lat, lon, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := digest(daily)
	if summary == nil {
		return nil, fmt.Errorf("openmeteo: empty forecast for %q", region)
	}

	p.log.DebugContext(ctx, "weather summary",
		slog.String("region", region),
		slog.Float64("max_temp", summary.MaxTemp),
		slog.Float64("min_temp", summary.MinTemp),
		slog.String("description", summary.Description),
	)

	return summary, nil
}

// geocode resolves a region name to coordinates using the first match.
func (p *Provider) geocode(ctx context.Context, region string) (lat, lon float64, err error) {
	reqURL := fmt.Sprintf("%s/search?name=%s&count=1", p.geocodingURL, url.QueryEscape(region))

	var result geocodingResponse
	if err := p.getJSON(ctx, reqURL, &result); err != nil {
		return 0, 0, fmt.Errorf("openmeteo: geocode %q: %w", region, err)
	}

	if len(result.Results) == 0 {
		return 0, 0, fmt.Errorf("openmeteo: region %q: %w", region, domain.ErrNotFound)
	}

	return result.Results[0].Latitude, result.Results[0].Longitude, nil
}

// forecast fetches daily min/max temperatures and weather codes for the range.
func (p *Provider) forecast(ctx context.Context, lat, lon float64, startDate, endDate string) (*dailyForecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,weather_code")
	q.Set("timezone", p.timezone)
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	reqURL := p.forecastURL + "/forecast?" + q.Encode()

	var result forecastResponse
	if err := p.getJSON(ctx, reqURL, &result); err != nil {
		return nil, fmt.Errorf("openmeteo: forecast: %w", err)
	}

	return &result.Daily, nil
}

// getJSON performs a GET with a single retry on 5xx or network errors.
func (p *Provider) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "openmeteo retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}
