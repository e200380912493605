//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/seongjinkim/tripday-backend/internal/adapter/postgres"
	pgbudget "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/budget"
	pgpacking "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/packing"
	pgplace "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/place"
	pgplan "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/plan"
	pgreview "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/review"
	pgschedule "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/schedule"
	"github.com/seongjinkim/tripday-backend/internal/adapter/postgres/testhelper"
	"github.com/seongjinkim/tripday-backend/internal/config"
	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/internal/service/budget"
	"github.com/seongjinkim/tripday-backend/internal/service/packing"
	"github.com/seongjinkim/tripday-backend/internal/service/place"
	"github.com/seongjinkim/tripday-backend/internal/service/plan"
	"github.com/seongjinkim/tripday-backend/internal/service/review"
	"github.com/seongjinkim/tripday-backend/internal/service/schedule"
	"github.com/seongjinkim/tripday-backend/internal/service/share"
	"github.com/seongjinkim/tripday-backend/internal/transport/middleware"
	"github.com/seongjinkim/tripday-backend/internal/transport/rest"
)

const testShareSecret = "e2e-share-secret-0123456789abcdef"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// noopWeather satisfies the plan service's weather provider without network
// access. E2E weather tests would need a stub HTTP server; the provider has
// its own unit tests.
type noopWeather struct{}

func (noopWeather) Summary(_ context.Context, _, _, _ string) (*domain.WeatherSummary, error) {
	return &domain.WeatherSummary{MaxTemp: 20, MinTemp: 10, Description: "clear sky"}, nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	planRepo := pgplan.New(pool)
	placeRepo := pgplace.New(pool)
	scheduleRepo := pgschedule.New(pool)
	budgetRepo := pgbudget.New(pool)
	packingRepo := pgpacking.New(pool)
	reviewRepo := pgreview.New(pool)

	planSvc := plan.NewService(logger, planRepo, txm, noopWeather{})
	placeSvc := place.NewService(logger, placeRepo, planRepo)
	scheduleSvc := schedule.NewService(logger, scheduleRepo, placeRepo, planRepo)
	budgetSvc := budget.NewService(logger, budgetRepo, planRepo)
	packingSvc := packing.NewService(logger, packingRepo, planRepo)
	reviewSvc := review.NewService(logger, reviewRepo, planRepo)
	shareSvc := share.NewService(logger, planRepo, testShareSecret, "tripday-e2e", time.Hour)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, "e2e"),
		Plans:    rest.NewPlanHandler(logger, planSvc, shareSvc),
		Places:   rest.NewPlaceHandler(logger, placeSvc),
		Schedule: rest.NewScheduleHandler(logger, scheduleSvc),
		Budget:   rest.NewBudgetHandler(logger, budgetSvc),
		Packing:  rest.NewPackingHandler(logger, packingSvc),
		Reviews:  rest.NewReviewHandler(logger, reviewSvc),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{AllowedOrigins: "*"}),
		middleware.Identity,
		middleware.Logger(logger),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// restRequest performs an HTTP request with an optional user identity and
// JSON body, and returns the raw response.
func restRequest(t *testing.T, ts *testServer, method, path string, userID uuid.UUID, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != uuid.Nil {
		req.Header.Set("X-User-Id", userID.String())
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes a JSON response body into a map and closes it.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// decodeList decodes a JSON array response body and closes it.
func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var raw []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	return raw
}

// createPlan creates a plan owned by userID and returns its ID.
func createPlan(t *testing.T, ts *testServer, userID uuid.UUID) uuid.UUID {
	t.Helper()

	resp := restRequest(t, ts, http.MethodPost, "/api/v1/plans", userID, map[string]any{
		"title":      "Jeju long weekend",
		"start_date": "2026-05-01",
		"end_date":   "2026-05-03",
		"region":     "Jeju",
		"owner_name": "Mina",
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create plan: %v", body)

	id, err := uuid.Parse(body["id"].(string))
	require.NoError(t, err)
	return id
}

// createPlace adds a catalog place at the given coordinates and returns its ID.
func createPlace(t *testing.T, ts *testServer, userID uuid.UUID, name string, lat, lon float64) uuid.UUID {
	t.Helper()

	resp := restRequest(t, ts, http.MethodPost, "/api/v1/places", userID, map[string]any{
		"name":      name,
		"category":  "tourist_attraction",
		"latitude":  lat,
		"longitude": lon,
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create place: %v", body)

	id, err := uuid.Parse(body["id"].(string))
	require.NoError(t, err)
	return id
}

// createVisit schedules a place on a day and returns the entry ID.
func createVisit(t *testing.T, ts *testServer, userID, planID, placeID uuid.UUID, date, startTime string) uuid.UUID {
	t.Helper()

	path := fmt.Sprintf("/api/v1/plans/%s/days/%s/visits", planID, date)
	resp := restRequest(t, ts, http.MethodPost, path, userID, map[string]any{
		"place_id":   placeID.String(),
		"start_time": startTime,
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create visit: %v", body)

	id, err := uuid.Parse(body["id"].(string))
	require.NoError(t, err)
	return id
}
