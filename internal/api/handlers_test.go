package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
)

type countingGateway struct {
	calls  atomic.Int32
	search func(req domain.SearchRequest) (domain.SearchResult, error)
}

func (g *countingGateway) Name() string { return "counting" }

func (g *countingGateway) Search(_ context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	g.calls.Add(1)
	if g.search == nil {
		return domain.SearchResult{}, nil
	}
	return g.search(req)
}

// stubService returns canned results for handler error paths
type stubService struct {
	intel.Service
	reportErr error
}

func (s stubService) Report(context.Context, domain.QueryContext) (domain.Report, error) {
	return domain.Report{}, s.reportErr
}

func newTestMux(t *testing.T, svc intel.Service) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewHandler(svc, logging.NewNop()).Register(mux)
	return mux
}

func newGatewayMux(t *testing.T, gw intel.Gateway) *http.ServeMux {
	t.Helper()
	svc, err := intel.NewServiceWithDeps(gw, logging.NewNop())
	require.NoError(t, err)
	return newTestMux(t, svc)
}

func serve(h http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestIntelligenceRequiresCompany(t *testing.T) {
	gw := &countingGateway{}
	mux := newGatewayMux(t, gw)

	for _, target := range []string{"/intelligence", "/intelligence?location=Texas", "/intelligence?company=%20%20"} {
		t.Run(target, func(t *testing.T) {
			rec, body := serve(mux, target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Company name is required", body["error"])
			assert.Equal(t, usageHint, body["usage"])
		})
	}
	assert.Equal(t, int32(0), gw.calls.Load())
}

func TestIntelligenceSucceedsWhenHiringFails(t *testing.T) {
	gw := &countingGateway{search: func(req domain.SearchRequest) (domain.SearchResult, error) {
		if req.Engine == domain.EngineJobs {
			return domain.SearchResult{}, errors.New("serpapi: API error (401): Invalid API key")
		}
		return domain.SearchResult{}, nil
	}}
	mux := newGatewayMux(t, gw)

	rec, body := serve(mux, "/intelligence?company=Acme+Health&location=Texas")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, int32(3), gw.calls.Load())

	data := body["data"].(map[string]any)
	assert.Equal(t, "Acme Health", data["company"])
	assert.Equal(t, "Texas", data["location"])
	assert.Equal(t, "LOW", data["priority_level"])
	assert.NotEmpty(t, data["report_id"])

	hiring := data["hiring_activity"].(map[string]any)
	assert.EqualValues(t, 0, hiring["recent_postings_count"])
	assert.Equal(t, []any{}, hiring["postings"])
}

func TestIntelligenceAggregationFailure(t *testing.T) {
	svc := stubService{reportErr: &intel.AggregationError{Company: "Acme", Err: errors.New("boom")}}
	mux := newTestMux(t, svc)

	rec, body := serve(mux, "/intelligence?company=Acme")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to gather intelligence", body["error"])
	assert.Equal(t, "Intelligence gathering failed: boom", body["details"])
	assert.Equal(t, "Acme", body["company"])
	assert.Nil(t, body["location"])
	assert.Contains(t, body, "location")
}

func TestIntelligenceHealth(t *testing.T) {
	rec, body := serve(newGatewayMux(t, &countingGateway{}), "/intelligence/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, serviceName, body["service"])
	assert.Equal(t, "operational", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Contains(t, body["endpoints"], "main")
}

func TestLegacyRoutes(t *testing.T) {
	var last domain.SearchRequest
	gw := &countingGateway{search: func(req domain.SearchRequest) (domain.SearchResult, error) {
		last = req
		return domain.SearchResult{
			Jobs: []domain.RawJob{{Title: "CT Tech"}},
			News: []domain.RawNews{{Title: "HCA opens wing", Source: "AP"}},
		}, nil
	}}
	mux := newGatewayMux(t, gw)

	rec, body := serve(mux, "/jobs?company=HCA&city=Dallas&industry=imaging")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HCA imaging", last.Query)
	assert.Equal(t, "Dallas", last.Location)
	jobs := body["results"].([]any)
	require.Len(t, jobs, 1)
	assert.Equal(t, "N/A", jobs[0].(map[string]any)["company"])

	rec, body = serve(mux, "/news?company=HCA&signals=new_ceo&signals=expansion")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"HCA" ("new ceo" OR "expansion")`, last.Query)
	news := body["results"].([]any)
	require.Len(t, news, 1)
	assert.Equal(t, "AP", news[0].(map[string]any)["source"])

	rec, body = serve(mux, "/search?company=HCA")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.EngineWeb, last.Engine)
	assert.Equal(t, []any{}, body["results"])
}

func TestLegacyRouteGatewayFailure(t *testing.T) {
	gw := &countingGateway{search: func(domain.SearchRequest) (domain.SearchResult, error) {
		return domain.SearchResult{}, errors.New("serpapi: missing API key")
	}}
	mux := newGatewayMux(t, gw)

	for _, target := range []string{"/jobs?company=HCA", "/news?company=HCA", "/search?company=HCA"} {
		rec, body := serve(mux, target)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, target)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "missing API key")
	}
}

func TestRoutesRejectOtherMethods(t *testing.T) {
	mux := newGatewayMux(t, &countingGateway{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/intelligence?company=HCA", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
