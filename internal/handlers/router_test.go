package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epeers/fundsdash/internal/handlers"
	"github.com/epeers/fundsdash/internal/middleware"
	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/repository"
	"github.com/epeers/fundsdash/internal/services"
)

const fundsCSV = `Fund Name,Company,Category,NAV,Risk Rating
Alpha Equity Fund,ABL AMC,Equity,120.5,AA+(f)
Beta Income Fund,HBL AMC,Income,10.25,AA
Gamma Money Market,ABL AMC,Money Market,100,AAA(f)
Delta Balanced,MCB AMC,Balanced,55,A
Epsilon Equity,HBL AMC,Equity,,BBB
Zeta Income,MCB AMC,Income,10.25,
`

const performanceCSV = `Performance Summary,,
Fund Name,365 Days,3 Years
Alpha Equity Fund,12.5%,40
Gamma Money Market,5,
`

type testServer struct {
	t       *testing.T
	router  *gin.Engine
	dir     string
	session string
}

func newTestServer(t *testing.T, files map[string]string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	repo := repository.NewFileRepository(dir)
	datasets := services.NewDatasetService(repo, repo)
	_ = datasets.Refresh(context.Background())

	router := handlers.NewRouter(handlers.Deps{
		Datasets:   datasets,
		Sessions:   services.NewSessionStore(time.Hour),
		Dashboard:  services.NewDashboardService(2, 3),
		Comparison: services.NewComparisonService(),
	})
	return &testServer{t: t, router: router, dir: dir}
}

// do sends a request on the server's session and decodes a JSON response into out
func (s *testServer) do(method, path string, body any, out any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.session != "" {
		req.Header.Set(middleware.SessionHeader, s.session)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if id := w.Header().Get(middleware.SessionHeader); id != "" {
		s.session = id
	}
	if out != nil && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func loadedServer(t *testing.T) *testServer {
	return newTestServer(t, map[string]string{
		repository.PrimaryFileName:     fundsCSV,
		repository.PerformanceFileName: performanceCSV,
	})
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNoData_Returns503WithHint(t *testing.T) {
	s := newTestServer(t, nil)

	var resp models.ErrorResponse
	w := s.do(http.MethodGet, "/api/funds", nil, &resp)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "no_data", resp.Error)
	assert.Contains(t, resp.Hint, "funds_clean.csv")
}

func TestMissingColumns_Returns503WithColumnHint(t *testing.T) {
	s := newTestServer(t, map[string]string{repository.PrimaryFileName: "Scheme,Price\nA,1\n"})

	var resp models.ErrorResponse
	w := s.do(http.MethodGet, "/admin/status", nil, &resp)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, resp.Hint, "NAV")
}

func TestListFunds_FirstPage(t *testing.T) {
	s := loadedServer(t)

	var resp models.FundPageResponse
	w := s.do(http.MethodGet, "/api/funds", nil, &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, s.session)
	assert.Equal(t, 5, resp.Pagination.TotalItems)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "Alpha Equity Fund", resp.Rows[0][0])
	assert.Equal(t, "Page 1 of 3 | Showing 1-2 of 5 funds", resp.Pagination.Label)
	assert.Empty(t, resp.Warnings)
}

func TestFilters_PersistPerSession(t *testing.T) {
	s := loadedServer(t)

	var state models.SessionResponse
	w := s.do(http.MethodPut, "/api/session/filters", map[string]any{
		"categories": []string{"Income"},
		"reset_page": true,
	}, &state)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Income"}, state.State.Filters.Categories)

	var page models.FundPageResponse
	s.do(http.MethodGet, "/api/funds", nil, &page)
	assert.Equal(t, 2, page.Pagination.TotalItems)

	// a different session starts from the defaults
	other := &testServer{t: t, router: s.router}
	other.do(http.MethodGet, "/api/funds", nil, &page)
	assert.Equal(t, 5, page.Pagination.TotalItems)
}

func TestFilters_RejectInvalidUpdates(t *testing.T) {
	s := loadedServer(t)

	var resp models.ErrorResponse
	w := s.do(http.MethodPut, "/api/session/filters", map[string]any{"nav_min": 500}, &resp)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", resp.Error)

	w = s.do(http.MethodPut, "/api/session/filters", map[string]any{"risk_levels": []string{"Extreme"}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/session/sort", map[string]any{"column": "Nope"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/session/page", map[string]any{"page": 0}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaging_WarnsAtBoundaries(t *testing.T) {
	s := loadedServer(t)

	var resp models.SessionResponse
	s.do(http.MethodPost, "/api/session/page/prev", nil, &resp)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, models.WarnFirstPage, resp.Warnings[0].Code)

	s.do(http.MethodPut, "/api/session/page", map[string]any{"page": 3}, &resp)
	resp = models.SessionResponse{}
	s.do(http.MethodPost, "/api/session/page/next", nil, &resp)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, models.WarnLastPage, resp.Warnings[0].Code)
	assert.Equal(t, 3, resp.State.Filters.Page)
}

func TestSetPage_ClampedOnRender(t *testing.T) {
	s := loadedServer(t)
	s.do(http.MethodPut, "/api/session/page", map[string]any{"page": 99}, nil)

	var page models.FundPageResponse
	s.do(http.MethodGet, "/api/funds", nil, &page)
	assert.Equal(t, 3, page.Pagination.Page)

	var state models.SessionResponse
	s.do(http.MethodGet, "/api/session", nil, &state)
	assert.Equal(t, 3, state.State.Filters.Page)
}

func TestExport(t *testing.T) {
	s := loadedServer(t)
	s.do(http.MethodPut, "/api/session/sort", map[string]any{"column": "NAV", "descending": true}, nil)

	w := s.do(http.MethodGet, "/api/funds/export", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), handlers.ExportFileName)
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Fund Name,Company,Category,NAV,Risk Rating,Risk Level", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Alpha Equity Fund,"))
}

func TestFilterOptions(t *testing.T) {
	s := loadedServer(t)

	var resp models.FilterOptionsResponse
	w := s.do(http.MethodGet, "/api/filters/options", nil, &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Balanced", "Equity", "Income", "Money Market"}, resp.Categories)
	assert.Equal(t, 10.25, resp.NAVMin)
	assert.Equal(t, 120.5, resp.NAVMax)
	assert.True(t, resp.RiskEnabled)
}

func TestAnalyticsRoutes(t *testing.T) {
	s := loadedServer(t)

	var analytics models.AnalyticsResponse
	w := s.do(http.MethodGet, "/api/analytics", nil, &analytics)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, analytics.Metrics.Count)
	assert.Len(t, analytics.TopFunds, 3)

	var top []models.TopFund
	s.do(http.MethodGet, "/api/analytics/top", nil, &top)
	require.Len(t, top, 3)
	assert.Equal(t, "Alpha Equity Fund", top[0].FundName)

	var stats []models.RiskStat
	s.do(http.MethodGet, "/api/analytics/risk", nil, &stats)
	assert.NotEmpty(t, stats)
}

func TestPerformanceAndComparison(t *testing.T) {
	s := loadedServer(t)

	var state models.SessionResponse
	w := s.do(http.MethodPut, "/api/session/performance", map[string]any{"fund": "Alpha Equity Fund"}, &state)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.DefaultPerformancePeriod, state.State.Performance.Period)

	var perf models.FundPerformanceResponse
	s.do(http.MethodGet, "/api/performance", nil, &perf)
	assert.True(t, perf.Available)
	require.NotNil(t, perf.SelectedValue)
	assert.Equal(t, 40.0, *perf.SelectedValue)

	s.do(http.MethodPut, "/api/session/comparison", map[string]any{
		"funds": []string{"Alpha Equity Fund", "Gamma Money Market", "Delta Balanced"},
	}, &state)
	assert.Len(t, state.State.Comparison.Funds, 3)

	var cmp models.ComparisonResponse
	s.do(http.MethodGet, "/api/comparison", nil, &cmp)
	assert.Equal(t, "365 Days", cmp.Period)
	require.NotNil(t, cmp.Best)
	assert.Equal(t, "Alpha Equity Fund", cmp.Best.FundName)
	assert.Equal(t, []string{"Delta Balanced"}, cmp.MissingPerformance)

	var candidates models.CandidatesResponse
	s.do(http.MethodGet, "/api/comparison/candidates", nil, &candidates)
	assert.Len(t, candidates.Funds, 5)
}

func TestPerformanceUnavailableWarns(t *testing.T) {
	s := newTestServer(t, map[string]string{repository.PrimaryFileName: fundsCSV})

	var perf models.FundPerformanceResponse
	w := s.do(http.MethodGet, "/api/performance", nil, &perf)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, perf.Available)
	require.NotEmpty(t, perf.Warnings)
	assert.Equal(t, models.WarnPerformanceUnavailable, perf.Warnings[0].Code)
}

func TestAdminStatusAndRefresh(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(http.MethodPost, "/admin/refresh", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	require.NoError(t, os.WriteFile(filepath.Join(s.dir, repository.PrimaryFileName), []byte(fundsCSV), 0o644))

	var status models.StatusResponse
	w = s.do(http.MethodPost, "/admin/refresh", nil, &status)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, repository.PrimaryFileName, status.Source)
	assert.Equal(t, 6, status.Rows)
	assert.False(t, status.Performance)

	w = s.do(http.MethodGet, "/admin/status", nil, &status)
	assert.Equal(t, http.StatusOK, w.Code)
}
