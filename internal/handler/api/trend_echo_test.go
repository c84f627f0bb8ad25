package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
	"github.com/DevelopLee20/Nara-Chart/internal/domain/repository"
	"github.com/DevelopLee20/Nara-Chart/internal/service/cache"
	"github.com/DevelopLee20/Nara-Chart/internal/usecase"
	"github.com/DevelopLee20/Nara-Chart/pkg/logger"
)

// fakeSource serves a record count that depends on the region filter, so
// responses to different requests are distinguishable.
type fakeSource struct{}

func (fakeSource) List(ctx context.Context, skip, limit int) ([]models.BidRecord, int, error) {
	return fakeRecords(2), 2, nil
}

func (fakeSource) Search(ctx context.Context, p repository.SearchParams) ([]models.BidRecord, int, error) {
	n := 2
	if p.Region == "서울" {
		n = 1
	}
	return fakeRecords(n), n, nil
}

func (fakeSource) Organizations(ctx context.Context) ([]string, error) {
	return []string{"조달청", "한국도로공사"}, nil
}

func (fakeSource) Industries(ctx context.Context) ([]string, error) { return []string{"건설"}, nil }
func (fakeSource) Regions(ctx context.Context) ([]string, error)    { return []string{"서울"}, nil }

func fakeRecords(n int) []models.BidRecord {
	out := make([]models.BidRecord, 0, n)
	dates := []string{"2024-01-10", "2024-01-20"}
	for i := 0; i < n; i++ {
		v := float64(100 + 10*i)
		out = append(out, models.BidRecord{BidDate: dates[i], WinningPrice: &v})
	}
	return out
}

func newTestHandler(t *testing.T, debounce time.Duration) *Handler {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	src := fakeSource{}
	c := cache.NewTTLCache()
	trend := usecase.NewTrendUseCase(src, c, nil, log, usecase.TrendConfig{PageLimit: 1000, CacheTTL: time.Minute})
	records := usecase.NewRecordsUseCase(src, log)
	options := usecase.NewOptionsUseCase(src, c, log, time.Minute)
	return NewHandler(trend, records, options, log, debounce)
}

func newTestServer(t *testing.T, debounce time.Duration) *httptest.Server {
	t.Helper()
	e := echo.New()
	newTestHandler(t, debounce).RegisterRoutes(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer res.Body.Close()
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return res.StatusCode
}

func TestGetTrendEndpoint(t *testing.T) {
	srv := newTestServer(t, time.Millisecond)

	var body struct {
		Status int `json:"status"`
		Data   struct {
			Points []map[string]interface{} `json:"points"`
			Total  int                      `json:"total"`
		} `json:"data"`
	}
	code := getJSON(t, srv.URL+"/api/trend?keyword=도로", &body)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body.Data.Total != 2 || len(body.Data.Points) != 2 {
		t.Errorf("total = %d points = %d", body.Data.Total, len(body.Data.Points))
	}
}

func TestGetTrendRejectsBadMode(t *testing.T) {
	srv := newTestServer(t, time.Millisecond)
	if code := getJSON(t, srv.URL+"/api/trend?mode=bogus", nil); code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestGetTrendRejectsBadDate(t *testing.T) {
	srv := newTestServer(t, time.Millisecond)
	if code := getJSON(t, srv.URL+"/api/trend?date_from=01-02-2024", nil); code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestListRecordsEndpoint(t *testing.T) {
	srv := newTestServer(t, time.Millisecond)

	var body struct {
		Data struct {
			Rows  []models.BidRecord `json:"rows"`
			Total int64              `json:"total"`
		} `json:"data"`
	}
	code := getJSON(t, srv.URL+"/api/records", &body)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body.Data.Total != 2 || len(body.Data.Rows) != 2 {
		t.Errorf("total = %d rows = %d", body.Data.Total, len(body.Data.Rows))
	}
}

func TestListRecordsRejectsOversizedLimit(t *testing.T) {
	srv := newTestServer(t, time.Millisecond)
	if code := getJSON(t, srv.URL+"/api/records?limit=5000", nil); code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestFilterOptionEndpoints(t *testing.T) {
	srv := newTestServer(t, time.Millisecond)

	var body struct {
		Data []string `json:"data"`
	}
	code := getJSON(t, srv.URL+"/api/filters/organizations", &body)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(body.Data) != 2 || body.Data[0] != "조달청" {
		t.Errorf("organizations = %v", body.Data)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, time.Millisecond)
	var body map[string]string
	if code := getJSON(t, srv.URL+"/health", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["status"] != "ok" {
		t.Errorf("health body = %v", body)
	}
}
