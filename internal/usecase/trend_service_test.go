package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
	"github.com/DevelopLee20/Nara-Chart/internal/domain/repository"
	"github.com/DevelopLee20/Nara-Chart/internal/service/cache"
	"github.com/DevelopLee20/Nara-Chart/pkg/logger"
)

type fakeSource struct {
	records     []models.BidRecord
	searchCalls int
	listCalls   int
	err         error
	lastParams  repository.SearchParams
}

func (f *fakeSource) List(ctx context.Context, skip, limit int) ([]models.BidRecord, int, error) {
	f.listCalls++
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.records, len(f.records), nil
}

func (f *fakeSource) Search(ctx context.Context, p repository.SearchParams) ([]models.BidRecord, int, error) {
	f.searchCalls++
	f.lastParams = p
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.records, len(f.records), nil
}

func (f *fakeSource) Organizations(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []string{"조달청"}, nil
}

func (f *fakeSource) Industries(ctx context.Context) ([]string, error) { return []string{"건설"}, nil }
func (f *fakeSource) Regions(ctx context.Context) ([]string, error)   { return []string{"서울"}, nil }

type countingMetrics struct {
	malformed int
	runs      int
}

func (m *countingMetrics) RecordFetch(string)                 {}
func (m *countingMetrics) RecordError(string)                 {}
func (m *countingMetrics) RecordMalformedRecord()             { m.malformed++ }
func (m *countingMetrics) RecordPipelineRun(_ float64, _ int) { m.runs++ }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func recordsFixture() []models.BidRecord {
	mk := func(date string, v float64) models.BidRecord {
		return models.BidRecord{BidDate: date, WinningPrice: &v}
	}
	return []models.BidRecord{
		mk("2024-01-10", 100),
		mk("2024-01-20", 110),
		mk("2024-01-30", 105),
	}
}

func newTrendUseCase(src repository.BidSource, m repository.Metrics, t *testing.T) *TrendUseCase {
	return NewTrendUseCase(src, cache.NewTTLCache(), m, testLogger(t), TrendConfig{
		PageLimit: 1000,
		CacheTTL:  time.Minute,
	})
}

func TestGetTrendProducesChartSeries(t *testing.T) {
	src := &fakeSource{records: recordsFixture()}
	u := newTrendUseCase(src, &countingMetrics{}, t)

	b, err := u.GetTrend(context.Background(), models.TrendRequest{Keyword: "도로"})
	if err != nil {
		t.Fatalf("get trend: %v", err)
	}

	var out struct {
		Points []map[string]interface{} `json:"points"`
		Stats  map[string]struct {
			Avg *float64 `json:"avg"`
		} `json:"stats"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Total != 3 || len(out.Points) != 3 {
		t.Fatalf("total = %d, points = %d", out.Total, len(out.Points))
	}
	if out.Points[0]["bid_date"] != "2024-01-10" {
		t.Errorf("first point date = %v", out.Points[0]["bid_date"])
	}
	if got := out.Stats["winning_price"].Avg; got == nil || *got != 105 {
		t.Errorf("winning price avg = %v, want 105", got)
	}
	if src.lastParams.Keyword != "도로" {
		t.Errorf("keyword not passed to source: %+v", src.lastParams)
	}
}

func TestGetTrendCachesByRequest(t *testing.T) {
	src := &fakeSource{records: recordsFixture()}
	u := newTrendUseCase(src, &countingMetrics{}, t)

	req := models.TrendRequest{Region: "서울", Mode: "amount"}
	first, err := u.GetTrend(context.Background(), req)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := u.GetTrend(context.Background(), req)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if src.searchCalls != 1 {
		t.Errorf("search calls = %d, want 1 (second request should hit cache)", src.searchCalls)
	}
	if string(first) != string(second) {
		t.Errorf("cached response differs from computed one")
	}

	// A different request must not reuse the cached entry.
	if _, err := u.GetTrend(context.Background(), models.TrendRequest{Region: "부산"}); err != nil {
		t.Fatalf("third: %v", err)
	}
	if src.searchCalls != 2 {
		t.Errorf("search calls = %d, want 2", src.searchCalls)
	}
}

func TestGetTrendCountsMalformedRecords(t *testing.T) {
	v := 100.0
	src := &fakeSource{records: []models.BidRecord{
		{BidDate: "2024-01-10", WinningPrice: &v},
		{BidDate: "not-a-date", WinningPrice: &v},
		{BidDate: "", WinningPrice: &v},
	}}
	m := &countingMetrics{}
	u := newTrendUseCase(src, m, t)

	if _, err := u.GetTrend(context.Background(), models.TrendRequest{}); err != nil {
		t.Fatalf("get trend: %v", err)
	}
	if m.malformed != 2 {
		t.Errorf("malformed = %d, want 2", m.malformed)
	}
	if m.runs != 1 {
		t.Errorf("pipeline runs = %d, want 1", m.runs)
	}
}

func TestGetTrendPropagatesSourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("upstream down")}
	u := newTrendUseCase(src, &countingMetrics{}, t)

	if _, err := u.GetTrend(context.Background(), models.TrendRequest{}); err == nil {
		t.Fatalf("expected error when source fails")
	}
}

func TestVisibleFields(t *testing.T) {
	if got := visibleFields(""); got != nil {
		t.Errorf("empty input: %v", got)
	}
	if got := visibleFields(" , "); got != nil {
		t.Errorf("blank input: %v", got)
	}
	got := visibleFields("winning_price, base_price")
	if len(got) != 2 || !got["winning_price"] || !got["base_price"] {
		t.Errorf("parsed set = %v", got)
	}
}
