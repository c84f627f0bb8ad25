package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
	"github.com/DevelopLee20/Nara-Chart/internal/domain/repository"
	"github.com/DevelopLee20/Nara-Chart/internal/service/cache"
	"github.com/DevelopLee20/Nara-Chart/pkg/logger"
)

// TrendConfig carries the tunable analysis parameters.
type TrendConfig struct {
	EMASpan        int
	LOESSBandwidth float64
	ForecastMonths int
	PageLimit      int
	CacheTTL       time.Duration
}

// TrendUseCase fetches bid records and turns them into chart-ready trend
// output. Computed responses are cached by their full request so repeated
// filter changes hit the upstream service at most once per TTL.
type TrendUseCase struct {
	source  repository.BidSource
	cache   cache.BytesCache
	metrics repository.Metrics
	log     *logger.Logger
	cfg     TrendConfig
}

func NewTrendUseCase(source repository.BidSource, c cache.BytesCache, m repository.Metrics, log *logger.Logger, cfg TrendConfig) *TrendUseCase {
	return &TrendUseCase{source: source, cache: c, metrics: m, log: log, cfg: cfg}
}

// GetTrend returns the encoded TrendResult for the request. The encoding is
// returned as-is so handlers and the websocket session can write it without
// a decode round trip.
func (u *TrendUseCase) GetTrend(ctx context.Context, req models.TrendRequest) (json.RawMessage, error) {
	key := trendCacheKey(req)
	if u.cache != nil {
		if b, ok, err := u.cache.GetBytes(key); err == nil && ok {
			return b, nil
		} else if err != nil {
			u.log.Warn("trend cache read failed", logger.Error(err))
		}
	}

	records, _, err := u.source.Search(ctx, repository.SearchParams{
		Keyword:      req.Keyword,
		Organization: req.Organization,
		Industry:     req.Industry,
		Region:       req.Region,
		BidDateFrom:  req.DateFrom,
		BidDateTo:    req.DateTo,
		Skip:         0,
		Limit:        u.cfg.PageLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch bid records: %w", err)
	}

	start := time.Now()
	result, malformed := ComputeTrend(PipelineInput{
		Records:        records,
		DateFrom:       req.DateFrom,
		DateTo:         req.DateTo,
		Mode:           models.NormalizeMode(req.Mode),
		Visible:        visibleFields(req.Fields),
		ShowEMA:        req.ShowEMA,
		ShowLOESS:      req.ShowLOESS,
		EMASpan:        u.cfg.EMASpan,
		LOESSBandwidth: u.cfg.LOESSBandwidth,
		ForecastMonths: u.cfg.ForecastMonths,
	})

	if u.metrics != nil {
		for i := 0; i < malformed; i++ {
			u.metrics.RecordMalformedRecord()
		}
		u.metrics.RecordPipelineRun(time.Since(start).Seconds(), len(result.Points))
	}
	if malformed > 0 {
		u.log.Warn("records excluded for malformed bid date", logger.Int("count", malformed))
	}

	b, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode trend result: %w", err)
	}
	if u.cache != nil {
		if err := u.cache.SetBytes(key, b, u.cfg.CacheTTL); err != nil {
			u.log.Warn("trend cache write failed", logger.Error(err))
		}
	}
	return b, nil
}

// trendCacheKey is deterministic over every request field that affects the
// output.
func trendCacheKey(req models.TrendRequest) string {
	b, _ := json.Marshal(req)
	return "trend:" + string(b)
}

// visibleFields parses the comma-separated fields filter into a set.
// Empty input means no restriction.
func visibleFields(s string) map[string]bool {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	set := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			set[f] = true
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
