package di

import (
	"fmt"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/repository"
	"github.com/DevelopLee20/Nara-Chart/internal/handler/api"
	"github.com/DevelopLee20/Nara-Chart/internal/service/bidapi"
	"github.com/DevelopLee20/Nara-Chart/internal/service/cache"
	"github.com/DevelopLee20/Nara-Chart/internal/usecase"
	"github.com/DevelopLee20/Nara-Chart/pkg/config"
	xhttp "github.com/DevelopLee20/Nara-Chart/pkg/http"
	"github.com/DevelopLee20/Nara-Chart/pkg/logger"
	"github.com/DevelopLee20/Nara-Chart/pkg/metrics"
	"github.com/DevelopLee20/Nara-Chart/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the response cache: Redis when configured, an
// in-process TTL cache otherwise.
func ProvideCache(cfg *config.Config) cache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return cache.NewTTLCache()
}

// ProvideBidSource creates the bid-data service client.
func ProvideBidSource(cfg *config.Config, m repository.Metrics) repository.BidSource {
	return bidapi.New(cfg.BidAPI.BaseURL, cfg.BidAPI.Timeout, m)
}

// ProvideTrendUseCase creates the trend analysis use case.
func ProvideTrendUseCase(
	source repository.BidSource,
	c cache.BytesCache,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.TrendUseCase {
	return usecase.NewTrendUseCase(source, c, m, log, usecase.TrendConfig{
		EMASpan:        cfg.Trend.EMASpan,
		LOESSBandwidth: cfg.Trend.LOESSBandwidth,
		ForecastMonths: cfg.Trend.ForecastMonths,
		PageLimit:      cfg.BidAPI.PageLimit,
		CacheTTL:       cfg.Cache.TrendTTL,
	})
}

// ProvideRecordsUseCase creates the record listing use case.
func ProvideRecordsUseCase(source repository.BidSource, log *logger.Logger) *usecase.RecordsUseCase {
	return usecase.NewRecordsUseCase(source, log)
}

// ProvideOptionsUseCase creates the filter-options use case.
func ProvideOptionsUseCase(
	source repository.BidSource,
	c cache.BytesCache,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.OptionsUseCase {
	return usecase.NewOptionsUseCase(source, c, log, cfg.Cache.OptionsTTL)
}

// ProvideHandler creates the HTTP API handler.
func ProvideHandler(
	trend *usecase.TrendUseCase,
	records *usecase.RecordsUseCase,
	options *usecase.OptionsUseCase,
	log *logger.Logger,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewHandler(trend, records, options, log, cfg.Trend.Debounce)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler xhttp.Handler,
	options *usecase.OptionsUseCase,
	c cache.BytesCache,
) *server.App {
	return server.New(cfg, log, handler, options, c)
}
