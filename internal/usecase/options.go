package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/repository"
	"github.com/DevelopLee20/Nara-Chart/internal/service/cache"
	"github.com/DevelopLee20/Nara-Chart/pkg/logger"
)

// OptionsUseCase serves the distinct filter-option lists (organizations,
// industries, regions). Lists are cached and refreshed on a schedule; an
// upstream failure degrades to an empty list instead of failing the chart.
type OptionsUseCase struct {
	source repository.BidSource
	cache  cache.BytesCache
	log    *logger.Logger
	ttl    time.Duration
}

func NewOptionsUseCase(source repository.BidSource, c cache.BytesCache, log *logger.Logger, ttl time.Duration) *OptionsUseCase {
	return &OptionsUseCase{source: source, cache: c, log: log, ttl: ttl}
}

func (u *OptionsUseCase) Organizations(ctx context.Context) []string {
	return u.load(ctx, "options:organizations", u.source.Organizations)
}

func (u *OptionsUseCase) Industries(ctx context.Context) []string {
	return u.load(ctx, "options:industries", u.source.Industries)
}

func (u *OptionsUseCase) Regions(ctx context.Context) []string {
	return u.load(ctx, "options:regions", u.source.Regions)
}

func (u *OptionsUseCase) load(ctx context.Context, key string, fetch func(context.Context) ([]string, error)) []string {
	if u.cache != nil {
		if b, ok, err := u.cache.GetBytes(key); err == nil && ok {
			var out []string
			if json.Unmarshal(b, &out) == nil {
				return out
			}
		}
	}

	out, err := fetch(ctx)
	if err != nil {
		u.log.Warn("filter options unavailable", logger.String("key", key), logger.Error(err))
		return []string{}
	}
	if out == nil {
		out = []string{}
	}
	u.store(key, out)
	return out
}

func (u *OptionsUseCase) store(key string, out []string) {
	if u.cache == nil {
		return
	}
	b, err := json.Marshal(out)
	if err != nil {
		return
	}
	if err := u.cache.SetBytes(key, b, u.ttl); err != nil {
		u.log.Warn("options cache write failed", logger.String("key", key), logger.Error(err))
	}
}

// RefreshAll re-fetches every option list, replacing the cached copies.
func (u *OptionsUseCase) RefreshAll(ctx context.Context) {
	for key, fetch := range map[string]func(context.Context) ([]string, error){
		"options:organizations": u.source.Organizations,
		"options:industries":    u.source.Industries,
		"options:regions":       u.source.Regions,
	} {
		out, err := fetch(ctx)
		if err != nil {
			u.log.Warn("options refresh failed", logger.String("key", key), logger.Error(err))
			continue
		}
		u.store(key, out)
	}
}

// StartRefresher schedules RefreshAll on the given cron spec and runs one
// refresh immediately in the background to warm the cache.
func (u *OptionsUseCase) StartRefresher(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		u.RefreshAll(ctx)
	}); err != nil {
		return nil, err
	}
	c.Start()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		u.RefreshAll(ctx)
	}()
	return c, nil
}
