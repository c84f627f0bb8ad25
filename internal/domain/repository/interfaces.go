package repository

import (
	"context"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
)

// SearchParams are the optional filters of the bid-data search endpoint.
type SearchParams struct {
	Keyword      string
	Organization string
	Industry     string
	Region       string
	BidDateFrom  string
	BidDateTo    string
	Skip         int
	Limit        int
}

// BidSource provides read access to the external bid-data service.
type BidSource interface {
	List(ctx context.Context, skip, limit int) ([]models.BidRecord, int, error)
	Search(ctx context.Context, p SearchParams) ([]models.BidRecord, int, error)
	Organizations(ctx context.Context) ([]string, error)
	Industries(ctx context.Context) ([]string, error)
	Regions(ctx context.Context) ([]string, error)
}

// Metrics records domain-level counters and timings.
type Metrics interface {
	RecordFetch(endpoint string)
	RecordError(kind string)
	RecordMalformedRecord()
	RecordPipelineRun(seconds float64, points int)
}
