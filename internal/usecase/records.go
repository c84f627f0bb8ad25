package usecase

import (
	"context"
	"fmt"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
	"github.com/DevelopLee20/Nara-Chart/internal/domain/repository"
	"github.com/DevelopLee20/Nara-Chart/pkg/logger"
)

// RecordsUseCase exposes the raw paginated bid records behind the chart,
// for tabular views.
type RecordsUseCase struct {
	source repository.BidSource
	log    *logger.Logger
}

func NewRecordsUseCase(source repository.BidSource, log *logger.Logger) *RecordsUseCase {
	return &RecordsUseCase{source: source, log: log}
}

// List returns one page of records. Filterless requests use the cheaper
// list endpoint.
func (u *RecordsUseCase) List(ctx context.Context, req models.RecordsRequest) ([]models.BidRecord, int, error) {
	var (
		items []models.BidRecord
		total int
		err   error
	)
	if req.Keyword == "" && req.Organization == "" && req.Industry == "" && req.Region == "" &&
		req.DateFrom == "" && req.DateTo == "" {
		items, total, err = u.source.List(ctx, req.Skip, req.Limit)
	} else {
		items, total, err = u.source.Search(ctx, repository.SearchParams{
			Keyword:      req.Keyword,
			Organization: req.Organization,
			Industry:     req.Industry,
			Region:       req.Region,
			BidDateFrom:  req.DateFrom,
			BidDateTo:    req.DateTo,
			Skip:         req.Skip,
			Limit:        req.Limit,
		})
	}
	if err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}
	if items == nil {
		items = []models.BidRecord{}
	}
	return items, total, nil
}
