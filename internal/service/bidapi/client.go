package bidapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
	drepo "github.com/DevelopLee20/Nara-Chart/internal/domain/repository"
	xhttp "github.com/DevelopLee20/Nara-Chart/pkg/http"
)

// Client implements repository.BidSource against the bid-data HTTP service.
// Requests carry Accept: application/json and a cookie jar, matching the
// cookie-credentialed upstream.
type Client struct {
	baseURL string
	client  *xhttp.Client
	metrics drepo.Metrics
}

// New creates a bid-data client.
func New(baseURL string, timeout time.Duration, metrics drepo.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout), xhttp.WithCookieJar()),
		metrics: metrics,
	}
}

// listResponse is the fixed wire shape of the list and search endpoints.
type listResponse struct {
	Total int                `json:"total"`
	Items []models.BidRecord `json:"items"`
}

// List fetches a page of bid records.
func (c *Client) List(ctx context.Context, skip, limit int) ([]models.BidRecord, int, error) {
	var res listResponse
	err := c.get(ctx, "/api/bids/", map[string][]string{
		"skip":  {strconv.Itoa(skip)},
		"limit": {strconv.Itoa(limit)},
	}, &res)
	if err != nil {
		return nil, 0, fmt.Errorf("list bids: %w", err)
	}
	return res.Items, res.Total, nil
}

// Search fetches bid records matching the given filters.
func (c *Client) Search(ctx context.Context, p drepo.SearchParams) ([]models.BidRecord, int, error) {
	q := map[string][]string{
		"skip":  {strconv.Itoa(p.Skip)},
		"limit": {strconv.Itoa(p.Limit)},
	}
	if p.Keyword != "" {
		q["keyword"] = []string{p.Keyword}
	}
	if p.Organization != "" {
		q["organization"] = []string{p.Organization}
	}
	if p.Industry != "" {
		q["industry"] = []string{p.Industry}
	}
	if p.Region != "" {
		q["region"] = []string{p.Region}
	}
	if p.BidDateFrom != "" {
		q["bid_date_from"] = []string{p.BidDateFrom}
	}
	if p.BidDateTo != "" {
		q["bid_date_to"] = []string{p.BidDateTo}
	}

	var res listResponse
	if err := c.get(ctx, "/api/bids/search", q, &res); err != nil {
		return nil, 0, fmt.Errorf("search bids: %w", err)
	}
	return res.Items, res.Total, nil
}

// Organizations fetches the distinct ordering-organization list.
func (c *Client) Organizations(ctx context.Context) ([]string, error) {
	return c.options(ctx, "/api/bids/filters/organizations")
}

// Industries fetches the distinct industry list.
func (c *Client) Industries(ctx context.Context) ([]string, error) {
	return c.options(ctx, "/api/bids/filters/industries")
}

// Regions fetches the distinct region list.
func (c *Client) Regions(ctx context.Context) ([]string, error) {
	return c.options(ctx, "/api/bids/filters/regions")
}

func (c *Client) options(ctx context.Context, path string) ([]string, error) {
	var res []string
	if err := c.get(ctx, path, nil, &res); err != nil {
		return nil, fmt.Errorf("filter options %s: %w", path, err)
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string][]string, dest interface{}) error {
	if c.metrics != nil {
		c.metrics.RecordFetch(path)
	}
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: query,
	}, dest)
	if err != nil && c.metrics != nil {
		c.metrics.RecordError("fetch")
	}
	return err
}

var _ drepo.BidSource = (*Client)(nil)
