package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
	"github.com/DevelopLee20/Nara-Chart/internal/usecase"
	xhttp "github.com/DevelopLee20/Nara-Chart/pkg/http"
	"github.com/DevelopLee20/Nara-Chart/pkg/logger"
)

// Handler exposes the trend dashboard API.
type Handler struct {
	trend    *usecase.TrendUseCase
	records  *usecase.RecordsUseCase
	options  *usecase.OptionsUseCase
	log      *logger.Logger
	debounce time.Duration
}

func NewHandler(trend *usecase.TrendUseCase, records *usecase.RecordsUseCase, options *usecase.OptionsUseCase, log *logger.Logger, debounce time.Duration) *Handler {
	return &Handler{trend: trend, records: records, options: options, log: log, debounce: debounce}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.GET("/trend", h.GetTrend)
	g.GET("/records", h.ListRecords)
	g.GET("/filters/organizations", h.Organizations)
	g.GET("/filters/industries", h.Industries)
	g.GET("/filters/regions", h.Regions)

	e.GET("/ws/trend", h.TrendSocket)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetTrend computes the chart series and statistics for the query filters.
func (h *Handler) GetTrend(c echo.Context) error {
	var req models.TrendRequest
	if verr := xhttp.ReadAndValidateRequest(c, &req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	b, err := h.trend.GetTrend(c.Request().Context(), req)
	if err != nil {
		h.log.Error("trend computation failed", logger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, b)
}

// ListRecords returns one page of the raw bid records behind the chart.
func (h *Handler) ListRecords(c echo.Context) error {
	var req models.RecordsRequest
	if verr := xhttp.ReadAndValidateRequest(c, &req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	items, total, err := h.records.List(c.Request().Context(), req)
	if err != nil {
		h.log.Error("record listing failed", logger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, items, int64(total))
}

func (h *Handler) Organizations(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.options.Organizations(c.Request().Context()))
}

func (h *Handler) Industries(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.options.Industries(c.Request().Context()))
}

func (h *Handler) Regions(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.options.Regions(c.Request().Context()))
}

var _ xhttp.Handler = (*Handler)(nil)
