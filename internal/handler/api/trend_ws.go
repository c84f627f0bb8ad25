package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
	"github.com/DevelopLee20/Nara-Chart/internal/usecase"
	"github.com/DevelopLee20/Nara-Chart/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// TrendSocket streams trend results over a websocket. Each incoming message
// is a filter change; rapid changes are debounced, and only the newest
// request per connection ever produces a reply.
func (h *Handler) TrendSocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	s := &trendSession{
		conn:     conn,
		trend:    h.trend,
		log:      h.log,
		debounce: h.debounce,
	}
	s.run(c.Request().Context())
	return nil
}

type trendSession struct {
	conn     *websocket.Conn
	trend    *usecase.TrendUseCase
	log      *logger.Logger
	debounce time.Duration

	// mu guards seq and serializes writes to conn.
	mu  sync.Mutex
	seq uint64
}

type wsError struct {
	Error string `json:"error"`
}

func (s *trendSession) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		var req models.TrendRequest
		if err := s.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("trend socket closed", logger.Error(err))
			}
			return
		}

		s.mu.Lock()
		s.seq++
		seq := s.seq
		s.mu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(s.debounce, func() {
			s.compute(ctx, seq, req)
		})
	}
}

// compute runs the pipeline for one debounced request. The sequence number
// taken at read time is compared again before writing, so a reply that was
// superseded while computing is dropped instead of reaching the client out
// of order.
func (s *trendSession) compute(ctx context.Context, seq uint64, req models.TrendRequest) {
	b, err := s.trend.GetTrend(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return
	}
	if err != nil {
		s.log.Warn("trend socket computation failed", logger.Error(err))
		_ = s.conn.WriteJSON(wsError{Error: "trend computation failed"})
		return
	}
	_ = s.conn.WriteMessage(websocket.TextMessage, b)
}
