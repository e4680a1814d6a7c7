package web

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const wsWriteTimeout = 5 * time.Second

// handleWS sender gjeldende tilstand og deretter hver endring som JSON.
// Meldinger fra klienten ignoreres.
func (s *Server) handleWS(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.opts.OriginPatterns,
	})
	if err != nil {
		slog.Warn("Websocket-oppkobling feilet", "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "uventet avslutning")

	ctx := conn.CloseRead(c.Request.Context())
	states, unsubscribe := s.states.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server stopper")
				return
			}
			if err := writeState(ctx, conn, state); err != nil {
				slog.Debug("Websocket-klient borte", "error", err)
				return
			}
		}
	}
}

func writeState(ctx context.Context, conn *websocket.Conn, v any) error {
	ctx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, v)
}
