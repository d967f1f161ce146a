package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Robbie-Perry/ShadyTimes/pkg/dashboard"
	"github.com/Robbie-Perry/ShadyTimes/pkg/metrics"
)

const liveTick = time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// makeLiveHandler streams a frame per second over a websocket. Frames are
// recomputed from the already-loaded series; the feed never triggers a
// fetch.
func makeLiveHandler(c *dashboard.Controller, log *zap.SugaredLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Errorw("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		id := uuid.New().String()
		metrics.LiveConnectionOpened()
		defer metrics.LiveConnectionClosed()
		log.Infow("live feed connected", "conn", id, "remote", r.RemoteAddr)

		// First frame right away so clients render without waiting out a
		// tick.
		if err := conn.WriteJSON(c.LiveFrame()); err != nil {
			log.Infow("live feed closed", "conn", id, "error", err)
			return
		}

		ticker := time.NewTicker(liveTick)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := conn.WriteJSON(c.LiveFrame()); err != nil {
					log.Infow("live feed closed", "conn", id, "error", err)
					return
				}
			case <-r.Context().Done():
				log.Infow("live feed canceled", "conn", id)
				return
			}
		}
	})
}
