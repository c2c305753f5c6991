package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dd0wney/cluso-graphview/pkg/logging"
)

// frameInterval is how often render frames are pushed to websocket
// clients. It tracks a 60Hz display rate, not the simulation tick
// rate; the two are decoupled.
const frameInterval = 16 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 32 * 1024,
	// The engine serves a local rendering collaborator; same-origin
	// policy is the host application's concern.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleFrames upgrades the connection and streams read-only render
// snapshots until the client disconnects.
func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("frame stream upgrade failed", logging.Error(err))
		return
	}
	defer conn.Close()

	s.log.Info("frame stream connected", logging.String("remote", conn.RemoteAddr().String()))

	// Drain control messages so pings and close frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for range ticker.C {
		snap := s.engine.Snapshot()
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(snap); err != nil {
			s.log.Debug("frame stream closed", logging.Error(err))
			return
		}
	}
}
