package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/osd"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

// reply is sent back to a client for every inbound frame.
type reply struct {
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

const (
	replyAck      = "ack"
	replyDropped  = "dropped"
	replyError    = "error"
	replyPong     = "pong"
	pingFrameType = "ping"
)

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"status":  "running",
		"version": config.AppVersion,
		"clients": s.ClientCount(),
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleWebSocket upgrades the connection and reads notifications until the
// client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	writeMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = writeMu
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("OSD client read failed: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		rep := s.handleFrame(data)
		writeMu.Lock()
		err = conn.WriteJSON(rep)
		writeMu.Unlock()
		if err != nil {
			return
		}
	}
}

// authorized checks the bearer token, or the token query parameter for
// clients that cannot set headers.
func (s *Server) authorized(r *http.Request) bool {
	if s.token == "" {
		return true
	}
	got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if got == "" {
		got = r.URL.Query().Get("token")
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) == 1
}

// handleFrame processes one inbound text frame and builds the reply.
func (s *Server) handleFrame(data []byte) reply {
	var probe struct {
		Type string `json:"type"`
	}
	if json.Unmarshal(data, &probe) == nil && probe.Type == pingFrameType {
		return reply{Type: replyPong}
	}

	n, err := osd.Decode(data)
	if err != nil {
		return reply{Type: replyError, Error: err.Error()}
	}

	if !s.limiter.Allow() {
		log.Debugf("Dropping OSD notification for %s: rate limited", n.ControlTarget)
		return reply{Type: replyDropped}
	}

	if s.onNotification != nil {
		if err := s.onNotification(n); err != nil {
			return reply{Type: replyError, Error: err.Error()}
		}
	}
	return reply{Type: replyAck}
}
