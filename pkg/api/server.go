// Package api runs the local listener that exchanges OSD notifications with a
// display-control bridge.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/net/netutil"
	"golang.org/x/time/rate"

	"github.com/TheBoredTeam/boring.notch-sub003/pkg/osd"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/status"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

const (
	// notificationRate caps how many OSD events per second reach the UI.
	notificationRate = 30
	// notificationBurst allows short key-repeat bursts through unthrottled.
	notificationBurst = 10
	// maxConnections caps concurrent bridge connections.
	maxConnections = 8
	// writeTimeout bounds each broadcast write.
	writeTimeout = 2 * time.Second
)

// NotificationHandler receives decoded notifications. It runs on the
// connection goroutine.
type NotificationHandler func(osd.Notification) error

// Server represents the local HTTP/WebSocket listener.
type Server struct {
	addr       string
	httpServer *http.Server
	mux        *http.ServeMux
	upgrader   websocket.Upgrader
	limiter    *rate.Limiter

	// WebSocket management
	clients   map[*websocket.Conn]*sync.Mutex
	clientsMu sync.Mutex

	onNotification NotificationHandler
	token          string
}

// NewServer creates a listener for addr.
func NewServer(addr string) *Server {
	s := &Server{
		addr: addr,
		mux:  http.NewServeMux(),
		upgrader: websocket.Upgrader{
			// Only local bridges connect; they send no Origin header.
			CheckOrigin: func(r *http.Request) bool {
				return r.Header.Get("Origin") == ""
			},
		},
		limiter: rate.NewLimiter(rate.Limit(notificationRate), notificationBurst),
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
	s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/ws", s.handleWebSocket)
}

// SetNotificationHandler sets the callback for inbound notifications.
func (s *Server) SetNotificationHandler(handler NotificationHandler) {
	s.onNotification = handler
}

// SetToken requires bridges to present token when opening the websocket.
// An empty token accepts any local client. Call before serving.
func (s *Server) SetToken(token string) {
	s.token = token
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start listens on the configured address and serves until Stop is called.
// It blocks.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Stop is called. At most
// maxConnections are served at once.
func (s *Server) Serve(ln net.Listener) error {
	log.Printf("OSD listener on %s", ln.Addr())
	err := s.httpServer.Serve(netutil.LimitListener(ln, maxConnections))
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop stops the server and closes all client connections.
func (s *Server) Stop(ctx context.Context) error {
	s.clientsMu.Lock()
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
	s.clientsMu.Unlock()

	return s.httpServer.Shutdown(ctx)
}

// ClientCount returns the number of connected bridges.
func (s *Server) ClientCount() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}

// Broadcast sends notifications to all connected clients. Clients that fail
// to receive are dropped.
func (s *Server) Broadcast(notifications ...osd.Notification) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for conn, writeMu := range s.clients {
		if err := writeNotifications(conn, writeMu, notifications); err != nil {
			log.Printf("Failed to broadcast to client: %v", err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// BroadcastStatus pushes the levels in snap to all connected clients.
func (s *Server) BroadcastStatus(snap status.Snapshot) {
	s.Broadcast(osd.FromSnapshot(snap)...)
}

func writeNotifications(conn *websocket.Conn, mu *sync.Mutex, notifications []osd.Notification) error {
	mu.Lock()
	defer mu.Unlock()
	for _, n := range notifications {
		if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return err
		}
		if err := conn.WriteJSON(n); err != nil {
			return err
		}
	}
	return nil
}
