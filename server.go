package main

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// statsSendBuffer bounds how many per-frame records may queue for one client
// before further updates are skipped.
const statsSendBuffer = 8

// fieldStats is the per-frame diagnostic record streamed to websocket
// clients: tick count, total energy, and the amplitude extremes.
type fieldStats struct {
	Tick   int     `json:"tick"`
	Energy float64 `json:"energy"`
	Min    float32 `json:"min"`
	Max    float32 `json:"max"`
}

var statsUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// statsClient is one connected websocket subscriber. All writes to the
// connection go through send, drained by a single writer goroutine.
type statsClient struct {
	conn *websocket.Conn
	send chan fieldStats
}

// statsServer pushes simulation statistics to any connected websocket
// client. It only ever reads data the frame loop hands it; the field buffers
// themselves never cross the socket boundary. Publishing never blocks on a
// client: each subscriber has a bounded queue and slow ones skip updates.
type statsServer struct {
	mu      sync.Mutex
	clients map[*statsClient]bool
	latest  fieldStats
}

// startStatsServer serves /ws on addr and returns the publishing handle.
func startStatsServer(addr string) *statsServer {
	s := &statsServer{clients: make(map[*statsClient]bool)}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	go func() {
		log.Printf("stats server listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("stats server stopped: %v", err)
		}
	}()
	return s
}

// handleWS upgrades the connection, queues the latest record as a replay, and
// keeps the client registered until either side of the socket fails.
func (s *statsServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := statsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stats upgrade failed: %v", err)
		return
	}
	c := &statsClient{conn: conn, send: make(chan fieldStats, statsSendBuffer)}
	s.mu.Lock()
	c.send <- s.latest
	s.clients[c] = true
	s.mu.Unlock()
	go s.writeLoop(c)
	go s.readLoop(c)
}

// writeLoop drains the client's queue onto the socket.
func (s *statsServer) writeLoop(c *statsClient) {
	for st := range c.send {
		if err := c.conn.WriteJSON(st); err != nil {
			s.drop(c)
			return
		}
	}
}

// readLoop discards inbound frames until the read side closes.
func (s *statsServer) readLoop(c *statsClient) {
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			s.drop(c)
			return
		}
	}
}

// publish records the latest statistics and enqueues them to every client
// without ever blocking the frame loop; a client whose queue is full misses
// this update and catches up on the next one.
func (s *statsServer) publish(st fieldStats) {
	s.mu.Lock()
	s.latest = st
	for c := range s.clients {
		select {
		case c.send <- st:
		default:
		}
	}
	s.mu.Unlock()
}

// unregister removes a client and closes its queue. Safe to call from both
// loops; the queue is closed only while the client is registered, under the
// same lock publish sends under.
func (s *statsServer) unregister(c *statsClient) {
	s.mu.Lock()
	if s.clients[c] {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
}

// drop unregisters a client and closes its connection.
func (s *statsServer) drop(c *statsClient) {
	s.unregister(c)
	c.conn.Close()
}
