// Package ws serves the remote preview and control surface: a frame
// stream mirrored off the strip, an input channel for remote clicks and
// dial steps, and a health endpoint. Remote input goes through the same
// event queue as the encoder; nothing here touches pattern state
// directly.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/effectbox/ledmatrix/internal/input"
	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/strip"
)

// Status is the controller snapshot pushed to clients. The poll loop
// refreshes it after every event.
type Status struct {
	State    string   `json:"state"`
	Pattern  string   `json:"pattern"`
	Patterns []string `json:"patterns"`
}

// Server broadcasts frames from the strip mirror and injects remote
// input events. It implements input.Source.
type Server struct {
	mu        sync.RWMutex
	grid      layout.Grid
	mirror    *strip.Memory
	clients   map[*websocket.Conn]bool
	status    Status
	startTime time.Time
	lastFrame uint64

	events chan input.Event
	done   chan struct{}
}

func NewServer(mirror *strip.Memory, g layout.Grid) *Server {
	return &Server{
		grid:      g,
		mirror:    mirror,
		clients:   map[*websocket.Conn]bool{},
		startTime: time.Now(),
		events:    make(chan input.Event, 16),
		done:      make(chan struct{}),
	}
}

// Events returns the remote input stream (input.Source).
func (s *Server) Events() <-chan input.Event { return s.events }

func (s *Server) Close() error {
	close(s.done)
	return nil
}

// SetStatus publishes a fresh controller snapshot.
func (s *Server) SetStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// RunBroadcast pushes frames to connected clients whenever the mirror
// has a new one, at most fps times a second.
func (s *Server) RunBroadcast(fps int) {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			rgb, id := s.mirror.Snapshot()
			if id == s.lastFrame {
				continue
			}
			s.lastFrame = id
			s.broadcastFrame(rgb, id)
		}
	}
}

func (s *Server) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.sendTopology(conn)

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg struct {
			Input string `json:"input"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if ev, ok := parseInput(msg.Input); ok {
			select {
			case s.events <- ev:
			default:
				log.Warn().Str("input", msg.Input).Msg("input queue full; dropping remote event")
			}
		}
		s.sendStatus(conn)
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	st := s.status
	s.mu.RUnlock()
	resp := map[string]any{
		"state":    st.State,
		"pattern":  st.Pattern,
		"patterns": st.Patterns,
		"frame_id": s.mirror.FrameID(),
		"uptime_s": time.Since(s.startTime).Seconds(),
		"pixels":   s.grid.Count(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func parseInput(name string) (input.Event, bool) {
	switch name {
	case "click":
		return input.Click, true
	case "cw":
		return input.DialForward, true
	case "ccw":
		return input.DialBackward, true
	default:
		return 0, false
	}
}

func (s *Server) sendTopology(conn *websocket.Conn) {
	top := map[string]any{
		"rows": s.grid.Rows,
		"cols": s.grid.Cols,
	}
	b, _ := json.Marshal(top)
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

func (s *Server) sendStatus(conn *websocket.Conn) {
	s.mu.RLock()
	b, _ := json.Marshal(s.status)
	s.mu.RUnlock()
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

func (s *Server) broadcastFrame(rgb []byte, id uint64) {
	type frame struct {
		T       int64  `json:"t"`
		FrameID uint64 `json:"frame_id"`
		RGB     []byte `json:"rgb"`
	}
	b, _ := json.Marshal(frame{T: time.Now().UnixNano(), FrameID: id, RGB: rgb})
	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}
