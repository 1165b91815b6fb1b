// Package hub streams render states to status page clients over websockets
// and turns their messages into engine commands.
package hub

import (
	"sync"
	"sync/atomic"

	"github.com/lxzan/gws"
	"github.com/rs/zerolog"

	"github.com/soar/padmapper/internal/display"
	"github.com/soar/padmapper/internal/engine"
)

var (
	_ gws.Event    = (*Hub)(nil)
	_ display.Sink = (*Hub)(nil)
)

// Hub tracks connected clients. It is a display.Sink; Render and SetVisible
// never block the caller.
type Hub struct {
	log      zerolog.Logger
	commands chan<- engine.Command

	mu      sync.RWMutex
	clients map[*gws.Conn]struct{}

	states     chan display.RenderState
	visibility chan bool
	seq        atomic.Int64

	lastMu sync.RWMutex
	last   display.RenderState
}

// NewHub returns a hub that forwards client commands to commands.
func NewHub(commands chan<- engine.Command, log zerolog.Logger) *Hub {
	return &Hub{
		log:        log,
		commands:   commands,
		clients:    make(map[*gws.Conn]struct{}),
		states:     make(chan display.RenderState, 1),
		visibility: make(chan bool, 1),
	}
}

// Render queues s for broadcasting. An unsent state is replaced by s.
func (h *Hub) Render(s display.RenderState) {
	offerLatest(h.states, s)
}

func (h *Hub) SetVisible(visible bool) {
	offerLatest(h.visibility, visible)
}

func offerLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *gws.Conn) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	return len(h.clients)
}

func (h *Hub) unregister(c *gws.Conn) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	return len(h.clients)
}

// broadcast writes payload to every client.
func (h *Hub) broadcast(payload []byte) {
	b := gws.NewBroadcaster(gws.OpcodeText, payload)
	defer b.Close()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if err := b.Broadcast(c); err != nil {
			h.log.Debug().Err(err).Msg("broadcast failed")
		}
	}
}

func (h *Hub) nextSeq() int64 {
	return h.seq.Add(1)
}

func (h *Hub) lastState() display.RenderState {
	h.lastMu.RLock()
	defer h.lastMu.RUnlock()
	return h.last
}

func (h *Hub) setLastState(s display.RenderState) {
	h.lastMu.Lock()
	h.last = s
	h.lastMu.Unlock()
}
