package hub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/soar/padmapper/internal/display"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Run broadcasts queued states until ctx is done. Consecutive states are sent
// as deltas, with a full state every deltaCountSync deltas and every
// fullSyncInterval.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	var deltaCount int
	for {
		select {
		case <-ctx.Done():
			return

		case state := <-h.states:
			delta := display.ComputeDelta(h.lastState(), state)
			h.setLastState(state)
			if delta.IsEmpty() {
				continue
			}

			deltaCount++
			if deltaCount >= deltaCountSync {
				h.send(NewFullMessage(h.nextSeq(), &state))
				deltaCount = 0
			} else {
				h.send(NewDeltaMessage(h.nextSeq(), delta))
			}

		case visible := <-h.visibility:
			h.send(NewVisibilityMessage(h.nextSeq(), visible))

		case <-ticker.C:
			state := h.lastState()
			if state.Connected {
				h.send(NewFullMessage(h.nextSeq(), &state))
			}
		}
	}
}

func (h *Hub) send(msg *WSMessage) {
	if h.Len() == 0 {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error().Err(err).Str("type", msg.Type).Msg("marshal message")
		return
	}
	h.broadcast(data)
}
