package hub

import (
	"time"

	"github.com/soar/padmapper/internal/display"
)

// Message types sent to status page clients.
const (
	TypeFull  = "full"
	TypeDelta = "delta"
	TypeEvent = "event"
)

// EventVisibility is sent when the display visibility flips.
const EventVisibility = "visibility"

// WSMessage is a message sent from the server to a client.
type WSMessage struct {
	Type      string                `json:"type"`
	Seq       int64                 `json:"seq"`
	Timestamp int64                 `json:"timestamp"`
	Event     string                `json:"event,omitempty"`
	Data      *display.RenderState  `json:"data,omitempty"`
	Changes   *display.DeltaChanges `json:"changes,omitempty"`
	Visible   *bool                 `json:"visible,omitempty"`
}

func NewFullMessage(seq int64, state *display.RenderState) *WSMessage {
	return &WSMessage{
		Type:      TypeFull,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      state,
	}
}

func NewDeltaMessage(seq int64, changes *display.DeltaChanges) *WSMessage {
	return &WSMessage{
		Type:      TypeDelta,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Changes:   changes,
	}
}

// NewVisibilityMessage announces the display visibility.
func NewVisibilityMessage(seq int64, visible bool) *WSMessage {
	return &WSMessage{
		Type:      TypeEvent,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Event:     EventVisibility,
		Visible:   &visible,
	}
}

// ClientMessage is a message sent from a client to the server.
type ClientMessage struct {
	Type string `json:"type"`
	Mode string `json:"mode,omitempty"`
}
