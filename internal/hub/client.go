package hub

import (
	"encoding/json"

	"github.com/lxzan/gws"

	"github.com/soar/padmapper/internal/engine"
)

// OnOpen registers the client and sends it the current state.
func (h *Hub) OnOpen(c *gws.Conn) {
	n := h.register(c)
	h.log.Info().Stringer("remote", c.RemoteAddr()).Int("clients", n).Msg("client connected")

	state := h.lastState()
	data, err := json.Marshal(NewFullMessage(h.nextSeq(), &state))
	if err != nil {
		h.log.Error().Err(err).Msg("marshal initial state")
		return
	}
	if err := c.WriteMessage(gws.OpcodeText, data); err != nil {
		h.log.Debug().Err(err).Msg("send initial state")
	}
}

func (h *Hub) OnClose(c *gws.Conn, err error) {
	n := h.unregister(c)
	h.log.Info().Err(err).Int("clients", n).Msg("client disconnected")
}

func (h *Hub) OnPing(c *gws.Conn, payload []byte) {
	_ = c.WritePong(payload)
}

func (h *Hub) OnPong(*gws.Conn, []byte) {}

// OnMessage turns a client message into an engine command.
func (h *Hub) OnMessage(c *gws.Conn, message *gws.Message) {
	defer message.Close()

	var msg ClientMessage
	if err := json.Unmarshal(message.Bytes(), &msg); err != nil {
		h.log.Debug().Err(err).Msg("bad client message")
		return
	}
	cmd, ok := commandFor(msg)
	if !ok {
		h.log.Debug().Str("type", msg.Type).Str("mode", msg.Mode).Msg("unknown client message")
		return
	}
	select {
	case h.commands <- cmd:
	default:
		h.log.Warn().Stringer("command", cmd).Msg("command queue full")
	}
}

func commandFor(msg ClientMessage) (engine.Command, bool) {
	switch msg.Type {
	case "toggle_mode":
		return engine.CommandToggleMode, true
	case "toggle_visibility":
		return engine.CommandToggleVisibility, true
	case "set_mode":
		mode, ok := engine.ParseMode(msg.Mode)
		if !ok {
			return 0, false
		}
		if mode == engine.ModeKeyboard {
			return engine.CommandSetKeyboard, true
		}
		return engine.CommandSetVisualizer, true
	}
	return 0, false
}
