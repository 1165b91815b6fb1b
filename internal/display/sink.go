// Package display holds the render state published by the engine and the
// sinks that draw it.
package display

// Sink draws render states. Render is called from the processing loop and
// must not block.
type Sink interface {
	Render(s RenderState)
	SetVisible(visible bool)
}

// Multi fans out to several sinks.
type Multi []Sink

func (m Multi) Render(s RenderState) {
	for _, sink := range m {
		sink.Render(s)
	}
}

func (m Multi) SetVisible(visible bool) {
	for _, sink := range m {
		sink.SetVisible(visible)
	}
}
