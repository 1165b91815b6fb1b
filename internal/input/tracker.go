package input

import (
	"sort"
	"time"
)

// Listener observes held-state transitions of keys.
type Listener interface {
	KeyChanged(k Key, down bool, at time.Time)
	AllReleased()
}

// Tracker is the single record of which keys and pointer buttons are
// currently asserted. A key is never sent down twice without an up in
// between, and ReleaseAll is the only bulk clear.
type Tracker struct {
	keys      map[Key]bool
	buttons   [2]bool
	listeners []Listener
	releases  int
}

func NewTracker() *Tracker {
	return &Tracker{keys: make(map[Key]bool)}
}

// Subscribe registers l for key transitions.
func (t *Tracker) Subscribe(l Listener) {
	t.listeners = append(t.listeners, l)
}

// SetKey asserts or deasserts k. It emits an action only when the held state
// actually changes and reports whether it did.
func (t *Tracker) SetKey(b *Batch, k Key, down bool) bool {
	if t.keys[k] == down {
		return false
	}
	if down {
		b.keyDown(k)
		t.keys[k] = true
	} else {
		b.keyUp(k)
		delete(t.keys, k)
	}
	for _, l := range t.listeners {
		l.KeyChanged(k, down, b.At)
	}
	return true
}

// SetButton is SetKey for pointer buttons.
func (t *Tracker) SetButton(b *Batch, btn Button, down bool) bool {
	if t.buttons[btn] == down {
		return false
	}
	b.button(btn, down)
	t.buttons[btn] = down
	return true
}

// Tap sends a momentary press of k. A key already held gets an up/down pulse
// instead so it stays held and is never doubled down.
func (t *Tracker) Tap(b *Batch, k Key) {
	if t.keys[k] {
		b.keyUp(k)
		b.keyDown(k)
		return
	}
	b.keyDown(k)
	b.keyUp(k)
}

// Held reports whether k is currently asserted.
func (t *Tracker) Held(k Key) bool {
	return t.keys[k]
}

// ButtonHeld reports whether btn is currently asserted.
func (t *Tracker) ButtonHeld(btn Button) bool {
	return t.buttons[btn]
}

// HeldKeys returns the asserted keys in ascending order.
func (t *Tracker) HeldKeys() []Key {
	keys := make([]Key, 0, len(t.keys))
	for k := range t.keys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ReleaseAll emits an up for every asserted key and button and clears them.
func (t *Tracker) ReleaseAll(b *Batch) {
	for _, k := range t.HeldKeys() {
		b.keyUp(k)
		delete(t.keys, k)
	}
	for i, down := range t.buttons {
		if down {
			b.button(Button(i), false)
			t.buttons[i] = false
		}
	}
	for _, l := range t.listeners {
		l.AllReleased()
	}
	t.releases++
}

// Releases counts ReleaseAll invocations.
func (t *Tracker) Releases() int {
	return t.releases
}
