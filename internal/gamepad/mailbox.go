package gamepad

import (
	"sync"
	"sync/atomic"
)

// Mailbox is a single-slot hand-off between the capture path and the
// processing path. Put overwrites whatever is stored, so bursts coalesce and
// only the newest report survives; nothing is ever queued.
type Mailbox struct {
	mu    sync.Mutex
	buf   []byte
	dirty atomic.Bool
}

func NewMailbox() *Mailbox {
	return &Mailbox{buf: make([]byte, 0, 64)}
}

// Put copies p into the slot and raises the dirty flag.
func (m *Mailbox) Put(p []byte) {
	m.mu.Lock()
	m.buf = append(m.buf[:0], p...)
	m.mu.Unlock()
	m.dirty.Store(true)
}

// Pending reports whether a report arrived since the last Take.
func (m *Mailbox) Pending() bool {
	return m.dirty.Load()
}

// Take copies the latest buffer into dst and clears the dirty flag. It
// returns the extended slice and false when nothing new is available.
func (m *Mailbox) Take(dst []byte) ([]byte, bool) {
	if !m.dirty.Swap(false) {
		return dst, false
	}
	m.mu.Lock()
	dst = append(dst[:0], m.buf...)
	m.mu.Unlock()
	return dst, true
}
