package input

import "time"

const (
	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 70 * time.Millisecond
)

// RepeatableKeys are the keys that pulse while held.
var RepeatableKeys = []Key{KeyW, KeyA, KeyS, KeyD, KeyUp, KeyDown, KeyLeft, KeyRight}

// Repeater turns a held key into a train of down events. It only keeps a
// schedule entry while the tracker reports the key held.
type Repeater struct {
	keys     []Key
	delay    time.Duration
	interval time.Duration
	next     map[Key]time.Time
}

func NewRepeater(keys []Key, delay, interval time.Duration) *Repeater {
	return &Repeater{
		keys:     keys,
		delay:    delay,
		interval: interval,
		next:     make(map[Key]time.Time),
	}
}

func (r *Repeater) repeatable(k Key) bool {
	for _, rk := range r.keys {
		if rk == k {
			return true
		}
	}
	return false
}

// KeyChanged implements Listener.
func (r *Repeater) KeyChanged(k Key, down bool, at time.Time) {
	if !r.repeatable(k) {
		return
	}
	if down {
		r.next[k] = at.Add(r.delay)
	} else {
		delete(r.next, k)
	}
}

// AllReleased implements Listener.
func (r *Repeater) AllReleased() {
	clear(r.next)
}

// Scheduled returns the next fire time of k.
func (r *Repeater) Scheduled(k Key) (time.Time, bool) {
	at, ok := r.next[k]
	return at, ok
}

// Tick fires every due repeat. The pulse is up then down, which leaves the
// tracker's held state untouched.
func (r *Repeater) Tick(b *Batch, t *Tracker) {
	now := b.At
	for _, k := range r.keys {
		if !t.Held(k) {
			delete(r.next, k)
			continue
		}
		at, ok := r.next[k]
		if !ok {
			r.next[k] = now.Add(r.delay)
			continue
		}
		if !now.Before(at) {
			b.keyUp(k)
			b.keyDown(k)
			r.next[k] = now.Add(r.interval)
		}
	}
}
