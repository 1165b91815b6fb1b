package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepeatFixture() (*Tracker, *Repeater) {
	tr := NewTracker()
	r := NewRepeater(RepeatableKeys, DefaultRepeatDelay, DefaultRepeatInterval)
	tr.Subscribe(r)
	return tr, r
}

func pulses(b *Batch, k Key) int {
	n := 0
	for _, a := range b.Actions {
		if a.Kind == ActionKeyDown && a.Key == k {
			n++
		}
	}
	return n
}

func TestRepeaterSchedule(t *testing.T) {
	tr, r := newRepeatFixture()
	b := NewBatch(t0)
	tr.SetKey(b, KeyD, true)

	at, ok := r.Scheduled(KeyD)
	require.True(t, ok)
	assert.Equal(t, t0.Add(300*time.Millisecond), at)

	b.Reset(t0.Add(299 * time.Millisecond))
	r.Tick(b, tr)
	assert.Empty(t, b.Actions)

	b.Reset(t0.Add(300 * time.Millisecond))
	r.Tick(b, tr)
	assert.Equal(t, []Action{
		{Kind: ActionKeyUp, Key: KeyD},
		{Kind: ActionKeyDown, Key: KeyD},
	}, b.Actions)
	assert.True(t, tr.Held(KeyD))

	at, _ = r.Scheduled(KeyD)
	assert.Equal(t, t0.Add(370*time.Millisecond), at)
}

func TestRepeaterPulseCount(t *testing.T) {
	tr, r := newRepeatFixture()
	b := NewBatch(t0)
	tr.SetKey(b, KeyUp, true)

	total := 0
	for ms := 16; ms <= 1000; ms += 16 {
		b.Reset(t0.Add(time.Duration(ms) * time.Millisecond))
		r.Tick(b, tr)
		total += pulses(b, KeyUp)
	}
	// fires near 304, 384, 464, 544, 624, 704, 784, 864, 944 with a 16 ms tick
	assert.Equal(t, 9, total)
}

func TestRepeaterStopsOnRelease(t *testing.T) {
	tr, r := newRepeatFixture()
	b := NewBatch(t0)
	tr.SetKey(b, KeyA, true)
	tr.SetKey(b, KeyA, false)

	_, ok := r.Scheduled(KeyA)
	assert.False(t, ok)

	b.Reset(t0.Add(time.Second))
	r.Tick(b, tr)
	assert.Empty(t, b.Actions)
}

func TestRepeaterClearedByReleaseAll(t *testing.T) {
	tr, r := newRepeatFixture()
	b := NewBatch(t0)
	tr.SetKey(b, KeyW, true)
	tr.SetKey(b, KeyLeft, true)
	tr.ReleaseAll(b)

	_, ok := r.Scheduled(KeyW)
	assert.False(t, ok)
	_, ok = r.Scheduled(KeyLeft)
	assert.False(t, ok)
}

func TestRepeaterIgnoresOtherKeys(t *testing.T) {
	tr, r := newRepeatFixture()
	b := NewBatch(t0)
	tr.SetKey(b, KeySpace, true)

	_, ok := r.Scheduled(KeySpace)
	assert.False(t, ok)

	b.Reset(t0.Add(time.Second))
	r.Tick(b, tr)
	assert.Empty(t, b.Actions)
}
