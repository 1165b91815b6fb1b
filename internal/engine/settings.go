package engine

import (
	"time"

	"github.com/soar/padmapper/internal/input"
	"github.com/soar/padmapper/internal/keyboard"
)

// Settings are the tunables of the mapping engine.
type Settings struct {
	// StickDeadzone gates the left stick to WASD mapping.
	StickDeadzone float64
	// TriggerThreshold is the raw trigger level above which a pointer button
	// is held.
	TriggerThreshold uint8

	PointerDeadzone    float64
	PointerSensitivity float64
	KeyboardDeadzone   float64
	KeyboardMoveDelay  time.Duration
	RepeatDelay        time.Duration
	RepeatInterval     time.Duration
	Layout             [][]string
}

func DefaultSettings() Settings {
	return Settings{
		StickDeadzone:      0.25,
		TriggerThreshold:   50,
		PointerDeadzone:    0.12,
		PointerSensitivity: 14,
		KeyboardDeadzone:   0.35,
		KeyboardMoveDelay:  150 * time.Millisecond,
		RepeatDelay:        input.DefaultRepeatDelay,
		RepeatInterval:     input.DefaultRepeatInterval,
		Layout:             keyboard.DefaultLayout,
	}
}
