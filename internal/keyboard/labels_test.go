package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soar/padmapper/internal/input"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		label string
		want  input.Key
	}{
		{"Q", input.KeyQ},
		{"q", input.KeyQ},
		{"Z", input.KeyZ},
		{"7", input.Key7},
		{"SPACE", input.KeySpace},
		{"ENTER", input.KeyEnter},
		{"BACKSPACE", input.KeyBackspace},
		{",", input.KeyComma},
		{".", input.KeyDot},
		{"/", input.KeySlash},
		{"RSHIFT", input.KeyLeftShift},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.label)
		if assert.True(t, ok, tt.label) {
			assert.Equal(t, tt.want, got, tt.label)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, label := range []string{"", "F13", "space", "??"} {
		_, ok := Resolve(label)
		assert.False(t, ok, label)
	}
}

func TestDefaultLayoutResolves(t *testing.T) {
	for _, row := range DefaultLayout {
		for _, label := range row {
			_, ok := Resolve(label)
			assert.True(t, ok, label)
		}
	}
}
