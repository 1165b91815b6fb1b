package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := Setup("loud", "")
	assert.Error(t, err)
}

func TestForTagsSubsystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padmapper.log")
	closer, err := Setup("debug", path)
	require.NoError(t, err)

	log := For("engine")
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	log.Info().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"subsystem":"engine"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}
