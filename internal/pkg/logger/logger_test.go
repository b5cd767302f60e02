package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStrings(t *testing.T) {
	assert.Equal(t, Config{Level: DebugLevel, Pretty: true}, FromStrings(" DEBUG ", "pretty"))
	assert.Equal(t, Config{Level: WarnLevel}, FromStrings("warn", "json"))
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	l := Component("store")
	l.Info().Str("id", "s1").Msg("created")
	l.Debug().Msg("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "s1", entry["id"])
	assert.Equal(t, "created", entry["message"])
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "verbose", Output: &buf})
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
