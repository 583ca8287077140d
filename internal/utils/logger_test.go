package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEventWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "debug", "json")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	LogEvent(" req-1 ", "DASHBOARD", "summary", "trips=3")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dashboard", entry["module"])
	assert.Equal(t, "summary", entry["action"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "trips=3", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestInitLoggerLevelFallback(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "nonsense", "json")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
