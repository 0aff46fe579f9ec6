package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{" warn ", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"info", InfoLevel},
		{"", InfoLevel},
		{"verbose", InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "input %q", tt.in)
	}
}

func TestJSONOutputCarriesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, DebugLevel, true)

	log.Info("Converter", "conversion complete", map[string]interface{}{
		"category": "Length",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Converter", entry["component"])
	assert.Equal(t, "conversion complete", entry["message"])
	assert.Equal(t, "Length", entry["category"])
}

func TestErrorIncludesErrorText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, InfoLevel, true)

	log.Error("Catalog", errors.New("bad factor"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "bad factor", entry["error"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, WarnLevel, true)

	log.Debug("Converter", "hidden", nil)
	log.Info("Converter", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warning("Converter", "shown", nil)
	assert.NotZero(t, buf.Len())
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Info("x", "y", nil)
	log.Error("x", errors.New("z"), nil)
}

func TestNewMapsLevel(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, zerolog.ErrorLevel, New(&buf, ErrorLevel, false).Level())
	assert.Equal(t, zerolog.DebugLevel, New(&buf, DebugLevel, true).Level())
}
