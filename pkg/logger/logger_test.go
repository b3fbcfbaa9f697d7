package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrdesk/hr-backend/pkg/logger"
)

func TestNewWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("hr-service", &buf, zerolog.InfoLevel)

	log.WithRequestID("req-1").WithComponent("repository").Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hr-service", entry["service"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "repository", entry["component"])
	assert.Equal(t, "hello", entry["message"])
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("hr-service", &buf, zerolog.WarnLevel)

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNop(t *testing.T) {
	log := logger.Nop()
	assert.NotPanics(t, func() {
		log.WithStaffID("100").Error().Msg("ignored")
	})
}
