package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlix0x0/aiassisted/pkg/logging"
)

func TestDefault(t *testing.T) {
	log := logging.Default()
	require.NotNil(t, log)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf)
	log.Info().Str("unit", "code-reviewer").Msg("test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "code-reviewer", entry["unit"])
	assert.NotEmpty(t, entry["time"])
}

func TestSetDefault(t *testing.T) {
	orig := *logging.Default()
	defer logging.SetDefault(orig)

	var buf bytes.Buffer
	logging.SetDefault(logging.New(&buf))
	logging.Info().Msg("via default")

	assert.Contains(t, buf.String(), "via default")
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		log := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})

	t.Run("level parsing", func(t *testing.T) {
		tests := []struct {
			level string
			want  zerolog.Level
		}{
			{"debug", zerolog.DebugLevel},
			{"info", zerolog.InfoLevel},
			{"warn", zerolog.WarnLevel},
			{"warning", zerolog.WarnLevel},
			{"error", zerolog.ErrorLevel},
			{"off", zerolog.Disabled},
			{"bogus", zerolog.InfoLevel},
		}
		for _, tt := range tests {
			cfg := &logging.Config{Level: tt.level, Format: "json", Output: "discard"}
			log := logging.NewLoggerFromConfig(cfg)
			assert.Equal(t, tt.want, log.GetLevel(), "level %q", tt.level)
		}
	})
}

func TestNopDiscards(t *testing.T) {
	// Must not panic or write anywhere.
	logging.Nop.Error().Msg("discarded")
}
