package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "raffle-test", false)

	buf.Reset()
	Debug().Msg("hidden")
	Warn().Str("raffle_id", "r-1").Msg("save failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "save failed", entry["message"])
	assert.Equal(t, "raffle-test", entry["service"])
	assert.Equal(t, "r-1", entry["raffle_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestInitWithWriter_Debug(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "raffle-test", true)

	buf.Reset()
	Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
