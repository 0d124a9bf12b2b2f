package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesJSONWithAction(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("pos", &buf)

	l.Warn("persist_degraded", "req-1", "backend unreachable", errors.New("dial tcp: refused"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "pos", line["service"])
	assert.Equal(t, "persist_degraded", line["action"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "dial tcp: refused", line["error"])
}

func TestLogger_ErrorGroupsMessage(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("pos", &buf)

	l.Error("checkout_failed", "", "create transaction", errors.New("boom"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	group, ok := line["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "boom", group["msg"])
}
