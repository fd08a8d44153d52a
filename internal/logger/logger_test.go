package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestNew_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "auth-bridge")

	l.Info().Msg("listening")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "auth-bridge", entry["role"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNew_EntryFields", "caller is the function name, not file:line")
}

func TestNewLogger_EnablesDebug(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NotNil(t, NewLogger("auth-bridge"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		level     string
		wantOK    bool
		wantLevel zerolog.Level
	}{
		{level: "info", wantOK: true, wantLevel: zerolog.InfoLevel},
		{level: "warn", wantOK: true, wantLevel: zerolog.WarnLevel},
		{level: "error", wantOK: true, wantLevel: zerolog.ErrorLevel},
		{level: "", wantLevel: zerolog.DebugLevel},
		{level: "verbose", wantLevel: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)

			assert.Equal(t, tt.wantOK, SetLevel(tt.level))
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "auth-bridge")

	parent.Component("auth.whoami").Info().Msg("verified")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "auth.whoami", entry["component"])
	assert.Equal(t, "auth-bridge", entry["role"])

	parent.Info().Msg("plain")
	assert.NotContains(t, lastEntry(t, &buf), "component", "parent is not modified")
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "auth-bridge")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	child.Info().Msg("child")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "abc", entry["trace_id"])
	assert.Equal(t, "auth-bridge", entry["role"])

	parent.Info().Msg("parent")
	assert.NotContains(t, lastEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "t-1", lastEntry(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger().WithContext(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/login", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "t-2", lastEntry(t, &buf)["trace_id"])
}
