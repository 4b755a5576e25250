package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintboard/cmmskit/pkg/logger"
)

func TestNew_JSONDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden at info level")
	log.Info("visible", logger.Component("apiclient"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "apiclient", rec["component"])
	assert.NotContains(t, buf.String(), "hidden at info level")
}

func TestNew_EnvironmentDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithEnvironment("development", "cmms-portal"),
		logger.WithOutput(&buf),
	)

	log.Debug("debug enabled in development")

	out := buf.String()
	assert.Contains(t, out, "debug enabled in development")
	assert.Contains(t, out, "service=cmms-portal")
	assert.False(t, strings.HasPrefix(out, "{"), "development logs should be text")
}

func TestNew_ContextExtraction(t *testing.T) {
	t.Parallel()

	type requestIDKey struct{}

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", requestIDKey{}),
	)

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-42")
	log.InfoContext(ctx, "with request id")
	log.InfoContext(context.Background(), "without request id")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"request_id":"req-42"`)
	assert.NotContains(t, lines[1], "request_id")
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)

	assert.Equal(t, "user_id", logger.UserID("u-1").Key)
	assert.Equal(t, "status", logger.Status(401).Key)
}
