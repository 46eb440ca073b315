package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/kahuna-console/pkg/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect log.Level
		ok     bool
	}{
		{name: "debug", in: "debug", expect: log.LevelDebug, ok: true},
		{name: "upper_case_with_spaces", in: " WARN ", expect: log.LevelWarn, ok: true},
		{name: "disabled", in: "disabled", expect: log.LevelDisabled, ok: true},
		{name: "unknown", in: "verbose", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl, ok := log.ParseLevel(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expect, lvl)
			}
		})
	}
}

func TestLogger_WritesFieldsAndContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(log.LevelInfo, log.WithOutput(buf))

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "r-1"})
	logger.
		WithField("path", "/home").
		WithError(errors.New("boom")).
		Info(ctx, "navigation handled")
	logger.Debug(ctx, "skipped by level")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "navigation handled", record["msg"])
	assert.Equal(t, "/home", record["path"])
	assert.Equal(t, "boom", record["error"])
	assert.Equal(t, "r-1", record["requestID"])
}

func TestNew_ReturnsStub_WhenDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(log.LevelDisabled, log.WithOutput(buf))
	logger.Error(context.Background(), "dropped")
	assert.Zero(t, buf.Len())
}
