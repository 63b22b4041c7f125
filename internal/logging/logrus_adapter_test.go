package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "warn level with text format", level: "warn", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level defaults to info", level: "loud", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapterWithWriter(tt.level, tt.format, &bytes.Buffer{})
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				assert.IsType(t, &logrus.JSONFormatter{}, adapter.logger.Formatter)
			} else {
				assert.IsType(t, &logrus.TextFormatter{}, adapter.logger.Formatter)
			}
		})
	}
}

func TestLogrusAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	base.SetLevel(logrus.DebugLevel)

	logger := NewLogrusAdapterFromLogger(base).
		WithField(FieldFormat, "mt940").
		WithError(errors.New("boom"))
	logger.Info("parsed statement", F(FieldCount, 3))

	out := buf.String()
	assert.Contains(t, out, "parsed statement")
	assert.Contains(t, out, "format=mt940")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "error=boom")
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapterWithWriter("warn", "text", &buf)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	require.NotNil(t, logger)
}

func TestMockLogger_SharesEntries(t *testing.T) {
	mock := NewMockLogger()
	child := mock.WithField(FieldFile, "a.xml")
	child.Debug("skipped row", F(FieldRow, 4))
	mock.Info("done")

	require.Len(t, mock.Entries(), 2)
	assert.True(t, mock.HasEntry("DEBUG", "skipped row"))
	assert.Len(t, mock.EntriesByLevel("INFO"), 1)

	entry := mock.EntriesByLevel("DEBUG")[0]
	assert.Equal(t, []Field{{Key: FieldFile, Value: "a.xml"}, {Key: FieldRow, Value: 4}}, entry.Fields)
}
