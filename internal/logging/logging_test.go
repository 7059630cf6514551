package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		opts Options
		want logrus.Level
	}{
		{Options{}, logrus.InfoLevel},
		{Options{Level: "warn"}, logrus.WarnLevel},
		{Options{Level: "WARN"}, logrus.WarnLevel},
		{Options{Level: "warn", Verbose: true}, logrus.DebugLevel},
		{Options{Level: "trace", Verbose: true}, logrus.TraceLevel},
	}
	for _, tt := range tests {
		l, err := New(&bytes.Buffer{}, tt.opts)
		require.NoError(t, err)
		assert.Equal(t, tt.want, l.GetLevel(), "%+v", tt.opts)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, Options{Format: "xml"})
	assert.ErrorContains(t, err, "unknown log format")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Format: "json"})
	require.NoError(t, err)

	l.WithFields(Fields{"parts": 4}).Info("allocated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "allocated", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 4, entry["parts"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.False(t, l.IsLevelEnabled(logrus.ErrorLevel))
}
