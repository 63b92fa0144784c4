package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "debug", Format: "json"}, "loveacts", &buf)

	log.WithField("user_id", "u1").Debug("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "loveacts", line["service"])
	assert.Equal(t, "u1", line["user_id"])
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	log := NewWithOutput(Config{Level: "loud"}, "loveacts", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.Logger.GetLevel())
}
