package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	defer log.SetOutput(log.StandardLogger().Out)
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "debug", "json"))
	log.WithField("note_id", 7).Debug("note created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "note created", line["msg"])
	assert.Equal(t, "debug", line["level"])
	assert.EqualValues(t, 7, line["note_id"])

	assert.Error(t, Setup(&buf, "loud", "json"))
	assert.Error(t, Setup(&buf, "info", "xml"))
}

func TestWatermillLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&log.JSONFormatter{})

	adapter := NewWatermillLogger(log.NewEntry(logger)).With(watermill.LogFields{"topic": "events"})
	adapter.Error("publish failed", errors.New("closed"), watermill.LogFields{"message_uuid": "m1"})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "publish failed", line["msg"])
	assert.Equal(t, "events", line["topic"])
	assert.Equal(t, "m1", line["message_uuid"])
	assert.Equal(t, "closed", line["error"])
}
