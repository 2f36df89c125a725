package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_UnauthorizedAccess(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	audit := NewLogger(zap.New(core))

	audit.UnauthorizedAccess(7, "med_9f2c", 21, "NOT_ENROLLED", "203.0.113.9", "test-agent")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "unauthorized media access attempt", entries[0].Message)
	assert.Equal(t, "audit", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(7), fields["actor"])
	assert.Equal(t, "med_9f2c", fields["media_id"])
	assert.Equal(t, int64(21), fields["lesson_id"])
	assert.Equal(t, "NOT_ENROLLED", fields["reason"])
	assert.Equal(t, "203.0.113.9", fields["ip"])
}

func TestLogger_ExcessiveTokenRequests(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	audit := NewLogger(zap.New(core))

	audit.ExcessiveTokenRequests(7, "playback-token", 61, "203.0.113.9", "test-agent")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "excessive token requests", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(7), fields["actor"])
	assert.Equal(t, "playback-token", fields["route"])
	assert.Equal(t, int64(61), fields["count"])
}
