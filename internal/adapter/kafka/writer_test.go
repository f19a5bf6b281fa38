package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetmode/worldstate/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	ev := domain.Event{
		ID:        "usgs-us7000abcd",
		Type:      domain.TypeDisaster,
		Severity:  domain.SeverityHigh,
		Coords:    domain.Coords{35.68, 139.65},
		Timestamp: time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC),
		Source:    domain.Source{Name: "USGS", Live: true},
		Metadata:  domain.QuakeMeta{Location: "near Tokyo", Magnitude: 5.6, Verified: true, Sources: 1},
	}

	msg, err := serializeToMessage(ev)
	require.NoError(t, err)

	assert.Equal(t, []byte("usgs-us7000abcd"), msg.Key)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "disaster", headers["event_type"])
	assert.Equal(t, "high", headers["severity"])
	assert.Equal(t, "2026-02-15T12:00:00Z", headers["emitted_at"])

	decoded, err := domain.DecodeEvent(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, decoded.ID)
	meta, ok := decoded.Metadata.(domain.QuakeMeta)
	require.True(t, ok)
	assert.InDelta(t, 5.6, meta.Magnitude, 0.001)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &raw))
	assert.Contains(t, raw, "coords")
}
