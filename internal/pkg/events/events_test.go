package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	assert.Equal(t, "placement:events", Channel(""))
	assert.Equal(t, "campus:events", Channel("campus"))
}

func TestEvent_JSON(t *testing.T) {
	e := New(OfferIssued, "o1", map[string]string{"student_id": "s1"})
	data, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "offer.issued", decoded["type"])
	assert.Equal(t, "o1", decoded["entity_id"])
	assert.Equal(t, map[string]any{"student_id": "s1"}, decoded["attributes"])
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Publish(context.Background(), New(DriveStatusChanged, "d1", nil)))
	events := r.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "d1", events[0].EntityID)
}

func TestRedisPublisher_UnreachableServer(t *testing.T) {
	p := NewRedisPublisher(Config{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := p.Publish(ctx, New(OfferIssued, "o1", nil))
	assert.Error(t, err)
}

func TestMulti(t *testing.T) {
	ok := &Recorder{}
	failing := &Recorder{Err: errors.New("down")}
	m := Multi{failing, ok}

	err := m.Publish(context.Background(), New(OfferIssued, "o1", nil))
	assert.ErrorContains(t, err, "down")
	require.Len(t, ok.Events(), 1, "a failing publisher must not starve the others")
	assert.NoError(t, m.Close())
}
