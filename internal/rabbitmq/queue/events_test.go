package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLoop_ForwardsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan []byte)
	out := make(chan DomainEvent, 1)

	go decodeLoop(ctx, in, out)

	event := DomainEvent{
		ID:     uuid.New(),
		Type:   "fwi_milestone",
		UserID: "u-1",
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	in <- body

	select {
	case got := <-out:
		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, event.Type, got.Type)
		assert.Equal(t, event.UserID, got.UserID)
	case <-time.After(time.Second):
		t.Fatal("decoded event was not forwarded")
	}
}

func TestDecodeLoop_SkipsMalformedMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan []byte)
	out := make(chan DomainEvent, 1)

	go decodeLoop(ctx, in, out)

	in <- []byte("not json")
	in <- []byte(`{"type":"new_recommendation","user_id":"u-2"}`)

	select {
	case got := <-out:
		assert.Equal(t, "new_recommendation", got.Type)
	case <-time.After(time.Second):
		t.Fatal("valid event after a malformed one was not forwarded")
	}
}

func TestDecodeLoop_StopsWhenForwardBlocksAtShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan []byte, 1)
	out := make(chan DomainEvent) // unbuffered, nobody reading

	done := make(chan struct{})
	go func() {
		decodeLoop(ctx, in, out)
		close(done)
	}()

	in <- []byte(`{"type":"fwi_milestone","user_id":"u-1"}`)

	// let the loop reach the blocked forward, then shut down
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("decode loop did not stop after context cancellation")
	}
}

func TestDecodeLoop_StopsWhenInputCloses(t *testing.T) {
	in := make(chan []byte)
	out := make(chan DomainEvent, 1)

	done := make(chan struct{})
	go func() {
		decodeLoop(context.Background(), in, out)
		close(done)
	}()

	close(in)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("decode loop did not stop after input channel closed")
	}
}
