package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshwire/connector/internal/message"
)

func TestQueuePushAndReceive(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, message.Pong{}))
	require.NoError(t, q.Push(ctx, message.CreateMessageRsp{MessageID: "m1"}))

	assert.Equal(t, message.Pong{}, <-q.ch)
	assert.Equal(t, message.CreateMessageRsp{MessageID: "m1"}, <-q.ch)
}

func TestQueuePushAfterClose(t *testing.T) {
	q := NewQueue()
	q.Close()

	err := q.Push(context.Background(), message.Pong{})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestQueueCloseIsIdempotent(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Close()

	select {
	case <-q.Done():
	default:
		t.Fatal("Done must be closed after Close")
	}
}

func TestQueueCloseUnblocksFullPush(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()
	for i := 0; i < QueueCapacity; i++ {
		require.NoError(t, q.Push(ctx, message.Pong{}))
	}

	pushed := make(chan error, 1)
	go func() {
		pushed <- q.Push(ctx, message.Pong{})
	}()

	select {
	case err := <-pushed:
		t.Fatalf("push on a full queue returned early: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	q.Close()
	select {
	case err := <-pushed:
		assert.ErrorIs(t, err, ErrQueueClosed)
	case <-time.After(time.Second):
		t.Fatal("close did not unblock the pending push")
	}
}

func TestQueuePushHonorsContext(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()
	for i := 0; i < QueueCapacity; i++ {
		require.NoError(t, q.Push(ctx, message.Pong{}))
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err := q.Push(cancelled, message.Pong{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueueDrainsAfterClose(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Push(context.Background(), message.CreateMessageRsp{MessageID: "m1"}))

	q.Close()

	// Buffered messages survive closing so the send pump can flush them.
	assert.Equal(t, message.CreateMessageRsp{MessageID: "m1"}, <-q.ch)
}
