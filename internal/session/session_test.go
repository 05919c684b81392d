package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/meshwire/connector/internal/cache"
	"github.com/meshwire/connector/internal/message"
)

// scriptedHandler lets tests decide per frame whether the session continues.
type scriptedHandler struct {
	mu     sync.Mutex
	frames []string
	fn     func(ctx context.Context, userID string, sender *Queue, messageType int, data []byte) (bool, error)
}

func (h *scriptedHandler) HandleFrame(ctx context.Context, userID string, sender *Queue, messageType int, data []byte) (bool, error) {
	h.mu.Lock()
	h.frames = append(h.frames, string(data))
	h.mu.Unlock()

	if h.fn != nil {
		return h.fn(ctx, userID, sender, messageType, data)
	}
	return false, nil
}

func (h *scriptedHandler) seen() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.frames...)
}

type sessionHarness struct {
	mgr   *Manager
	redis *miniredis.Miniredis
	wsURL string
}

func newHarness(t *testing.T, h FrameHandler) *sessionHarness {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.New(context.Background(), "redis://"+mr.Addr(), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	mgr := NewManager(c, NewDirectory(), h, "connector:node-1", zaptest.NewLogger(t))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mgr.ServeWS(w, r, strings.TrimPrefix(r.URL.Path, "/ws/"))
	}))
	t.Cleanup(srv.Close)

	return &sessionHarness{
		mgr:   mgr,
		redis: mr,
		wsURL: "ws" + strings.TrimPrefix(srv.URL, "http"),
	}
}

type clientConn struct {
	conn     *websocket.Conn
	received <-chan string
	pongs    <-chan string
}

// dial connects as userID and starts a background read loop so control
// frames are answered. Received data frames arrive on received; server
// pongs are signalled on pongs.
func (h *sessionHarness) dial(t *testing.T, userID string) *clientConn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(h.wsURL+"/ws/"+userID, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	pongs := make(chan string, 8)
	conn.SetPongHandler(func(payload string) error {
		select {
		case pongs <- payload:
		default:
		}
		return nil
	})

	received := make(chan string, 32)
	go func() {
		defer close(received)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			received <- string(data)
		}
	}()
	return &clientConn{conn: conn, received: received, pongs: pongs}
}

func waitOnline(t *testing.T, h *sessionHarness, userID string) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, ok := h.mgr.Directory().Get(userID)
		return ok
	}, 2*time.Second, 10*time.Millisecond, "session never registered")
}

func recvFrame(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case data, ok := <-ch:
		require.True(t, ok, "connection closed before a frame arrived")
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("no frame within deadline")
		return ""
	}
}

func TestSessionEstablishesAndClaimsUser(t *testing.T) {
	h := newHarness(t, &scriptedHandler{})
	h.dial(t, "u1")

	waitOnline(t, h, "u1")

	claim := h.redis.HGet(cache.OnlineUsersKey, "u1")
	assert.Equal(t, "connector:node-1", claim)
	assert.Equal(t, 1, h.mgr.Directory().Len())
}

func TestSessionDeliversQueuedMessages(t *testing.T) {
	h := newHarness(t, &scriptedHandler{})
	client := h.dial(t, "u1")
	waitOnline(t, h, "u1")

	q, ok := h.mgr.Directory().Get("u1")
	require.True(t, ok)
	require.NoError(t, q.Push(context.Background(), message.DispatchMessage{
		MessageID: "m1", UserID: "u2", ChannelID: "c1", Content: "hi", Timestamp: 123,
	}))

	assert.JSONEq(t,
		`{"type":"dispatch_message","data":{"message_id":"m1","user_id":"u2","channel_id":"c1","content":"hi","timestamp":123}}`,
		recvFrame(t, client.received),
	)
}

func TestSessionPreservesEnqueueOrder(t *testing.T) {
	h := newHarness(t, &scriptedHandler{})
	client := h.dial(t, "u1")
	waitOnline(t, h, "u1")

	q, _ := h.mgr.Directory().Get("u1")
	for _, id := range []string{"m1", "m2", "m3"} {
		require.NoError(t, q.Push(context.Background(), message.CreateMessageRsp{MessageID: id}))
	}

	for _, id := range []string{"m1", "m2", "m3"} {
		assert.Contains(t, recvFrame(t, client.received), id)
	}
}

func TestSessionRoutesInboundFrames(t *testing.T) {
	handler := &scriptedHandler{
		fn: func(ctx context.Context, userID string, sender *Queue, messageType int, data []byte) (bool, error) {
			_ = sender.Push(ctx, message.CreateMessageRsp{MessageID: "echo-" + userID})
			return false, nil
		},
	}
	h := newHarness(t, handler)
	client := h.dial(t, "u1")
	waitOnline(t, h, "u1")

	require.NoError(t, client.conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"create_message","data":{}}`)))

	assert.Contains(t, recvFrame(t, client.received), "echo-u1")
	assert.Equal(t, []string{`{"type":"create_message","data":{}}`}, handler.seen())
}

func TestSessionEndsWhenHandlerSaysDone(t *testing.T) {
	handler := &scriptedHandler{
		fn: func(ctx context.Context, userID string, sender *Queue, messageType int, data []byte) (bool, error) {
			return true, nil
		},
	}
	h := newHarness(t, handler)
	client := h.dial(t, "u1")
	waitOnline(t, h, "u1")

	require.NoError(t, client.conn.WriteMessage(websocket.BinaryMessage, []byte{0xde, 0xad}))

	// The read loop observes the server's close frame as channel closure.
	select {
	case _, ok := <-client.received:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not terminate")
	}

	require.Eventually(t, func() bool { return h.mgr.Directory().Len() == 0 },
		2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return !h.redis.Exists(cache.OnlineUsersKey) },
		2*time.Second, 10*time.Millisecond, "online claim not released")
}

func TestSessionTeardownOnClientClose(t *testing.T) {
	h := newHarness(t, &scriptedHandler{})
	client := h.dial(t, "u1")
	waitOnline(t, h, "u1")

	require.NoError(t, client.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	require.Eventually(t, func() bool { return h.mgr.Directory().Len() == 0 },
		2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return h.redis.HGet(cache.OnlineUsersKey, "u1") == "" },
		2*time.Second, 10*time.Millisecond, "online claim not released")
}

func TestSessionRejectsSecondConnection(t *testing.T) {
	h := newHarness(t, &scriptedHandler{})
	h.dial(t, "u1")
	waitOnline(t, h, "u1")

	second := h.dial(t, "u1")
	select {
	case _, ok := <-second.received:
		assert.False(t, ok, "second session must be closed, not served")
	case <-time.After(2 * time.Second):
		t.Fatal("second session was not rejected")
	}

	// The original claim and session survive.
	assert.Equal(t, "connector:node-1", h.redis.HGet(cache.OnlineUsersKey, "u1"))
	assert.Equal(t, 1, h.mgr.Directory().Len())
}

func TestSessionRejectedWhenClaimHeldElsewhere(t *testing.T) {
	h := newHarness(t, &scriptedHandler{})
	h.redis.HSet(cache.OnlineUsersKey, "u9", "connector:node-2")

	client := h.dial(t, "u9")
	select {
	case _, ok := <-client.received:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("session with a foreign claim was not rejected")
	}

	assert.Equal(t, 0, h.mgr.Directory().Len())
	assert.Equal(t, "connector:node-2", h.redis.HGet(cache.OnlineUsersKey, "u9"))
}

func TestSessionAnswersPingWithQueuedPong(t *testing.T) {
	h := newHarness(t, &scriptedHandler{})
	client := h.dial(t, "u1")
	waitOnline(t, h, "u1")

	require.NoError(t, client.conn.WriteControl(websocket.PingMessage, []byte("hello"),
		time.Now().Add(time.Second)))

	select {
	case <-client.pongs:
	case <-time.After(2 * time.Second):
		t.Fatal("no pong for client ping")
	}
}

func TestSessionAnswersPingSentDuringEstablishment(t *testing.T) {
	h := newHarness(t, &scriptedHandler{})
	client := h.dial(t, "u1")

	// Ping straight after the dial, before the session is registered. The
	// reply is queued and goes out once the send pump starts; a queued
	// pong carries no payload, unlike gorilla's default echo.
	require.NoError(t, client.conn.WriteControl(websocket.PingMessage, []byte("early"),
		time.Now().Add(time.Second)))

	select {
	case payload := <-client.pongs:
		assert.Empty(t, payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no pong for early ping")
	}

	waitOnline(t, h, "u1")
}
