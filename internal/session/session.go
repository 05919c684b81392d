// Package session owns the per-user WebSocket lifecycle: handshake, the
// cluster-wide online claim, the node-local directory entry, the bounded
// outbound queue, and the send/recv pump pair that drives the socket.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/meshwire/connector/internal/cache"
	"github.com/meshwire/connector/internal/message"
	"github.com/meshwire/connector/internal/metrics"
)

const (
	// writeWait bounds each socket write. A stalled client trips the
	// deadline and the send pump exits.
	writeWait = 10 * time.Second

	// pongWait is how long a connection may stay silent. Any frame or
	// pong resets it.
	pongWait = 60 * time.Second

	// pingPeriod is the keepalive cadence. Must be under pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
)

// handshakePing is the fixed payload of the initial server ping. The
// session is not registered until the peer answers it.
var handshakePing = []byte{0x01, 0x02, 0x03}

// upgrader performs the HTTP → WebSocket protocol upgrade. Origin checks
// belong to the reverse proxy in front of the node.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FrameHandler consumes one inbound frame on behalf of a session. done
// reports that the session should terminate; a non-nil err is logged by
// the caller either way.
type FrameHandler interface {
	HandleFrame(ctx context.Context, userID string, sender *Queue, messageType int, data []byte) (done bool, err error)
}

// Manager upgrades connections and runs sessions. identity is the
// "<service_name>:<service_id>" value written into the shared online hash
// so other nodes can address this one.
type Manager struct {
	cache     *cache.Cache
	directory *Directory
	handler   FrameHandler
	identity  string
	logger    *zap.Logger
}

// NewManager wires a session manager.
func NewManager(c *cache.Cache, d *Directory, h FrameHandler, identity string, logger *zap.Logger) *Manager {
	return &Manager{
		cache:     c,
		directory: d,
		handler:   h,
		identity:  identity,
		logger:    logger.Named("session"),
	}
}

// Directory exposes the online-user directory to the dispatch server.
func (m *Manager) Directory() *Directory { return m.directory }

// ServeWS upgrades the request and runs the session to completion. It
// blocks until the connection is torn down.
func (m *Manager) ServeWS(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.logger.Warn("upgrade failed",
			zap.String("user_id", userID),
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	s := &session{
		mgr:        m,
		conn:       conn,
		userID:     userID,
		logger:     m.logger.With(zap.String("user_id", userID), zap.String("remote_addr", r.RemoteAddr)),
		inbound:    make(chan frame),
		alive:      make(chan struct{}, 1),
		readerDone: make(chan struct{}),
		stop:       make(chan struct{}),
	}
	s.run(r.Context())
}

type frame struct {
	messageType int
	data        []byte
}

type session struct {
	mgr    *Manager
	conn   *websocket.Conn
	userID string
	logger *zap.Logger
	queue  *Queue

	// inbound carries data frames from the reader goroutine to the recv
	// loop. The reader is the only goroutine that touches conn reads.
	inbound    chan frame
	alive      chan struct{}
	readerDone chan struct{}
	stop       chan struct{}
	readErr    error
}

func (s *session) run(ctx context.Context) {
	defer s.conn.Close()
	defer close(s.stop)

	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.logger.Warn("set read deadline failed", zap.Error(err))
		return
	}
	s.conn.SetPongHandler(func(string) error {
		select {
		case s.alive <- struct{}{}:
		default:
		}
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The queue exists before the reader starts so every handler is in
	// place while the connection is still single-goroutine; gorilla reads
	// the handler fields from the reader without synchronization. Pings
	// answer with a queued Pong so the reply honors outbound ordering:
	// before the send pump starts they sit buffered, and once the queue
	// is closed they are dropped.
	s.queue = NewQueue()
	defer s.queue.Close()
	s.conn.SetPingHandler(func(string) error {
		if err := s.queue.Push(ctx, message.Pong{}); err != nil {
			s.logger.Debug("pong dropped", zap.Error(err))
		}
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go s.readLoop()

	pending, ok := s.handshake()
	if !ok {
		return
	}

	// Claim the user cluster-wide before the directory entry exists. A
	// false reply means some node (possibly a dead one) still holds the
	// claim; the session never starts.
	created, err := s.mgr.cache.HashSet(ctx, cache.OnlineUsersKey, s.userID, s.mgr.identity)
	if err != nil {
		s.logger.Warn("online claim failed", zap.Error(err))
		s.closeWithReason("cache unavailable")
		return
	}
	if !created {
		s.logger.Info("user already claimed, rejecting session")
		s.closeWithReason("already online")
		return
	}

	if !s.mgr.directory.Insert(s.userID, s.queue) {
		// Lost a local race for the same user. The winning session owns
		// the directory entry and will clear the cache claim on its own
		// teardown.
		s.logger.Warn("directory entry exists, rejecting session")
		s.closeWithReason("already online")
		return
	}

	metrics.OpenSessions.Inc()
	s.logger.Info("session established")

	sendDone := make(chan struct{})
	go s.sendLoop(sendDone)

	s.recvLoop(ctx, pending, sendDone)

	// Ordered teardown: directory first so dispatches stop finding the
	// queue, then the queue so the send pump drains, then the shared
	// cache claim.
	s.mgr.directory.Remove(s.userID)
	s.queue.Close()
	<-sendDone

	if _, err := s.mgr.cache.HashDelete(context.WithoutCancel(ctx), cache.OnlineUsersKey, s.userID); err != nil {
		s.logger.Warn("online claim cleanup failed", zap.Error(err))
	}

	metrics.OpenSessions.Dec()
	s.logger.Info("session closed")
}

// readLoop is the sole reader of the connection. Data frames are handed to
// the recv loop; control frames fire the handlers installed on conn.
func (s *session) readLoop() {
	defer close(s.readerDone)

	for {
		mt, data, err := s.conn.ReadMessage()
		if err != nil {
			s.readErr = err
			return
		}
		if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			s.readErr = err
			return
		}

		select {
		case s.inbound <- frame{messageType: mt, data: data}:
		case <-s.stop:
			return
		}
	}
}

// handshake sends the fixed ping and waits for any reply frame. A data
// frame counts as a reply and is returned so the recv loop processes it
// instead of dropping it.
func (s *session) handshake() (*frame, bool) {
	if err := s.conn.WriteControl(websocket.PingMessage, handshakePing, time.Now().Add(writeWait)); err != nil {
		s.logger.Warn("handshake ping failed", zap.Error(err))
		return nil, false
	}

	select {
	case <-s.alive:
		return nil, true
	case f := <-s.inbound:
		return &f, true
	case <-s.readerDone:
		s.logger.Info("peer went away during handshake", zap.Error(s.readErr))
		return nil, false
	}
}

func (s *session) recvLoop(ctx context.Context, pending *frame, sendDone <-chan struct{}) {
	if pending != nil {
		if done := s.dispatchFrame(ctx, *pending); done {
			return
		}
	}

	for {
		select {
		case f := <-s.inbound:
			if done := s.dispatchFrame(ctx, f); done {
				return
			}
		case <-s.readerDone:
			if err := s.readErr; err != nil && !isExpectedClose(err) {
				s.logger.Warn("socket read failed", zap.Error(err))
			}
			return
		case <-sendDone:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *session) dispatchFrame(ctx context.Context, f frame) bool {
	metrics.InboundFrames.WithLabelValues(frameLabel(f.messageType)).Inc()

	done, err := s.mgr.handler.HandleFrame(ctx, s.userID, s.queue, f.messageType, f.data)
	if err != nil {
		s.logger.Warn("frame rejected", zap.Error(err))
	}
	return done
}

// sendLoop is the only goroutine writing to the connection after the
// handshake. It serializes queued messages, emits keepalive pings, and on
// queue closure drains what is buffered before sending a close frame.
func (s *session) sendLoop(done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(done)
	}()

	for {
		select {
		case msg := <-s.queue.ch:
			if !s.writeMessage(msg) {
				return
			}
		case <-s.queue.Done():
			for {
				select {
				case msg := <-s.queue.ch:
					if !s.writeMessage(msg) {
						return
					}
				default:
					_ = s.conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
						time.Now().Add(writeWait))
					return
				}
			}
		case <-ticker.C:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logger.Debug("keepalive ping failed", zap.Error(err))
				return
			}
		}
	}
}

func (s *session) writeMessage(msg message.ServiceMessage) bool {
	mt, payload, err := msg.Frame()
	if err != nil {
		s.logger.Error("frame encode failed", zap.Error(err))
		return true // encoding bugs must not kill the session
	}

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false
	}
	if err := s.conn.WriteMessage(mt, payload); err != nil {
		s.logger.Warn("socket write failed", zap.Error(err))
		return false
	}
	return true
}

func (s *session) closeWithReason(reason string) {
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason),
		time.Now().Add(writeWait))
}

func isExpectedClose(err error) bool {
	return websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
	)
}

func frameLabel(messageType int) string {
	switch messageType {
	case websocket.TextMessage:
		return "text"
	case websocket.BinaryMessage:
		return "binary"
	default:
		return "other"
	}
}
