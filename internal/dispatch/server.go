// Package dispatch receives push deliveries from the backend over gRPC and
// routes each onto the addressed user's session queue. A user attached to a
// different node is simply not found here; the upstream router owns the
// node-addressing problem.
package dispatch

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/meshwire/connector/internal/message"
	"github.com/meshwire/connector/internal/metrics"
	"github.com/meshwire/connector/internal/session"
	"github.com/meshwire/connector/pb"
)

// Server implements pb.DispatchServiceServer against the node-local
// session directory.
type Server struct {
	pb.UnimplementedDispatchServiceServer

	directory *session.Directory
	logger    *zap.Logger
}

// NewServer wires the dispatch endpoint onto the session directory.
func NewServer(directory *session.Directory, logger *zap.Logger) *Server {
	return &Server{
		directory: directory,
		logger:    logger.Named("dispatch"),
	}
}

// DispatchMessage enqueues one push for the target user. The enqueue
// blocks while the target's queue is full, so a slow client shows up as
// call latency on the dispatcher's side.
func (s *Server) DispatchMessage(ctx context.Context, req *pb.DispatchMessageRequest) (*pb.DispatchMessageResponse, error) {
	q, ok := s.directory.Get(req.GetTargetUserId())
	if !ok {
		metrics.DispatchResults.WithLabelValues("not_found").Inc()
		return nil, status.Errorf(codes.NotFound, "user %s is not connected to this node", req.GetTargetUserId())
	}

	msg := message.DispatchMessage{
		MessageID: req.GetMessageId(),
		UserID:    req.GetUserId(),
		ChannelID: req.GetChannelId(),
		Content:   req.GetContent(),
		Timestamp: req.GetCreatedAt(),
	}
	if err := q.Push(ctx, msg); err != nil {
		metrics.DispatchResults.WithLabelValues("queue_closed").Inc()
		s.logger.Warn("push lost, session tearing down",
			zap.String("target_user_id", req.GetTargetUserId()),
			zap.String("message_id", req.GetMessageId()),
			zap.Error(err),
		)
		return nil, status.Error(codes.Internal, "session queue closed")
	}

	metrics.DispatchResults.WithLabelValues("delivered").Inc()
	return &pb.DispatchMessageResponse{Successful: true}, nil
}
