// Package router turns typed inbound session frames into upstream gRPC
// calls and funnels the responses back onto the session's outbound queue.
// Upstream instances are picked from the per-service registry stores by a
// request-specific hash key, so requests about one entity keep landing on
// the same backend while the fleet is stable.
package router

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/meshwire/connector/internal/message"
	"github.com/meshwire/connector/internal/metrics"
	"github.com/meshwire/connector/internal/registry"
	"github.com/meshwire/connector/internal/session"
	"github.com/meshwire/connector/pb"
)

// rpcTimeout bounds every upstream call issued on behalf of a session
// frame. A hung backend must not pin the session's recv loop forever.
const rpcTimeout = 10 * time.Second

var (
	// ErrUpstreamUnaccessible means no healthy instance is registered for
	// the service a request needs. The session stays open; the request is
	// simply lost and the user may retry after the next refresh.
	ErrUpstreamUnaccessible = errors.New("router: no healthy upstream instance")

	// ErrBinaryFrame terminates sessions that send binary data. The wire
	// protocol is JSON text frames only.
	ErrBinaryFrame = errors.New("router: binary frames not supported")
)

// Router implements session.FrameHandler over the three upstream stores.
type Router struct {
	users    registry.Store[pb.UserServiceClient]
	channels registry.Store[pb.ChannelServiceClient]
	messages registry.Store[pb.MessageServiceClient]
	logger   *zap.Logger
}

// New wires a router onto the upstream registry stores.
func New(
	users registry.Store[pb.UserServiceClient],
	channels registry.Store[pb.ChannelServiceClient],
	messages registry.Store[pb.MessageServiceClient],
	logger *zap.Logger,
) *Router {
	return &Router{
		users:    users,
		channels: channels,
		messages: messages,
		logger:   logger.Named("router"),
	}
}

// HandleFrame consumes one inbound frame. A true return ends the session;
// upstream failures are reported as errors with done=false so the session
// survives them.
func (r *Router) HandleFrame(ctx context.Context, userID string, sender *session.Queue, messageType int, data []byte) (bool, error) {
	switch messageType {
	case websocket.TextMessage:
	case websocket.BinaryMessage:
		return true, ErrBinaryFrame
	default:
		return false, nil
	}

	req, err := message.DecodeRequest(data)
	if err != nil {
		// A malformed envelope is a broken client, not a backend hiccup.
		return true, err
	}

	rsp, err := r.dispatch(ctx, req)
	if err != nil {
		return false, err
	}

	if err := sender.Push(ctx, rsp); err != nil {
		// The session is already tearing down; nothing to deliver to.
		r.logger.Debug("response dropped",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
	return false, nil
}

// dispatch issues the upstream RPC for one request. The hash key per
// request type pins related traffic to a consistent backend instance.
func (r *Router) dispatch(ctx context.Context, req message.ReqMessage) (message.ServiceMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	switch q := req.(type) {
	case message.RegisterUserReq:
		return call(ctx, r, r.users, "user", q.Username,
			func(ctx context.Context, c pb.UserServiceClient) (message.ServiceMessage, error) {
				rsp, err := c.RegisterUser(ctx, &pb.RegisterUserRequest{Username: q.Username, Password: q.Password})
				if err != nil {
					return nil, err
				}
				return message.RegisterUserRsp{UserID: rsp.GetUserId()}, nil
			})

	case message.LoginUserReq:
		return call(ctx, r, r.users, "user", q.Username,
			func(ctx context.Context, c pb.UserServiceClient) (message.ServiceMessage, error) {
				rsp, err := c.LoginUser(ctx, &pb.LoginUserRequest{Username: q.Username, Password: q.Password})
				if err != nil {
					return nil, err
				}
				return message.LoginUserRsp{Token: rsp.GetToken()}, nil
			})

	case message.GetUserInfoReq:
		return call(ctx, r, r.users, "user", q.UserID,
			func(ctx context.Context, c pb.UserServiceClient) (message.ServiceMessage, error) {
				rsp, err := c.GetUserInfo(ctx, &pb.GetUserInfoRequest{UserId: q.UserID})
				if err != nil {
					return nil, err
				}
				return message.GetUserInfoRsp{
					UserID:    rsp.GetUserId(),
					Username:  rsp.GetUsername(),
					CreatedAt: rsp.GetCreatedAt(),
				}, nil
			})

	case message.CreateChannelReq:
		return call(ctx, r, r.channels, "channel", q.CreatorID,
			func(ctx context.Context, c pb.ChannelServiceClient) (message.ServiceMessage, error) {
				rsp, err := c.CreateChannel(ctx, &pb.CreateChannelRequest{Name: q.Name, CreatorId: q.CreatorID})
				if err != nil {
					return nil, err
				}
				return message.CreateChannelRsp{
					ChannelID:   rsp.GetChannelId(),
					ChannelName: rsp.GetChannelName(),
				}, nil
			})

	case message.ListChannelDetailsReq:
		return call(ctx, r, r.channels, "channel", q.UserID,
			func(ctx context.Context, c pb.ChannelServiceClient) (message.ServiceMessage, error) {
				rsp, err := c.ListChannelDetails(ctx, &pb.ListChannelDetailsRequest{UserId: q.UserID})
				if err != nil {
					return nil, err
				}
				return message.ListChannelDetailsRsp{Channels: channelDetails(rsp.GetChannels())}, nil
			})

	case message.JoinChannelReq:
		return call(ctx, r, r.channels, "channel", q.UserID,
			func(ctx context.Context, c pb.ChannelServiceClient) (message.ServiceMessage, error) {
				rsp, err := c.JoinChannel(ctx, &pb.JoinChannelRequest{ChannelId: q.ChannelID, UserId: q.UserID})
				if err != nil {
					return nil, err
				}
				return message.JoinChannelRsp{
					ChannelID: rsp.GetChannelId(),
					UserID:    rsp.GetUserId(),
				}, nil
			})

	case message.CreateMessageReq:
		return call(ctx, r, r.messages, "message", q.UserID,
			func(ctx context.Context, c pb.MessageServiceClient) (message.ServiceMessage, error) {
				rsp, err := c.CreateMessage(ctx, &pb.CreateMessageRequest{
					ChannelId: q.ChannelID,
					SenderId:  q.UserID,
					Content:   q.Content,
				})
				if err != nil {
					return nil, err
				}
				return message.CreateMessageRsp{MessageID: rsp.GetMessageId()}, nil
			})

	case message.ListMessagesReq:
		return call(ctx, r, r.messages, "message", q.ChannelID,
			func(ctx context.Context, c pb.MessageServiceClient) (message.ServiceMessage, error) {
				rsp, err := c.ListChannelMessages(ctx, &pb.ListChannelMessagesRequest{
					ChannelId:  q.ChannelID,
					Limit:      q.Limit,
					LatestTime: q.LatestTime,
				})
				if err != nil {
					return nil, err
				}
				return message.ListMessagesRsp{Messages: channelMessages(rsp.GetMessages())}, nil
			})

	default:
		return nil, fmt.Errorf("router: unhandled request %T", req)
	}
}

// call picks an instance from store by key and runs the RPC on its client.
func call[T any](
	ctx context.Context,
	r *Router,
	store registry.Store[T],
	service, key string,
	rpc func(ctx context.Context, client T) (message.ServiceMessage, error),
) (message.ServiceMessage, error) {
	rec, ok := store.Pick(key)
	if !ok {
		metrics.UpstreamErrors.WithLabelValues(service, "unaccessible").Inc()
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnaccessible, service)
	}

	rsp, err := rpc(ctx, rec.Extra)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues(service, "rpc").Inc()
		return nil, fmt.Errorf("router: %s rpc via %s: %w", service, rec.Instance.ID, err)
	}
	return rsp, nil
}

func channelDetails(in []*pb.ChannelDetail) []message.ChannelDetail {
	out := make([]message.ChannelDetail, 0, len(in))
	for _, ch := range in {
		members := make([]message.ChannelMember, 0, len(ch.GetMembers()))
		for _, m := range ch.GetMembers() {
			members = append(members, message.ChannelMember{
				UserID:   m.GetUserId(),
				JoinedAt: m.GetJoinedAt(),
			})
		}
		out = append(out, message.ChannelDetail{
			ChannelID:   ch.GetChannelId(),
			ChannelName: ch.GetChannelName(),
			Members:     members,
		})
	}
	return out
}

func channelMessages(in []*pb.Message) []message.ChannelMessage {
	out := make([]message.ChannelMessage, 0, len(in))
	for _, m := range in {
		out = append(out, message.ChannelMessage{
			MessageID: m.GetMessageId(),
			ChannelID: m.GetChannelId(),
			SenderID:  m.GetSenderId(),
			Content:   m.GetContent(),
			CreatedAt: m.GetCreatedAt(),
		})
	}
	return out
}
