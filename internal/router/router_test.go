package router

import (
	"context"
	"errors"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"

	"github.com/meshwire/connector/internal/message"
	"github.com/meshwire/connector/internal/registry"
	"github.com/meshwire/connector/internal/session"
	"github.com/meshwire/connector/pb"
)

type fakeUserClient struct {
	registerErr error
}

func (f *fakeUserClient) RegisterUser(ctx context.Context, in *pb.RegisterUserRequest, opts ...grpc.CallOption) (*pb.RegisterUserResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &pb.RegisterUserResponse{UserId: "uid-" + in.GetUsername()}, nil
}

func (f *fakeUserClient) LoginUser(ctx context.Context, in *pb.LoginUserRequest, opts ...grpc.CallOption) (*pb.LoginUserResponse, error) {
	return &pb.LoginUserResponse{Token: "token-" + in.GetUsername()}, nil
}

func (f *fakeUserClient) GetUserInfo(ctx context.Context, in *pb.GetUserInfoRequest, opts ...grpc.CallOption) (*pb.GetUserInfoResponse, error) {
	return &pb.GetUserInfoResponse{UserId: in.GetUserId(), Username: "alice", CreatedAt: 42}, nil
}

type fakeChannelClient struct{}

func (fakeChannelClient) CreateChannel(ctx context.Context, in *pb.CreateChannelRequest, opts ...grpc.CallOption) (*pb.CreateChannelResponse, error) {
	return &pb.CreateChannelResponse{ChannelId: "c1", ChannelName: in.GetName()}, nil
}

func (fakeChannelClient) ListChannelDetails(ctx context.Context, in *pb.ListChannelDetailsRequest, opts ...grpc.CallOption) (*pb.ListChannelDetailsResponse, error) {
	return &pb.ListChannelDetailsResponse{Channels: []*pb.ChannelDetail{{
		ChannelId:   "c1",
		ChannelName: "general",
		Members:     []*pb.ChannelMember{{UserId: in.GetUserId(), JoinedAt: 7}},
	}}}, nil
}

func (fakeChannelClient) JoinChannel(ctx context.Context, in *pb.JoinChannelRequest, opts ...grpc.CallOption) (*pb.JoinChannelResponse, error) {
	return &pb.JoinChannelResponse{ChannelId: in.GetChannelId(), UserId: in.GetUserId()}, nil
}

type fakeMessageClient struct {
	lastCreate *pb.CreateMessageRequest
}

func (f *fakeMessageClient) CreateMessage(ctx context.Context, in *pb.CreateMessageRequest, opts ...grpc.CallOption) (*pb.CreateMessageResponse, error) {
	f.lastCreate = in
	return &pb.CreateMessageResponse{MessageId: "m1"}, nil
}

func (f *fakeMessageClient) ListChannelMessages(ctx context.Context, in *pb.ListChannelMessagesRequest, opts ...grpc.CallOption) (*pb.ListChannelMessagesResponse, error) {
	return &pb.ListChannelMessagesResponse{Messages: []*pb.Message{{
		MessageId: "m1",
		ChannelId: in.GetChannelId(),
		SenderId:  "u2",
		Content:   "hi",
		CreatedAt: 11,
	}}}, nil
}

func storeWith[T any](t *testing.T, id string, client T) registry.Store[T] {
	t.Helper()
	s := registry.NewRingStore[T](100, nil)
	s.Update([]registry.ServiceRecord[T]{{
		Instance: registry.ServiceInstance{ID: id, Name: id, Address: id + ":9000"},
		Extra:    client,
	}})
	return s
}

type fixture struct {
	router   *Router
	queue    *session.Queue
	users    *fakeUserClient
	messages *fakeMessageClient
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := &fakeUserClient{}
	messages := &fakeMessageClient{}
	r := New(
		storeWith[pb.UserServiceClient](t, "user-1", users),
		storeWith[pb.ChannelServiceClient](t, "channel-1", fakeChannelClient{}),
		storeWith[pb.MessageServiceClient](t, "message-1", messages),
		zaptest.NewLogger(t),
	)
	return &fixture{router: r, queue: session.NewQueue(), users: users, messages: messages}
}

func (f *fixture) text(t *testing.T, payload string) (bool, error) {
	t.Helper()
	return f.router.HandleFrame(context.Background(), "u1", f.queue, websocket.TextMessage, []byte(payload))
}

func (f *fixture) popResponse(t *testing.T) message.ServiceMessage {
	t.Helper()
	select {
	case msg := <-f.queue.Messages():
		return msg
	default:
		t.Fatal("no response enqueued")
		return nil
	}
}

func TestHandleFrameRegisterUser(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{"type":"register_user","data":{"username":"alice","password":"p"}}`)
	require.NoError(t, err)
	assert.False(t, done)

	assert.Equal(t, message.RegisterUserRsp{UserID: "uid-alice"}, f.popResponse(t))
}

func TestHandleFrameLoginUser(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{"type":"login_user","data":{"username":"alice","password":"p"}}`)
	require.NoError(t, err)
	assert.False(t, done)

	assert.Equal(t, message.LoginUserRsp{Token: "token-alice"}, f.popResponse(t))
}

func TestHandleFrameGetUserInfo(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{"type":"get_user_info","data":{"user_id":"u7"}}`)
	require.NoError(t, err)
	assert.False(t, done)

	assert.Equal(t, message.GetUserInfoRsp{UserID: "u7", Username: "alice", CreatedAt: 42}, f.popResponse(t))
}

func TestHandleFrameCreateChannel(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{"type":"create_channel","data":{"name":"general","creator_id":"u1"}}`)
	require.NoError(t, err)
	assert.False(t, done)

	assert.Equal(t, message.CreateChannelRsp{ChannelID: "c1", ChannelName: "general"}, f.popResponse(t))
}

func TestHandleFrameListChannelDetails(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{"type":"list_channel_details","data":{"user_id":"u1"}}`)
	require.NoError(t, err)
	assert.False(t, done)

	assert.Equal(t, message.ListChannelDetailsRsp{Channels: []message.ChannelDetail{{
		ChannelID:   "c1",
		ChannelName: "general",
		Members:     []message.ChannelMember{{UserID: "u1", JoinedAt: 7}},
	}}}, f.popResponse(t))
}

func TestHandleFrameJoinChannel(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{"type":"join_channel","data":{"channel_id":"c1","user_id":"u1"}}`)
	require.NoError(t, err)
	assert.False(t, done)

	assert.Equal(t, message.JoinChannelRsp{ChannelID: "c1", UserID: "u1"}, f.popResponse(t))
}

func TestHandleFrameCreateMessageMapsSender(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{"type":"create_message","data":{"channel_id":"c1","user_id":"u1","content":"hi"}}`)
	require.NoError(t, err)
	assert.False(t, done)

	assert.Equal(t, message.CreateMessageRsp{MessageID: "m1"}, f.popResponse(t))
	require.NotNil(t, f.messages.lastCreate)
	assert.Equal(t, "u1", f.messages.lastCreate.GetSenderId())
}

func TestHandleFrameListMessages(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{"type":"list_messages","data":{"channel_id":"c1","limit":20,"latest_time":123}}`)
	require.NoError(t, err)
	assert.False(t, done)

	assert.Equal(t, message.ListMessagesRsp{Messages: []message.ChannelMessage{{
		MessageID: "m1", ChannelID: "c1", SenderID: "u2", Content: "hi", CreatedAt: 11,
	}}}, f.popResponse(t))
}

func TestHandleFrameBinaryBreaks(t *testing.T) {
	f := newFixture(t)

	done, err := f.router.HandleFrame(context.Background(), "u1", f.queue, websocket.BinaryMessage, []byte{0x01})
	assert.True(t, done)
	assert.ErrorIs(t, err, ErrBinaryFrame)
}

func TestHandleFrameMalformedEnvelopeBreaks(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{broken`)
	assert.True(t, done)
	assert.Error(t, err)
}

func TestHandleFrameUnknownTypeBreaks(t *testing.T) {
	f := newFixture(t)

	done, err := f.text(t, `{"type":"launch_missiles","data":{}}`)
	assert.True(t, done)
	assert.ErrorIs(t, err, message.ErrUnknownType)
}

func TestHandleFrameEmptyRegistryContinues(t *testing.T) {
	users := registry.NewRingStore[pb.UserServiceClient](100, nil)
	r := New(
		users,
		storeWith[pb.ChannelServiceClient](t, "channel-1", fakeChannelClient{}),
		storeWith[pb.MessageServiceClient](t, "message-1", &fakeMessageClient{}),
		zaptest.NewLogger(t),
	)

	done, err := r.HandleFrame(context.Background(), "u1", session.NewQueue(),
		websocket.TextMessage, []byte(`{"type":"register_user","data":{"username":"alice","password":"p"}}`))
	assert.False(t, done, "an unreachable upstream must not end the session")
	assert.ErrorIs(t, err, ErrUpstreamUnaccessible)
}

func TestHandleFrameRPCFailureContinues(t *testing.T) {
	f := newFixture(t)
	f.users.registerErr = errors.New("backend exploded")

	done, err := f.text(t, `{"type":"register_user","data":{"username":"alice","password":"p"}}`)
	assert.False(t, done)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUpstreamUnaccessible)
}

func TestHandleFrameClosedQueueContinues(t *testing.T) {
	f := newFixture(t)
	f.queue.Close()

	done, err := f.text(t, `{"type":"register_user","data":{"username":"alice","password":"p"}}`)
	assert.False(t, done)
	assert.NoError(t, err)
}
