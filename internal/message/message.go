// Package message defines the typed frames exchanged with a connected user
// and the JSON envelope codec for both directions. Every frame on the wire
// is a UTF-8 text frame of the form {"type": <snake_case_tag>, "data": <payload>}.
package message

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
)

// Wire tags. Requests and responses share a tag; the direction disambiguates.
const (
	TagRegisterUser       = "register_user"
	TagLoginUser          = "login_user"
	TagGetUserInfo        = "get_user_info"
	TagCreateChannel      = "create_channel"
	TagListChannelDetails = "list_channel_details"
	TagJoinChannel        = "join_channel"
	TagCreateMessage      = "create_message"
	TagListMessages       = "list_messages"
	TagDispatchMessage    = "dispatch_message"
)

// ErrUnknownType is returned for an envelope whose type tag is not a request.
var ErrUnknownType = errors.New("message: unknown type")

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ReqMessage is one typed inbound request. Exactly one variant method
// applies per concrete type.
type ReqMessage interface {
	reqTag() string
}

type RegisterUserReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginUserReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type GetUserInfoReq struct {
	UserID string `json:"user_id"`
}

type CreateChannelReq struct {
	Name      string `json:"name"`
	CreatorID string `json:"creator_id"`
}

type ListChannelDetailsReq struct {
	UserID string `json:"user_id"`
}

type JoinChannelReq struct {
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
}

type CreateMessageReq struct {
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
}

type ListMessagesReq struct {
	ChannelID  string `json:"channel_id"`
	Limit      int32  `json:"limit"`
	LatestTime int64  `json:"latest_time"`
}

func (RegisterUserReq) reqTag() string       { return TagRegisterUser }
func (LoginUserReq) reqTag() string          { return TagLoginUser }
func (GetUserInfoReq) reqTag() string        { return TagGetUserInfo }
func (CreateChannelReq) reqTag() string      { return TagCreateChannel }
func (ListChannelDetailsReq) reqTag() string { return TagListChannelDetails }
func (JoinChannelReq) reqTag() string        { return TagJoinChannel }
func (CreateMessageReq) reqTag() string      { return TagCreateMessage }
func (ListMessagesReq) reqTag() string       { return TagListMessages }

// DecodeRequest parses one inbound text frame into its typed request.
func DecodeRequest(data []byte) (ReqMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("message: parse envelope: %w", err)
	}

	var (
		req ReqMessage
		err error
	)
	switch env.Type {
	case TagRegisterUser:
		req, err = decodeData[RegisterUserReq](env.Data)
	case TagLoginUser:
		req, err = decodeData[LoginUserReq](env.Data)
	case TagGetUserInfo:
		req, err = decodeData[GetUserInfoReq](env.Data)
	case TagCreateChannel:
		req, err = decodeData[CreateChannelReq](env.Data)
	case TagListChannelDetails:
		req, err = decodeData[ListChannelDetailsReq](env.Data)
	case TagJoinChannel:
		req, err = decodeData[JoinChannelReq](env.Data)
	case TagCreateMessage:
		req, err = decodeData[CreateMessageReq](env.Data)
	case TagListMessages:
		req, err = decodeData[ListMessagesReq](env.Data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("message: parse %s payload: %w", env.Type, err)
	}
	return req, nil
}

func decodeData[T ReqMessage](raw json.RawMessage) (ReqMessage, error) {
	var v T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// ServiceMessage is one typed outbound frame bound for a session's socket.
type ServiceMessage interface {
	// Frame renders the message as a WebSocket frame. messageType is a
	// gorilla/websocket frame type.
	Frame() (messageType int, payload []byte, err error)
}

// Pong answers a client Ping at the protocol level.
type Pong struct{}

// Frame renders a pong control frame with no payload.
func (Pong) Frame() (int, []byte, error) {
	return websocket.PongMessage, nil, nil
}

// DispatchMessage is a push delivery fanned out to the session's user.
type DispatchMessage struct {
	MessageID string `json:"message_id"`
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

func (m DispatchMessage) Frame() (int, []byte, error) {
	return textFrame(TagDispatchMessage, m)
}

// ChannelMember is one membership entry inside a channel detail.
type ChannelMember struct {
	UserID   string `json:"user_id"`
	JoinedAt int64  `json:"joined_at"`
}

// ChannelDetail is one channel with its member list.
type ChannelDetail struct {
	ChannelID   string          `json:"channel_id"`
	ChannelName string          `json:"channel_name"`
	Members     []ChannelMember `json:"members"`
}

// ChannelMessage is one stored message returned by a history listing.
type ChannelMessage struct {
	MessageID string `json:"message_id"`
	ChannelID string `json:"channel_id"`
	SenderID  string `json:"sender_id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

type RegisterUserRsp struct {
	UserID string `json:"user_id"`
}

type LoginUserRsp struct {
	Token string `json:"token"`
}

type GetUserInfoRsp struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	CreatedAt int64  `json:"created_at"`
}

type CreateChannelRsp struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
}

type ListChannelDetailsRsp struct {
	Channels []ChannelDetail `json:"channels"`
}

type JoinChannelRsp struct {
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
}

type CreateMessageRsp struct {
	MessageID string `json:"message_id"`
}

type ListMessagesRsp struct {
	Messages []ChannelMessage `json:"messages"`
}

func (m RegisterUserRsp) Frame() (int, []byte, error)       { return textFrame(TagRegisterUser, m) }
func (m LoginUserRsp) Frame() (int, []byte, error)          { return textFrame(TagLoginUser, m) }
func (m GetUserInfoRsp) Frame() (int, []byte, error)        { return textFrame(TagGetUserInfo, m) }
func (m CreateChannelRsp) Frame() (int, []byte, error)      { return textFrame(TagCreateChannel, m) }
func (m ListChannelDetailsRsp) Frame() (int, []byte, error) { return textFrame(TagListChannelDetails, m) }
func (m JoinChannelRsp) Frame() (int, []byte, error)        { return textFrame(TagJoinChannel, m) }
func (m CreateMessageRsp) Frame() (int, []byte, error)      { return textFrame(TagCreateMessage, m) }
func (m ListMessagesRsp) Frame() (int, []byte, error)       { return textFrame(TagListMessages, m) }

func textFrame(tag string, payload any) (int, []byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("message: encode %s payload: %w", tag, err)
	}
	out, err := json.Marshal(envelope{Type: tag, Data: raw})
	if err != nil {
		return 0, nil, fmt.Errorf("message: encode %s envelope: %w", tag, err)
	}
	return websocket.TextMessage, out, nil
}
