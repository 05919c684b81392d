// Package state bundles the process-wide dependencies handed to request
// handlers and background tasks. The bundle itself is immutable after
// construction; its members carry their own synchronization.
package state

import (
	"go.uber.org/zap"

	"github.com/meshwire/connector/internal/cache"
	"github.com/meshwire/connector/internal/config"
	"github.com/meshwire/connector/internal/registry"
	"github.com/meshwire/connector/internal/session"
	"github.com/meshwire/connector/pb"
)

// AppState is shared by reference across the HTTP handlers, the dispatch
// server and the registry refresh loops.
type AppState struct {
	Config   *config.AppConfig
	Cache    *cache.Cache
	Users    *registry.Client[pb.UserServiceClient]
	Channels *registry.Client[pb.ChannelServiceClient]
	Messages *registry.Client[pb.MessageServiceClient]
	Sessions *session.Manager
	Logger   *zap.Logger
}
