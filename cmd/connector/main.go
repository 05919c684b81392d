package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/meshwire/connector/internal/cache"
	"github.com/meshwire/connector/internal/config"
	"github.com/meshwire/connector/internal/hashring"
	"github.com/meshwire/connector/internal/registry"
	"github.com/meshwire/connector/internal/router"
	"github.com/meshwire/connector/internal/server"
	"github.com/meshwire/connector/internal/session"
	"github.com/meshwire/connector/internal/state"
	"github.com/meshwire/connector/pb"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Logical upstream service names as registered in the directory.
const (
	userServiceName    = "user-service"
	channelServiceName = "channel-service"
	messageServiceName = "message-service"
)

// ringReplicas is the virtual-node count per upstream instance.
const ringReplicas = 100

type flags struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "connector",
		Short: "Connector node — stateful WebSocket edge gateway",
		Long: `Connector terminates user WebSocket sessions, routes their requests to
the backend user/channel/message services discovered via Consul, and
accepts gRPC push dispatches for fan-out to connected users.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}

	root.AddCommand(newVersionCmd())

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "Path to the JSON config file (default: $CONNECTOR_CONFIG or app_config.json)")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", envOrDefault("CONNECTOR_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("connector %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func run(ctx context.Context, f *flags) error {
	// .env is a development convenience; a missing file is fine.
	_ = godotenv.Load()

	logger, err := buildLogger(f.logLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.Load(config.ResolvePath(f.configPath))
	if err != nil {
		return err
	}

	logger.Info("starting connector",
		zap.String("version", version),
		zap.String("service_id", cfg.ServiceID),
		zap.String("service_name", cfg.ServiceName),
		zap.String("http_addr", cfg.HTTPAddr()),
		zap.String("grpc_addr", cfg.GRPCAddr()),
		zap.String("consul", cfg.ConsulBaseURL()),
	)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisURL, err := config.RedisURL()
	if err != nil {
		return err
	}
	c, err := cache.New(ctx, redisURL, logger)
	if err != nil {
		return err
	}
	defer c.Close() //nolint:errcheck

	users, err := newUpstream(ctx, cfg, userServiceName, logger, pb.NewUserServiceClient)
	if err != nil {
		return err
	}
	defer users.Close() //nolint:errcheck

	channels, err := newUpstream(ctx, cfg, channelServiceName, logger, pb.NewChannelServiceClient)
	if err != nil {
		return err
	}
	defer channels.Close() //nolint:errcheck

	messages, err := newUpstream(ctx, cfg, messageServiceName, logger, pb.NewMessageServiceClient)
	if err != nil {
		return err
	}
	defer messages.Close() //nolint:errcheck

	frameRouter := router.New(users.Store(), channels.Store(), messages.Store(), logger)
	directory := session.NewDirectory()

	st := &state.AppState{
		Config:   cfg,
		Cache:    c,
		Users:    users,
		Channels: channels,
		Messages: messages,
		Sessions: session.NewManager(c, directory, frameRouter, cfg.Identity(), logger),
		Logger:   logger,
	}

	err = server.Run(ctx, st)
	if err != nil {
		logger.Error("connector stopped", zap.Error(err))
		return err
	}
	logger.Info("connector shut down cleanly")
	return nil
}

// newUpstream builds a registry client for one backend service, performs
// the initial refresh and starts the periodic one. The transformer dials a
// shared gRPC connection per instance; dialing is lazy, so refresh succeeds
// even while a backend is still coming up.
func newUpstream[T any](
	ctx context.Context,
	cfg *config.AppConfig,
	service string,
	logger *zap.Logger,
	newClient func(grpc.ClientConnInterface) T,
) (*registry.Client[T], error) {
	store := registry.NewRingStore[T](ringReplicas, hashring.DefaultHasher)

	client, err := registry.NewClient(cfg.ConsulBaseURL(), service, store, logger)
	if err != nil {
		return nil, err
	}

	transform := func(ctx context.Context, inst registry.ServiceInstance) (T, error) {
		conn, err := grpc.NewClient(inst.Address,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			var zero T
			return zero, err
		}
		return newClient(conn), nil
	}

	if err := client.Refresh(ctx, transform); err != nil {
		_ = client.Close()
		return nil, err
	}
	if err := client.SpawnRefresh(ctx, registry.DefaultRefreshInterval, transform); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func buildLogger(level string) (*zap.Logger, error) {
	var cfg zap.Config

	switch level {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}

	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
