package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/meshwire/connector/internal/dispatch"
	"github.com/meshwire/connector/internal/registry"
	"github.com/meshwire/connector/internal/state"
)

// shutdownGrace bounds the HTTP drain once shutdown begins. Long-lived
// WebSocket connections are severed at the deadline.
const shutdownGrace = 15 * time.Second

// Run registers this node with the directory and serves HTTP and gRPC
// until ctx is cancelled or either server fails. It returns the first
// error; a clean shutdown returns nil.
func Run(ctx context.Context, st *state.AppState) error {
	logger := st.Logger.Named("server")
	cfg := st.Config

	// The node advertises its gRPC address: that is the surface other
	// cluster members (the dispatch router) call into.
	self, err := registry.NewClient(cfg.ConsulBaseURL(), cfg.ServiceName,
		registry.NewRingStore[struct{}](1, nil), st.Logger)
	if err != nil {
		return err
	}
	defer self.Close() //nolint:errcheck

	reg := registry.Registration{
		ID:      cfg.ServiceID,
		Name:    cfg.ServiceName,
		Address: cfg.GRPCHost,
		Port:    cfg.GRPCPort,
	}
	if err := self.Register(ctx, reg, cfg.RefreshTTL()); err != nil {
		return err
	}

	dispatchSrv := dispatch.NewServer(st.Sessions.Directory(), st.Logger)
	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: NewRouter(st),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr()))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return serveGRPC(ctx, cfg.GRPCAddr(), dispatchSrv, st.Logger)
	})

	return g.Wait()
}
