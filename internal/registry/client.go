package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/meshwire/connector/internal/metrics"
)

const (
	// DefaultRefreshInterval is how often a spawned refresh loop re-lists
	// healthy instances from the directory.
	DefaultRefreshInterval = 30 * time.Second

	// httpTimeout bounds every directory API call. A hung Consul agent must
	// not stall a refresh tick indefinitely.
	httpTimeout = 10 * time.Second
)

// ErrUnexpectedStatus is returned (wrapped) when the directory answers a
// call with a non-2xx status.
var ErrUnexpectedStatus = errors.New("registry: unexpected status from directory")

// Transformer turns a raw directory listing entry into the extra resource
// stored alongside it — for upstream services, an opened gRPC client bound
// to the instance address. Transformers for one refresh run concurrently;
// a failing transformer drops only its own instance from the new generation.
type Transformer[T any] func(ctx context.Context, inst ServiceInstance) (T, error)

// Client maintains one logical service's Store against the directory and,
// when asked, keeps this node's own registration alive. Background work
// (refresh loop, TTL heartbeat) runs on an embedded gocron scheduler that
// Close shuts down.
type Client[T any] struct {
	baseURL string
	http    *http.Client
	service string
	store   Store[T]
	logger  *zap.Logger
	sched   gocron.Scheduler
}

// NewClient creates a registry client for the named service. baseURL is the
// directory's HTTP address (e.g. "http://consul:8500").
func NewClient[T any](baseURL, service string, store Store[T], logger *zap.Logger) (*Client[T], error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("registry: create scheduler: %w", err)
	}

	return &Client[T]{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: httpTimeout},
		service: service,
		store:   store,
		logger:  logger.Named("registry").With(zap.String("service", service)),
		sched:   sched,
	}, nil
}

// Store exposes the client's store to request handlers.
func (c *Client[T]) Store() Store[T] { return c.store }

// healthEntry mirrors one element of the /v1/health/service response.
// Only the Service block is consumed; checks were already filtered by the
// passing=true query.
type healthEntry struct {
	Service struct {
		ID      string
		Service string
		Address string
		Port    int
	}
}

// ListHealthy fetches the currently passing instances of the service.
func (c *Client[T]) ListHealthy(ctx context.Context) ([]ServiceInstance, error) {
	url := fmt.Sprintf("%s/v1/health/service/%s?passing=true", c.baseURL, c.service)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("registry: build listing request: %w", err)
	}

	rsp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry: list %s: %w", c.service, err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry: list %s: %w: %d", c.service, ErrUnexpectedStatus, rsp.StatusCode)
	}

	var entries []healthEntry
	if err := json.NewDecoder(rsp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("registry: decode %s listing: %w", c.service, err)
	}

	instances := make([]ServiceInstance, 0, len(entries))
	for _, e := range entries {
		instances = append(instances, ServiceInstance{
			ID:      e.Service.ID,
			Name:    e.Service.Service,
			Address: fmt.Sprintf("%s:%d", e.Service.Address, e.Service.Port),
		})
	}
	return instances, nil
}

// Refresh lists healthy instances, runs transform on each concurrently and
// atomically replaces the store contents with the outcome. An instance
// whose transformer fails is logged and omitted: the pool shrinks while a
// backend is unreachable and grows back on the next successful refresh.
func (c *Client[T]) Refresh(ctx context.Context, transform Transformer[T]) error {
	instances, err := c.ListHealthy(ctx)
	if err != nil {
		return err
	}

	records := make([]ServiceRecord[T], len(instances))
	kept := make([]bool, len(instances))

	var wg sync.WaitGroup
	for i, inst := range instances {
		wg.Add(1)
		go func(i int, inst ServiceInstance) {
			defer wg.Done()

			extra, err := transform(ctx, inst)
			if err != nil {
				c.logger.Warn("dropping instance, transform failed",
					zap.String("instance_id", inst.ID),
					zap.String("address", inst.Address),
					zap.Error(err),
				)
				return
			}
			records[i] = ServiceRecord[T]{Instance: inst, Extra: extra}
			kept[i] = true
		}(i, inst)
	}
	wg.Wait()

	fresh := make([]ServiceRecord[T], 0, len(records))
	for i := range records {
		if kept[i] {
			fresh = append(fresh, records[i])
		}
	}

	c.store.Update(fresh)
	metrics.UpstreamInstances.WithLabelValues(c.service).Set(float64(len(fresh)))

	c.logger.Debug("store refreshed",
		zap.Int("healthy", len(instances)),
		zap.Int("kept", len(fresh)),
	)
	return nil
}

// SpawnRefresh runs Refresh every interval until Close. Tick failures are
// logged and retried on the next tick; they never stop the loop.
func (c *Client[T]) SpawnRefresh(ctx context.Context, interval time.Duration, transform Transformer[T]) error {
	_, err := c.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := c.Refresh(ctx, transform); err != nil {
				c.logger.Warn("periodic refresh failed", zap.Error(err))
			}
		}),
		gocron.WithName("refresh:"+c.service),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("registry: schedule refresh: %w", err)
	}

	c.sched.Start()
	return nil
}

// Registration describes this node to the directory.
type Registration struct {
	ID      string
	Name    string
	Address string
	Port    int
}

type checkBody struct {
	TTL     string `json:"TTL"`
	CheckID string `json:"CheckID"`
	Name    string `json:"Name"`
}

type registerBody struct {
	ID      string    `json:"ID"`
	Name    string    `json:"Name"`
	Address string    `json:"Address"`
	Port    int       `json:"Port"`
	Check   checkBody `json:"Check"`
}

// Register announces this node under reg with a TTL health check and, on
// success, starts a heartbeat loop reporting the check as passing every
// ttl/2. A failed registration is returned to the caller (fatal at
// startup); failed heartbeats are logged and retried on schedule.
func (c *Client[T]) Register(ctx context.Context, reg Registration, ttl time.Duration) error {
	checkID := "service:" + reg.ID

	body := registerBody{
		ID:      reg.ID,
		Name:    reg.Name,
		Address: reg.Address,
		Port:    reg.Port,
		Check: checkBody{
			TTL:     fmt.Sprintf("%ds", int(ttl.Seconds())),
			CheckID: checkID,
			Name:    reg.Name + " ttl",
		},
	}
	if err := c.put(ctx, "/v1/agent/service/register", body); err != nil {
		return err
	}

	c.logger.Info("registered with directory",
		zap.String("service_id", reg.ID),
		zap.String("check_id", checkID),
		zap.Duration("ttl", ttl),
	)

	_, err := c.sched.NewJob(
		gocron.DurationJob(ttl/2),
		gocron.NewTask(func() {
			if err := c.UpdateCheck(ctx, checkID); err != nil {
				c.logger.Warn("ttl heartbeat failed", zap.String("check_id", checkID), zap.Error(err))
			}
		}),
		gocron.WithName("heartbeat:"+checkID),
	)
	if err != nil {
		return fmt.Errorf("registry: schedule heartbeat: %w", err)
	}

	c.sched.Start()
	return nil
}

// UpdateCheck reports the TTL check as passing.
func (c *Client[T]) UpdateCheck(ctx context.Context, checkID string) error {
	return c.put(ctx, "/v1/agent/check/update/"+checkID, map[string]string{"Status": "passing"})
}

func (c *Client[T]) put(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("registry: encode %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("registry: build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	rsp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("registry: put %s: %w", path, err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode < 200 || rsp.StatusCode > 299 {
		return fmt.Errorf("registry: put %s: %w: %d", path, ErrUnexpectedStatus, rsp.StatusCode)
	}
	return nil
}

// Close stops the background refresh and heartbeat jobs. It does not
// deregister from the directory: the TTL check lapses on its own, which
// keeps shutdown fast and tolerates a directory outage.
func (c *Client[T]) Close() error {
	return c.sched.Shutdown()
}
