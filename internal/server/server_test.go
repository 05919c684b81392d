package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConsul accepts the agent endpoints the supervisor hits and records
// the request paths.
type fakeConsul struct {
	srv *httptest.Server

	mu    sync.Mutex
	paths []string
}

func newFakeConsul(t *testing.T) *fakeConsul {
	t.Helper()

	f := &fakeConsul{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.paths = append(f.paths, r.URL.Path)
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeConsul) port() int {
	return f.srv.Listener.Addr().(*net.TCPAddr).Port
}

func (f *fakeConsul) saw(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.paths {
		if p == path {
			return true
		}
	}
	return false
}

// freePort grabs an ephemeral port and releases it for the server under
// test to bind.
func freePort(t *testing.T) int {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())
	return port
}

func TestRunServesAndShutsDownCleanly(t *testing.T) {
	st, _ := newTestState(t)
	consul := newFakeConsul(t)

	cfg := st.Config
	cfg.HTTPHost = "127.0.0.1"
	cfg.HTTPPort = freePort(t)
	cfg.GRPCHost = "127.0.0.1"
	cfg.GRPCPort = freePort(t)
	cfg.RefreshTTLSecs = 2
	cfg.ConsulHost = "127.0.0.1"
	cfg.ConsulPort = consul.port()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- Run(ctx, st) }()

	// Both listeners come up and the node registers itself.
	require.Eventually(t, func() bool {
		rsp, err := http.Get("http://" + cfg.HTTPAddr() + "/check")
		if err != nil {
			return false
		}
		rsp.Body.Close()
		return rsp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond, "http server never came up")

	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", cfg.GRPCAddr(), time.Second)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond, "grpc server never came up")

	require.Eventually(t, func() bool {
		return consul.saw("/v1/agent/service/register")
	}, 2*time.Second, 20*time.Millisecond, "node never registered itself")

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err, "clean shutdown must return nil")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	// Both listeners are gone once Run returns.
	_, err := net.DialTimeout("tcp", cfg.GRPCAddr(), 200*time.Millisecond)
	assert.Error(t, err, "grpc listener still accepting after shutdown")
	_, err = net.DialTimeout("tcp", cfg.HTTPAddr(), 200*time.Millisecond)
	assert.Error(t, err, "http listener still accepting after shutdown")
}

func TestRunFailsWhenRegistrationRejected(t *testing.T) {
	st, _ := newTestState(t)

	rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(rejecting.Close)

	cfg := st.Config
	cfg.HTTPHost = "127.0.0.1"
	cfg.HTTPPort = freePort(t)
	cfg.GRPCHost = "127.0.0.1"
	cfg.GRPCPort = freePort(t)
	cfg.RefreshTTLSecs = 2
	cfg.ConsulHost = "127.0.0.1"
	cfg.ConsulPort = rejecting.Listener.Addr().(*net.TCPAddr).Port

	err := Run(context.Background(), st)
	require.Error(t, err)
}
