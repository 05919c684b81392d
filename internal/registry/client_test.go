package registry

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const healthListing = `[
	{"Service": {"ID": "user-1", "Service": "user-service", "Address": "10.0.0.1", "Port": 9001}},
	{"Service": {"ID": "user-2", "Service": "user-service", "Address": "10.0.0.2", "Port": 9002}}
]`

func newTestClient(t *testing.T, handler http.Handler) *Client[string] {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "user-service", NewRingStore[string](100, nil), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestListHealthy(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, healthListing)
	}))

	instances, err := c.ListHealthy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/v1/health/service/user-service", gotPath)
	assert.Equal(t, "passing=true", gotQuery)
	require.Len(t, instances, 2)
	assert.Equal(t, ServiceInstance{ID: "user-1", Name: "user-service", Address: "10.0.0.1:9001"}, instances[0])
	assert.Equal(t, ServiceInstance{ID: "user-2", Name: "user-service", Address: "10.0.0.2:9002"}, instances[1])
}

func TestListHealthyUnexpectedStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.ListHealthy(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestRefreshTransformsAllInstances(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, healthListing)
	}))

	err := c.Refresh(context.Background(), func(ctx context.Context, inst ServiceInstance) (string, error) {
		return "conn:" + inst.Address, nil
	})
	require.NoError(t, err)

	recs := c.Store().List()
	require.Len(t, recs, 2)
	byID := map[string]string{}
	for _, rec := range recs {
		byID[rec.Instance.ID] = rec.Extra
	}
	assert.Equal(t, "conn:10.0.0.1:9001", byID["user-1"])
	assert.Equal(t, "conn:10.0.0.2:9002", byID["user-2"])
}

func TestRefreshDropsFailingInstance(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, healthListing)
	}))

	err := c.Refresh(context.Background(), func(ctx context.Context, inst ServiceInstance) (string, error) {
		if inst.ID == "user-2" {
			return "", errors.New("dial refused")
		}
		return "conn:" + inst.ID, nil
	})
	require.NoError(t, err)

	recs := c.Store().List()
	require.Len(t, recs, 1)
	assert.Equal(t, "user-1", recs[0].Instance.ID)
	assert.Equal(t, "conn:user-1", recs[0].Extra)
}

func TestRefreshListingFailureKeepsStore(t *testing.T) {
	healthy := true
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, healthListing)
	}))

	transform := func(ctx context.Context, inst ServiceInstance) (string, error) { return inst.ID, nil }

	require.NoError(t, c.Refresh(context.Background(), transform))
	require.Len(t, c.Store().List(), 2)

	// A failed listing leaves the previous generation in place.
	healthy = false
	err := c.Refresh(context.Background(), transform)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Len(t, c.Store().List(), 2)
}

func TestRegisterSendsTTLCheck(t *testing.T) {
	type recorded struct {
		method string
		path   string
		body   map[string]any
	}
	calls := make(chan recorded, 8)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls <- recorded{method: r.Method, path: r.URL.Path, body: body}
	}))

	reg := Registration{ID: "connector-1", Name: "connector", Address: "10.0.0.9", Port: 8080}
	require.NoError(t, c.Register(context.Background(), reg, 6*time.Second))

	call := <-calls
	assert.Equal(t, http.MethodPut, call.method)
	assert.Equal(t, "/v1/agent/service/register", call.path)
	assert.Equal(t, "connector-1", call.body["ID"])
	assert.Equal(t, "connector", call.body["Name"])
	assert.Equal(t, "10.0.0.9", call.body["Address"])
	assert.Equal(t, float64(8080), call.body["Port"])

	check, ok := call.body["Check"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "6s", check["TTL"])
	assert.Equal(t, "service:connector-1", check["CheckID"])

	// The heartbeat fires at ttl/2 and reports the check as passing.
	select {
	case call = <-calls:
	case <-time.After(10 * time.Second):
		t.Fatal("no heartbeat within the TTL window")
	}
	assert.Equal(t, http.MethodPut, call.method)
	assert.Equal(t, "/v1/agent/check/update/service:connector-1", call.path)
	assert.Equal(t, "passing", call.body["Status"])
}

func TestRegisterFailureIsFatal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	err := c.Register(context.Background(), Registration{ID: "x", Name: "connector"}, 10*time.Second)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestSpawnRefreshTicks(t *testing.T) {
	listed := make(chan struct{}, 16)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		listed <- struct{}{}
		_, _ = io.WriteString(w, healthListing)
	}))

	err := c.SpawnRefresh(context.Background(), 50*time.Millisecond,
		func(ctx context.Context, inst ServiceInstance) (string, error) { return inst.ID, nil })
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case <-listed:
		case <-time.After(5 * time.Second):
			t.Fatal("refresh loop did not tick")
		}
	}
	assert.Len(t, c.Store().List(), 2)
}
