package cacheclient

import (
	"context"
	"net"
	"testing"
	"time"

	cachev1 "github.com/aegis-cache/timedmap/docs/api/gen/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

type mockCacheServer struct {
	cachev1.UnimplementedCacheServiceServer
	entries map[string][]byte
}

func newMockCacheServer() *mockCacheServer {
	return &mockCacheServer{entries: map[string][]byte{}}
}

func (m *mockCacheServer) Get(_ context.Context, req *cachev1.GetRequest) (*cachev1.GetResponse, error) {
	value, found := m.entries[req.GetKey()]
	return &cachev1.GetResponse{Found: found, Value: value}, nil
}

func (m *mockCacheServer) Put(_ context.Context, req *cachev1.PutRequest) (*cachev1.PutResponse, error) {
	m.entries[req.GetKey()] = req.GetValue()
	return &cachev1.PutResponse{}, nil
}

func (m *mockCacheServer) Delete(_ context.Context, req *cachev1.DeleteRequest) (*cachev1.DeleteResponse, error) {
	value, found := m.entries[req.GetKey()]
	delete(m.entries, req.GetKey())
	return &cachev1.DeleteResponse{Found: found, Value: value}, nil
}

func (m *mockCacheServer) Touch(_ context.Context, req *cachev1.TouchRequest) (*cachev1.TouchResponse, error) {
	_, found := m.entries[req.GetKey()]
	return &cachev1.TouchResponse{Ok: found}, nil
}

func (m *mockCacheServer) Stats(context.Context, *cachev1.StatsRequest) (*cachev1.StatsResponse, error) {
	n := int64(len(m.entries))
	return &cachev1.StatsResponse{Live: n, Raw: n}, nil
}

func setupBufConn(t *testing.T) *bufconn.Listener {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	cachev1.RegisterCacheServiceServer(srv, newMockCacheServer())
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)
	return lis
}

func dialTestClient(t *testing.T, lis *bufconn.Listener) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Endpoint = "buf"
	cfg.DialTimeout = time.Second
	client, err := Dial(context.Background(), cfg,
		WithRegisterer(prometheus.NewRegistry()),
		WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClientRoundTrip(t *testing.T) {
	client := dialTestClient(t, setupBufConn(t))
	ctx := context.Background()

	require.NoError(t, client.Put(ctx, "k1", []byte("hello"), time.Minute))

	value, found, err := client.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "hello", string(value))

	ok, err := client.Refresh(ctx, "k1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = client.Extend(ctx, "missing", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	live, raw, err := client.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, live)
	require.EqualValues(t, 1, raw)

	value, found, err = client.Delete(ctx, "k1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "hello", string(value))

	_, found, err = client.Get(ctx, "k1")
	require.NoError(t, err)
	require.False(t, found)
}

func TestClientCircuitOpenAfterClose(t *testing.T) {
	client := dialTestClient(t, setupBufConn(t))
	require.NoError(t, client.Close())
	_, _, err := client.Get(context.Background(), "k1")
	require.ErrorIs(t, err, ErrCircuitOpen)
}

func TestBackoffGrowth(t *testing.T) {
	cfg := BackoffConfig{Initial: 25 * time.Millisecond, Max: 200 * time.Millisecond, Jitter: 0}
	b := NewBackoff(cfg)
	require.Equal(t, 25*time.Millisecond, b.Next())
	require.Equal(t, 50*time.Millisecond, b.Next())
	require.Equal(t, 100*time.Millisecond, b.Next())
	require.Equal(t, 200*time.Millisecond, b.Next())
	require.Equal(t, 200*time.Millisecond, b.Next())
	b.Reset()
	require.Equal(t, 25*time.Millisecond, b.Next())
}

func TestBackoffJitterBounds(t *testing.T) {
	cfg := BackoffConfig{Initial: 100 * time.Millisecond, Max: time.Second, Jitter: 0.2}
	b := NewBackoff(cfg)
	for i := 0; i < 50; i++ {
		d := b.Next()
		require.GreaterOrEqual(t, d, cfg.Initial)
		require.LessOrEqual(t, d, cfg.Max)
	}
}

func TestCircuitBreakerTransition(t *testing.T) {
	cb := newCircuitBreaker(2, 10*time.Millisecond)
	require.Equal(t, stateHealthy, cb.State())
	require.True(t, cb.Allow())
	require.False(t, cb.Failure())
	require.True(t, cb.Failure())
	require.Equal(t, stateDegraded, cb.State())
	require.False(t, cb.Allow())
	time.Sleep(20 * time.Millisecond)
	require.True(t, cb.Allow())
	require.Equal(t, stateHealthy, cb.State())
	cb.Close()
	require.False(t, cb.Allow())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CACHE_CLIENT_ENDPOINT", "vsock://16:9090")
	t.Setenv("CACHE_CLIENT_CALL_TIMEOUT", "500ms")
	t.Setenv("CACHE_CLIENT_RETRY_JITTER", "0.1")
	cfg := LoadConfigFromEnv()
	require.Equal(t, "vsock://16:9090", cfg.Endpoint)
	require.Equal(t, 500*time.Millisecond, cfg.CallTimeout)
	require.InDelta(t, 0.1, cfg.Backoff.Jitter, 0.001)
}
