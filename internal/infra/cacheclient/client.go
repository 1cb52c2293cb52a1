// Package cacheclient 提供 cache.v1.CacheService 的 Go 客户端，
// 内置拨号超时、指数退避重连与熔断快速失败。
package cacheclient

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	cachev1 "github.com/aegis-cache/timedmap/docs/api/gen/go"
	"github.com/aegis-cache/timedmap/internal/infra/netx"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

// ErrCircuitOpen 表示熔断器处于打开状态，调用被快速拒绝。
var ErrCircuitOpen = errors.New("cache client circuit is open")

// ContextDialer 允许自定义底层连接的建立方式。
type ContextDialer func(ctx context.Context, endpoint string) (net.Conn, error)

// Client 是 CacheService 的长连接客户端。
type Client struct {
	cfg     Config
	conn    *grpc.ClientConn
	rpc     cachev1.CacheServiceClient
	breaker *circuitBreaker
	backoff *Backoff
	metrics *Metrics
	logger  *slog.Logger
}

// Option 允许自定义 Client 行为。
type Option func(*clientOptions)

type clientOptions struct {
	dialer  ContextDialer
	metrics *Metrics
	logger  *slog.Logger
}

// WithContextDialer 自定义拨号器，测试中可接入 bufconn。
func WithContextDialer(d ContextDialer) Option {
	return func(o *clientOptions) { o.dialer = d }
}

// WithLogger 注入 slog Logger。
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// WithRegisterer 指定 Prometheus 注册器。
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *clientOptions) { o.metrics = NewMetrics(reg) }
}

// Dial 建立到服务端的连接。Endpoint 支持 tcp 与 vsock 两种格式。
func Dial(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.dialer == nil {
		o.dialer = netx.DialContext
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	params := keepalive.ClientParameters{
		Time:                cfg.KeepaliveTime,
		Timeout:             cfg.KeepaliveTimeout,
		PermitWithoutStream: true,
	}
	dialCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	conn, err := grpc.DialContext(dialCtx, cfg.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(params),
		grpc.WithContextDialer(func(ctx context.Context, endpoint string) (net.Conn, error) {
			return o.dialer(ctx, endpoint)
		}),
	)
	if err != nil {
		return nil, err
	}
	return &Client{
		cfg:     cfg,
		conn:    conn,
		rpc:     cachev1.NewCacheServiceClient(conn),
		breaker: newCircuitBreaker(3, time.Second),
		backoff: NewBackoff(cfg.Backoff),
		metrics: o.metrics,
		logger:  o.logger,
	}, nil
}

// Close 关闭底层连接并永久打开熔断器。
func (c *Client) Close() error {
	c.breaker.Close()
	return c.conn.Close()
}

// Get 读取条目，缺失或已过期返回 false。
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var resp *cachev1.GetResponse
	err := c.invoke(ctx, "Get", func(ctx context.Context) error {
		var rpcErr error
		resp, rpcErr = c.rpc.Get(ctx, &cachev1.GetRequest{Key: key})
		return rpcErr
	})
	if err != nil {
		return nil, false, err
	}
	return resp.GetValue(), resp.GetFound(), nil
}

// Put 写入条目。ttl 为 0 时使用服务端默认时限。
func (c *Client) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.invoke(ctx, "Put", func(ctx context.Context) error {
		_, rpcErr := c.rpc.Put(ctx, &cachev1.PutRequest{
			Key:   key,
			Value: value,
			TtlMs: ttl.Milliseconds(),
		})
		return rpcErr
	})
}

// Delete 删除条目并返回其原值。
func (c *Client) Delete(ctx context.Context, key string) ([]byte, bool, error) {
	var resp *cachev1.DeleteResponse
	err := c.invoke(ctx, "Delete", func(ctx context.Context) error {
		var rpcErr error
		resp, rpcErr = c.rpc.Delete(ctx, &cachev1.DeleteRequest{Key: key})
		return rpcErr
	})
	if err != nil {
		return nil, false, err
	}
	return resp.GetValue(), resp.GetFound(), nil
}

// Refresh 将条目时限绝对重置为 ttl。
func (c *Client) Refresh(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.touch(ctx, key, ttl, false)
}

// Extend 在条目现有时限上叠加 ttl。
func (c *Client) Extend(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.touch(ctx, key, ttl, true)
}

func (c *Client) touch(ctx context.Context, key string, ttl time.Duration, extend bool) (bool, error) {
	var resp *cachev1.TouchResponse
	err := c.invoke(ctx, "Touch", func(ctx context.Context) error {
		var rpcErr error
		resp, rpcErr = c.rpc.Touch(ctx, &cachev1.TouchRequest{
			Key:    key,
			TtlMs:  ttl.Milliseconds(),
			Extend: extend,
		})
		return rpcErr
	})
	if err != nil {
		return false, err
	}
	return resp.GetOk(), nil
}

// Stats 返回服务端逻辑/物理条目数。
func (c *Client) Stats(ctx context.Context) (live, raw int64, err error) {
	var resp *cachev1.StatsResponse
	err = c.invoke(ctx, "Stats", func(ctx context.Context) error {
		var rpcErr error
		resp, rpcErr = c.rpc.Stats(ctx, &cachev1.StatsRequest{})
		return rpcErr
	})
	if err != nil {
		return 0, 0, err
	}
	return resp.GetLive(), resp.GetRaw(), nil
}

// maxAttempts 限制对 Unavailable 错误的透明重试次数。
const maxAttempts = 3

func (c *Client) invoke(ctx context.Context, method string, call func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if !c.breaker.Allow() {
			c.metrics.incFailure(method)
			return ErrCircuitOpen
		}
		err = c.doCall(ctx, method, call)
		if err == nil {
			c.breaker.Success()
			c.backoff.Reset()
			return nil
		}
		c.metrics.incFailure(method)
		if c.breaker.Failure() {
			c.metrics.incBreakerTrip()
			c.logger.Warn("cache client circuit tripped", "method", method, "err", err)
		}
		if status.Code(err) != codes.Unavailable {
			return err
		}
		select {
		case <-time.After(c.backoff.Next()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (c *Client) doCall(ctx context.Context, method string, call func(ctx context.Context) error) error {
	callCtx := ctx
	if c.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.CallTimeout)
		defer cancel()
	}
	start := time.Now()
	err := call(callCtx)
	c.metrics.observeRPC(method, time.Since(start))
	return err
}
