package cacheapi

import (
	"context"
	"net/http"
	"time"

	"github.com/aegis-cache/timedmap/pkg/apierrors"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RateLimiter 对 HTTP 与 gRPC 入口做全局限流。
// nil RateLimiter 等价于不限流。
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter 按每秒 limit 个请求、突发 burst 创建限流器。
// limit<=0 返回 nil，表示关闭限流。
func NewRateLimiter(limit float64, burst int) *RateLimiter {
	if limit <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(limit), burst)}
}

// Allow 报告当前请求是否放行。
func (rl *RateLimiter) Allow() bool {
	if rl == nil || rl.limiter == nil {
		return true
	}
	return rl.limiter.Allow()
}

// Middleware 包装 HTTP handler，超限时返回 429 与 Retry-After。
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if rl == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow() {
			apiErr := apierrors.New(apierrors.CodeRetryLater, "rate limit exceeded").
				WithRetryAfter(time.Second)
			w.Header().Set("Retry-After", apiErr.RetryAfterHint())
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(apierrors.HTTPStatus(apiErr.Code))
			_, _ = w.Write([]byte(`{"code":"RETRY_LATER","message":"rate limit exceeded"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UnaryInterceptor 返回 gRPC 一元拦截器，超限时返回 ResourceExhausted。
func (rl *RateLimiter) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !rl.Allow() {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}
