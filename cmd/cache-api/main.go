package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cachev1 "github.com/aegis-cache/timedmap/docs/api/gen/go"
	cacheapi "github.com/aegis-cache/timedmap/internal/api"
	"github.com/aegis-cache/timedmap/internal/config"
	"github.com/aegis-cache/timedmap/internal/infra/netx"
	"github.com/aegis-cache/timedmap/pkg/timedmap"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	store := timedmap.New[string, []byte](
		timedmap.WithMetrics(timedmap.NewMetrics(nil)),
		timedmap.WithLogger(logger),
	)
	cancelCleaner := timedmap.StartCleaner(store, cfg.SweepInterval)
	defer cancelCleaner()

	limits := cacheapi.Limits{
		DefaultTTL:    cfg.DefaultTTL,
		MaxValueBytes: cfg.MaxValueBytes,
	}
	limiter := cacheapi.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)

	// HTTP server wiring
	mux := http.NewServeMux()
	cacheapi.NewHTTPHandler(store, limits).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: limiter.Middleware(mux),
	}

	// gRPC server wiring
	lis, err := netx.Listen(cfg.GRPCEndpoint)
	if err != nil {
		logger.Error("failed to listen for gRPC", "endpoint", cfg.GRPCEndpoint, "error", err)
		os.Exit(1)
	}
	var serverOpts []grpc.ServerOption
	if limiter != nil {
		serverOpts = append(serverOpts, grpc.UnaryInterceptor(limiter.UnaryInterceptor()))
	}
	grpcSrv := grpc.NewServer(serverOpts...)
	cachev1.RegisterCacheServiceServer(grpcSrv, cacheapi.NewGRPCServer(store, limits))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("HTTP server listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		logger.Info("gRPC server listening", "endpoint", cfg.GRPCEndpoint)
		return grpcSrv.Serve(lis)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown error", "error", err)
		}
		grpcSrv.GracefulStop()
		return nil
	})

	if err := group.Wait(); err != nil {
		logger.Error("server exited unexpectedly", "error", err)
		os.Exit(1)
	}
}
