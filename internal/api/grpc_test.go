package cacheapi

import (
	"context"
	"testing"
	"time"

	cachev1 "github.com/aegis-cache/timedmap/docs/api/gen/go"
	"github.com/aegis-cache/timedmap/pkg/timedmap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestGRPCServer(limits Limits) *GRPCServer {
	return NewGRPCServer(timedmap.New[string, []byte](), limits)
}

func TestGRPCPutGetRoundTrip(t *testing.T) {
	srv := newTestGRPCServer(Limits{DefaultTTL: time.Minute})
	ctx := context.Background()

	if _, err := srv.Put(ctx, &cachev1.PutRequest{Key: "k1", Value: []byte("hello"), TtlMs: 60_000}); err != nil {
		t.Fatalf("put: %v", err)
	}
	resp, err := srv.Get(ctx, &cachev1.GetRequest{Key: "k1"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !resp.GetFound() || string(resp.GetValue()) != "hello" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestGRPCPutDefaultTTL(t *testing.T) {
	srv := newTestGRPCServer(Limits{DefaultTTL: time.Minute})
	ctx := context.Background()

	if _, err := srv.Put(ctx, &cachev1.PutRequest{Key: "k1", Value: []byte("v")}); err != nil {
		t.Fatalf("put with default ttl: %v", err)
	}
	resp, err := srv.Get(ctx, &cachev1.GetRequest{Key: "k1"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !resp.GetFound() {
		t.Fatal("entry should be alive under default ttl")
	}
}

func TestGRPCPutInvalidTTL(t *testing.T) {
	srv := newTestGRPCServer(Limits{})
	ctx := context.Background()

	_, err := srv.Put(ctx, &cachev1.PutRequest{Key: "k1", Value: []byte("v"), TtlMs: -1})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	// 无默认时限时 ttlMs=0 同样拒绝
	_, err = srv.Put(ctx, &cachev1.PutRequest{Key: "k1", Value: []byte("v")})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestGRPCPutValueTooLarge(t *testing.T) {
	srv := newTestGRPCServer(Limits{DefaultTTL: time.Minute, MaxValueBytes: 3})
	_, err := srv.Put(context.Background(), &cachev1.PutRequest{Key: "k1", Value: []byte("hello")})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestGRPCDelete(t *testing.T) {
	srv := newTestGRPCServer(Limits{DefaultTTL: time.Minute})
	ctx := context.Background()

	_, _ = srv.Put(ctx, &cachev1.PutRequest{Key: "k1", Value: []byte("hello")})
	resp, err := srv.Delete(ctx, &cachev1.DeleteRequest{Key: "k1"})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !resp.GetFound() || string(resp.GetValue()) != "hello" {
		t.Fatalf("unexpected response %+v", resp)
	}

	resp, err = srv.Delete(ctx, &cachev1.DeleteRequest{Key: "k1"})
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if resp.GetFound() {
		t.Fatal("second delete should report missing")
	}
}

func TestGRPCTouch(t *testing.T) {
	srv := newTestGRPCServer(Limits{DefaultTTL: time.Minute})
	ctx := context.Background()

	resp, err := srv.Touch(ctx, &cachev1.TouchRequest{Key: "missing", TtlMs: 1000})
	if err != nil {
		t.Fatalf("touch: %v", err)
	}
	if resp.GetOk() {
		t.Fatal("touch on missing key should report ok=false")
	}

	_, _ = srv.Put(ctx, &cachev1.PutRequest{Key: "k1", Value: []byte("v")})
	resp, err = srv.Touch(ctx, &cachev1.TouchRequest{Key: "k1", TtlMs: 2000, Extend: true})
	if err != nil {
		t.Fatalf("touch extend: %v", err)
	}
	if !resp.GetOk() {
		t.Fatal("touch on live key should report ok=true")
	}
}

func TestGRPCStats(t *testing.T) {
	srv := newTestGRPCServer(Limits{DefaultTTL: time.Minute})
	ctx := context.Background()

	_, _ = srv.Put(ctx, &cachev1.PutRequest{Key: "k1", Value: []byte("v")})
	resp, err := srv.Stats(ctx, &cachev1.StatsRequest{})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if resp.GetLive() != 1 || resp.GetRaw() != 1 {
		t.Fatalf("unexpected stats %+v", resp)
	}
}

func TestGRPCInvalidKey(t *testing.T) {
	srv := newTestGRPCServer(Limits{DefaultTTL: time.Minute})
	_, err := srv.Get(context.Background(), &cachev1.GetRequest{Key: ""})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
