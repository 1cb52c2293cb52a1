package cacheapi

import (
	"context"
	"time"

	cachev1 "github.com/aegis-cache/timedmap/docs/api/gen/go"
	"github.com/aegis-cache/timedmap/pkg/validator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCServer 实现 cache.v1.CacheService。
type GRPCServer struct {
	cachev1.UnimplementedCacheServiceServer
	store  Store
	limits Limits
}

// NewGRPCServer 构造 gRPC server。
func NewGRPCServer(store Store, limits Limits) *GRPCServer {
	if store == nil {
		panic("cache store is required")
	}
	return &GRPCServer{store: store, limits: limits}
}

// Get 读取未过期的条目。
func (s *GRPCServer) Get(ctx context.Context, req *cachev1.GetRequest) (*cachev1.GetResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := validator.ValidateKey(req.GetKey()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	value, found := s.store.Get(req.GetKey())
	return &cachev1.GetResponse{Found: found, Value: value}, nil
}

// Put 写入条目。TtlMs 为 0 时使用服务默认时限，负值视为非法。
func (s *GRPCServer) Put(ctx context.Context, req *cachev1.PutRequest) (*cachev1.PutResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := validator.ValidateKey(req.GetKey()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if s.limits.MaxValueBytes > 0 && len(req.GetValue()) > s.limits.MaxValueBytes {
		return nil, status.Errorf(codes.InvalidArgument, "value exceeds %d bytes", s.limits.MaxValueBytes)
	}
	ttl, err := s.resolveTTL(req.GetTtlMs(), true)
	if err != nil {
		return nil, err
	}
	s.store.Set(req.GetKey(), req.GetValue(), ttl)
	return &cachev1.PutResponse{}, nil
}

// Delete 删除条目并返回其原值；已过期条目同样被删除但报告缺失。
func (s *GRPCServer) Delete(ctx context.Context, req *cachev1.DeleteRequest) (*cachev1.DeleteResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := validator.ValidateKey(req.GetKey()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	value, found := s.store.Remove(req.GetKey())
	return &cachev1.DeleteResponse{Found: found, Value: value}, nil
}

// Touch 重置或叠加条目时限，由 Extend 字段选择语义。
func (s *GRPCServer) Touch(ctx context.Context, req *cachev1.TouchRequest) (*cachev1.TouchResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := validator.ValidateKey(req.GetKey()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ttl, err := s.resolveTTL(req.GetTtlMs(), false)
	if err != nil {
		return nil, err
	}
	var ok bool
	if req.GetExtend() {
		ok = s.store.Extend(req.GetKey(), ttl)
	} else {
		ok = s.store.Refresh(req.GetKey(), ttl)
	}
	return &cachev1.TouchResponse{Ok: ok}, nil
}

// Stats 返回逻辑条目数与物理条目数。
func (s *GRPCServer) Stats(ctx context.Context, req *cachev1.StatsRequest) (*cachev1.StatsResponse, error) {
	return &cachev1.StatsResponse{
		Live: int64(s.store.Len()),
		Raw:  int64(s.store.RawLen()),
	}, nil
}

func (s *GRPCServer) resolveTTL(ttlMs int64, allowDefault bool) (time.Duration, error) {
	if ttlMs > 0 {
		return time.Duration(ttlMs) * time.Millisecond, nil
	}
	if ttlMs == 0 && allowDefault && s.limits.DefaultTTL > 0 {
		return s.limits.DefaultTTL, nil
	}
	return 0, status.Errorf(codes.InvalidArgument, "ttlMs must be positive, got %d", ttlMs)
}
