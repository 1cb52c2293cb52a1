package cacheapi

import "time"

// Store 定义业务层接口，HTTP/gRPC handler 通过它与实际缓存表交互。
// *timedmap.Map[string, []byte] 原生满足该接口。
type Store interface {
	Set(key string, value []byte, lifetime time.Duration)
	Get(key string) ([]byte, bool)
	Remove(key string) ([]byte, bool)
	Refresh(key string, newLifetime time.Duration) bool
	Extend(key string, added time.Duration) bool
	Len() int
	RawLen() int
}

// Limits 约束写入请求的行为。
type Limits struct {
	// DefaultTTL 在请求未携带 ttl 时生效。
	DefaultTTL time.Duration
	// MaxValueBytes 限制单个 value 解码后的大小，<=0 表示不限制。
	MaxValueBytes int
}
