package cacheclient

import (
	"os"
	"strconv"
	"time"
)

// Config 控制客户端连接与重试行为。
type Config struct {
	Endpoint         string
	DialTimeout      time.Duration
	CallTimeout      time.Duration
	KeepaliveTime    time.Duration
	KeepaliveTimeout time.Duration
	Backoff          BackoffConfig
}

// BackoffConfig 决定断线重连指数退避参数。
type BackoffConfig struct {
	Initial time.Duration
	Max     time.Duration
	Jitter  float64
}

// DefaultConfig 返回安全默认值。
func DefaultConfig() Config {
	return Config{
		Endpoint:         "localhost:9090",
		DialTimeout:      500 * time.Millisecond,
		CallTimeout:      2 * time.Second,
		KeepaliveTime:    30 * time.Second,
		KeepaliveTimeout: 10 * time.Second,
		Backoff: BackoffConfig{
			Initial: 25 * time.Millisecond,
			Max:     500 * time.Millisecond,
			Jitter:  0.2,
		},
	}
}

// LoadConfigFromEnv 解析环境变量，未设置或非法的项保持默认值。
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("CACHE_CLIENT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if d := readDuration("CACHE_CLIENT_DIAL_TIMEOUT"); d > 0 {
		cfg.DialTimeout = d
	}
	if d := readDuration("CACHE_CLIENT_CALL_TIMEOUT"); d > 0 {
		cfg.CallTimeout = d
	}
	if d := readDuration("CACHE_CLIENT_KEEPALIVE_TIME"); d > 0 {
		cfg.KeepaliveTime = d
	}
	if d := readDuration("CACHE_CLIENT_KEEPALIVE_TIMEOUT"); d > 0 {
		cfg.KeepaliveTimeout = d
	}
	if d := readDuration("CACHE_CLIENT_RETRY_INITIAL"); d > 0 {
		cfg.Backoff.Initial = d
	}
	if d := readDuration("CACHE_CLIENT_RETRY_MAX"); d > 0 {
		cfg.Backoff.Max = d
	}
	if j := readFloat("CACHE_CLIENT_RETRY_JITTER"); j >= 0 {
		cfg.Backoff.Jitter = j
	}
	return cfg
}

func readDuration(key string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func readFloat(key string) float64 {
	value := os.Getenv(key)
	if value == "" {
		return -1
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return -1
	}
	return v
}
