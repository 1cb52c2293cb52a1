package config

import (
	"os"
	"strconv"
	"time"
)

// Config 控制 cache-api 进程的全局行为。
type Config struct {
	HTTPAddr      string
	GRPCEndpoint  string
	SweepInterval time.Duration
	DefaultTTL    time.Duration
	MaxValueBytes int
	RateLimit     float64
	RateBurst     int
}

// DefaultConfig 返回安全默认值。
func DefaultConfig() Config {
	return Config{
		HTTPAddr:      ":8080",
		GRPCEndpoint:  ":9090",
		SweepInterval: 30 * time.Second,
		DefaultTTL:    5 * time.Minute,
		MaxValueBytes: 1 << 20,
		RateLimit:     0,
		RateBurst:     1,
	}
}

// Load 解析环境变量，未设置或非法的项保持默认值。
func Load() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("CACHE_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("CACHE_GRPC_ENDPOINT"); v != "" {
		cfg.GRPCEndpoint = v
	}
	if d := readDuration("CACHE_SWEEP_INTERVAL"); d > 0 {
		cfg.SweepInterval = d
	}
	if d := readDuration("CACHE_DEFAULT_TTL"); d > 0 {
		cfg.DefaultTTL = d
	}
	if v := readInt("CACHE_MAX_VALUE_BYTES"); v > 0 {
		cfg.MaxValueBytes = v
	}
	if f := readFloat("CACHE_RATE_LIMIT"); f > 0 {
		cfg.RateLimit = f
	}
	if v := readInt("CACHE_RATE_BURST"); v > 0 {
		cfg.RateBurst = v
	}
	return cfg
}

func readInt(key string) int {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return v
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
		return 0
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return v
}
