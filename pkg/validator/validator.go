package validator

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueEncoding 描述 HTTP 接口中 value 字符串的编码。
type ValueEncoding string

const (
	ValueEncodingBase64 ValueEncoding = "base64"
	ValueEncodingHex    ValueEncoding = "hex"
)

// MaxKeyLength 限制 key 的最大字节数。
const MaxKeyLength = 256

// NormalizeEncoding 将用户输入转换为内部常量。
func NormalizeEncoding(raw string) (ValueEncoding, error) {
	switch strings.ToLower(raw) {
	case "", string(ValueEncodingBase64):
		return ValueEncodingBase64, nil
	case string(ValueEncodingHex):
		return ValueEncodingHex, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", raw)
	}
}

var errEmptyKey = errors.New("key is required")

// ErrValueTooLarge 标识超出大小上限的 value，调用方可用 errors.Is 区分。
var ErrValueTooLarge = errors.New("value too large")

// ValidateKey 校验 key 非空且不超过长度上限。
func ValidateKey(key string) error {
	if key == "" {
		return errEmptyKey
	}
	if len(key) > MaxKeyLength {
		return fmt.Errorf("key exceeds %d bytes", MaxKeyLength)
	}
	return nil
}

// DecodeValue 将 value 字符串解码为二进制并校验大小上限。
// maxBytes <= 0 表示不限制。
func DecodeValue(value string, enc ValueEncoding, maxBytes int) ([]byte, error) {
	var decoded []byte
	var err error
	switch enc {
	case ValueEncodingBase64:
		decoded, err = base64.StdEncoding.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 value: %w", err)
		}
	case ValueEncodingHex:
		decoded, err = hex.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("invalid hex value: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown encoding %q", enc)
	}
	if maxBytes > 0 && len(decoded) > maxBytes {
		return nil, fmt.Errorf("%w: value exceeds %d bytes", ErrValueTooLarge, maxBytes)
	}
	return decoded, nil
}

// ParseTTL 解析存活时长：支持 time.ParseDuration 语法（"500ms"、"2m"），
// 以及裸数字（按毫秒解释）。结果必须为正。
func ParseTTL(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, errors.New("ttl is required")
	}
	var d time.Duration
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		d = time.Duration(ms) * time.Millisecond
	} else {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid ttl %q", raw)
		}
		d = parsed
	}
	if d <= 0 {
		return 0, fmt.Errorf("ttl must be positive, got %q", raw)
	}
	return d, nil
}
