package validator

import (
	"strings"
	"testing"
	"time"
)

func TestValidateKey(t *testing.T) {
	if err := ValidateKey("session:abc"); err != nil {
		t.Fatalf("key should be valid: %v", err)
	}
	if err := ValidateKey(""); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := ValidateKey(strings.Repeat("k", MaxKeyLength+1)); err == nil {
		t.Fatal("expected error for oversized key")
	}
}

func TestDecodeValue(t *testing.T) {
	decoded, err := DecodeValue("aGVsbG8=", ValueEncodingBase64, 0)
	if err != nil {
		t.Fatalf("decode base64 failed: %v", err)
	}
	if string(decoded) != "hello" {
		t.Fatalf("unexpected value %q", decoded)
	}

	decoded, err = DecodeValue("68656c6c6f", ValueEncodingHex, 0)
	if err != nil {
		t.Fatalf("decode hex failed: %v", err)
	}
	if string(decoded) != "hello" {
		t.Fatalf("unexpected value %q", decoded)
	}

	if _, err := DecodeValue("!!!", ValueEncodingBase64, 0); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if _, err := DecodeValue("aGVsbG8=", ValueEncodingBase64, 3); err == nil {
		t.Fatal("expected error for oversized value")
	}

	if _, err := NormalizeEncoding(""); err != nil {
		t.Fatalf("normalize default failed: %v", err)
	}
	if _, err := NormalizeEncoding("HEX"); err != nil {
		t.Fatalf("normalize uppercase failed: %v", err)
	}
	if _, err := NormalizeEncoding("unknown"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestParseTTL(t *testing.T) {
	cases := map[string]time.Duration{
		"500":   500 * time.Millisecond,
		"500ms": 500 * time.Millisecond,
		"2m":    2 * time.Minute,
		"1h30m": 90 * time.Minute,
	}
	for raw, want := range cases {
		got, err := ParseTTL(raw)
		if err != nil {
			t.Fatalf("ParseTTL(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseTTL(%q)=%s, want %s", raw, got, want)
		}
	}

	for _, raw := range []string{"", "abc", "-5s", "0"} {
		if _, err := ParseTTL(raw); err == nil {
			t.Fatalf("ParseTTL(%q) should fail", raw)
		}
	}
}
