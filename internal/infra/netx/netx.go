// Package netx 统一 TCP 与 vsock 两种终端的解析、监听与拨号。
//
// 终端格式：
//
//	:9090             TCP，任意地址
//	tcp://host:9090   TCP
//	vsock://16:9090   vsock，CID 16 端口 9090
package netx

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/mdlayher/vsock"
)

// Endpoint 是解析后的监听/拨号目标。
type Endpoint struct {
	Network string // "tcp" 或 "vsock"
	Addr    string // tcp: host:port
	CID     uint32 // vsock
	Port    uint32 // vsock
}

// ParseEndpoint 解析终端字符串。
func ParseEndpoint(raw string) (Endpoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Endpoint{}, fmt.Errorf("empty endpoint")
	}
	switch {
	case strings.HasPrefix(raw, "vsock://"):
		return parseVsock(strings.TrimPrefix(raw, "vsock://"))
	case strings.HasPrefix(raw, "vsock:"):
		return parseVsock(strings.TrimPrefix(raw, "vsock:"))
	case strings.HasPrefix(raw, "tcp://"):
		return Endpoint{Network: "tcp", Addr: strings.TrimPrefix(raw, "tcp://")}, nil
	default:
		return Endpoint{Network: "tcp", Addr: raw}, nil
	}
}

func parseVsock(target string) (Endpoint, error) {
	parts := strings.Split(target, ":")
	if len(parts) != 2 {
		return Endpoint{}, fmt.Errorf("invalid vsock endpoint: %s", target)
	}
	cid, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid vsock cid: %w", err)
	}
	port, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid vsock port: %w", err)
	}
	return Endpoint{Network: "vsock", CID: uint32(cid), Port: uint32(port)}, nil
}

// Listen 按终端类型创建监听器。
func Listen(raw string) (net.Listener, error) {
	ep, err := ParseEndpoint(raw)
	if err != nil {
		return nil, err
	}
	switch ep.Network {
	case "vsock":
		return vsock.Listen(ep.Port, nil)
	default:
		return net.Listen("tcp", ep.Addr)
	}
}

// DialContext 按终端类型拨号，供 grpc.WithContextDialer 使用。
func DialContext(ctx context.Context, raw string) (net.Conn, error) {
	ep, err := ParseEndpoint(raw)
	if err != nil {
		return nil, err
	}
	if ep.Network != "vsock" {
		return (&net.Dialer{}).DialContext(ctx, "tcp", ep.Addr)
	}
	type dialResult struct {
		conn net.Conn
		err  error
	}
	resultCh := make(chan dialResult, 1)
	go func() {
		conn, dialErr := vsock.Dial(ep.CID, ep.Port, nil)
		resultCh <- dialResult{conn: conn, err: dialErr}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultCh:
		return res.conn, res.err
	}
}
