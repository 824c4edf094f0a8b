package offline

import (
	"context"
	"net"
	"net/url"
	"time"
)

// Probe answers whether the backend is currently reachable. The queue state
// machine consults it before every operation.
type Probe interface {
	Online(ctx context.Context) bool
}

// NetProbe checks connectivity by opening a TCP connection to the backend
// host. Cheap enough to run per operation; no result caching.
type NetProbe struct {
	addr    string
	timeout time.Duration
}

// NewNetProbe builds a probe for the backend base URL
func NewNetProbe(rawURL string, timeout time.Duration) (*NetProbe, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		if u.Scheme == "http" {
			port = "80"
		} else {
			port = "443"
		}
	}
	return &NetProbe{
		addr:    net.JoinHostPort(host, port),
		timeout: timeout,
	}, nil
}

func (p *NetProbe) Online(ctx context.Context) bool {
	d := net.Dialer{Timeout: p.timeout}
	conn, err := d.DialContext(ctx, "tcp", p.addr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// StaticProbe reports a fixed connectivity state. Used in tests and to force
// offline mode.
type StaticProbe bool

func (p StaticProbe) Online(ctx context.Context) bool {
	return bool(p)
}
