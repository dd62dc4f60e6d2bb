package httpclient

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultScheme = "http"
	defaultPort   = 9200
)

// Host describes a single target node. Every host exposes at least a URI
// scheme; the scheme drives the forced-TLS decision during resolution.
type Host struct {
	// Scheme is "http" or "https".
	Scheme string
	// Name is the hostname or IP address.
	Name string
	// Port is the TCP port.
	Port int
}

// ParseHost parses a host descriptor. Accepts "host", "host:port", and full
// URLs; bare hosts default to http on port 9200.
func ParseHost(raw string) (Host, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Host{}, fmt.Errorf("empty host")
	}
	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Host{}, fmt.Errorf("parse host %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Host{}, fmt.Errorf("unsupported scheme %q for host %q", u.Scheme, raw)
	}
	if u.Hostname() == "" {
		return Host{}, fmt.Errorf("missing hostname in %q", raw)
	}

	port := defaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return Host{}, fmt.Errorf("invalid port in %q: %w", raw, err)
		}
	}

	return Host{Scheme: u.Scheme, Name: u.Hostname(), Port: port}, nil
}

// ParseHosts parses a list of host descriptors.
func ParseHosts(raw []string) ([]Host, error) {
	hosts := make([]Host, 0, len(raw))
	for _, r := range raw {
		h, err := ParseHost(r)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, h)
	}
	return hosts, nil
}

// URL renders the host as a base URL string.
func (h Host) URL() string {
	return fmt.Sprintf("%s://%s:%d", h.Scheme, h.Name, h.Port)
}

// IsTLS reports whether the host requires TLS.
func (h Host) IsTLS() bool {
	return h.Scheme == "https"
}
