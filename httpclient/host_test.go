package httpclient

import "testing"

func TestParseHost_Bare(t *testing.T) {
	h, err := ParseHost("localhost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Scheme != "http" || h.Name != "localhost" || h.Port != 9200 {
		t.Errorf("unexpected host: %+v", h)
	}
}

func TestParseHost_WithPort(t *testing.T) {
	h, err := ParseHost("node1:9201")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Port != 9201 {
		t.Errorf("unexpected port: %d", h.Port)
	}
}

func TestParseHost_HTTPS(t *testing.T) {
	h, err := ParseHost("https://secure.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.IsTLS() {
		t.Error("expected TLS host")
	}
	if h.URL() != "https://secure.example.com:9200" {
		t.Errorf("unexpected URL: %s", h.URL())
	}
}

func TestParseHost_Invalid(t *testing.T) {
	for _, raw := range []string{"", "ftp://host", "http://"} {
		if _, err := ParseHost(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestParseHosts(t *testing.T) {
	hosts, err := ParseHosts([]string{"a", "https://b:9443"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hosts) != 2 || hosts[1].Port != 9443 {
		t.Errorf("unexpected hosts: %+v", hosts)
	}
}

func TestParseHosts_PropagatesError(t *testing.T) {
	if _, err := ParseHosts([]string{"ok", ""}); err == nil {
		t.Fatal("expected error")
	}
}
