package statsd

import (
	"net"
	"strings"
	"testing"
)

func TestNormalizeMetricName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		" auth/login ":  "auth_login",
		"foo..bar":      "foo.bar",
		".leading.dot.": "leading.dot",
		"":              "",
	}

	for input, want := range tests {
		if got := normalizeMetricName(input); got != want {
			t.Fatalf("normalizeMetricName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatTags(t *testing.T) {
	t.Parallel()

	got := formatTags(
		map[string]string{"app": "onboard", "env": "dev"},
		map[string]string{"env": "prod", "reason": "role"},
	)
	want := "|#app:onboard,env:prod,reason:role"
	if got != want {
		t.Fatalf("formatTags = %q, want %q", got, want)
	}

	if got := formatTags(nil, nil); got != "" {
		t.Fatalf("formatTags(nil, nil) = %q, want empty", got)
	}
}

func TestClientDisabledIsInert(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{Enabled: false, Address: "localhost:8125"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.Enabled() {
		t.Fatal("disabled client reports enabled")
	}

	// Must not panic without a connection.
	client.Count("auth.login", 1, nil)
	client.Gauge("sessions.active", 3, nil)
	if err := client.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNilClientIsInert(t *testing.T) {
	t.Parallel()

	var client *Client
	client.Count("auth.login", 1, nil)
	if client.Enabled() {
		t.Fatal("nil client reports enabled")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestClientEmitsOverUDP(t *testing.T) {
	t.Parallel()

	addr, lines := startUDPSink(t)

	client, err := NewClient(Config{
		Enabled:    true,
		Address:    addr,
		Prefix:     "onboard.",
		GlobalTags: map[string]string{"app": "onboard-ui-api"},
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	client.Count("auth.login", 1, map[string]string{"result": "success"})

	line := <-lines
	if !strings.HasPrefix(line, "onboard.auth.login:1|c") {
		t.Fatalf("unexpected metric line: %q", line)
	}
	if !strings.Contains(line, "app:onboard-ui-api") || !strings.Contains(line, "result:success") {
		t.Fatalf("missing tags in line: %q", line)
	}
}

func startUDPSink(t *testing.T) (string, <-chan string) {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	lines := make(chan string, 8)
	go func() {
		buf := make([]byte, 1500)
		for {
			n, _, err := conn.ReadFrom(buf)
			if err != nil {
				return
			}
			lines <- string(buf[:n])
		}
	}()

	return conn.LocalAddr().String(), lines
}
