package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	name string
	tags map[string]string
}

type captureSink struct {
	counts  []capture
	timings []capture
}

func (s *captureSink) Count(name string, _ int64, tags map[string]string) {
	s.counts = append(s.counts, capture{name: name, tags: tags})
}

func (s *captureSink) Gauge(string, float64, map[string]string) {}

func (s *captureSink) Timing(name string, _ time.Duration, tags map[string]string) {
	s.timings = append(s.timings, capture{name: name, tags: tags})
}

func TestEmitLogin(t *testing.T) {
	sink := &captureSink{}

	EmitLogin(sink, LoginMetric{Mode: "password", Result: ResultDenied, Duration: 12 * time.Millisecond})

	require.Len(t, sink.counts, 1)
	assert.Equal(t, "auth.login", sink.counts[0].name)
	assert.Equal(t, map[string]string{"mode": "password", "result": ResultDenied}, sink.counts[0].tags)

	require.Len(t, sink.timings, 1)
	assert.Equal(t, "auth.login.duration", sink.timings[0].name)
}

func TestEmitLogin_NoDurationSkipsTiming(t *testing.T) {
	sink := &captureSink{}

	EmitLogin(sink, LoginMetric{Mode: "mock", Result: ResultSuccess})

	assert.Len(t, sink.counts, 1)
	assert.Empty(t, sink.timings)
}

func TestEmitLogin_NilSink(t *testing.T) {
	assert.NotPanics(t, func() {
		EmitLogin(nil, LoginMetric{Mode: "oidc", Result: ResultError})
	})
}

func TestEmitGuardDenial(t *testing.T) {
	sink := &captureSink{}

	EmitGuardDenial(sink, "/controle-acessos", "role")

	require.Len(t, sink.counts, 1)
	assert.Equal(t, "guard.denied", sink.counts[0].name)
	assert.Equal(t, map[string]string{"path": "/controle-acessos", "reason": "role"}, sink.counts[0].tags)
}
