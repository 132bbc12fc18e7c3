// Package metrics maps domain events onto StatsD emissions so services and
// middleware never build metric names or tag sets inline.
package metrics

import (
	"time"

	"github.com/onboardhq/onboard-ui-api/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultDenied  = "denied"
	ResultError   = "error"
)

// LoginMetric captures one login attempt for metric emission.
type LoginMetric struct {
	Mode     string // mock, password, oidc
	Result   string
	Duration time.Duration
}

// EmitLogin emits the login attempt counter and, when measured, its latency.
func EmitLogin(sink statsd.Sink, in LoginMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"mode":   in.Mode,
		"result": in.Result,
	}
	sink.Count("auth.login", 1, tags)

	if in.Duration > 0 {
		sink.Timing("auth.login.duration", in.Duration, tags)
	}
}

// EmitGuardDenial counts a navigation or API gate denial.
func EmitGuardDenial(sink statsd.Sink, path, reason string) {
	if sink == nil {
		return
	}
	sink.Count("guard.denied", 1, map[string]string{
		"path":   path,
		"reason": reason,
	})
}
