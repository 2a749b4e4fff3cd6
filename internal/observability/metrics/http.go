// Package metrics standardises metric names and tags emitted by the HTTP layer.
package metrics

import (
	"strconv"
	"time"

	"github.com/shopforge/admin-api/internal/observability/statsd"
)

// HTTPRequest captures details about a completed HTTP request for emission.
type HTTPRequest struct {
	Method   string
	Route    string
	Status   int
	Duration time.Duration
}

// EmitHTTPRequest emits a request counter and a duration timing. A nil sink
// is a no-op so callers never need to guard.
func EmitHTTPRequest(sink statsd.Sink, in HTTPRequest) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"method": in.Method,
		"route":  in.Route,
		"status": strconv.Itoa(in.Status),
	}
	sink.Count("http.request", 1, tags)
	sink.Timing("http.request.duration", in.Duration, tags)
}
