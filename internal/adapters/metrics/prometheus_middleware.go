package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/waldolaw-go/internal/application/common"
)

// PrometheusMiddleware records duration and outcome of every mediator request.
// Request names are the bare type name, e.g. "PlanRouteCommand".
func PrometheusMiddleware(collector *RequestMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordRequest(common.RequestName(request), time.Since(start).Seconds(), err == nil)

		return response, err
	}
}
