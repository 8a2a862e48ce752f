// Package metrics exposes Prometheus collectors for the long-running modes.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bft-labs/bigadd/internal/calc"
	"github.com/bft-labs/bigadd/pkg/log"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bigadd_operations_total",
		Help: "Additions performed, by operation and outcome",
	}, []string{"op", "outcome"}) // op=add|sum, outcome=success|invalid_digit|empty_input|no_operands|error

	resultDigits = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bigadd_result_digits",
		Help:    "Number of digits in successful results",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	watchRecomputesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bigadd_watch_recomputes_total",
		Help: "Operand file recomputations in watch mode, by outcome",
	}, []string{"outcome"}) // outcome=success|failure
)

// Recorder records calculator outcomes into the package collectors.
type Recorder struct{}

var _ calc.Recorder = Recorder{}

// RecordOperation counts one operation. digits is ignored unless outcome is
// calc.OutcomeSuccess.
func (Recorder) RecordOperation(op, outcome string, digits int) {
	operationsTotal.WithLabelValues(op, outcome).Inc()
	if outcome == calc.OutcomeSuccess {
		resultDigits.Observe(float64(digits))
	}
}

// IncWatchRecompute counts a watch-mode recomputation.
func IncWatchRecompute(err error) {
	if err != nil {
		watchRecomputesTotal.WithLabelValues("failure").Inc()
		return
	}
	watchRecomputesTotal.WithLabelValues(calc.OutcomeSuccess).Inc()
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string, logger log.Logger) error {
	logger = log.OrNoop(logger)

	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics listening", log.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
