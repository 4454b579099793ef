// Package logs provides an Interceptor that logs proxy calls.
package logs

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/miruken-go/proxy"
)

// Interceptor logs basic call details and proceeds.
// The results and error of the call are returned unchanged.
type Interceptor struct {
	logger    logr.Logger
	verbosity int
}

const durationFormat = "15:04:05.000000" // microseconds

func (i *Interceptor) Intercept(
	inv *proxy.Invocation,
) (out []any, err error) {
	logger := i.logger.V(i.verbosity)
	if !logger.Enabled() {
		return inv.Proceed()
	}
	method := inv.Method()
	logger = logger.WithName(method.Contract.String())
	logger.Info("invoking",
		"method", method.Name,
		"args", len(inv.Args()),
		"proxy", proxy.TypeOf(inv.Proxy()).Name())
	start := time.Now()
	if out, err = inv.Proceed(); err != nil {
		i.logError(err, start, logger)
	} else {
		i.logSuccess(start, logger)
	}
	return
}

func (i *Interceptor) logSuccess(
	start  time.Time,
	logger logr.Logger,
) {
	logger.Info("completed", "duration", formatDuration(time.Since(start)))
}

func (i *Interceptor) logError(
	err    error,
	start  time.Time,
	logger logr.Logger,
) {
	logger.Error(err, "failed", "duration", formatDuration(time.Since(start)))
}

func formatDuration(d time.Duration) string {
	return time.Time{}.Add(d).Format(durationFormat)
}

// New creates an Interceptor logging to logger at verbosity.
func New(logger logr.Logger, verbosity int) *Interceptor {
	return &Interceptor{logger, verbosity}
}
