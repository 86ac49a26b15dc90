package format

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup outcomes recorded by the lookups counter.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeNotFound        = "not_found"
	OutcomeNotRegistered   = "not_registered"
	OutcomeProviderError   = "provider_error"
)

func newLookupCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "money",
		Subsystem: "format",
		Name:      "lookups_total",
		Help:      "Formatter and parser acquisitions by handle and outcome.",
	}, []string{"handle", "outcome"})
}

// registerCounter registers c with reg, reusing an already registered
// collector of the same shape.
func registerCounter(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if reg == nil {
		return c, nil
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, ErrProviderNotRegistered):
		return OutcomeNotRegistered
	case errors.Is(err, ErrNoFormatter), errors.Is(err, ErrNoParser):
		return OutcomeNotFound
	default:
		return OutcomeProviderError
	}
}
