package phonetic

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

const breakerFailures = 3

// newBreaker opens after breakerFailures consecutive failures and probes
// the backend again after the timeout
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Debug().Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
}

// call runs fn through the breaker
func call(cb *gobreaker.CircuitBreaker, fn func() (string, error)) (string, error) {
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}
