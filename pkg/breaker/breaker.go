// Package breaker builds the circuit breakers placed in front of optional upstreams.
package breaker

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// ErrRejected marks an upstream answer that is the caller's fault, such as an
// unknown city. It fails the call without counting toward tripping the breaker.
var ErrRejected = errors.New("rejected by upstream")

// New trips after fails consecutive failures and half-opens after openFor.
// Errors wrapping ErrRejected count as successes.
func New(name string, fails int, openFor time.Duration, log *zap.Logger) *gobreaker.CircuitBreaker {
	if fails <= 0 {
		fails = 1
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: openFor,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrRejected)
		},
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(fails)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
}
