package gateway

import (
	"context"
	"time"

	"mobile-transfer/internal/domain"
)

// SimulatedBiometric stands in for the platform authenticator. On platforms
// without a sensor it reports unavailable; otherwise each prompt is answered
// by Accept after Latency.
type SimulatedBiometric struct {
	Available bool
	Type      domain.BiometricType
	Latency   time.Duration
	// Accept decides a prompt. Nil accepts everything.
	Accept func(reason string) bool
}

// IsAvailable reports whether a sensor is present and enrolled.
func (b *SimulatedBiometric) IsAvailable(context.Context) bool {
	return b.Available
}

// Authenticate runs one prompt.
func (b *SimulatedBiometric) Authenticate(ctx context.Context, reason string) (domain.BiometricResult, error) {
	if !b.Available {
		return domain.BiometricResult{Success: false, Error: domain.ErrBiometricUnavailable.Error()}, nil
	}
	if err := wait(ctx, b.Latency); err != nil {
		return domain.BiometricResult{}, err
	}
	if b.Accept != nil && !b.Accept(reason) {
		return domain.BiometricResult{Success: false, Error: "Authentication failed"}, nil
	}
	kind := b.Type
	if kind == "" {
		kind = domain.BiometricFingerprint
	}
	return domain.BiometricResult{Success: true, Type: kind}, nil
}
