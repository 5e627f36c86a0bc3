package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"mobile-transfer/internal/domain"
)

// BiometricConfig controls the confirmation prompt.
type BiometricConfig struct {
	Reason string
	// SkipAcknowledgement opens the gate at once when no sensor is present
	// instead of waiting for the user to confirm a plain prompt.
	SkipAcknowledgement bool
}

// DefaultBiometricConfig asks to authorize the transfer.
func DefaultBiometricConfig() BiometricConfig {
	return BiometricConfig{Reason: "Authenticate to confirm transfer"}
}

// BiometricChallenge asks the platform authenticator. A missing sensor never
// blocks the user and a rejected scan can be retried without limit.
type BiometricChallenge struct {
	auth BiometricAuthenticator
	cfg  BiometricConfig
	opts options

	mu          sync.Mutex
	unavailable bool
	lastType    domain.BiometricType
}

// NewBiometricChallenge creates a challenge backed by auth.
func NewBiometricChallenge(auth BiometricAuthenticator, cfg BiometricConfig, opts ...Option) *BiometricChallenge {
	return &BiometricChallenge{auth: auth, cfg: cfg, opts: buildOptions(opts)}
}

func (c *BiometricChallenge) Method() domain.AuthMethod { return domain.AuthMethodBiometric }

// Begin probes the device.
func (c *BiometricChallenge) Begin(ctx context.Context) (Verdict, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unavailable = !c.auth.IsAvailable(ctx)
	if !c.unavailable {
		return Verdict{Outcome: OutcomePending, Message: c.cfg.Reason}, nil
	}
	c.opts.logger.Info("biometric unavailable, falling back to confirmation prompt")
	if c.cfg.SkipAcknowledgement {
		return Verdict{Outcome: OutcomeGranted, Message: domain.ErrBiometricUnavailable.Error()}, nil
	}
	return Verdict{Outcome: OutcomePending, Message: domain.ErrBiometricUnavailable.Error()}, nil
}

// Respond runs one scan. Without a sensor any response acknowledges the
// confirmation prompt.
func (c *BiometricChallenge) Respond(ctx context.Context, _ string) (Verdict, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unavailable {
		return Verdict{Outcome: OutcomeGranted}, nil
	}

	res, err := c.auth.Authenticate(ctx, c.cfg.Reason)
	if err != nil {
		c.opts.logger.Warn("biometric prompt errored", zap.Error(err))
		return Verdict{Outcome: OutcomeRetry, Message: "An error occurred during authentication"}, nil
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = domain.ErrBiometricFailed.Error()
		}
		return Verdict{Outcome: OutcomeRetry, Message: msg}, nil
	}
	c.lastType = res.Type
	return Verdict{Outcome: OutcomeGranted}, nil
}

// LastType is the sensor that accepted the last successful scan.
func (c *BiometricChallenge) LastType() domain.BiometricType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastType
}
