package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"

	"mobile-transfer/internal/domain"
)

// PINConfig holds the expected code and how many wrong codes are tolerated.
type PINConfig struct {
	Code        string
	Length      int
	MaxAttempts int
}

// DefaultPINConfig is the demo PIN with three attempts.
func DefaultPINConfig() PINConfig {
	return PINConfig{Code: "123456", Length: 6, MaxAttempts: 3}
}

// PINChallenge compares typed codes against the configured PIN. Reaching the
// maximum number of wrong codes denies the user.
type PINChallenge struct {
	cfg PINConfig

	mu       sync.Mutex
	attempts int
}

// NewPINChallenge creates a challenge for cfg.
func NewPINChallenge(cfg PINConfig) *PINChallenge {
	return &PINChallenge{cfg: cfg}
}

func (c *PINChallenge) Method() domain.AuthMethod { return domain.AuthMethodPIN }

// Begin resets the attempt counter.
func (c *PINChallenge) Begin(context.Context) (Verdict, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attempts = 0
	return Verdict{
		Outcome:           OutcomePending,
		Message:           fmt.Sprintf("Please enter your %d-digit PIN to continue", c.cfg.Length),
		AttemptsRemaining: c.cfg.MaxAttempts,
	}, nil
}

// Respond checks one code. A code of the wrong shape is not submitted and
// costs no attempt.
func (c *PINChallenge) Respond(_ context.Context, pin string) (Verdict, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	remaining := c.cfg.MaxAttempts - c.attempts
	if !c.wellFormed(pin) {
		return Verdict{
			Outcome:           OutcomeRetry,
			Message:           fmt.Sprintf("PIN must be %d digits", c.cfg.Length),
			AttemptsRemaining: remaining,
		}, nil
	}

	if subtle.ConstantTimeCompare([]byte(pin), []byte(c.cfg.Code)) == 1 {
		c.attempts = 0
		return Verdict{Outcome: OutcomeGranted, AttemptsRemaining: c.cfg.MaxAttempts}, nil
	}

	c.attempts++
	remaining = c.cfg.MaxAttempts - c.attempts
	if remaining <= 0 {
		return Verdict{
			Outcome: OutcomeDenied,
			Message: domain.ErrLockedOut.Error(),
		}, nil
	}
	plural := "s"
	if remaining == 1 {
		plural = ""
	}
	return Verdict{
		Outcome:           OutcomeRetry,
		Message:           fmt.Sprintf("Incorrect PIN. %d attempt%s remaining.", remaining, plural),
		AttemptsRemaining: remaining,
	}, nil
}

func (c *PINChallenge) wellFormed(pin string) bool {
	if len(pin) != c.cfg.Length {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
