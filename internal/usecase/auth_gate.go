package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"mobile-transfer/internal/domain"
)

// GateState is the position of an authentication gate.
type GateState int

const (
	GateIdle GateState = iota
	GateChallenging
	GateValidated
	GateCancelled
	GateDenied
)

func (s GateState) String() string {
	switch s {
	case GateIdle:
		return "idle"
	case GateChallenging:
		return "challenging"
	case GateValidated:
		return "validated"
	case GateCancelled:
		return "cancelled"
	case GateDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// Terminal reports whether the gate accepts no further input.
func (s GateState) Terminal() bool {
	return s == GateValidated || s == GateCancelled || s == GateDenied
}

// Outcome is a challenge's reaction to a step.
type Outcome int

const (
	// OutcomePending waits for the user's first response.
	OutcomePending Outcome = iota
	// OutcomeGranted proves the user's identity.
	OutcomeGranted
	// OutcomeRetry rejects the response but allows another.
	OutcomeRetry
	// OutcomeDenied rejects the user for this attempt at the flow.
	OutcomeDenied
)

// Verdict is what a challenge reports back to the gate.
type Verdict struct {
	Outcome           Outcome
	Message           string
	AttemptsRemaining int
}

// ChallengeMethod is one way of proving identity to a Gate.
type ChallengeMethod interface {
	Method() domain.AuthMethod
	// Begin prepares a fresh challenge.
	Begin(ctx context.Context) (Verdict, error)
	// Respond evaluates one user response.
	Respond(ctx context.Context, input string) (Verdict, error)
}

// Gate guards a step of the transfer flow behind a challenge. A passed
// challenge is recorded on the session, so later gates using the same method
// open without asking again.
type Gate struct {
	method  ChallengeMethod
	session *Session
	opts    options

	mu      sync.Mutex
	state   GateState
	verdict Verdict
}

// NewGate creates an idle gate.
func NewGate(method ChallengeMethod, session *Session, opts ...Option) *Gate {
	return &Gate{method: method, session: session, opts: buildOptions(opts)}
}

// Method names the challenge behind the gate.
func (g *Gate) Method() domain.AuthMethod {
	return g.method.Method()
}

// State returns the current position.
func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Verdict returns the last message from the challenge.
func (g *Gate) Verdict() Verdict {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.verdict
}

// Activate starts the challenge when the guarded screen gains focus. If the
// session already passed this method the gate opens immediately. Activating
// a gate that already left Idle is a no-op.
func (g *Gate) Activate(ctx context.Context) (GateState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != GateIdle {
		return g.state, nil
	}
	if g.session.Auth().Has(g.method.Method()) {
		g.state = GateValidated
		g.opts.logger.Debug("authentication skipped", zap.String("method", string(g.method.Method())))
		return g.state, nil
	}
	v, err := g.method.Begin(ctx)
	if err != nil {
		return g.state, fmt.Errorf("could not start %s challenge: %w", g.method.Method(), err)
	}
	g.applyLocked(v)
	return g.state, nil
}

// Respond hands one user response to the challenge.
func (g *Gate) Respond(ctx context.Context, input string) (Verdict, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != GateChallenging {
		return g.verdict, domain.ErrGateNotChallenging
	}
	v, err := g.method.Respond(ctx, input)
	if err != nil {
		return g.verdict, fmt.Errorf("%s challenge failed: %w", g.method.Method(), err)
	}
	g.applyLocked(v)
	return v, nil
}

// Cancel dismisses the challenge without recording anything on the session.
// Terminal gates are left as they are.
func (g *Gate) Cancel() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.state.Terminal() {
		g.state = GateCancelled
		g.opts.logger.Info("authentication cancelled", zap.String("method", string(g.method.Method())))
	}
	return g.state
}

func (g *Gate) applyLocked(v Verdict) {
	g.verdict = v
	method := g.method.Method()
	switch v.Outcome {
	case OutcomeGranted:
		g.state = GateValidated
		g.session.MarkValidated(method)
		g.opts.logger.Info("authentication validated", zap.String("method", string(method)))
	case OutcomeDenied:
		g.state = GateDenied
		g.opts.logger.Warn("authentication denied", zap.String("method", string(method)), zap.String("reason", v.Message))
	default:
		g.state = GateChallenging
	}
}
