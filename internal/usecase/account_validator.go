package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"mobile-transfer/internal/domain"
)

// LookupStatus is the state of the account number field.
type LookupStatus int

const (
	LookupIdle LookupStatus = iota
	LookupFound
	LookupNotFound
	LookupFailed
)

func (s LookupStatus) String() string {
	switch s {
	case LookupIdle:
		return "idle"
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	case LookupFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LookupResult is delivered once per settled input.
type LookupResult struct {
	AccountNumber string
	Status        LookupStatus
	Holder        domain.AccountHolder
	Message       string
}

// Recipient builds the payee for a found account.
func (r LookupResult) Recipient() (domain.Recipient, bool) {
	if r.Status != LookupFound {
		return domain.Recipient{}, false
	}
	return domain.Recipient{Name: r.Holder.Name, AccountNumber: r.AccountNumber, Bank: r.Holder.Bank}, true
}

// LookupConfig tunes when lookups are issued.
type LookupConfig struct {
	MinLength int
	Debounce  time.Duration
	CacheTTL  time.Duration
}

// DefaultLookupConfig waits for ten digits and 300ms of quiet, and remembers
// answers for five minutes.
func DefaultLookupConfig() LookupConfig {
	return LookupConfig{MinLength: 10, Debounce: 300 * time.Millisecond, CacheTTL: 5 * time.Minute}
}

type cachedLookup struct {
	result  LookupResult
	expires time.Time
}

// AccountValidator turns keystrokes in the account number field into
// directory lookups. Input is debounced, short numbers never reach the
// directory, and answers for the same number are reused until they go stale.
type AccountValidator struct {
	directory AccountDirectory
	cfg       LookupConfig
	opts      options

	mu      sync.Mutex
	seq     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
	entries map[string]cachedLookup
}

// NewAccountValidator creates a validator backed by directory.
func NewAccountValidator(directory AccountDirectory, cfg LookupConfig, opts ...Option) *AccountValidator {
	return &AccountValidator{
		directory: directory,
		cfg:       cfg,
		opts:      buildOptions(opts),
		entries:   make(map[string]cachedLookup),
	}
}

// Validate looks accountNumber up right away. Numbers shorter than the
// minimum length yield LookupIdle without contacting the directory.
func (v *AccountValidator) Validate(ctx context.Context, accountNumber string) LookupResult {
	if len(accountNumber) < v.cfg.MinLength {
		return LookupResult{AccountNumber: accountNumber, Status: LookupIdle}
	}
	if cached, ok := v.cached(accountNumber); ok {
		return cached
	}

	v.opts.logger.Debug("looking up account", zap.String("account_number", accountNumber))
	holder, err := v.directory.ValidateAccountNumber(ctx, accountNumber)
	var result LookupResult
	switch {
	case err == nil:
		result = LookupResult{AccountNumber: accountNumber, Status: LookupFound, Holder: holder}
	case errors.Is(err, domain.ErrAccountNotFound):
		v.opts.logger.Info("account not found", zap.String("account_number", accountNumber))
		result = LookupResult{AccountNumber: accountNumber, Status: LookupNotFound, Message: domain.ErrAccountNotFound.Error()}
	default:
		v.opts.logger.Warn("account lookup failed", zap.String("account_number", accountNumber), zap.Error(err))
		return LookupResult{AccountNumber: accountNumber, Status: LookupFailed, Message: domain.ErrNetwork.Error()}
	}
	v.store(result)
	return result
}

// Input records a change of the field. After the field has been quiet for the
// debounce interval the latest value is validated and deliver is called with
// the result; results for superseded input are dropped. Short input is
// answered immediately with LookupIdle.
func (v *AccountValidator) Input(ctx context.Context, accountNumber string, deliver func(LookupResult)) {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.stopLocked()

	if len(accountNumber) < v.cfg.MinLength {
		v.mu.Unlock()
		deliver(LookupResult{AccountNumber: accountNumber, Status: LookupIdle})
		return
	}

	lookupCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.timer = time.AfterFunc(v.cfg.Debounce, func() {
		result := v.Validate(lookupCtx, accountNumber)
		v.mu.Lock()
		current := seq == v.seq
		v.mu.Unlock()
		if current {
			deliver(result)
		}
	})
	v.mu.Unlock()
}

// Stop abandons any pending or in-flight lookup.
func (v *AccountValidator) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	v.stopLocked()
}

func (v *AccountValidator) stopLocked() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *AccountValidator) cached(accountNumber string) (LookupResult, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	entry, ok := v.entries[accountNumber]
	if !ok {
		return LookupResult{}, false
	}
	if !v.opts.now().Before(entry.expires) {
		delete(v.entries, accountNumber)
		return LookupResult{}, false
	}
	return entry.result, true
}

func (v *AccountValidator) store(result LookupResult) {
	if v.cfg.CacheTTL <= 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries[result.AccountNumber] = cachedLookup{result: result, expires: v.opts.now().Add(v.cfg.CacheTTL)}
}
