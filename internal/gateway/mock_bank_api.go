package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mobile-transfer/internal/domain"
)

// MockBankConfig shapes the simulated remote bank.
type MockBankConfig struct {
	LookupLatency   time.Duration
	TransferLatency time.Duration
	ContactsLatency time.Duration
	HistoryLatency  time.Duration
	// FailureRate is the share of transfers that fail with a network error.
	FailureRate float64
	// ServiceCeiling is the largest amount the service accepts.
	ServiceCeiling decimal.Decimal
}

// DefaultMockBankConfig mirrors a slow, slightly unreliable backend.
func DefaultMockBankConfig() MockBankConfig {
	return MockBankConfig{
		LookupLatency:   time.Second,
		TransferLatency: 2 * time.Second,
		ContactsLatency: 300 * time.Millisecond,
		HistoryLatency:  500 * time.Millisecond,
		FailureRate:     0.1,
		ServiceCeiling:  decimal.NewFromInt(10000),
	}
}

// MockBankAPI is an in-memory stand-in for the bank's remote API. It answers
// account lookups, processes transfers and lists contacts after a fixed delay.
type MockBankAPI struct {
	cfg      MockBankConfig
	contacts []domain.Contact
	accounts map[string]domain.AccountHolder
	roll     func() float64
	now      func() time.Time
	newID    func() string
}

// MockBankOption customises a MockBankAPI.
type MockBankOption func(*MockBankAPI)

// WithFailureRoll replaces the random source deciding transient failures. A
// roll below FailureRate fails the transfer.
func WithFailureRoll(roll func() float64) MockBankOption {
	return func(m *MockBankAPI) { m.roll = roll }
}

// WithNow replaces time.Now for transaction timestamps.
func WithNow(now func() time.Time) MockBankOption {
	return func(m *MockBankAPI) { m.now = now }
}

// WithTransactionIDs replaces the transaction id generator.
func WithTransactionIDs(newID func() string) MockBankOption {
	return func(m *MockBankAPI) { m.newID = newID }
}

// NewMockBankAPI creates the service. Every contact is also a resolvable
// account.
func NewMockBankAPI(cfg MockBankConfig, contacts []domain.Contact, opts ...MockBankOption) *MockBankAPI {
	m := &MockBankAPI{
		cfg:      cfg,
		contacts: append([]domain.Contact(nil), contacts...),
		accounts: make(map[string]domain.AccountHolder, len(contacts)),
		roll:     rand.Float64,
		now:      time.Now,
		newID:    newTransactionID,
	}
	for _, c := range contacts {
		m.accounts[c.AccountNumber] = domain.AccountHolder{Name: c.Name, Bank: c.Bank}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ValidateAccountNumber resolves an account number to its holder.
func (m *MockBankAPI) ValidateAccountNumber(ctx context.Context, accountNumber string) (domain.AccountHolder, error) {
	if err := wait(ctx, m.cfg.LookupLatency); err != nil {
		return domain.AccountHolder{}, err
	}
	holder, ok := m.accounts[accountNumber]
	if !ok {
		return domain.AccountHolder{}, fmt.Errorf("account %s: %w", accountNumber, domain.ErrAccountNotFound)
	}
	return holder, nil
}

// ProcessTransfer simulates settlement. A share of calls fails with a network
// error regardless of input, and amounts above the service ceiling are
// rejected. A dispatched transfer cannot be cancelled: cancelling ctx does not
// cut the settlement short. The caller owns all state changes.
func (m *MockBankAPI) ProcessTransfer(ctx context.Context, req domain.TransferRequest) (domain.Transaction, error) {
	if err := wait(context.WithoutCancel(ctx), m.cfg.TransferLatency); err != nil {
		return domain.Transaction{}, err
	}
	if m.roll() < m.cfg.FailureRate {
		return domain.Transaction{}, domain.ErrNetwork
	}
	if req.Amount.GreaterThan(m.cfg.ServiceCeiling) {
		return domain.Transaction{}, domain.ErrInsufficientFunds
	}
	return domain.Transaction{
		ID:                     m.newID(),
		RecipientName:          req.RecipientName,
		RecipientAccountNumber: req.RecipientAccountNumber,
		Amount:                 req.Amount,
		Note:                   req.Note,
		Timestamp:              m.now(),
		Status:                 domain.StatusCompleted,
		Type:                   domain.TransactionTypeTransfer,
		Bank:                   req.Bank,
		TransferType:           req.TransferType,
	}, nil
}

// GetContacts lists the saved payees.
func (m *MockBankAPI) GetContacts(ctx context.Context) ([]domain.Contact, error) {
	if err := wait(ctx, m.cfg.ContactsLatency); err != nil {
		return nil, err
	}
	return append([]domain.Contact(nil), m.contacts...), nil
}

// GetTransactionHistory would page the server-side history; the mock has none.
func (m *MockBankAPI) GetTransactionHistory(ctx context.Context) ([]domain.Transaction, error) {
	if err := wait(ctx, m.cfg.HistoryLatency); err != nil {
		return nil, err
	}
	return []domain.Transaction{}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func newTransactionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
