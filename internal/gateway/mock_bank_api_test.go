package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-transfer/internal/domain"
)

var testContacts = []domain.Contact{
	{ID: "1", Name: "Sarah Lee", AccountNumber: "9876543210", Bank: "Maybank", IsFrequent: true},
	{ID: "2", Name: "Ali Hassan", AccountNumber: "5555666677", Bank: "CIMB Bank", IsFrequent: true},
}

func instantConfig() MockBankConfig {
	cfg := DefaultMockBankConfig()
	cfg.LookupLatency = 0
	cfg.TransferLatency = 0
	cfg.ContactsLatency = 0
	cfg.HistoryLatency = 0
	return cfg
}

func TestMockBankAPI_ValidateAccountNumber(t *testing.T) {
	api := NewMockBankAPI(instantConfig(), testContacts)
	ctx := context.Background()

	t.Run("known account", func(t *testing.T) {
		holder, err := api.ValidateAccountNumber(ctx, "9876543210")
		require.NoError(t, err)
		assert.Equal(t, domain.AccountHolder{Name: "Sarah Lee", Bank: "Maybank"}, holder)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := api.ValidateAccountNumber(ctx, "0000000000")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		assert.Equal(t, "Account number not found", domain.UserMessage(err))
	})
}

func TestMockBankAPI_ProcessTransfer(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	req := domain.TransferRequest{
		RecipientID:            "1",
		RecipientName:          "Sarah Lee",
		RecipientAccountNumber: "9876543210",
		Amount:                 decimal.RequireFromString("200"),
		Note:                   "Lunch",
		Bank:                   "Maybank",
		TransferType:           domain.TransferTypeDuitNow,
	}

	tests := []struct {
		name    string
		roll    float64
		amount  string
		wantErr error
	}{
		{name: "success", roll: 0.5, amount: "200"},
		{name: "transient network failure", roll: 0.05, amount: "200", wantErr: domain.ErrNetwork},
		{name: "above service ceiling", roll: 0.5, amount: "10000.01", wantErr: domain.ErrInsufficientFunds},
		{name: "at service ceiling", roll: 0.5, amount: "10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := NewMockBankAPI(instantConfig(), testContacts,
				WithFailureRoll(func() float64 { return tt.roll }),
				WithNow(func() time.Time { return now }),
				WithTransactionIDs(func() string { return "tx-1" }),
			)
			r := req
			r.Amount = decimal.RequireFromString(tt.amount)

			got, err := api.ProcessTransfer(context.Background(), r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.Transaction{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.Transaction{
				ID:                     "tx-1",
				RecipientName:          "Sarah Lee",
				RecipientAccountNumber: "9876543210",
				Amount:                 r.Amount,
				Note:                   "Lunch",
				Timestamp:              now,
				Status:                 domain.StatusCompleted,
				Type:                   domain.TransactionTypeTransfer,
				Bank:                   "Maybank",
				TransferType:           domain.TransferTypeDuitNow,
			}, got)
		})
	}
}

func TestMockBankAPI_DefaultIDsAreUnique(t *testing.T) {
	api := NewMockBankAPI(instantConfig(), testContacts, WithFailureRoll(func() float64 { return 1 }))
	req := domain.TransferRequest{Amount: decimal.NewFromInt(1), TransferType: domain.TransferTypeDuitNow}

	first, err := api.ProcessTransfer(context.Background(), req)
	require.NoError(t, err)
	second, err := api.ProcessTransfer(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMockBankAPI_LookupHonoursContext(t *testing.T) {
	cfg := instantConfig()
	cfg.LookupLatency = time.Hour
	api := NewMockBankAPI(cfg, testContacts)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := api.ValidateAccountNumber(ctx, "9876543210")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMockBankAPI_TransferIgnoresCancellation(t *testing.T) {
	cfg := instantConfig()
	cfg.TransferLatency = 20 * time.Millisecond
	api := NewMockBankAPI(cfg, testContacts,
		WithFailureRoll(func() float64 { return 1 }),
		WithTransactionIDs(func() string { return "tx-1" }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	tx, err := api.ProcessTransfer(ctx, domain.TransferRequest{Amount: decimal.NewFromInt(1), TransferType: domain.TransferTypeDuitNow})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, domain.StatusCompleted, tx.Status)
	assert.GreaterOrEqual(t, time.Since(start), cfg.TransferLatency)
}

func TestMockBankAPI_ContactsAndHistory(t *testing.T) {
	api := NewMockBankAPI(instantConfig(), testContacts)
	ctx := context.Background()

	contacts, err := api.GetContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, testContacts, contacts)

	contacts[0].Name = "changed"
	again, err := api.GetContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Lee", again[0].Name)

	history, err := api.GetTransactionHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSimulatedBiometric_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("unavailable", func(t *testing.T) {
		b := &SimulatedBiometric{}
		assert.False(t, b.IsAvailable(ctx))
		res, err := b.Authenticate(ctx, "Authenticate to confirm transfer")
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, domain.ErrBiometricUnavailable.Error(), res.Error)
	})

	t.Run("rejected", func(t *testing.T) {
		b := &SimulatedBiometric{Available: true, Accept: func(string) bool { return false }}
		res, err := b.Authenticate(ctx, "reason")
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Authentication failed", res.Error)
	})

	t.Run("accepted with default type", func(t *testing.T) {
		b := &SimulatedBiometric{Available: true}
		res, err := b.Authenticate(ctx, "reason")
		require.NoError(t, err)
		assert.Equal(t, domain.BiometricResult{Success: true, Type: domain.BiometricFingerprint}, res)
	})

	t.Run("accepted with face", func(t *testing.T) {
		b := &SimulatedBiometric{Available: true, Type: domain.BiometricFace}
		res, err := b.Authenticate(ctx, "reason")
		require.NoError(t, err)
		assert.Equal(t, domain.BiometricFace, res.Type)
	})
}
