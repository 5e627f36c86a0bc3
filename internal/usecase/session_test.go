package usecase_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-transfer/internal/domain"
	"mobile-transfer/internal/usecase"
)

func TestSession_TransferDraft(t *testing.T) {
	s := usecase.NewSession(testOwner("100"), nil, nil)

	_, ok := s.CurrentTransfer()
	assert.False(t, ok)

	s.SetTransferData(domain.TransferPatch{Recipient: sarah()})
	amount := decimal.NewFromInt(25)
	s.SetTransferData(domain.TransferPatch{Amount: &amount})

	draft, ok := s.CurrentTransfer()
	require.True(t, ok)
	assert.Equal(t, "Sarah Lee", draft.Recipient.Name)
	assert.Equal(t, "25", draft.Amount.String())

	s.SetError("Network error occurred. Please try again.")
	s.ClearTransfer()
	_, ok = s.CurrentTransfer()
	assert.False(t, ok)
	assert.Empty(t, s.Error())
}

func TestSession_HistoryIsNewestFirstAndCopied(t *testing.T) {
	s := usecase.NewSession(testOwner("100"), []domain.Transaction{{ID: "old"}}, nil)
	s.AddTransaction(domain.Transaction{ID: "new"})

	recent := s.RecentTransactions()
	require.Len(t, recent, 2)
	assert.Equal(t, "new", recent[0].ID)
	assert.Equal(t, "old", recent[1].ID)

	recent[0].ID = "mutated"
	assert.Equal(t, "new", s.RecentTransactions()[0].ID)

	tx, ok := s.FindTransaction("old")
	assert.True(t, ok)
	assert.Equal(t, "old", tx.ID)
	_, ok = s.FindTransaction("missing")
	assert.False(t, ok)
}

func TestSession_CompleteTransfer(t *testing.T) {
	s := usecase.NewSession(testOwner("15420.50"), nil, nil)
	s.SetTransferData(domain.TransferPatch{Recipient: sarah()})

	owner := s.CompleteTransfer(domain.Transaction{ID: "tx-1", Status: domain.StatusCompleted}, decimal.NewFromInt(200))

	assert.Equal(t, "15220.50", owner.Balance.StringFixed(2))
	assert.Equal(t, owner, s.Owner())
	assert.Equal(t, "tx-1", s.RecentTransactions()[0].ID)
	_, ok := s.CurrentTransfer()
	assert.False(t, ok)
}

func TestSession_AuthAndLogout(t *testing.T) {
	s := usecase.NewSession(testOwner("100"), []domain.Transaction{{ID: "kept"}}, nil)
	assert.False(t, s.Auth().Any())

	s.MarkValidated(domain.AuthMethodPIN)
	assert.True(t, s.Auth().Has(domain.AuthMethodPIN))
	assert.False(t, s.Auth().Has(domain.AuthMethodBiometric))

	s.SetTransferData(domain.TransferPatch{Recipient: sarah()})
	s.Logout()

	assert.False(t, s.Auth().Any())
	_, ok := s.CurrentTransfer()
	assert.False(t, ok)
	assert.Len(t, s.RecentTransactions(), 1)
	assert.Equal(t, "100", s.Owner().Balance.String())
}

func TestSession_TryBeginProcessingIsExclusive(t *testing.T) {
	s := usecase.NewSession(testOwner("100"), nil, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.TryBeginProcessing() {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.True(t, s.IsProcessing())
	s.SetProcessing(false)
	assert.True(t, s.TryBeginProcessing())
}

func TestSession_Favorites(t *testing.T) {
	s := usecase.NewSession(testOwner("100"), nil, []domain.Contact{{ID: "1", AccountNumber: "9876543210"}})

	assert.False(t, s.AddFavorite(domain.Contact{ID: "x", AccountNumber: "9876543210"}))
	assert.True(t, s.AddFavorite(domain.Contact{ID: "2", AccountNumber: "5555666677"}))
	assert.Len(t, s.Favorites(), 2)
}
