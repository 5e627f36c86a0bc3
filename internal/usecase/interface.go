package usecase

import (
	"context"

	"mobile-transfer/internal/domain"
)

// AccountDirectory resolves payee account numbers. An unknown number is
// reported as domain.ErrAccountNotFound.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type AccountDirectory interface {
	ValidateAccountNumber(ctx context.Context, accountNumber string) (domain.AccountHolder, error)
}

// TransferProcessor is the remote transfer service. It never mutates session
// state; the caller debits the balance and records the transaction.
type TransferProcessor interface {
	ProcessTransfer(ctx context.Context, req domain.TransferRequest) (domain.Transaction, error)
}

// ContactService lists the user's saved payees.
type ContactService interface {
	GetContacts(ctx context.Context) ([]domain.Contact, error)
}

// BiometricAuthenticator is the platform biometric prompt.
type BiometricAuthenticator interface {
	IsAvailable(ctx context.Context) bool
	Authenticate(ctx context.Context, reason string) (domain.BiometricResult, error)
}
