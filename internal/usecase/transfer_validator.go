package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"mobile-transfer/internal/domain"
)

// Limits are the client-side amount rules.
type Limits struct {
	MinAmount      decimal.Decimal
	MaxPerTransfer decimal.Decimal
}

// DefaultLimits allows RM 1.00 up to RM 50,000 per transfer.
func DefaultLimits() Limits {
	return Limits{
		MinAmount:      decimal.NewFromInt(1),
		MaxPerTransfer: decimal.NewFromInt(50000),
	}
}

// TransferForm is what the transfer screen holds before it becomes a request.
type TransferForm struct {
	Amount       string
	Recipient    *domain.Recipient
	TransferType domain.TransferType
	Note         string
}

// Patch converts a form that passed validation into a draft update.
func (f TransferForm) Patch() (domain.TransferPatch, error) {
	amount, err := domain.ParseAmount(f.Amount)
	if err != nil {
		return domain.TransferPatch{}, err
	}
	p := domain.TransferPatch{Amount: &amount, Note: &f.Note}
	if f.Recipient != nil {
		r := *f.Recipient
		p.Recipient = &r
	}
	if f.TransferType != "" {
		tt := f.TransferType
		p.TransferType = &tt
	}
	return p, nil
}

// TransferValidator applies the transfer rules. It is pure: the same form and
// owner always produce the same result.
type TransferValidator struct {
	limits Limits
}

// NewTransferValidator creates a validator for the given limits.
func NewTransferValidator(limits Limits) *TransferValidator {
	return &TransferValidator{limits: limits}
}

// Validate checks every field of form independently.
func (v *TransferValidator) Validate(form TransferForm, owner domain.User) domain.ValidationResult {
	return domain.ValidationResult{
		Amount:       v.validateAmount(form.Amount, owner.Balance),
		Recipient:    validateRecipient(form.Recipient, owner),
		TransferType: validateTransferType(form.TransferType),
	}
}

// ValidateRequest re-checks a complete request, e.g. right before submission
// when the balance may have moved since the form was filled in.
func (v *TransferValidator) ValidateRequest(req domain.TransferRequest, owner domain.User) domain.ValidationResult {
	recipient := domain.Recipient{
		ID:            req.RecipientID,
		Name:          req.RecipientName,
		AccountNumber: req.RecipientAccountNumber,
		Bank:          req.Bank,
	}
	return domain.ValidationResult{
		Amount:       v.checkAmount(req.Amount, owner.Balance),
		Recipient:    validateRecipient(&recipient, owner),
		TransferType: validateTransferType(req.TransferType),
	}
}

func (v *TransferValidator) validateAmount(raw string, balance decimal.Decimal) domain.AmountError {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return domain.AmountMissing
	}
	amount, err := domain.ParseAmount(raw)
	if err != nil {
		return domain.AmountInvalid
	}
	return v.checkAmount(amount, balance)
}

func (v *TransferValidator) checkAmount(amount, balance decimal.Decimal) domain.AmountError {
	switch {
	case !amount.IsPositive():
		return domain.AmountNotPositive
	case amount.LessThan(v.limits.MinAmount):
		return domain.AmountBelowMinimum
	case amount.GreaterThan(balance):
		return domain.AmountInsufficientFunds
	case amount.GreaterThan(v.limits.MaxPerTransfer):
		return domain.AmountLimitExceeded
	default:
		return domain.AmountOK
	}
}

func validateRecipient(r *domain.Recipient, owner domain.User) domain.RecipientError {
	if r == nil || r.AccountNumber == "" {
		return domain.RecipientMissing
	}
	if r.AccountNumber == owner.AccountNumber {
		return domain.RecipientIsOwner
	}
	return domain.RecipientOK
}

func validateTransferType(t domain.TransferType) domain.TransferTypeError {
	if !t.Valid() {
		return domain.TransferTypeMissing
	}
	return domain.TransferTypeOK
}
