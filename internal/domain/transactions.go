package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferType selects the payment rail. Both rails behave the same; only the
// declared processing time differs.
type TransferType string

const (
	TransferTypeDuitNow   TransferType = "duitnow"
	TransferTypeInterbank TransferType = "interbank"
)

// TransferTypeInfo describes a rail for selection screens.
type TransferTypeInfo struct {
	Type           TransferType `json:"type"`
	Title          string       `json:"title"`
	Subtitle       string       `json:"subtitle"`
	Description    string       `json:"description"`
	ProcessingTime string       `json:"processingTime"`
}

var transferTypes = []TransferTypeInfo{
	{
		Type:           TransferTypeDuitNow,
		Title:          "DuitNow Transfer",
		Subtitle:       "Instant transfer • Real-time processing",
		Description:    "Transfer money instantly to any participating bank in Malaysia",
		ProcessingTime: "Instant",
	},
	{
		Type:           TransferTypeInterbank,
		Title:          "Interbank GIRO",
		Subtitle:       "Standard transfer • 1-2 business days",
		Description:    "Traditional bank transfer with standard processing time",
		ProcessingTime: "1-2 business days",
	},
}

// TransferTypes returns the selectable rails in display order.
func TransferTypes() []TransferTypeInfo {
	out := make([]TransferTypeInfo, len(transferTypes))
	copy(out, transferTypes)
	return out
}

// Info returns the catalogue entry for t.
func (t TransferType) Info() (TransferTypeInfo, bool) {
	for _, info := range transferTypes {
		if info.Type == t {
			return info, true
		}
	}
	return TransferTypeInfo{}, false
}

// Valid reports whether t is one of the known rails.
func (t TransferType) Valid() bool {
	_, ok := t.Info()
	return ok
}

// TransactionStatus is fixed when the transaction is created.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// TransactionType tells outgoing transfers from incoming money.
type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeReceive  TransactionType = "receive"
)

// TransferRequest is a fully specified transfer ready for submission.
type TransferRequest struct {
	RecipientID            string          `json:"recipientId"`
	RecipientName          string          `json:"recipientName"`
	RecipientAccountNumber string          `json:"recipientAccountNumber"`
	Amount                 decimal.Decimal `json:"amount"`
	Note                   string          `json:"note,omitempty"`
	Bank                   string          `json:"bank"`
	TransferType           TransferType    `json:"transferType"`
}

// TransferPatch carries the fields one wizard step fills in. Nil fields are
// left untouched when merged into a draft.
type TransferPatch struct {
	Recipient    *Recipient
	Amount       *decimal.Decimal
	Note         *string
	TransferType *TransferType
}

// TransferDraft is the in-progress transfer held by the session.
type TransferDraft struct {
	Recipient    *Recipient       `json:"recipient,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Note         string           `json:"note,omitempty"`
	TransferType TransferType     `json:"transferType,omitempty"`
}

// Merge applies the non-nil fields of p.
func (d *TransferDraft) Merge(p TransferPatch) {
	if p.Recipient != nil {
		r := *p.Recipient
		d.Recipient = &r
	}
	if p.Amount != nil {
		a := *p.Amount
		d.Amount = &a
	}
	if p.Note != nil {
		d.Note = *p.Note
	}
	if p.TransferType != nil {
		d.TransferType = *p.TransferType
	}
}

// Request turns the draft into a submittable request. It fails with
// ErrIncompleteTransfer while recipient, amount or transfer type is unset.
func (d TransferDraft) Request() (TransferRequest, error) {
	if d.Recipient == nil || d.Amount == nil || d.TransferType == "" {
		return TransferRequest{}, ErrIncompleteTransfer
	}
	return TransferRequest{
		RecipientID:            d.Recipient.ID,
		RecipientName:          d.Recipient.Name,
		RecipientAccountNumber: d.Recipient.AccountNumber,
		Amount:                 *d.Amount,
		Note:                   d.Note,
		Bank:                   d.Recipient.Bank,
		TransferType:           d.TransferType,
	}, nil
}

// Transaction is an immutable history entry.
type Transaction struct {
	ID                     string            `json:"id"`
	RecipientName          string            `json:"recipientName"`
	RecipientAccountNumber string            `json:"recipientAccountNumber"`
	Amount                 decimal.Decimal   `json:"amount"`
	Note                   string            `json:"note,omitempty"`
	Timestamp              time.Time         `json:"timestamp"`
	Status                 TransactionStatus `json:"status"`
	Type                   TransactionType   `json:"type"`
	Bank                   string            `json:"bank"`
	TransferType           TransferType      `json:"transferType,omitempty"`
}
