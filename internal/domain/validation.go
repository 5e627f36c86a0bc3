package domain

// AmountError classifies what is wrong with the amount field.
type AmountError int

const (
	AmountOK AmountError = iota
	AmountMissing
	AmountInvalid
	AmountNotPositive
	AmountBelowMinimum
	AmountInsufficientFunds
	AmountLimitExceeded
)

// Message is the inline text shown under the amount field.
func (e AmountError) Message() string {
	switch e {
	case AmountMissing, AmountInvalid:
		return "Please enter a valid amount"
	case AmountNotPositive:
		return "Amount must be greater than 0"
	case AmountBelowMinimum:
		return "Minimum transfer amount is RM 1.00"
	case AmountInsufficientFunds:
		return "Insufficient funds"
	case AmountLimitExceeded:
		return "Transfer limit exceeded"
	default:
		return ""
	}
}

// RecipientError classifies what is wrong with the recipient field.
type RecipientError int

const (
	RecipientOK RecipientError = iota
	RecipientMissing
	RecipientIsOwner
)

// Message is the inline text shown under the recipient field.
func (e RecipientError) Message() string {
	switch e {
	case RecipientMissing:
		return "Please select a recipient"
	case RecipientIsOwner:
		return "Cannot transfer to your own account"
	default:
		return ""
	}
}

// TransferTypeError classifies what is wrong with the transfer type field.
type TransferTypeError int

const (
	TransferTypeOK TransferTypeError = iota
	TransferTypeMissing
)

// Message is the inline text shown under the transfer type selector.
func (e TransferTypeError) Message() string {
	if e == TransferTypeMissing {
		return "Please select a transfer type"
	}
	return ""
}

// ValidationResult holds one verdict per field; every field is checked so the
// user sees all problems at once.
type ValidationResult struct {
	Amount       AmountError
	Recipient    RecipientError
	TransferType TransferTypeError
}

// Valid reports whether every field passed.
func (r ValidationResult) Valid() bool {
	return r.Amount == AmountOK && r.Recipient == RecipientOK && r.TransferType == TransferTypeOK
}

// FieldMessages is the per-field text of a ValidationResult.
type FieldMessages struct {
	Amount       string `json:"amount,omitempty"`
	Recipient    string `json:"recipient,omitempty"`
	TransferType string `json:"transferType,omitempty"`
}

// Messages renders the result for display.
func (r ValidationResult) Messages() FieldMessages {
	return FieldMessages{
		Amount:       r.Amount.Message(),
		Recipient:    r.Recipient.Message(),
		TransferType: r.TransferType.Message(),
	}
}
