package domain

import "github.com/shopspring/decimal"

// User is the authenticated account owner. Balance is only debited by a
// completed transfer.
type User struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	AccountNumber string          `json:"accountNumber" yaml:"account_number"`
	Balance       decimal.Decimal `json:"balance" yaml:"balance"`
	Email         string          `json:"email" yaml:"email"`
	Phone         string          `json:"phone" yaml:"phone"`
}

// Contact is an entry of the payee directory.
type Contact struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	AccountNumber string `json:"accountNumber" yaml:"account_number"`
	Bank          string `json:"bank" yaml:"bank"`
	IsFrequent    bool   `json:"isFrequent,omitempty" yaml:"frequent"`
}

// Recipient is the payee chosen for a transfer, either from the directory or
// from a successful account lookup.
type Recipient struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	Bank          string `json:"bank"`
}

// Recipient converts the contact into a payee.
func (c Contact) Recipient() Recipient {
	return Recipient{ID: c.ID, Name: c.Name, AccountNumber: c.AccountNumber, Bank: c.Bank}
}

// AccountHolder is what the account directory knows about an account number.
type AccountHolder struct {
	Name string `json:"name"`
	Bank string `json:"bank"`
}
