package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mobile-transfer/internal/domain"
)

const receiptDateLayout = "02 January 2006, 15:04:05"

// ReferenceNumber derives the printed reference from the transaction time:
// TXN, the date as yyyymmdd, then the last six digits of the Unix millisecond
// timestamp.
func ReferenceNumber(tx domain.Transaction) string {
	ms := fmt.Sprintf("%06d", tx.Timestamp.UnixMilli())
	return "TXN" + tx.Timestamp.UTC().Format("20060102") + ms[len(ms)-6:]
}

// BuildReceipt formats a completed transaction sent by owner.
func BuildReceipt(tx domain.Transaction, owner domain.User) domain.Receipt {
	r := domain.Receipt{
		Reference:     ReferenceNumber(tx),
		TransactionID: tx.ID,
		Date:          tx.Timestamp.Format(receiptDateLayout),
		From:          domain.Party{Name: owner.Name, AccountNumber: owner.AccountNumber},
		To:            domain.Party{Name: tx.RecipientName, AccountNumber: tx.RecipientAccountNumber, Bank: tx.Bank},
		Amount:        domain.FormatCurrency(tx.Amount),
		Note:          tx.Note,
		Status:        cases.Upper(language.English).String(string(tx.Status)),
	}
	if info, ok := tx.TransferType.Info(); ok {
		r.TransferType = info.Title
	}
	return r
}

// RenderReceipt lays the receipt out as shareable text.
func RenderReceipt(r domain.Receipt) string {
	var b strings.Builder
	b.WriteString("Ryt Bank Transfer Receipt\n\n")
	fmt.Fprintf(&b, "Reference: %s\n", r.Reference)
	fmt.Fprintf(&b, "Date: %s\n\n", r.Date)
	fmt.Fprintf(&b, "FROM: %s\n", r.From.Name)
	fmt.Fprintf(&b, "Account: %s\n\n", r.From.AccountNumber)
	fmt.Fprintf(&b, "TO: %s\n", r.To.Name)
	fmt.Fprintf(&b, "Account: %s\n", r.To.AccountNumber)
	fmt.Fprintf(&b, "Bank: %s\n\n", r.To.Bank)
	fmt.Fprintf(&b, "Amount: %s\n", r.Amount)
	if r.TransferType != "" {
		fmt.Fprintf(&b, "Type: %s\n", r.TransferType)
	}
	if r.Note != "" {
		fmt.Fprintf(&b, "Note: %s\n", r.Note)
	}
	fmt.Fprintf(&b, "\nStatus: %s\n\n", r.Status)
	b.WriteString("Thank you for using Ryt Bank!\n")
	return b.String()
}
