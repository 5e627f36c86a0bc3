package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"mobile-transfer/internal/domain"
	"mobile-transfer/internal/usecase"
)

func receiptTx() domain.Transaction {
	return domain.Transaction{
		ID:                     "tx-1",
		RecipientName:          "Sarah Lee",
		RecipientAccountNumber: "9876543210",
		Amount:                 decimal.RequireFromString("1250.5"),
		Note:                   "Rent",
		Timestamp:              fixedNow,
		Status:                 domain.StatusCompleted,
		Type:                   domain.TransactionTypeTransfer,
		Bank:                   "Maybank",
		TransferType:           domain.TransferTypeDuitNow,
	}
}

func TestReferenceNumber(t *testing.T) {
	assert.Equal(t, "TXN20240115600000", usecase.ReferenceNumber(receiptTx()))
}

func TestBuildReceipt(t *testing.T) {
	got := usecase.BuildReceipt(receiptTx(), testOwner("100"))

	assert.Equal(t, domain.Receipt{
		Reference:     "TXN20240115600000",
		TransactionID: "tx-1",
		Date:          "15 January 2024, 10:30:00",
		From:          domain.Party{Name: "Abdullah Fitri", AccountNumber: "1234567890"},
		To:            domain.Party{Name: "Sarah Lee", AccountNumber: "9876543210", Bank: "Maybank"},
		Amount:        "RM 1,250.50",
		Note:          "Rent",
		TransferType:  "DuitNow Transfer",
		Status:        "COMPLETED",
	}, got)
}

func TestRenderReceipt(t *testing.T) {
	text := usecase.RenderReceipt(usecase.BuildReceipt(receiptTx(), testOwner("100")))

	assert.True(t, strings.HasPrefix(text, "Ryt Bank Transfer Receipt\n"))
	assert.Contains(t, text, "Reference: TXN20240115600000\n")
	assert.Contains(t, text, "Amount: RM 1,250.50\n")
	assert.Contains(t, text, "Note: Rent\n")
	assert.Contains(t, text, "Status: COMPLETED\n")
	assert.True(t, strings.HasSuffix(text, "Thank you for using Ryt Bank!\n"))

	tx := receiptTx()
	tx.Note = ""
	assert.NotContains(t, usecase.RenderReceipt(usecase.BuildReceipt(tx, testOwner("100"))), "Note:")
}
