package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"mobile-transfer/internal/domain"
)

// CSVDirectoryRepository loads the payee directory from, and exports the
// transaction history to, CSV files.
type CSVDirectoryRepository struct{}

// NewCSVDirectoryRepository creates a new repository instance.
func NewCSVDirectoryRepository() *CSVDirectoryRepository {
	return &CSVDirectoryRepository{}
}

// GetContacts reads a directory file with the columns
// id,name,account_number,bank,frequent.
func (r *CSVDirectoryRepository) GetContacts(ctx context.Context, path string) ([]domain.Contact, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 5
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var contacts []domain.Contact
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		frequent := false
		if f := strings.TrimSpace(record[4]); f != "" {
			frequent, err = strconv.ParseBool(f)
			if err != nil {
				return nil, fmt.Errorf("could not parse frequent flag '%s': %w", record[4], err)
			}
		}
		accountNumber := strings.TrimSpace(record[2])
		if accountNumber == "" {
			return nil, fmt.Errorf("contact '%s' in %s has no account number", record[0], path)
		}

		contacts = append(contacts, domain.Contact{
			ID:            strings.TrimSpace(record[0]),
			Name:          strings.TrimSpace(record[1]),
			AccountNumber: accountNumber,
			Bank:          strings.TrimSpace(record[3]),
			IsFrequent:    frequent,
		})
	}
	return contacts, nil
}

var historyHeader = []string{"id", "timestamp", "type", "status", "recipient_name", "recipient_account_number", "bank", "transfer_type", "amount", "note"}

// WriteTransactions writes the history, in the given order, to path.
func (r *CSVDirectoryRepository) WriteTransactions(ctx context.Context, path string, txs []domain.Transaction) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create history file %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(historyHeader); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, tx := range txs {
		if err := ctx.Err(); err != nil {
			return err
		}
		record := []string{
			tx.ID,
			tx.Timestamp.Format(time.RFC3339),
			string(tx.Type),
			string(tx.Status),
			tx.RecipientName,
			tx.RecipientAccountNumber,
			tx.Bank,
			string(tx.TransferType),
			tx.Amount.StringFixed(2),
			tx.Note,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", tx.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return file.Close()
}
