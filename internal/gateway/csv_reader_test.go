package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-transfer/internal/domain"
)

func TestCSVDirectoryRepository_GetContacts(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.Contact
		wantErr  bool
	}{
		{
			name: "valid directory",
			csvData: [][]string{
				{"id", "name", "account_number", "bank", "frequent"},
				{"1", "Sarah Lee", "9876543210", "Maybank", "true"},
				{"2", "Ali Hassan", " 5555666677 ", "CIMB Bank", "TRUE"},
				{"3", "Siti Aminah", "1111222233", "Public Bank", ""},
			},
			expected: []domain.Contact{
				{ID: "1", Name: "Sarah Lee", AccountNumber: "9876543210", Bank: "Maybank", IsFrequent: true},
				{ID: "2", Name: "Ali Hassan", AccountNumber: "5555666677", Bank: "CIMB Bank", IsFrequent: true},
				{ID: "3", Name: "Siti Aminah", AccountNumber: "1111222233", Bank: "Public Bank"},
			},
			wantErr: false,
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"id", "name", "account_number", "bank", "frequent"},
			},
			expected: nil,
			wantErr:  false,
		},
		{
			name: "invalid frequent flag",
			csvData: [][]string{
				{"id", "name", "account_number", "bank", "frequent"},
				{"1", "Sarah Lee", "9876543210", "Maybank", "often"},
			},
			expected: nil,
			wantErr:  true,
		},
		{
			name: "missing account number",
			csvData: [][]string{
				{"id", "name", "account_number", "bank", "frequent"},
				{"1", "Sarah Lee", "  ", "Maybank", "false"},
			},
			expected: nil,
			wantErr:  true,
		},
		{
			name: "wrong column count",
			csvData: [][]string{
				{"id", "name", "account_number", "bank", "frequent"},
				{"1", "Sarah Lee", "9876543210"},
			},
			expected: nil,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSV(t, tt.csvData)
			if err != nil {
				t.Fatalf("Failed to create temp CSV file: %v", err)
			}

			repo := NewCSVDirectoryRepository()
			got, err := repo.GetContacts(context.Background(), tmpFile)
			if tt.wantErr {
				assert.Error(t, err, "Expected error but got nil")
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCSVDirectoryRepository_GetContacts_FileErrors(t *testing.T) {
	repo := NewCSVDirectoryRepository()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetContacts(ctx, filepath.Join(t.TempDir(), "nonexistent_file.csv"))
		assert.Error(t, err)
	})

	t.Run("file with no header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := repo.GetContacts(ctx, path)
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		tmpFile, err := createTempCSV(t, [][]string{
			{"id", "name", "account_number", "bank", "frequent"},
			{"1", "Sarah Lee", "9876543210", "Maybank", "true"},
		})
		require.NoError(t, err)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err = repo.GetContacts(cctx, tmpFile)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCSVDirectoryRepository_WriteTransactions(t *testing.T) {
	repo := NewCSVDirectoryRepository()
	path := filepath.Join(t.TempDir(), "history.csv")
	txs := []domain.Transaction{
		{
			ID:                     "tx-2",
			RecipientName:          "Sarah Lee",
			RecipientAccountNumber: "9876543210",
			Amount:                 decimal.RequireFromString("200"),
			Note:                   "Lunch, and coffee",
			Timestamp:              mustParseTime("2024-01-15T10:30:00Z"),
			Status:                 domain.StatusCompleted,
			Type:                   domain.TransactionTypeTransfer,
			Bank:                   "Maybank",
			TransferType:           domain.TransferTypeDuitNow,
		},
		{
			ID:                     "tx-1",
			RecipientName:          "Ali Hassan",
			RecipientAccountNumber: "5555666677",
			Amount:                 decimal.RequireFromString("1500.5"),
			Timestamp:              mustParseTime("2024-01-14T15:45:00Z"),
			Status:                 domain.StatusCompleted,
			Type:                   domain.TransactionTypeReceive,
			Bank:                   "CIMB Bank",
		},
	}

	require.NoError(t, repo.WriteTransactions(context.Background(), path, txs))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		historyHeader,
		{"tx-2", "2024-01-15T10:30:00Z", "transfer", "completed", "Sarah Lee", "9876543210", "Maybank", "duitnow", "200.00", "Lunch, and coffee"},
		{"tx-1", "2024-01-14T15:45:00Z", "receive", "completed", "Ali Hassan", "5555666677", "CIMB Bank", "", "1500.50", ""},
	}, records)
}

func TestCSVDirectoryRepository_WriteTransactions_BadPath(t *testing.T) {
	repo := NewCSVDirectoryRepository()
	err := repo.WriteTransactions(context.Background(), filepath.Join(t.TempDir(), "missing", "history.csv"), nil)
	assert.Error(t, err)
}

// Helper functions

func createTempCSV(t testing.TB, data [][]string) (string, error) {
	tmpFile, err := os.CreateTemp(t.TempDir(), "test_*.csv")
	if err != nil {
		return "", err
	}

	writer := csv.NewWriter(tmpFile)
	for _, record := range data {
		if err := writer.Write(record); err != nil {
			tmpFile.Close()
			return "", err
		}
	}

	// Flush the writer to ensure data is written to the file
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmpFile.Close()
		return "", err
	}

	if err := tmpFile.Close(); err != nil {
		return "", err
	}
	return tmpFile.Name(), nil
}

func mustParseTime(timeStr string) time.Time {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic(err)
	}
	return t
}

// Benchmark tests

func BenchmarkGetContacts(b *testing.B) {
	data := [][]string{{"id", "name", "account_number", "bank", "frequent"}}
	for i := 0; i < 1000; i++ {
		data = append(data, []string{"1", "Sarah Lee", "9876543210", "Maybank", "true"})
	}

	tmpFile, err := createTempCSV(b, data)
	if err != nil {
		b.Fatalf("Failed to create temp file: %v", err)
	}

	repo := NewCSVDirectoryRepository()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.GetContacts(ctx, tmpFile); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
