package domain

// Party is one side of a transfer as printed on the receipt.
type Party struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Bank          string `json:"bank,omitempty"`
}

// Receipt is the formatted record of a completed transfer.
type Receipt struct {
	Reference     string `json:"reference"`
	TransactionID string `json:"transaction_id"`
	Date          string `json:"date"`
	From          Party  `json:"from"`
	To            Party  `json:"to"`
	Amount        string `json:"amount"`
	Note          string `json:"note,omitempty"`
	TransferType  string `json:"transfer_type,omitempty"`
	Status        string `json:"status"`
}

// SessionReport is a snapshot of the session printed by the command line driver.
type SessionReport struct {
	Owner              User           `json:"owner"`
	Receipt            *Receipt       `json:"receipt,omitempty"`
	RecentTransactions []Transaction  `json:"recent_transactions"`
	Notifications      []Notification `json:"notifications"`
	UnreadCount        int            `json:"unread_count"`
	Error              string         `json:"error,omitempty"`
}
