package usecase

import (
	"sort"
	"strings"
	"time"

	"mobile-transfer/internal/domain"
)

// HistoryFilter narrows the history by direction.
type HistoryFilter string

const (
	FilterAll      HistoryFilter = "all"
	FilterTransfer HistoryFilter = "transfer"
	FilterReceive  HistoryFilter = "receive"
)

// DayGroup is the history of one calendar day.
type DayGroup struct {
	Day          time.Time
	Label        string
	Transactions []domain.Transaction
}

// SearchHistory keeps the transactions whose recipient name contains query
// (ignoring case) or whose account number contains it, and that match filter.
// Order is preserved.
func SearchHistory(txs []domain.Transaction, query string, filter HistoryFilter) []domain.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Transaction
	for _, tx := range txs {
		if filter != "" && filter != FilterAll && string(tx.Type) != string(filter) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(tx.RecipientName), q) &&
			!strings.Contains(tx.RecipientAccountNumber, q) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// GroupByDay buckets transactions by calendar day in loc, newest day first.
// Within a day the input order is kept.
func GroupByDay(txs []domain.Transaction, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}
	index := make(map[time.Time]int)
	var groups []DayGroup
	for _, tx := range txs {
		t := tx.Timestamp.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day, Label: day.Format("Mon, 02 Jan 2006")})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Day.After(groups[b].Day)
	})
	return groups
}
