package usecase

import (
	"sync"

	"github.com/shopspring/decimal"

	"mobile-transfer/internal/domain"
)

// Session owns everything that lives for one signed-in app session: the
// owner's balance, the authentication flags, the transfer being entered and
// the transaction history. Callers only ever receive copies.
type Session struct {
	mu         sync.Mutex
	owner      domain.User
	auth       domain.AuthState
	current    *domain.TransferDraft
	recent     []domain.Transaction
	favorites  []domain.Contact
	processing bool
	lastErr    string
}

// NewSession starts a session for owner with an existing history (newest
// first) and saved favourites.
func NewSession(owner domain.User, history []domain.Transaction, favorites []domain.Contact) *Session {
	s := &Session{owner: owner}
	s.recent = append(s.recent, history...)
	s.favorites = append(s.favorites, favorites...)
	return s
}

// Owner returns a snapshot of the signed-in user.
func (s *Session) Owner() domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

// Auth returns the authentication flags.
func (s *Session) Auth() domain.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth
}

// MarkValidated records a passed challenge for the rest of the session.
func (s *Session) MarkValidated(m domain.AuthMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch m {
	case domain.AuthMethodPIN:
		s.auth.HasValidatedPIN = true
	case domain.AuthMethodBiometric:
		s.auth.HasValidatedBiometric = true
	}
}

// Logout forgets the passed challenges and any transfer in progress.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = domain.AuthState{}
	s.current = nil
	s.lastErr = ""
}

// CurrentTransfer returns the draft being entered, if any.
func (s *Session) CurrentTransfer() (domain.TransferDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.TransferDraft{}, false
	}
	return *s.current, true
}

// SetTransferData merges one step's fields into the draft, creating it when
// none exists.
func (s *Session) SetTransferData(p domain.TransferPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		s.current = &domain.TransferDraft{}
	}
	s.current.Merge(p)
}

// ClearTransfer drops the draft and the last error.
func (s *Session) ClearTransfer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.lastErr = ""
}

// AddTransaction puts tx at the front of the history.
func (s *Session) AddTransaction(tx domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prepend(tx)
}

func (s *Session) prepend(tx domain.Transaction) {
	s.recent = append([]domain.Transaction{tx}, s.recent...)
}

// RecentTransactions returns the history, newest first.
func (s *Session) RecentTransactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Transaction, len(s.recent))
	copy(out, s.recent)
	return out
}

// FindTransaction looks a history entry up by id.
func (s *Session) FindTransaction(id string) (domain.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.recent {
		if tx.ID == id {
			return tx, true
		}
	}
	return domain.Transaction{}, false
}

// SetProcessing sets the in-flight flag.
func (s *Session) SetProcessing(processing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processing = processing
}

// IsProcessing reports whether a submission is in flight.
func (s *Session) IsProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing
}

// TryBeginProcessing sets the in-flight flag unless it is already set.
func (s *Session) TryBeginProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return false
	}
	s.processing = true
	return true
}

// SetError stores the message of the last failure.
func (s *Session) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

// Error returns the message of the last failure.
func (s *Session) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// CompleteTransfer debits amount, records tx and clears the draft in one step,
// so balance and history never disagree.
func (s *Session) CompleteTransfer(tx domain.Transaction, amount decimal.Decimal) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owner.Balance = s.owner.Balance.Sub(amount)
	s.prepend(tx)
	s.current = nil
	s.lastErr = ""
	return s.owner
}

// Favorites returns the saved payees.
func (s *Session) Favorites() []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Contact, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// AddFavorite saves a payee unless its account number is already saved.
func (s *Session) AddFavorite(c domain.Contact) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.favorites {
		if f.AccountNumber == c.AccountNumber {
			return false
		}
	}
	s.favorites = append(s.favorites, c)
	return true
}
