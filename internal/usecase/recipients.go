package usecase

import (
	"context"
	"fmt"

	"mobile-transfer/internal/domain"
)

// RecipientDirectory offers payees from the contact list.
type RecipientDirectory struct {
	contacts ContactService
	session  *Session
}

// NewRecipientDirectory creates a directory over contacts; favourites are
// saved on session.
func NewRecipientDirectory(contacts ContactService, session *Session) *RecipientDirectory {
	return &RecipientDirectory{contacts: contacts, session: session}
}

// All returns every contact.
func (d *RecipientDirectory) All(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := d.contacts.GetContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get contacts: %w", err)
	}
	return contacts, nil
}

// Frequent returns the contacts flagged for the shortlist.
func (d *RecipientDirectory) Frequent(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := d.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Contact
	for _, c := range contacts {
		if c.IsFrequent {
			out = append(out, c)
		}
	}
	return out, nil
}

// Find returns the contact with the given account number.
func (d *RecipientDirectory) Find(ctx context.Context, accountNumber string) (domain.Contact, bool, error) {
	contacts, err := d.All(ctx)
	if err != nil {
		return domain.Contact{}, false, err
	}
	for _, c := range contacts {
		if c.AccountNumber == accountNumber {
			return c, true, nil
		}
	}
	return domain.Contact{}, false, nil
}

// Favorite saves c on the session. It reports false when already saved.
func (d *RecipientDirectory) Favorite(c domain.Contact) bool {
	return d.session.AddFavorite(c)
}
