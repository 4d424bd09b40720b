// Package ledger records donations and keeps every case's raised amount equal
// to the sum of its donations.
package ledger

import (
	"charity_system/internal/domain" // Importing domain models
	"context"                        // Request context
	"fmt"                            // Error wrapping

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// DonationStore persists donations. Record must insert the donation and
// increment the case's raised amount atomically, and must fail with
// domain.ErrUserNotFound or domain.ErrCaseNotFound before writing anything.
type DonationStore interface {
	Record(ctx context.Context, d *domain.Donation, donor string) error
	ListByCase(ctx context.Context, caseID uint) ([]domain.Donation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Donation, error)
}

// CaseFinder resolves cases by id
type CaseFinder interface {
	FindByID(ctx context.Context, id uint) (*domain.Case, error)
}

// UserFinder resolves users by username
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Ledger is the only writer of Case.RaisedAmount
type Ledger struct {
	donations DonationStore
	cases     CaseFinder
	users     UserFinder
}

// New creates a ledger
func New(donations DonationStore, cases CaseFinder, users UserFinder) *Ledger {
	return &Ledger{donations: donations, cases: cases, users: users}
}

// RecordDonation adds a donation of amount (minor units) from donor to the
// case. Non-positive amounts and unknown payment methods are rejected before
// any state changes; an amount that would overflow the case total fails with
// domain.ErrAmountTooLarge and changes nothing.
func (l *Ledger) RecordDonation(ctx context.Context, caseID uint, donor string, amount int64, method domain.PaymentMethod) (*domain.Donation, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentMethod, method)
	}
	donation := &domain.Donation{
		Amount:        amount, // Donation amount
		PaymentMethod: method, // Payment method
		CaseID:        caseID, // Funded case
	}
	log := logrus.WithFields(logrus.Fields{
		"case_id": caseID, // Funded case
		"donor":   donor,  // Donating user
		"amount":  amount, // Donation amount
	})
	if err := l.donations.Record(ctx, donation, donor); err != nil {
		log.WithField("error", err.Error()).Error("Donation failed") // Log donation failure
		return nil, err
	}
	log.WithField("donation_id", donation.ID).Info("Donation recorded") // Log donation success
	return donation, nil
}

// DonationsForCase returns the donations of a case in insertion order
func (l *Ledger) DonationsForCase(ctx context.Context, caseID uint) ([]domain.Donation, error) {
	if _, err := l.cases.FindByID(ctx, caseID); err != nil {
		return nil, err
	}
	return l.donations.ListByCase(ctx, caseID)
}

// DonationsForUser returns the donations made by a user
func (l *Ledger) DonationsForUser(ctx context.Context, username string) ([]domain.Donation, error) {
	user, err := l.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return l.donations.ListByUser(ctx, user.ID)
}
