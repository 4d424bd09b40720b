package repository

import (
	"charity_system/internal/domain" // Importing domain models
	"context"                        // Request context
	"fmt"                            // Error wrapping
	"math"                           // Overflow bound

	"gorm.io/gorm" // GORM ORM library
)

// DonationRepository stores donations and keeps case totals in step with them
type DonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository wraps a GORM handle
func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Record inserts d on behalf of the donor and adds d.Amount to the case's
// raised amount in one transaction. The increment is evaluated by the
// database (raised_amount = raised_amount + ?) so concurrent donations to the
// same case serialize on the row and none is lost. A missing donor or case
// aborts before anything is written, and so does an amount that would push
// the total past int64.
func (r *DonationRepository) Record(ctx context.Context, d *domain.Donation, donor string) error {
	if d.Amount <= 0 {
		return domain.ErrInvalidAmount
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User // Resolve donor
		if err := tx.Select("id").Where("username = ?", donor).First(&user).Error; err != nil {
			return lookupErr(err, domain.ErrUserNotFound, donor)
		}
		var c domain.Case // Resolve case
		if err := tx.Select("id").First(&c, d.CaseID).Error; err != nil {
			return lookupErr(err, domain.ErrCaseNotFound, d.CaseID)
		}
		// Increment raised amount unless it would overflow
		res := tx.Model(&domain.Case{}).Where("id = ? AND raised_amount <= ?", d.CaseID, math.MaxInt64-d.Amount).
			Update("raised_amount", gorm.Expr("raised_amount + ?", d.Amount))
		if res.Error != nil {
			return fmt.Errorf("increment raised amount: %w", res.Error) // Return error to rollback
		}
		if res.RowsAffected == 0 {
			return domain.ErrAmountTooLarge // The case exists, so only the bound can miss
		}
		d.UserID = user.ID
		// Save donation
		if err := tx.Create(d).Error; err != nil {
			return fmt.Errorf("create donation: %w", err) // Return error to rollback
		}
		return nil // Commit transaction
	})
}

// ListByCase returns the donations of a case in insertion order
func (r *DonationRepository) ListByCase(ctx context.Context, caseID uint) ([]domain.Donation, error) {
	donations := []domain.Donation{}
	if err := r.db.WithContext(ctx).Where("case_id = ?", caseID).Order("id asc").Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return donations, nil
}

// ListByUser returns the donations made by a user in insertion order
func (r *DonationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Donation, error) {
	donations := []domain.Donation{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return donations, nil
}
