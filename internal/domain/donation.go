package domain

import "time" // Time for timestamps

// PaymentMethod is how a donation was paid
type PaymentMethod string

const (
	PaymentVodafoneCash PaymentMethod = "VODAFONE_CASH" // Mobile wallet
	PaymentPaypal       PaymentMethod = "PAYPAL"        // PayPal
)

// Valid reports whether m is a supported payment method
func (m PaymentMethod) Valid() bool {
	return m == PaymentVodafoneCash || m == PaymentPaypal
}

// Donation Model
// Donations are immutable once created.
type Donation struct {
	ID            uint          `gorm:"primaryKey" json:"id"`                   // Primary key
	Amount        int64         `gorm:"not null" json:"amount"`                 // Amount in minor units (cents)
	PaymentMethod PaymentMethod `gorm:"size:32;not null" json:"payment_method"` // Payment method
	CaseID        uint          `gorm:"index;not null" json:"case_id"`          // Funded case
	UserID        string        `gorm:"size:36;index;not null" json:"user_id"`  // Donating user
	CreatedAt     time.Time     `json:"created_at"`                             // Creation time
}
