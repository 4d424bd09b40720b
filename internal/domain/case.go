package domain

import "time" // Time for timestamps

// CaseStatus is the moderation state of a case
type CaseStatus string

const (
	CaseStatusPending  CaseStatus = "PENDING"  // Awaiting moderation
	CaseStatusApproved CaseStatus = "APPROVED" // Visible and accepting donations
	CaseStatusRejected CaseStatus = "REJECTED" // Rejected by moderation
)

// Case Model
// RaisedAmount is written only by the donation ledger and always equals the
// sum of the case's donation amounts.
type Case struct {
	ID           uint       `gorm:"primaryKey" json:"id"`                    // Primary key
	Title        string     `gorm:"size:255;not null" json:"title"`          // Title
	Description  string     `gorm:"type:text" json:"description"`            // Description
	ImagePath    string     `gorm:"size:512" json:"image_path"`              // Opaque image URL
	Goal         int64      `gorm:"not null" json:"goal"`                    // Goal in minor units
	RaisedAmount int64      `gorm:"not null;default:0" json:"raised_amount"` // Raised so far in minor units
	Status       CaseStatus `gorm:"size:16;not null" json:"status"`          // PENDING, APPROVED or REJECTED
	UserID       string     `gorm:"size:36;index;not null" json:"user_id"`   // Owning user
	CategoryID   uint       `gorm:"index;not null" json:"category_id"`       // Owning category
	CreatedAt    time.Time  `json:"created_at"`                              // Creation time
	UpdatedAt    time.Time  `json:"updated_at"`                              // Last update time
}

// Category Model
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`                      // Primary key
	Name string `gorm:"uniqueIndex;size:128;not null" json:"name"` // Unique name
}
