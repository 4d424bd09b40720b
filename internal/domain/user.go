package domain

import (
	"time" // Time for creation timestamps

	"github.com/google/uuid" // Opaque user identifiers
	"gorm.io/gorm"           // GORM ORM library
)

// Role is the coarse role carried by a user and its tokens
type Role string

const (
	RoleAdmin       Role = "ADMIN"        // Administrator
	RoleRegularUser Role = "REGULAR_USER" // Default role assigned at registration
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleRegularUser
}

// User Model
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`                 // Opaque unique id (UUID)
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"` // Unique username
	PasswordHash string    `gorm:"not null" json:"-"`                            // bcrypt digest, never serialized
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`   // Unique email
	Role         Role      `gorm:"size:16;not null" json:"role"`                 // ADMIN or REGULAR_USER
	FirstName    string    `gorm:"size:64" json:"first_name"`                    // Profile field
	LastName     string    `gorm:"size:64" json:"last_name"`                     // Profile field
	Country      string    `gorm:"size:64" json:"country"`                       // Profile field
	ZipCode      int       `json:"zip_code"`                                     // Profile field
	CreatedAt    time.Time `json:"created_at"`                                   // Registration time
}

// BeforeCreate assigns a UUID when the caller did not provide one
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Principal is the verified identity attached to a single request
type Principal struct {
	Username string `json:"username"` // Token subject
	Role     Role   `json:"role"`     // Role claim
}

// Profile is the summary returned on login and by the account endpoint
type Profile struct {
	Username  string     `json:"username"`  // Username
	Email     string     `json:"email"`     // Email
	Cases     []Case     `json:"cases"`     // Cases owned by the user
	Donations []Donation `json:"donations"` // Donations made by the user
}
