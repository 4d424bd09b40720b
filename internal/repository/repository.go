// Package repository holds the GORM-backed stores for users, cases,
// categories and donations.
package repository

import (
	"errors" // Error inspection
	"fmt"    // Error wrapping

	"gorm.io/gorm" // GORM ORM library
)

// lookupErr turns a missing row into the domain sentinel for key
func lookupErr(err, sentinel error, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", sentinel, key)
	}
	return fmt.Errorf("query: %w", err)
}
