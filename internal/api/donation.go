package api

import (
	"charity_system/internal/domain" // Importing domain models
	"charity_system/internal/ledger" // Donation ledger
	"net/http"                       // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// DonationRequest represents a donation request; amount is in minor units
type DonationRequest struct {
	CaseID        uint   `json:"case_id" binding:"required"`        // Funded case
	Amount        int64  `json:"amount"`                            // Validated by the ledger
	PaymentMethod string `json:"payment_method" binding:"required"` // VODAFONE_CASH or PAYPAL
}

// MakeDonationHandler records a donation from the authenticated user
func MakeDonationHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalOrAbort(c)
		if !ok {
			return
		}
		var req DonationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		donation, err := l.RecordDonation(c.Request.Context(), req.CaseID, p.Username, req.Amount, domain.PaymentMethod(req.PaymentMethod))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, donation)
	}
}

// CaseDonationsHandler lists the donations of a case in insertion order
func CaseDonationsHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caseID, ok := uintParam(c, "case id", c.Param("caseId"))
		if !ok {
			return
		}
		donations, err := l.DonationsForCase(c.Request.Context(), caseID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"donations": donations})
	}
}

// UserDonationsHandler lists the donations made by a user
func UserDonationsHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		donations, err := l.DonationsForUser(c.Request.Context(), c.Param("username"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"donations": donations})
	}
}

// MyDonationsHandler lists the donations of the authenticated user
func MyDonationsHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalOrAbort(c)
		if !ok {
			return
		}
		donations, err := l.DonationsForUser(c.Request.Context(), p.Username)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"donations": donations})
	}
}
