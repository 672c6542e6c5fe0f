// Package controllers file: controllers/payment_controller.go
package controllers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"gym-admin/logger"
	"gym-admin/models"
	"gym-admin/services"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// PaymentController struct with service dependency injection
type PaymentController struct {
	Service services.MemberServiceInterface
}

// NewPaymentController creates an instance of PaymentController
func NewPaymentController(service services.MemberServiceInterface) *PaymentController {
	return &PaymentController{Service: service}
}

// statusRequest is the body of a payment status update.
type statusRequest struct {
	Status models.PaymentStatus `json:"status" binding:"required,paymentstatus"`
}

// UpdateStatus transitions a member's payment status. Marking paid stamps
// the payment date and advances the due date.
func (pc *PaymentController) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn.Printf("UpdateStatus: invalid payload for member %s: %v", id, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := pc.Service.SetPaymentStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
			return
		}
		respondMemberError(c, "UpdateStatus", err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// Overdue lists members with overdue payments, including paid members whose
// due date has passed.
func (pc *PaymentController) Overdue(c *gin.Context) {
	members, err := pc.Service.Overdue()
	if err != nil {
		logger.Error.Printf("Overdue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// Pending lists members with pending payments.
func (pc *PaymentController) Pending(c *gin.Context) {
	members, err := pc.Service.Pending()
	if err != nil {
		logger.Error.Printf("Pending: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// Revenue returns the revenue summary for a YYYY-MM month.
func (pc *PaymentController) Revenue(c *gin.Context) {
	month := c.Param("month")
	if !monthPattern.MatchString(month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
		return
	}

	summary, err := pc.Service.MonthlyRevenue(month)
	if err != nil {
		logger.Error.Printf("Revenue: failed for %s: %v", month, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
