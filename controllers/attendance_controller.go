// Package controllers file: controllers/attendance_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gym-admin/logger"
	"gym-admin/services"
)

// AttendanceController struct with service dependency injection
type AttendanceController struct {
	Service services.AttendanceServiceInterface
}

// NewAttendanceController creates an instance of AttendanceController
func NewAttendanceController(service services.AttendanceServiceInterface) *AttendanceController {
	return &AttendanceController{Service: service}
}

// validDate checks the YYYY-MM-DD path parameter.
func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// ForDate returns the raw attendance map for one date.
func (ac *AttendanceController) ForDate(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	records, err := ac.Service.ForDate(date)
	if err != nil {
		logger.Error.Printf("ForDate: failed to load attendance for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Save overwrites one date's attendance from a memberID-to-present JSON body.
func (ac *AttendanceController) Save(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	var records map[string]bool
	if err := c.ShouldBindJSON(&records); err != nil {
		logger.Warn.Printf("Save: invalid attendance payload for %s: %v", date, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ac.Service.Save(date, records); err != nil {
		logger.Error.Printf("Save: failed to record attendance for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attendance"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// MemberHistory returns the dates one member attended.
func (ac *AttendanceController) MemberHistory(c *gin.Context) {
	history, err := ac.Service.MemberHistory(c.Param("id"))
	if err != nil {
		respondMemberError(c, "MemberHistory", err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// DailySummary returns the present/absent breakdown for one date.
func (ac *AttendanceController) DailySummary(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	summary, err := ac.Service.DailySummary(date)
	if err != nil {
		logger.Error.Printf("DailySummary: failed for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Recent returns daily summaries for the trailing N days.
func (ac *AttendanceController) Recent(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 1 || days > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Days must be between 1 and 90"})
		return
	}

	summaries, err := ac.Service.Recent(days)
	if err != nil {
		logger.Error.Printf("Recent: failed for %d days: %v", days, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}
