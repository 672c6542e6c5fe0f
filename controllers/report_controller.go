// Package controllers file: controllers/report_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gym-admin/logger"
	"gym-admin/services"
)

// ReportController struct with service dependency injection
type ReportController struct {
	Stats  services.StatisticsServiceInterface
	Export services.ExportServiceInterface
}

// NewReportController creates an instance of ReportController
func NewReportController(stats services.StatisticsServiceInterface, export services.ExportServiceInterface) *ReportController {
	return &ReportController{Stats: stats, Export: export}
}

// Dashboard returns the landing-page statistics block.
func (rc *ReportController) Dashboard(c *gin.Context) {
	stats, err := rc.Stats.Dashboard()
	if err != nil {
		logger.Error.Printf("Dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// yearMonth parses and bounds the year/month path parameters.
func yearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return 0, 0, false
	}
	return year, month, true
}

// Monthly returns the full month-in-review report.
func (rc *ReportController) Monthly(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}

	report, err := rc.Stats.MonthlyReport(year, month)
	if err != nil {
		logger.Error.Printf("Monthly: failed for %d-%02d: %v", year, month, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// Attendance returns the monthly attendance report on its own.
func (rc *ReportController) Attendance(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}

	report, err := rc.Stats.AttendanceReport(year, month)
	if err != nil {
		logger.Error.Printf("Attendance: failed for %d-%02d: %v", year, month, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportMembers returns the member collection as a downloadable JSON or CSV
// document, selected by the format query parameter.
func (rc *ReportController) ExportMembers(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	switch format {
	case "csv":
		filename, content, err := rc.Export.MembersCSV()
		if err != nil {
			logger.Error.Printf("ExportMembers: csv export failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"filename": filename, "content": content})
	case "json":
		filename, members, err := rc.Export.MembersJSON()
		if err != nil {
			logger.Error.Printf("ExportMembers: json export failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"filename": filename, "content": members})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format must be json or csv"})
	}
}
