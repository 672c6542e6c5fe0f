// Package services: services/statistics_service.go
package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gym-admin/models"
)

// revenueTrendMonths is how far back the dashboard revenue trend reaches.
const revenueTrendMonths = 6

// StatisticsServiceInterface is what the report controller depends on.
type StatisticsServiceInterface interface {
	Dashboard() (models.DashboardStats, error)
	MonthlyReport(year, month int) (models.MonthlyReport, error)
	AttendanceReport(year, month int) (models.AttendanceReport, error)
}

// StatisticsService derives dashboard and report numbers from storage
// snapshots. It never mutates a collection.
type StatisticsService struct {
	storage FileStorageInterface
}

// NewStatisticsService creates a StatisticsService on top of the given
// storage.
func NewStatisticsService(storage FileStorageInterface) *StatisticsService {
	return &StatisticsService{storage: storage}
}

// Dashboard computes the landing-page summary block.
func (s *StatisticsService) Dashboard() (models.DashboardStats, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return models.DashboardStats{}, err
	}
	log, err := s.storage.ReadAttendance()
	if err != nil {
		return models.DashboardStats{}, err
	}

	now := nowFunc()
	todayStr := now.Format(dateFormat)
	monthStr := now.Format("2006-01")

	stats := models.DashboardStats{
		TotalMembers:  len(members),
		PlanBreakdown: planDistribution(members),
		RevenueTrend:  revenueTrend(members, now),
	}

	for _, present := range log[todayStr] {
		if present {
			stats.PresentToday++
		}
	}
	stats.AbsentToday = stats.TotalMembers - stats.PresentToday

	for _, m := range members {
		if m.PaymentStatus == models.PaymentPaid {
			stats.ActiveMembers++
		}
		if m.PaymentStatus == models.PaymentOverdue {
			stats.OverdueCount++
		}
		if strings.HasPrefix(m.LastPayment, monthStr) {
			stats.MonthlyRevenue += m.Fees
		}
		if strings.HasPrefix(m.JoinDate, monthStr) {
			stats.NewMembers++
		}
	}

	if stats.TotalMembers > 0 {
		stats.AttendanceRate = round1(float64(stats.PresentToday) / float64(stats.TotalMembers) * 100)
	}
	return stats, nil
}

// MonthlyReport builds the full month-in-review document for year/month.
func (s *StatisticsService) MonthlyReport(year, month int) (models.MonthlyReport, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return models.MonthlyReport{}, err
	}
	log, err := s.storage.ReadAttendance()
	if err != nil {
		return models.MonthlyReport{}, err
	}

	monthStr := fmt.Sprintf("%d-%02d", year, month)
	report := models.MonthlyReport{
		Month:           monthStr,
		TotalMembers:    len(members),
		PlanBreakdown:   planDistribution(members),
		StatusBreakdown: statusBreakdown(members),
	}

	for _, m := range members {
		if strings.HasPrefix(m.JoinDate, monthStr) {
			report.NewMembers++
		}
		if strings.HasPrefix(m.LastPayment, monthStr) {
			report.MonthlyRevenue += m.Fees
		}
	}

	attendance := monthlyAttendance(year, month, log, members)
	report.AverageRate = attendance.AverageRate
	report.TotalDays = attendance.TotalDays
	report.DailyAttendance = attendance.DailyData
	return report, nil
}

// AttendanceReport covers just the attendance side of a month.
func (s *StatisticsService) AttendanceReport(year, month int) (models.AttendanceReport, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return models.AttendanceReport{}, err
	}
	log, err := s.storage.ReadAttendance()
	if err != nil {
		return models.AttendanceReport{}, err
	}
	return monthlyAttendance(year, month, log, members), nil
}

// planDistribution counts members per plan name.
func planDistribution(members []models.Member) map[string]int {
	plans := map[string]int{}
	for _, m := range members {
		plans[m.Plan]++
	}
	return plans
}

// statusBreakdown counts members per payment status.
func statusBreakdown(members []models.Member) map[string]int {
	statuses := map[string]int{}
	for _, m := range members {
		statuses[string(m.PaymentStatus)]++
	}
	return statuses
}

// revenueTrend sums fees by lastPayment month for the trailing trend window,
// oldest month first. Month boundaries are approximated by stepping 30 days
// back from now, not by calendar months.
func revenueTrend(members []models.Member, now time.Time) []models.RevenuePoint {
	trend := make([]models.RevenuePoint, 0, revenueTrendMonths)
	for i := revenueTrendMonths - 1; i >= 0; i-- {
		monthStr := now.AddDate(0, 0, -30*i).Format("2006-01")
		point := models.RevenuePoint{Month: monthStr}
		for _, m := range members {
			if strings.HasPrefix(m.LastPayment, monthStr) {
				point.Revenue += m.Fees
			}
		}
		trend = append(trend, point)
	}
	return trend
}

// daysInMonth returns the number of calendar days in year/month.
func daysInMonth(year, month int) int {
	// day zero of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthlyAttendance walks every calendar day of the month, counting the
// present entries in each day's record. Days without a record count every
// member absent. The average rate is total present over total member-days.
func monthlyAttendance(year, month int, log models.AttendanceLog, members []models.Member) models.AttendanceReport {
	days := daysInMonth(year, month)
	report := models.AttendanceReport{
		TotalDays: days,
		DailyData: make([]models.DayRate, 0, days),
	}

	totalPresent := 0
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%d-%02d-%02d", year, month, day)
		present := 0
		for _, p := range log[date] {
			if p {
				present++
			}
		}
		totalPresent += present

		rate := 0.0
		if len(members) > 0 {
			rate = round1(float64(present) / float64(len(members)) * 100)
		}
		report.DailyData = append(report.DailyData, models.DayRate{
			Date:    date,
			Present: present,
			Absent:  len(members) - present,
			Rate:    rate,
		})
	}

	totalPossible := len(members) * days
	if totalPossible > 0 {
		report.AverageRate = round1(float64(totalPresent) / float64(totalPossible) * 100)
	}
	return report
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
