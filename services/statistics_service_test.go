// file: services/statistics_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym-admin/models"
)

func statsFixture() *MockFileStorage {
	storage := NewMockFileStorage()
	storage.Members = []models.Member{
		{ID: "M001", Email: "a@x.com", Plan: "Basic (3 Months)", Fees: 4500,
			PaymentStatus: models.PaymentPaid, JoinDate: "2024-03-02", LastPayment: "2024-03-02"},
		{ID: "M002", Email: "b@x.com", Plan: "Basic (3 Months)", Fees: 4500,
			PaymentStatus: models.PaymentOverdue, JoinDate: "2023-12-10", LastPayment: "2023-12-10"},
		{ID: "M003", Email: "c@x.com", Plan: "Premium (12 Months)", Fees: 15000,
			PaymentStatus: models.PaymentPaid, JoinDate: "2024-01-15", LastPayment: "2024-03-15"},
		{ID: "M004", Email: "d@x.com", Plan: "Standard (6 Months)", Fees: 9000,
			PaymentStatus: models.PaymentPending, JoinDate: "2024-02-01", LastPayment: "2024-02-01"},
	}
	storage.Attendance = models.AttendanceLog{
		"2024-03-10": {"M001": true, "M003": true, "M004": false},
		"2024-03-11": {"M001": true},
	}
	return storage
}

func TestDashboard(t *testing.T) {
	setToday(t, "2024-03-10")
	svc := NewStatisticsService(statsFixture())

	stats, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalMembers)
	assert.Equal(t, 2, stats.ActiveMembers, "active means paid")
	assert.Equal(t, 2, stats.PresentToday, "explicit false entries are absent")
	assert.Equal(t, 2, stats.AbsentToday)
	assert.Equal(t, 19500, stats.MonthlyRevenue, "sum of fees with lastPayment in 2024-03")
	assert.Equal(t, 1, stats.OverdueCount, "dashboard counts only flagged overdue")
	assert.Equal(t, 1, stats.NewMembers)
	assert.Equal(t, 50.0, stats.AttendanceRate)

	assert.Equal(t, map[string]int{
		"Basic (3 Months)":    2,
		"Standard (6 Months)": 1,
		"Premium (12 Months)": 1,
	}, stats.PlanBreakdown)

	require.Len(t, stats.RevenueTrend, revenueTrendMonths)
	last := stats.RevenueTrend[len(stats.RevenueTrend)-1]
	assert.Equal(t, "2024-03", last.Month)
	assert.Equal(t, 19500, last.Revenue)
}

func TestDashboard_EmptyGym(t *testing.T) {
	setToday(t, "2024-03-10")
	svc := NewStatisticsService(NewMockFileStorage())

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalMembers)
	assert.Equal(t, 0.0, stats.AttendanceRate, "no division by zero on an empty roster")
}

func TestMonthlyReport(t *testing.T) {
	svc := NewStatisticsService(statsFixture())

	report, err := svc.MonthlyReport(2024, 3)
	require.NoError(t, err)

	assert.Equal(t, "2024-03", report.Month)
	assert.Equal(t, 4, report.TotalMembers)
	assert.Equal(t, 1, report.NewMembers)
	assert.Equal(t, 19500, report.MonthlyRevenue)
	assert.Equal(t, 31, report.TotalDays)
	require.Len(t, report.DailyAttendance, 31)

	assert.Equal(t, map[string]int{
		"paid":    2,
		"overdue": 1,
		"pending": 1,
	}, report.StatusBreakdown)

	// day 10 had two present out of four members
	day10 := report.DailyAttendance[9]
	assert.Equal(t, "2024-03-10", day10.Date)
	assert.Equal(t, 2, day10.Present)
	assert.Equal(t, 2, day10.Absent)
	assert.Equal(t, 50.0, day10.Rate)

	// 3 present member-days over 4 members x 31 days
	assert.Equal(t, 2.4, report.AverageRate)
}

func TestAttendanceReport_DaysInMonth(t *testing.T) {
	svc := NewStatisticsService(statsFixture())

	report, err := svc.AttendanceReport(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, 29, report.TotalDays, "2024 is a leap year")
	require.Len(t, report.DailyData, 29)
	assert.Equal(t, "2024-02-01", report.DailyData[0].Date)
	assert.Equal(t, "2024-02-29", report.DailyData[28].Date)

	report, err = svc.AttendanceReport(2023, 12)
	require.NoError(t, err)
	assert.Equal(t, 31, report.TotalDays)
}
