// Package models
// File: models/report.go
package models

// RevenuePoint is one month's revenue in the dashboard trend.
type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
}

// DashboardStats is the landing-page summary block.
type DashboardStats struct {
	TotalMembers   int            `json:"total_members"`
	ActiveMembers  int            `json:"active_members"`
	PresentToday   int            `json:"present_today"`
	AbsentToday    int            `json:"absent_today"`
	MonthlyRevenue int            `json:"monthly_revenue"`
	OverdueCount   int            `json:"overdue_count"`
	NewMembers     int            `json:"new_members_count"`
	AttendanceRate float64        `json:"attendance_rate"`
	PlanBreakdown  map[string]int `json:"membership_distribution"`
	RevenueTrend   []RevenuePoint `json:"revenue_trend"`
}

// MonthlyReport is the full month-in-review document.
type MonthlyReport struct {
	Month           string         `json:"month"`
	TotalMembers    int            `json:"total_members"`
	NewMembers      int            `json:"new_members"`
	MonthlyRevenue  int            `json:"monthly_revenue"`
	AverageRate     float64        `json:"average_attendance_rate"`
	TotalDays       int            `json:"total_attendance_days"`
	PlanBreakdown   map[string]int `json:"membership_plans"`
	StatusBreakdown map[string]int `json:"payment_status_breakdown"`
	DailyAttendance []DayRate      `json:"daily_attendance"`
}

// RevenueSummary splits one month's revenue between new joins and renewals.
type RevenueSummary struct {
	Month            string `json:"month"`
	TotalRevenue     int    `json:"total_revenue"`
	NewMemberRevenue int    `json:"new_members_revenue"`
	RenewalRevenue   int    `json:"renewal_revenue"`
	NewMemberCount   int    `json:"new_members_count"`
	TotalPaidMembers int    `json:"total_paid_members"`
}
