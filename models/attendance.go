// Package models
// File: models/attendance.go
package models

// AttendanceLog is the whole attendance.json document: date (YYYY-MM-DD) to
// member id to presence. A member missing from a day's map counts as absent.
type AttendanceLog map[string]map[string]bool

// MemberInfo is the short member view used in attendance summaries.
type MemberInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// DailyAttendance is one day's attendance summary with present/absent lists.
type DailyAttendance struct {
	Date           string       `json:"date"`
	PresentMembers []MemberInfo `json:"present_members"`
	AbsentMembers  []MemberInfo `json:"absent_members"`
	TotalMembers   int          `json:"total_members"`
	PresentCount   int          `json:"present_count"`
	AbsentCount    int          `json:"absent_count"`
}

// DayRate is one day's line in the monthly attendance report.
type DayRate struct {
	Date    string  `json:"date"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Rate    float64 `json:"rate"`
}

// AttendanceReport covers a whole calendar month of attendance.
type AttendanceReport struct {
	AverageRate float64   `json:"average_rate"`
	TotalDays   int       `json:"total_days"`
	DailyData   []DayRate `json:"daily_data"`
}
