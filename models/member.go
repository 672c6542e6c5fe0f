// Package models defines data structures used across the application.
// File: models/member.go
package models

import "encoding/json"

// ----------------------- payment status -----------------------

// PaymentStatus is the payment state of a member.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
	PaymentPending PaymentStatus = "pending"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentOverdue, PaymentPending:
		return true
	}
	return false
}

// ------------------------ member model -----------------------

// Member is one gym member record as persisted in members.json.
type Member struct {
	ID            string        `json:"id"` // M001, M002, ...
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Contact       string        `json:"contact"`
	Email         string        `json:"email"` // unique, case-insensitive
	Photo         string        `json:"photo"` // /uploads/photos/... or empty
	Plan          string        `json:"plan"`  // plan name, e.g. "Basic (3 Months)"
	JoinDate      string        `json:"joinDate"`
	DueDate       string        `json:"dueDate"`
	Fees          int           `json:"fees"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	LastPayment   string        `json:"lastPayment"`
	Attendance    []string      `json:"attendance"` // dates the member attended, YYYY-MM-DD
}

// HasAttended reports whether date is in the member's attendance set.
func (m *Member) HasAttended(date string) bool {
	for _, d := range m.Attendance {
		if d == date {
			return true
		}
	}
	return false
}

// ---------------------- request payloads ----------------------

// MemberCreate is the payload for creating a member. The remaining Member
// fields (id, dates, payment state) are assigned by the member service.
type MemberCreate struct {
	Name    string `json:"name" binding:"required"`
	Age     int    `json:"age" binding:"required,gte=18,lte=100"`
	Contact string `json:"contact" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Plan    string `json:"plan" binding:"required"`
	Fees    int    `json:"fees" binding:"gte=0"`
}

// MemberUpdate is a partial update: nil fields are left untouched.
type MemberUpdate struct {
	Name    *string `json:"name"`
	Age     *int    `json:"age" binding:"omitempty,gte=18,lte=100"`
	Contact *string `json:"contact"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Photo   *Photo  `json:"photo"`
	Plan    *string `json:"plan"`
	Fees    *int    `json:"fees" binding:"omitempty,gte=0"`
}

// Photo accepts either a bare URL string or a structured object with a url
// field; either way only the URL is kept on the member record.
type Photo struct {
	URL string `json:"url"`
}

// UnmarshalJSON lets a photo field arrive as "\"/uploads/photos/x.jpg\"" or
// as {"url": "/uploads/photos/x.jpg"}.
func (p *Photo) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.URL = s
		return nil
	}
	type alias Photo
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	p.URL = a.URL
	return nil
}
