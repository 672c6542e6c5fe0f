// Package models
// File: models/plan.go
package models

// Plan is one membership plan in the plans.json catalog.
type Plan struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration int    `json:"duration"` // months
}

// DefaultPlans seeds plans.json on first start.
var DefaultPlans = []Plan{
	{Name: "Basic (3 Months)", Price: 4500, Duration: 3},
	{Name: "Standard (6 Months)", Price: 9000, Duration: 6},
	{Name: "Premium (12 Months)", Price: 15000, Duration: 12},
}
