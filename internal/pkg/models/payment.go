package models

import (
	"time"
)

// PaymentStatus represents the settlement state of a driver payment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Valid reports whether s is a known payment status
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid
}

// Payment represents a payout owed to a driver
type Payment struct {
	ID          string        `json:"id"`
	DriverID    string        `json:"driver_id"`
	Amount      float64       `json:"amount"`
	Date        string        `json:"date"`
	Status      PaymentStatus `json:"status"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// PaymentPatch carries the fields of a partial payment update
type PaymentPatch struct {
	DriverID    *string        `json:"driver_id,omitempty"`
	Amount      *float64       `json:"amount,omitempty"`
	Date        *string        `json:"date,omitempty"`
	Status      *PaymentStatus `json:"status,omitempty"`
	Description *string        `json:"description,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// Apply returns pm with the patched fields overwritten
func (p PaymentPatch) Apply(pm Payment) Payment {
	if p.DriverID != nil {
		pm.DriverID = *p.DriverID
	}
	if p.Amount != nil {
		pm.Amount = *p.Amount
	}
	if p.Date != nil {
		pm.Date = *p.Date
	}
	if p.Status != nil {
		pm.Status = *p.Status
	}
	if p.Description != nil {
		pm.Description = *p.Description
	}
	if p.CompletedAt != nil {
		v := *p.CompletedAt
		pm.CompletedAt = &v
	}
	return pm
}
