package domain

import (
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusRenewed   RentalStatus = "RENEWED"
	RentalStatusCompleted RentalStatus = "COMPLETED"
)

// IsOpen reports whether the rental has not been completed yet.
func (s RentalStatus) IsOpen() bool {
	return s == RentalStatusActive || s == RentalStatusRenewed
}

type Rental struct {
	ID              uuid.UUID    `json:"id"`
	CustomerID      uuid.UUID    `json:"customer_id"`
	VehicleID       uuid.UUID    `json:"vehicle_id"`
	StartDate       time.Time    `json:"start_date"`
	ExpectedEndDate time.Time    `json:"expected_end_date"`
	ActualEndDate   *time.Time   `json:"actual_end_date,omitempty"`
	// Rate snapshot captured from the vehicle at creation time. Renewals
	// re-price at the vehicle's current rate, not this snapshot.
	DailyRateCents   int64        `json:"daily_rate_cents"`
	TotalAmountCents int64        `json:"total_amount_cents"`
	Status           RentalStatus `json:"status"`
	InitialMileage   int          `json:"initial_mileage"`
	FinalMileage     *int         `json:"final_mileage,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	CreatedOn        time.Time    `json:"created_on"`
	UpdatedOn        time.Time    `json:"updated_on"`
}
