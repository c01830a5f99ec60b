package domain

import (
	"time"

	"github.com/google/uuid"
)

// RentalReturn is the inspection record created exactly once when a rental
// is completed. It is never mutated afterwards.
type RentalReturn struct {
	ID                 uuid.UUID        `json:"id"`
	RentalID           uuid.UUID        `json:"rental_id"`
	ReturnDate         time.Time        `json:"return_date"`
	Condition          VehicleCondition `json:"condition"`
	LateFeeCents       int64            `json:"late_fee_cents"`
	DamageFeeCents     int64            `json:"damage_fee_cents"`
	InspectionApproved bool             `json:"inspection_approved"`
	InspectedBy        string           `json:"inspected_by"`
	Notes              string           `json:"notes,omitempty"`
	CreatedOn          time.Time        `json:"created_on"`
}
