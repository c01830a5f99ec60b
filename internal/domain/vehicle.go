package domain

import (
	"time"

	"github.com/google/uuid"
)

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

type VehicleType string

const (
	VehicleTypeHatch      VehicleType = "HATCH"
	VehicleTypeSedan      VehicleType = "SEDAN"
	VehicleTypeSUV        VehicleType = "SUV"
	VehicleTypePickup     VehicleType = "PICKUP"
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
)

// VehicleCondition is the inspection grade recorded when a rental is closed.
type VehicleCondition string

const (
	ConditionExcellent VehicleCondition = "EXCELLENT"
	ConditionGood      VehicleCondition = "GOOD"
	ConditionFair      VehicleCondition = "FAIR"
	ConditionPoor      VehicleCondition = "POOR"
)

func (c VehicleCondition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type Vehicle struct {
	ID             uuid.UUID     `json:"id"`
	Brand          string        `json:"brand"`
	Model          string        `json:"model"`
	Year           int           `json:"year"`
	LicensePlate   string        `json:"license_plate"`
	Color          string        `json:"color"`
	Type           VehicleType   `json:"type"`
	Status         VehicleStatus `json:"status"`
	DailyRateCents int64         `json:"daily_rate_cents"`
	Mileage        int           `json:"mileage"`
	CreatedOn      time.Time     `json:"created_on"`
	UpdatedOn      time.Time     `json:"updated_on"`
}
