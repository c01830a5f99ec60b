package service

import (
	"time"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/utils"
)

// Flat damage fees per inspection grade, in cents.
const (
	damageFeeFairCents int64 = 50000
	damageFeePoorCents int64 = 200000
)

type ReturnFees struct {
	LateFeeCents       int64
	DamageFeeCents     int64
	InspectionApproved bool
}

// CalculateReturnFees prices the close-out of a rental. Late returns pay
// 1.5x the daily rate per whole late day; damage fees are flat amounts
// keyed on the inspection grade. Pure function, integer math only.
func CalculateReturnFees(expectedEndDate, returnDate time.Time, dailyRateCents int64, condition domain.VehicleCondition) ReturnFees {
	var lateFee int64
	if lateDays := utils.LateDays(expectedEndDate, returnDate); lateDays > 0 {
		lateFee = int64(lateDays) * dailyRateCents * 3 / 2
	}

	var damageFee int64
	switch condition {
	case domain.ConditionFair:
		damageFee = damageFeeFairCents
	case domain.ConditionPoor:
		damageFee = damageFeePoorCents
	}

	return ReturnFees{
		LateFeeCents:       lateFee,
		DamageFeeCents:     damageFee,
		InspectionApproved: condition == domain.ConditionExcellent || condition == domain.ConditionGood,
	}
}
