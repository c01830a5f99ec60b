package jobs

import (
	"context"
	"time"

	"vehicle-rental-api/internal/logger"
	"vehicle-rental-api/internal/service"
	"vehicle-rental-api/internal/utils"
)

type rentalOverdueEvent struct {
	Event       string `json:"event"`
	RentalID    string `json:"rentalId"`
	VehicleID   string `json:"vehicleId"`
	CustomerID  string `json:"customerId"`
	DaysOverdue int    `json:"daysOverdue"`
}

// OverdueRentalSweep reports open rentals past their expected end date.
// It never touches rental status: overdue rentals stay open until they
// are completed, and late days are billed by the fee assessment then.
func (jr *JobRunner) OverdueRentalSweep() {
	jr.runWithRecovery("OverdueRentalSweep", func() {
		ctx := context.Background()

		overdue, err := jr.rentals.ListOverdue(ctx)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		now := time.Now().UTC()
		for _, rt := range overdue {
			days := utils.DaysBetween(rt.ExpectedEndDate, now)
			logger.Warn("Rental is overdue",
				"rental_id", rt.ID,
				"vehicle_id", rt.VehicleID,
				"customer_id", rt.CustomerID,
				"days_overdue", days,
			)
			service.PublishEvent(ctx, jr.events, service.TopicRentalEvents, rentalOverdueEvent{
				Event:       "rental.overdue",
				RentalID:    rt.ID.String(),
				VehicleID:   rt.VehicleID.String(),
				CustomerID:  rt.CustomerID.String(),
				DaysOverdue: days,
			})
		}

		logger.Info("Overdue sweep finished", "count", len(overdue))
	})
}
