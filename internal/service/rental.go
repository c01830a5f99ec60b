package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/repository"
	"vehicle-rental-api/internal/utils"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	returnRepo repository.RentalReturnRepository
	tx         repository.TxManager
	events     EventPublisher
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	returnRepo repository.RentalReturnRepository,
	tx repository.TxManager,
	events EventPublisher,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		returnRepo: returnRepo,
		tx:         tx,
		events:     events,
	}
}

// CreateRental opens a rental against an available vehicle. The vehicle row
// is locked inside the transaction so two concurrent creations against the
// same vehicle cannot both observe AVAILABLE; the loser gets a Conflict.
func (s *rentalService) CreateRental(ctx context.Context, customerID, vehicleID uuid.UUID, startDate, expectedEndDate time.Time, initialMileage int, notes string) (*domain.Rental, error) {
	var rental *domain.Rental

	err := s.tx.WithinTx(ctx, func(uow *repository.UnitOfWork) error {
		customer, err := uow.Customers.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if !customer.IsActive {
			return domain.Conflict("customer %s is inactive and cannot rent", customer.ID)
		}

		vehicle, err := uow.Vehicles.GetByIDForUpdate(ctx, vehicleID)
		if err != nil {
			return err
		}
		if vehicle.Status != domain.VehicleStatusAvailable {
			return domain.Conflict("vehicle %s is not available for rental", vehicle.ID)
		}

		days := utils.DaysBetween(startDate, expectedEndDate)
		if days <= 0 {
			return domain.Conflict("expected end date must be after start date")
		}

		rental = &domain.Rental{
			ID:               uuid.New(),
			CustomerID:       customerID,
			VehicleID:        vehicleID,
			StartDate:        startDate,
			ExpectedEndDate:  expectedEndDate,
			DailyRateCents:   vehicle.DailyRateCents,
			TotalAmountCents: vehicle.DailyRateCents * int64(days),
			Status:           domain.RentalStatusActive,
			InitialMileage:   initialMileage,
			Notes:            notes,
		}

		vehicle.Status = domain.VehicleStatusRented
		vehicle.Mileage = initialMileage

		if err := uow.Rentals.Create(ctx, rental); err != nil {
			return err
		}
		return uow.Vehicles.Update(ctx, vehicle)
	})
	if err != nil {
		return nil, err
	}

	PublishEvent(ctx, s.events, TopicRentalEvents, rentalCreatedEvent{
		Event:      "rental.created",
		RentalID:   rental.ID.String(),
		VehicleID:  rental.VehicleID.String(),
		CustomerID: rental.CustomerID.String(),
	})

	return rental, nil
}

// RenewRental extends an open rental. The additional cost is priced at the
// vehicle's current daily rate, not the rate frozen on the rental.
func (s *rentalService) RenewRental(ctx context.Context, rentalID uuid.UUID, newExpectedEndDate time.Time) (*domain.Rental, error) {
	var (
		rental *domain.Rental
		event  rentalRenewedEvent
	)

	err := s.tx.WithinTx(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		rental, err = uow.Rentals.GetByIDForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusActive {
			return domain.Conflict("only active rentals can be renewed")
		}

		vehicle, err := uow.Vehicles.GetByID(ctx, rental.VehicleID)
		if err != nil {
			return err
		}

		additionalDays := utils.DaysBetween(rental.ExpectedEndDate, newExpectedEndDate)
		if additionalDays <= 0 {
			return domain.Conflict("new expected end date must be after current expected end date")
		}
		additionalCost := int64(additionalDays) * vehicle.DailyRateCents

		oldExpectedEndDate := rental.ExpectedEndDate
		rental.ExpectedEndDate = newExpectedEndDate
		rental.TotalAmountCents += additionalCost

		if err := uow.Rentals.Update(ctx, rental); err != nil {
			return err
		}

		event = rentalRenewedEvent{
			RentalID:           rental.ID.String(),
			CustomerID:         rental.CustomerID.String(),
			VehicleID:          rental.VehicleID.String(),
			OldExpectedEndDate: oldExpectedEndDate,
			NewExpectedEndDate: rental.ExpectedEndDate,
			AdditionalDays:     additionalDays,
			AdditionalCost:     additionalCost,
			NewTotalAmount:     rental.TotalAmountCents,
			RenewedAt:          time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	PublishEvent(ctx, s.events, TopicRentalRenewed, event)

	return rental, nil
}

// CompleteRental closes a rental with an inspection. Fees are assessed by
// the calculator; the rental, its vehicle and the new return record all
// commit in one transaction. Completing twice is rejected, not re-applied.
func (s *rentalService) CompleteRental(ctx context.Context, rentalID uuid.UUID, returnDate time.Time, finalMileage int, condition domain.VehicleCondition, notes, inspectedBy string) (*domain.RentalReturn, error) {
	if !condition.Valid() {
		return nil, domain.Conflict("unknown vehicle condition %q", condition)
	}

	var (
		rental *domain.Rental
		ret    *domain.RentalReturn
	)

	err := s.tx.WithinTx(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		rental, err = uow.Rentals.GetByIDForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		if !rental.Status.IsOpen() {
			return domain.Conflict("rental %s has already been completed", rental.ID)
		}

		vehicle, err := uow.Vehicles.GetByIDForUpdate(ctx, rental.VehicleID)
		if err != nil {
			return err
		}

		fees := CalculateReturnFees(rental.ExpectedEndDate, returnDate, rental.DailyRateCents, condition)

		ret = &domain.RentalReturn{
			ID:                 uuid.New(),
			RentalID:           rental.ID,
			ReturnDate:         returnDate,
			Condition:          condition,
			LateFeeCents:       fees.LateFeeCents,
			DamageFeeCents:     fees.DamageFeeCents,
			InspectionApproved: fees.InspectionApproved,
			InspectedBy:        inspectedBy,
			Notes:              notes,
		}

		rental.ActualEndDate = &returnDate
		rental.FinalMileage = &finalMileage
		rental.Status = domain.RentalStatusCompleted
		rental.TotalAmountCents += fees.LateFeeCents + fees.DamageFeeCents

		// A vehicle returned in poor condition goes straight to maintenance.
		if condition == domain.ConditionPoor {
			vehicle.Status = domain.VehicleStatusMaintenance
		} else {
			vehicle.Status = domain.VehicleStatusAvailable
		}
		vehicle.Mileage = finalMileage

		if err := uow.Returns.Create(ctx, ret); err != nil {
			return err
		}
		if err := uow.Rentals.Update(ctx, rental); err != nil {
			return err
		}
		return uow.Vehicles.Update(ctx, vehicle)
	})
	if err != nil {
		return nil, err
	}

	PublishEvent(ctx, s.events, TopicRentalEvents, rentalCompletedEvent{
		Event:       "rental.completed",
		RentalID:    rental.ID.String(),
		TotalAmount: rental.TotalAmountCents,
		Condition:   string(condition),
	})

	return ret, nil
}

func (s *rentalService) GetRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) GetRentalReturn(ctx context.Context, rentalID uuid.UUID) (*domain.RentalReturn, error) {
	return s.returnRepo.GetByRentalID(ctx, rentalID)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.ListOpen(ctx)
}
