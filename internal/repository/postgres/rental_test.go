package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/repository/postgres"
)

func rentalRows(rt *domain.Rental) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "vehicle_id", "start_date", "expected_end_date", "actual_end_date", "daily_rate_cents", "total_amount_cents", "status", "initial_mileage", "final_mileage", "notes", "created_on", "updated_on"}).
		AddRow(rt.ID, rt.CustomerID, rt.VehicleID, rt.StartDate, rt.ExpectedEndDate, rt.ActualEndDate, rt.DailyRateCents, rt.TotalAmountCents, rt.Status, rt.InitialMileage, rt.FinalMileage, rt.Notes, rt.CreatedOn, rt.UpdatedOn)
}

func sampleRental() *domain.Rental {
	now := time.Now().UTC()
	return &domain.Rental{
		ID:               uuid.New(),
		CustomerID:       uuid.New(),
		VehicleID:        uuid.New(),
		StartDate:        now,
		ExpectedEndDate:  now.AddDate(0, 0, 5),
		DailyRateCents:   10000,
		TotalAmountCents: 50000,
		Status:           domain.RentalStatusActive,
		InitialMileage:   42000,
		CreatedOn:        now,
		UpdatedOn:        now,
	}
}

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rt := sampleRental()

		mock.ExpectExec("INSERT INTO rentals").
			WithArgs(rt.ID, rt.CustomerID, rt.VehicleID, rt.StartDate, rt.ExpectedEndDate, rt.DailyRateCents, rt.TotalAmountCents, rt.Status, rt.InitialMileage, rt.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, rt)
		assert.NoError(t, err)
		assert.False(t, rt.CreatedOn.IsZero())
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rt := sampleRental()

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(rt.ID).
			WillReturnRows(rentalRows(rt))

		got, err := repo.GetByID(ctx, rt.ID)
		assert.NoError(t, err)
		assert.Equal(t, rt.ID, got.ID)
		assert.Equal(t, domain.RentalStatusActive, got.Status)
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, id)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestRentalRepository_GetByIDForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	rt := sampleRental()

	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1 FOR UPDATE").
		WithArgs(rt.ID).
		WillReturnRows(rentalRows(rt))

	got, err := repo.GetByIDForUpdate(ctx, rt.ID)
	assert.NoError(t, err)
	assert.Equal(t, rt.ID, got.ID)
}

func TestRentalRepository_ListOpen(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	rt := sampleRental()

	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE status IN").
		WithArgs(domain.RentalStatusActive, domain.RentalStatusRenewed).
		WillReturnRows(rentalRows(rt))

	rentals, err := repo.ListOpen(ctx)
	assert.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestRentalRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	rt := sampleRental()

	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE status IN (.+) AND expected_end_date <").
		WithArgs(domain.RentalStatusActive, domain.RentalStatusRenewed, sqlmock.AnyArg()).
		WillReturnRows(rentalRows(rt))

	rentals, err := repo.ListOverdue(ctx)
	assert.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestRentalRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rt := sampleRental()
		rt.Status = domain.RentalStatusCompleted

		mock.ExpectExec("UPDATE rentals SET").
			WithArgs(rt.ExpectedEndDate, rt.ActualEndDate, rt.TotalAmountCents, rt.Status, rt.FinalMileage, rt.Notes, sqlmock.AnyArg(), rt.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, rt)
		assert.NoError(t, err)
	})

	t.Run("Missing row maps to not found", func(t *testing.T) {
		rt := sampleRental()

		mock.ExpectExec("UPDATE rentals SET").
			WithArgs(rt.ExpectedEndDate, rt.ActualEndDate, rt.TotalAmountCents, rt.Status, rt.FinalMileage, rt.Notes, sqlmock.AnyArg(), rt.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, rt)
		assert.True(t, domain.IsNotFound(err))
	})
}
