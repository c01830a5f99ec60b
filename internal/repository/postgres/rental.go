package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/repository"
)

const rentalColumns = `id, customer_id, vehicle_id, start_date, expected_end_date, actual_end_date, daily_rate_cents, total_amount_cents, status, initial_mileage, final_mileage, notes, created_on, updated_on`

type rentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (id, customer_id, vehicle_id, start_date, expected_end_date, daily_rate_cents, total_amount_cents, status, initial_mileage, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now().UTC()
	rt.CreatedOn, rt.UpdatedOn = now, now
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.CustomerID, rt.VehicleID, rt.StartDate, rt.ExpectedEndDate, rt.DailyRateCents, rt.TotalAmountCents, rt.Status, rt.InitialMileage, rt.Notes, rt.CreatedOn, rt.UpdatedOn)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *rentalRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *rentalRepository) scanOne(row *sql.Row, id uuid.UUID) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.CustomerID, &rt.VehicleID, &rt.StartDate, &rt.ExpectedEndDate, &rt.ActualEndDate, &rt.DailyRateCents, &rt.TotalAmountCents, &rt.Status, &rt.InitialMileage, &rt.FinalMileage, &rt.Notes, &rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("rental", id.String())
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY created_on DESC`
	return r.queryMany(ctx, query)
}

func (r *rentalRepository) ListOpen(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status IN ($1, $2) ORDER BY created_on DESC`
	return r.queryMany(ctx, query, domain.RentalStatusActive, domain.RentalStatusRenewed)
}

func (r *rentalRepository) ListOverdue(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status IN ($1, $2) AND expected_end_date < $3 ORDER BY expected_end_date`
	return r.queryMany(ctx, query, domain.RentalStatusActive, domain.RentalStatusRenewed, time.Now().UTC())
}

func (r *rentalRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.VehicleID, &rt.StartDate, &rt.ExpectedEndDate, &rt.ActualEndDate, &rt.DailyRateCents, &rt.TotalAmountCents, &rt.Status, &rt.InitialMileage, &rt.FinalMileage, &rt.Notes, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET expected_end_date=$1, actual_end_date=$2, total_amount_cents=$3, status=$4, final_mileage=$5, notes=$6, updated_on=$7 WHERE id=$8`
	rt.UpdatedOn = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, rt.ExpectedEndDate, rt.ActualEndDate, rt.TotalAmountCents, rt.Status, rt.FinalMileage, rt.Notes, rt.UpdatedOn, rt.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound("rental", rt.ID.String())
	}
	return nil
}
