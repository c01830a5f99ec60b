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

const vehicleColumns = `id, brand, model, year, license_plate, color, type, status, daily_rate_cents, mileage, created_on, updated_on`

type vehicleRepository struct {
	db DBTX
}

func NewVehicleRepository(db DBTX) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (id, brand, model, year, license_plate, color, type, status, daily_rate_cents, mileage, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now().UTC()
	v.CreatedOn, v.UpdatedOn = now, now
	_, err := r.db.ExecContext(ctx, query, v.ID, v.Brand, v.Model, v.Year, v.LicensePlate, v.Color, v.Type, v.Status, v.DailyRateCents, v.Mileage, v.CreatedOn, v.UpdatedOn)
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *vehicleRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *vehicleRepository) scanOne(row *sql.Row, id uuid.UUID) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := row.Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &v.LicensePlate, &v.Color, &v.Type, &v.Status, &v.DailyRateCents, &v.Mileage, &v.CreatedOn, &v.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("vehicle", id.String())
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_on DESC`
	return r.queryMany(ctx, query)
}

func (r *vehicleRepository) ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status = $1 ORDER BY created_on DESC`
	return r.queryMany(ctx, query, status)
}

func (r *vehicleRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &v.LicensePlate, &v.Color, &v.Type, &v.Status, &v.DailyRateCents, &v.Mileage, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET brand=$1, model=$2, year=$3, license_plate=$4, color=$5, type=$6, status=$7, daily_rate_cents=$8, mileage=$9, updated_on=$10 WHERE id=$11`
	v.UpdatedOn = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, v.Brand, v.Model, v.Year, v.LicensePlate, v.Color, v.Type, v.Status, v.DailyRateCents, v.Mileage, v.UpdatedOn, v.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound("vehicle", v.ID.String())
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound("vehicle", id.String())
	}
	return nil
}
