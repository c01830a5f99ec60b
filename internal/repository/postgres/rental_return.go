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

type rentalReturnRepository struct {
	db DBTX
}

func NewRentalReturnRepository(db DBTX) repository.RentalReturnRepository {
	return &rentalReturnRepository{db: db}
}

func (r *rentalReturnRepository) Create(ctx context.Context, ret *domain.RentalReturn) error {
	query := `INSERT INTO rental_returns (id, rental_id, return_date, condition, late_fee_cents, damage_fee_cents, inspection_approved, inspected_by, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	ret.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, ret.ID, ret.RentalID, ret.ReturnDate, ret.Condition, ret.LateFeeCents, ret.DamageFeeCents, ret.InspectionApproved, ret.InspectedBy, ret.Notes, ret.CreatedOn)
	return err
}

func (r *rentalReturnRepository) GetByRentalID(ctx context.Context, rentalID uuid.UUID) (*domain.RentalReturn, error) {
	query := `SELECT id, rental_id, return_date, condition, late_fee_cents, damage_fee_cents, inspection_approved, inspected_by, notes, created_on
	          FROM rental_returns WHERE rental_id = $1`
	ret := &domain.RentalReturn{}
	err := r.db.QueryRowContext(ctx, query, rentalID).Scan(&ret.ID, &ret.RentalID, &ret.ReturnDate, &ret.Condition, &ret.LateFeeCents, &ret.DamageFeeCents, &ret.InspectionApproved, &ret.InspectedBy, &ret.Notes, &ret.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("rental return", rentalID.String())
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}
