package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vehicle-rental-api/internal/repository"
)

type txManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) repository.TxManager {
	return &txManager{db: db}
}

// WithinTx begins a transaction, builds a unit of work whose repositories
// all write through that transaction, and commits iff fn returns nil.
func (m *txManager) WithinTx(ctx context.Context, fn func(uow *repository.UnitOfWork) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	uow := &repository.UnitOfWork{
		Customers: NewCustomerRepository(tx),
		Vehicles:  NewVehicleRepository(tx),
		Rentals:   NewRentalRepository(tx),
		Returns:   NewRentalReturnRepository(tx),
	}

	if err := fn(uow); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
