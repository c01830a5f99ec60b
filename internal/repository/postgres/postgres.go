package postgres

import (
	"context"
	"database/sql"

	"vehicle-rental-api/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so the same repository
// types serve plain reads and transactional writes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.VehicleRepository
	repository.RentalRepository
	repository.RentalReturnRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		CustomerRepository:     NewCustomerRepository(db),
		VehicleRepository:      NewVehicleRepository(db),
		RentalRepository:       NewRentalRepository(db),
		RentalReturnRepository: NewRentalReturnRepository(db),
		UserRepository:         NewUserRepository(db),
	}
}
