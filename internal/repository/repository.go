package repository

import (
	"context"

	"github.com/google/uuid"

	"vehicle-rental-api/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	// GetByIDForUpdate locks the vehicle row for the duration of the
	// surrounding transaction. Only meaningful on a tx-scoped repository.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	// GetByIDForUpdate locks the rental row for the duration of the
	// surrounding transaction. Only meaningful on a tx-scoped repository.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListOpen(ctx context.Context) ([]domain.Rental, error)
	ListOverdue(ctx context.Context) ([]domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
}

type RentalReturnRepository interface {
	Create(ctx context.Context, ret *domain.RentalReturn) error
	GetByRentalID(ctx context.Context, rentalID uuid.UUID) (*domain.RentalReturn, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UnitOfWork is an explicitly constructed bundle of repositories bound to
// one transaction. Everything written through it commits atomically.
type UnitOfWork struct {
	Customers CustomerRepository
	Vehicles  VehicleRepository
	Rentals   RentalRepository
	Returns   RentalReturnRepository
}

// TxManager runs a function inside a database transaction. The unit of work
// handed to fn is only valid until fn returns; the transaction commits when
// fn returns nil and rolls back otherwise.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(uow *UnitOfWork) error) error
}
