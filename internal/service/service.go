package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vehicle-rental-api/internal/domain"
)

type RentalService interface {
	CreateRental(ctx context.Context, customerID, vehicleID uuid.UUID, startDate, expectedEndDate time.Time, initialMileage int, notes string) (*domain.Rental, error)
	RenewRental(ctx context.Context, rentalID uuid.UUID, newExpectedEndDate time.Time) (*domain.Rental, error)
	CompleteRental(ctx context.Context, rentalID uuid.UUID, returnDate time.Time, finalMileage int, condition domain.VehicleCondition, notes, inspectedBy string) (*domain.RentalReturn, error)
	GetRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error)
	GetRentalReturn(ctx context.Context, rentalID uuid.UUID) (*domain.RentalReturn, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	ListActiveRentals(ctx context.Context) ([]domain.Rental, error)
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
}

type CustomerService interface {
	AddCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type LoginResult struct {
	Token    string          `json:"token"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}

// EventPublisher is the outbound port for domain events. Delivery is
// best-effort: callers log failures and never surface them.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
