package domain

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DriversLicense string    `json:"drivers_license"`
	Address        string    `json:"address"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	IsActive       bool      `json:"is_active"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}
