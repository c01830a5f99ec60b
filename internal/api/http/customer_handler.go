package http

import (
	"net/http"
	"time"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type customerRequest struct {
	Name           string    `json:"name" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	Phone          string    `json:"phone"`
	DriversLicense string    `json:"drivers_license" validate:"required"`
	Address        string    `json:"address"`
	DateOfBirth    time.Time `json:"date_of_birth" validate:"required"`
}

func (r *customerRequest) toDomain() *domain.Customer {
	return &domain.Customer{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		DriversLicense: r.DriversLicense,
		Address:        r.Address,
		DateOfBirth:    r.DateOfBirth,
	}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer := req.toDomain()
	if err := h.customers.AddCustomer(r.Context(), customer); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req customerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	current, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	customer := req.toDomain()
	customer.ID = id
	customer.IsActive = current.IsActive
	if err := h.customers.UpdateCustomer(r.Context(), customer); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
