package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	CustomerID      string    `json:"customer_id" validate:"required,uuid"`
	VehicleID       string    `json:"vehicle_id" validate:"required,uuid"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	ExpectedEndDate time.Time `json:"expected_end_date" validate:"required"`
	InitialMileage  int       `json:"initial_mileage" validate:"gte=0"`
	Notes           string    `json:"notes"`
}

type renewRentalRequest struct {
	NewExpectedEndDate time.Time `json:"new_expected_end_date" validate:"required"`
}

type completeRentalRequest struct {
	ReturnDate   time.Time `json:"return_date" validate:"required"`
	FinalMileage int       `json:"final_mileage" validate:"gte=0"`
	Condition    string    `json:"condition" validate:"required,oneof=EXCELLENT GOOD FAIR POOR"`
	Notes        string    `json:"notes"`
	InspectedBy  string    `json:"inspected_by" validate:"required"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customerID, _ := uuid.Parse(req.CustomerID)
	vehicleID, _ := uuid.Parse(req.VehicleID)

	rental, err := h.rentals.CreateRental(r.Context(), customerID, vehicleID, req.StartDate, req.ExpectedEndDate, req.InitialMileage, req.Notes)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Renew(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req renewRentalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rental, err := h.rentals.RenewRental(r.Context(), rentalID, req.NewExpectedEndDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req completeRentalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ret, err := h.rentals.CompleteRental(r.Context(), rentalID, req.ReturnDate, req.FinalMileage, domain.VehicleCondition(req.Condition), req.Notes, req.InspectedBy)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ret)
}

func (h *RentalHandler) GetReturn(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r)
	if !ok {
		return
	}

	ret, err := h.rentals.GetRentalReturn(r.Context(), rentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ret)
}

func (h *RentalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r)
	if !ok {
		return
	}

	rental, err := h.rentals.GetRental(r.Context(), rentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListActiveRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

// pathID parses the {id} path variable, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
