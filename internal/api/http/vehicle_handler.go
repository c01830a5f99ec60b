package http

import (
	"net/http"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/service"
)

type VehicleHandler struct {
	vehicles service.VehicleService
}

func NewVehicleHandler(vehicles service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

type vehicleRequest struct {
	Brand          string `json:"brand" validate:"required"`
	Model          string `json:"model" validate:"required"`
	Year           int    `json:"year" validate:"required,gte=1950"`
	LicensePlate   string `json:"license_plate" validate:"required"`
	Color          string `json:"color"`
	Type           string `json:"type" validate:"required,oneof=HATCH SEDAN SUV PICKUP MOTORCYCLE"`
	DailyRateCents int64  `json:"daily_rate_cents" validate:"gt=0"`
	Mileage        int    `json:"mileage" validate:"gte=0"`
}

func (r *vehicleRequest) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		Brand:          r.Brand,
		Model:          r.Model,
		Year:           r.Year,
		LicensePlate:   r.LicensePlate,
		Color:          r.Color,
		Type:           domain.VehicleType(r.Type),
		DailyRateCents: r.DailyRateCents,
		Mileage:        r.Mileage,
	}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	vehicle := req.toDomain()
	if err := h.vehicles.AddVehicle(r.Context(), vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	vehicle, err := h.vehicles.GetVehicle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.ListVehicles(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.ListAvailableVehicles(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req vehicleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	vehicle := req.toDomain()
	vehicle.ID = id
	if err := h.vehicles.UpdateVehicle(r.Context(), vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.vehicles.DeleteVehicle(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
