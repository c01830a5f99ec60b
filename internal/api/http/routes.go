package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/security"
)

// NewRouter wires every HTTP route. Everything under /api except the login
// endpoint requires a valid token; rental lifecycle and management writes
// additionally require the admin or staff role.
func NewRouter(
	tokens security.TokenManager,
	authHandler *AuthHandler,
	vehicleHandler *VehicleHandler,
	customerHandler *CustomerHandler,
	rentalHandler *RentalHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	staff := []string{string(domain.RoleAdmin), string(domain.RoleStaff)}

	// Vehicles
	api.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/available", vehicleHandler.ListAvailable).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", requireRoles(vehicleHandler.Create, staff...)).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}", vehicleHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", requireRoles(vehicleHandler.Update, staff...)).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id}", requireRoles(vehicleHandler.Delete, string(domain.RoleAdmin))).Methods(http.MethodDelete)

	// Customers
	api.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/customers", requireRoles(customerHandler.Create, staff...)).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}", customerHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", requireRoles(customerHandler.Update, staff...)).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", requireRoles(customerHandler.Delete, string(domain.RoleAdmin))).Methods(http.MethodDelete)

	// Rentals
	api.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/active", rentalHandler.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/rentals", requireRoles(rentalHandler.Create, staff...)).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", rentalHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/return", rentalHandler.GetReturn).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/renew", requireRoles(rentalHandler.Renew, staff...)).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/complete", requireRoles(rentalHandler.Complete, staff...)).Methods(http.MethodPost)

	return r
}
