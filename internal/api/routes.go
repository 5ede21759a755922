package api

import (
	"net/http"

	"github.com/artyomlancov333-art/apevaultteam/internal/handler"
	"github.com/artyomlancov333-art/apevaultteam/internal/middleware"
	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.Root).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Work slots
	authenticatedRoutes.HandleFunc("/work-slots", handler.GetWorkSlots).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/work-slots", handler.CreateWorkSlot).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/work-slots/{id}", handler.UpdateWorkSlot).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/work-slots/{id}", handler.DeleteWorkSlot).Methods(http.MethodDelete)

	// Day statuses
	authenticatedRoutes.HandleFunc("/day-statuses", handler.GetDayStatuses).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/day-statuses", handler.CreateDayStatus).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/day-statuses/{id}", handler.UpdateDayStatus).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/day-statuses/{id}", handler.DeleteDayStatus).Methods(http.MethodDelete)

	// Earnings
	authenticatedRoutes.HandleFunc("/earnings", handler.GetEarnings).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/earnings/stats", handler.GetEarningsStats).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/earnings", handler.CreateEarning).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/earnings/{id}", handler.UpdateEarning).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/earnings/{id}", handler.DeleteEarning).Methods(http.MethodDelete)

	// Ratings
	authenticatedRoutes.HandleFunc("/ratings", handler.GetRatings).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/ratings/{userId}", handler.UpsertRating).Methods(http.MethodPut)

	// Members
	authenticatedRoutes.HandleFunc("/members", handler.GetMembers).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/members/{id}", handler.GetMemberProfile).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/members/{id}/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
