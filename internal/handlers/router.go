package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doctrack-io/doctrackgo/internal/buildinfo"
	"github.com/doctrack-io/doctrackgo/internal/config"
	"github.com/doctrack-io/doctrackgo/internal/database"
	"github.com/doctrack-io/doctrackgo/internal/departments"
	"github.com/doctrack-io/doctrackgo/internal/middleware"
	"github.com/doctrack-io/doctrackgo/internal/models"
	"github.com/doctrack-io/doctrackgo/internal/notify"
	"github.com/doctrack-io/doctrackgo/internal/workflow"
)

// Router wraps the mux router with the services the handlers need
type Router struct {
	*mux.Router
	db      *database.DB
	cfg     *config.Config
	flow    *workflow.Service
	catalog *departments.Catalog
	hub     *notify.Hub
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, flow *workflow.Service, catalog *departments.Catalog, hub *notify.Hub) *Router {
	r := &Router{
		Router:  mux.NewRouter(),
		db:      db,
		cfg:     cfg,
		flow:    flow,
		catalog: catalog,
		hub:     hub,
	}

	auth := middleware.Auth(cfg.JWTSecret)
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleSupervisor, models.RoleClerk)
	admin := middleware.RequireRole(models.RoleAdmin)

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	authRoutes := r.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/login", r.login).Methods("POST")
	authRoutes.HandleFunc("/register", r.register).Methods("POST")

	// Document routes
	docs := r.PathPrefix("/api/documents").Subrouter()
	docs.Use(auth)
	docs.Handle("", staff(http.HandlerFunc(r.createDocument))).Methods("POST")
	docs.HandleFunc("", r.listDocuments).Methods("GET")
	docs.HandleFunc("/{id}", r.getDocument).Methods("GET")
	docs.HandleFunc("/{id}/movements", r.listDocumentMovements).Methods("GET")
	docs.HandleFunc("/{id}/slip", r.downloadRoutingSlip).Methods("GET")
	docs.Handle("/{id}/move", staff(http.HandlerFunc(r.moveDocument))).Methods("POST")
	docs.Handle("/{id}/destination", admin(http.HandlerFunc(r.setFinalDestination))).Methods("PUT")
	docs.Handle("/{id}/finalize", admin(http.HandlerFunc(r.finalizeDocument))).Methods("POST")

	// Department catalog routes
	deps := r.PathPrefix("/api/departments").Subrouter()
	deps.Use(auth)
	deps.HandleFunc("", r.listDepartments).Methods("GET")
	deps.Handle("", admin(http.HandlerFunc(r.createDepartment))).Methods("POST")

	// Client notification routes
	notifs := r.PathPrefix("/api/notifications").Subrouter()
	notifs.Use(auth)
	notifs.HandleFunc("", r.listNotifications).Methods("GET")
	notifs.HandleFunc("/{id}/read", r.markNotificationRead).Methods("PUT")

	// Websocket push for client dashboards
	r.Handle("/ws/notifications", auth(http.HandlerFunc(r.serveNotificationSocket)))

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"started": buildinfo.StartTime,
		"commit":  buildinfo.CommitHash,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// respondWorkflowError maps the workflow error taxonomy to HTTP codes
func respondWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workflow.ErrDocumentNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, workflow.ErrInvalidDepartment),
		errors.Is(err, workflow.ErrMissingField):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, workflow.ErrNotAtDestination),
		errors.Is(err, workflow.ErrAlreadyFinalized):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "Database error")
	}
}
