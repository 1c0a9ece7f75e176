package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/doctrack-io/doctrackgo/internal/models"
)

// listDepartments returns the active department catalog
func (r *Router) listDepartments(w http.ResponseWriter, req *http.Request) {
	deps, err := r.catalog.List(req.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch departments")
		return
	}
	respondJSON(w, http.StatusOK, deps)
}

// createDepartment adds a department to the catalog
func (r *Router) createDepartment(w http.ResponseWriter, req *http.Request) {
	var dep models.Department
	if err := json.NewDecoder(req.Body).Decode(&dep); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	dep.Name = strings.TrimSpace(dep.Name)
	if dep.Name == "" {
		respondError(w, http.StatusBadRequest, "Department name is required")
		return
	}
	dep.Active = true

	if err := r.db.Create(&dep).Error; err != nil {
		respondError(w, http.StatusConflict, "Department already exists")
		return
	}
	respondJSON(w, http.StatusCreated, dep)
}
