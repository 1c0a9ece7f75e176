package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/doctrack-io/doctrackgo/internal/middleware"
)

// MoveRequest is the payload for transferring a document
type MoveRequest struct {
	TargetDepartment string `json:"targetDepartment"`
	Note             string `json:"note"`
}

// SetDestinationRequest is the payload for redirecting a document
type SetDestinationRequest struct {
	FinalDestination string `json:"finalDestination"`
}

// FinalizeRequest is the payload for closing out a document
type FinalizeRequest struct {
	CompletionNote string `json:"completionNote"`
}

// moveDocument transfers a document to another department
func (r *Router) moveDocument(w http.ResponseWriter, req *http.Request) {
	doc, ok := r.findDocument(w, req)
	if !ok {
		return
	}

	var body MoveRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	actorID := middleware.UserIDFromContext(req.Context())
	result, err := r.flow.Move(req.Context(), doc.ID, body.TargetDepartment, actorID, body.Note)
	if err != nil {
		respondWorkflowError(w, err)
		return
	}

	log.Printf("🚚 Document %s moved %s -> %s (status %s)",
		result.Document.DocUniqueID, result.Movement.FromDepartment,
		result.Movement.ToDepartment, result.Document.Status)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"document": result.Document,
		"movement": result.Movement,
	})
}

// setFinalDestination redirects a document's target department
func (r *Router) setFinalDestination(w http.ResponseWriter, req *http.Request) {
	doc, ok := r.findDocument(w, req)
	if !ok {
		return
	}

	var body SetDestinationRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	actorID := middleware.UserIDFromContext(req.Context())
	updated, err := r.flow.SetFinalDestination(req.Context(), doc.ID, body.FinalDestination, actorID)
	if err != nil {
		respondWorkflowError(w, err)
		return
	}

	log.Printf("🎯 Document %s redirected to %s (status %s)",
		updated.DocUniqueID, updated.FinalDestination, updated.Status)
	respondJSON(w, http.StatusOK, updated)
}

// finalizeDocument closes out a document at its final destination
func (r *Router) finalizeDocument(w http.ResponseWriter, req *http.Request) {
	doc, ok := r.findDocument(w, req)
	if !ok {
		return
	}

	var body FinalizeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	actorID := middleware.UserIDFromContext(req.Context())
	updated, err := r.flow.Finalize(req.Context(), doc.ID, actorID, body.CompletionNote)
	if err != nil {
		respondWorkflowError(w, err)
		return
	}

	log.Printf("✅ Document %s finalized at %s", updated.DocUniqueID, updated.Department)
	respondJSON(w, http.StatusOK, updated)
}
