package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/doctrack-io/doctrackgo/internal/middleware"
	"github.com/doctrack-io/doctrackgo/internal/models"
	"github.com/doctrack-io/doctrackgo/internal/services/printer"
	"github.com/doctrack-io/doctrackgo/internal/utils"
	"github.com/doctrack-io/doctrackgo/internal/workflow"
)

// CreateDocumentRequest is the payload for registering a new document
type CreateDocumentRequest struct {
	Title            string `json:"title"`
	DocType          string `json:"docType"`
	FilePath         string `json:"filePath"`
	Department       string `json:"department"`
	FinalDestination string `json:"finalDestination"`
	SubmitterID      *uint  `json:"submitterId"`
}

// createDocument registers a new document for tracking
func (r *Router) createDocument(w http.ResponseWriter, req *http.Request) {
	var body CreateDocumentRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	doc, err := r.flow.CreateDocument(req.Context(), workflow.CreateDocumentInput{
		Title:            body.Title,
		DocType:          body.DocType,
		FilePath:         body.FilePath,
		Department:       body.Department,
		FinalDestination: body.FinalDestination,
		SubmitterID:      body.SubmitterID,
		UploadedBy:       middleware.UserIDFromContext(req.Context()),
	})
	if err != nil {
		respondWorkflowError(w, err)
		return
	}

	log.Printf("📄 Document registered: %s (%s) -> %s", doc.DocUniqueID, doc.Title, doc.FinalDestination)
	respondJSON(w, http.StatusCreated, doc)
}

// listDocuments returns recent documents, optionally filtered by status
// or current department
func (r *Router) listDocuments(w http.ResponseWriter, req *http.Request) {
	q := r.db.Order("created_at DESC").Limit(100)
	if status := req.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if dept := req.URL.Query().Get("department"); dept != "" {
		q = q.Where("department = ?", dept)
	}

	var docs []models.Document
	if err := q.Find(&docs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

// getDocument returns a single document by numeric id or tracking code
func (r *Router) getDocument(w http.ResponseWriter, req *http.Request) {
	doc, ok := r.findDocument(w, req)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

// listDocumentMovements returns the movement history, oldest first
func (r *Router) listDocumentMovements(w http.ResponseWriter, req *http.Request) {
	doc, ok := r.findDocument(w, req)
	if !ok {
		return
	}

	var moves []models.DocumentMovement
	if err := r.db.Where("document_id = ?", doc.ID).Order("moved_at ASC, id ASC").Find(&moves).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch movements")
		return
	}
	respondJSON(w, http.StatusOK, moves)
}

// downloadRoutingSlip streams the printable routing slip PDF
func (r *Router) downloadRoutingSlip(w http.ResponseWriter, req *http.Request) {
	doc, ok := r.findDocument(w, req)
	if !ok {
		return
	}

	pdf, err := printer.GenerateRoutingSlip(doc)
	if err != nil {
		log.Printf("❌ Routing slip generation failed for %s: %v", doc.DocUniqueID, err)
		respondError(w, http.StatusInternalServerError, "Failed to generate routing slip")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", doc.DocUniqueID))
	w.Write(pdf)
}

// findDocument resolves the {id} path variable as a numeric id or a
// DOC-XXXXXXXX tracking code. Responds with the error itself when the
// lookup fails.
func (r *Router) findDocument(w http.ResponseWriter, req *http.Request) (*models.Document, bool) {
	raw := mux.Vars(req)["id"]

	var doc models.Document
	if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
		if err := r.db.First(&doc, id).Error; err != nil {
			respondError(w, http.StatusNotFound, "Document not found")
			return nil, false
		}
		return &doc, true
	}

	code := utils.NormalizeTrackingCode(raw)
	if err := utils.ValidateTrackingCode(code); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if err := r.db.Where("doc_unique_id = ?", code).First(&doc).Error; err != nil {
		respondError(w, http.StatusNotFound, "Document not found")
		return nil, false
	}
	return &doc, true
}
