package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/doctrack-io/doctrackgo/internal/models"
	"github.com/doctrack-io/doctrackgo/internal/utils"
)

// DepartmentCatalog validates department membership. The production
// implementation is the DB-backed catalog; tests may stub it.
type DepartmentCatalog interface {
	IsValid(ctx context.Context, name string) bool
}

// AuditRecorder receives fire-and-forget audit events after a successful
// commit. Implementations must never fail the calling operation.
type AuditRecorder interface {
	Record(eventKind string, actorID uint, documentID *uint, details map[string]interface{})
}

// NotificationPusher delivers a committed notification to a connected
// client, best effort. Delivery failure is invisible to the caller; the
// row is already persisted.
type NotificationPusher interface {
	Push(clientID uint, notification *models.ClientNotification)
}

// Service owns the document lifecycle state machine. Every public
// operation runs inside a single transaction and takes a row-level lock
// on the document, so concurrent operations on the same id serialize.
type Service struct {
	db      *gorm.DB
	catalog DepartmentCatalog
	audit   AuditRecorder      // optional
	pusher  NotificationPusher // optional
}

// NewService creates a workflow service bound to a database and catalog.
func NewService(db *gorm.DB, catalog DepartmentCatalog) *Service {
	return &Service{db: db, catalog: catalog}
}

// WithAudit attaches a post-commit audit recorder.
func (s *Service) WithAudit(a AuditRecorder) *Service {
	s.audit = a
	return s
}

// WithPusher attaches a post-commit notification pusher.
func (s *Service) WithPusher(p NotificationPusher) *Service {
	s.pusher = p
	return s
}

// CreateDocumentInput carries the fields for a new document.
type CreateDocumentInput struct {
	Title            string
	DocType          string
	FilePath         string
	Department       string // initial location, usually the intake desk
	FinalDestination string
	SubmitterID      *uint
	UploadedBy       uint
}

// MoveResult is the outcome of a successful move: the updated document
// plus the movement row that was appended.
type MoveResult struct {
	Document *models.Document
	Movement *models.DocumentMovement
}

// CreateDocument registers a new document with a generated tracking code
// and status pending. Creation is not a transition, so no row lock is
// needed; uniqueness of the code is guaranteed by the DB index.
func (s *Service) CreateDocument(ctx context.Context, in CreateDocumentInput) (*models.Document, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	}
	if !s.catalog.IsValid(ctx, in.Department) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDepartment, in.Department)
	}
	if !s.catalog.IsValid(ctx, in.FinalDestination) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDepartment, in.FinalDestination)
	}

	doc := &models.Document{
		DocUniqueID:      utils.GenerateTrackingCode(),
		Title:            in.Title,
		DocType:          in.DocType,
		FilePath:         in.FilePath,
		Department:       in.Department,
		FinalDestination: in.FinalDestination,
		Status:           models.StatusPending,
		SubmitterID:      in.SubmitterID,
		UploadedBy:       in.UploadedBy,
	}
	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	s.recordAudit("document.created", in.UploadedBy, &doc.ID, map[string]interface{}{
		"docUniqueId":      doc.DocUniqueID,
		"department":       doc.Department,
		"finalDestination": doc.FinalDestination,
	})
	return doc, nil
}

// Move transfers a document to targetDepartment, updates its status
// according to the destination-reached rule and appends a movement row.
// The whole unit (department + status + movement + notification) commits
// or rolls back together.
func (s *Service) Move(ctx context.Context, documentID uint, targetDepartment string, actorID uint, note string) (*MoveResult, error) {
	var (
		doc      models.Document
		movement models.DocumentMovement
		notif    *models.ClientNotification
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockDocument(tx, documentID, &doc); err != nil {
			return err
		}
		if !s.catalog.IsValid(ctx, targetDepartment) {
			return fmt.Errorf("%w: %q", ErrInvalidDepartment, targetDepartment)
		}
		if doc.Status == models.StatusFinalized {
			return ErrAlreadyFinalized
		}

		from := doc.Department
		doc.Department = targetDepartment
		if doc.AtFinalDestination() {
			doc.Status = models.StatusPendingApproval
		} else {
			doc.Status = models.StatusInMovement
		}

		if err := tx.Model(&models.Document{}).Where("id = ?", doc.ID).
			Updates(map[string]interface{}{
				"department": doc.Department,
				"status":     doc.Status,
			}).Error; err != nil {
			return fmt.Errorf("updating document %d: %w", doc.ID, err)
		}

		movement = models.DocumentMovement{
			DocumentID:     doc.ID,
			FromDepartment: from,
			ToDepartment:   targetDepartment,
			MovedBy:        actorID,
			Note:           note,
			MovedAt:        time.Now().UTC(),
		}
		if err := tx.Create(&movement).Error; err != nil {
			return fmt.Errorf("recording movement for document %d: %w", doc.ID, err)
		}

		if doc.AtFinalDestination() {
			msg := fmt.Sprintf("Your document %q (%s) has arrived at %s and is awaiting approval.",
				doc.Title, doc.DocUniqueID, doc.FinalDestination)
			n, err := createNotification(tx, &doc, msg)
			if err != nil {
				return err
			}
			notif = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.pushNotification(notif)
	s.recordAudit("document.moved", actorID, &doc.ID, map[string]interface{}{
		"from":   movement.FromDepartment,
		"to":     movement.ToDepartment,
		"status": doc.Status,
	})
	return &MoveResult{Document: &doc, Movement: &movement}, nil
}

// SetFinalDestination redirects a document mid-flight. Rules are
// evaluated against the state before the field changes:
//
//   - it sat at its old destination and the new one is elsewhere
//     -> back to in_movement (location no longer matches the goal)
//   - the new destination is where it already sits -> pending_approval,
//     submitter notified of arrival
//   - still mid-route either way -> status untouched
func (s *Service) SetFinalDestination(ctx context.Context, documentID uint, newDestination string, actorID uint) (*models.Document, error) {
	var (
		doc   models.Document
		notif *models.ClientNotification
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockDocument(tx, documentID, &doc); err != nil {
			return err
		}
		if !s.catalog.IsValid(ctx, newDestination) {
			return fmt.Errorf("%w: %q", ErrInvalidDepartment, newDestination)
		}
		if doc.Status == models.StatusFinalized {
			return ErrAlreadyFinalized
		}

		wasAtDestination := doc.AtFinalDestination()
		prevStatus := doc.Status
		doc.FinalDestination = newDestination

		switch {
		case wasAtDestination && newDestination != doc.Department &&
			(prevStatus == models.StatusPending || prevStatus == models.StatusPendingApproval):
			doc.Status = models.StatusInMovement

		case newDestination == doc.Department &&
			(prevStatus == models.StatusInMovement || prevStatus == models.StatusPending):
			doc.Status = models.StatusPendingApproval
		}

		if err := tx.Model(&models.Document{}).Where("id = ?", doc.ID).
			Updates(map[string]interface{}{
				"final_destination": doc.FinalDestination,
				"status":            doc.Status,
			}).Error; err != nil {
			return fmt.Errorf("updating document %d: %w", doc.ID, err)
		}

		if doc.Status == models.StatusPendingApproval && prevStatus != models.StatusPendingApproval {
			msg := fmt.Sprintf("Your document %q (%s) has arrived at %s and is awaiting approval.",
				doc.Title, doc.DocUniqueID, doc.FinalDestination)
			n, err := createNotification(tx, &doc, msg)
			if err != nil {
				return err
			}
			notif = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.pushNotification(notif)
	s.recordAudit("document.redirected", actorID, &doc.ID, map[string]interface{}{
		"finalDestination": doc.FinalDestination,
		"status":           doc.Status,
	})
	return &doc, nil
}

// Finalize marks a document complete. Admits only documents already at
// their final destination and not yet finalized; terminal once set.
func (s *Service) Finalize(ctx context.Context, documentID uint, actorID uint, completionNote string) (*models.Document, error) {
	var (
		doc   models.Document
		notif *models.ClientNotification
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockDocument(tx, documentID, &doc); err != nil {
			return err
		}
		if doc.Status == models.StatusFinalized {
			return ErrAlreadyFinalized
		}
		if !doc.AtFinalDestination() {
			return ErrNotAtDestination
		}

		now := time.Now().UTC()
		doc.Status = models.StatusFinalized
		doc.FinalizedAt = &now
		doc.FinalizedBy = &actorID
		doc.FinalizationNote = completionNote

		if err := tx.Model(&models.Document{}).Where("id = ?", doc.ID).
			Updates(map[string]interface{}{
				"status":            doc.Status,
				"finalized_at":      doc.FinalizedAt,
				"finalized_by":      doc.FinalizedBy,
				"finalization_note": doc.FinalizationNote,
			}).Error; err != nil {
			return fmt.Errorf("finalizing document %d: %w", doc.ID, err)
		}

		msg := fmt.Sprintf("Processing of your document %q (%s) is complete. It is ready for collection at %s.",
			doc.Title, doc.DocUniqueID, doc.Department)
		n, err := createNotification(tx, &doc, msg)
		if err != nil {
			return err
		}
		notif = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.pushNotification(notif)
	s.recordAudit("document.finalized", actorID, &doc.ID, map[string]interface{}{
		"department": doc.Department,
	})
	return &doc, nil
}

// lockDocument loads a document with a FOR UPDATE row lock inside tx.
func lockDocument(tx *gorm.DB, documentID uint, dst *models.Document) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(dst, documentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("loading document %d: %w", documentID, err)
	}
	return nil
}

// createNotification inserts a notification row for the document's
// submitter inside tx. Documents without a submitter are skipped; that
// is not an error, there is simply nobody to notify.
func createNotification(tx *gorm.DB, doc *models.Document, message string) (*models.ClientNotification, error) {
	if doc.SubmitterID == nil {
		return nil, nil
	}
	n := &models.ClientNotification{
		ClientID:   *doc.SubmitterID,
		DocumentID: doc.ID,
		Message:    message,
	}
	if err := tx.Create(n).Error; err != nil {
		return nil, fmt.Errorf("creating notification for document %d: %w", doc.ID, err)
	}
	return n, nil
}

func (s *Service) pushNotification(n *models.ClientNotification) {
	if n == nil || s.pusher == nil {
		return
	}
	s.pusher.Push(n.ClientID, n)
}

func (s *Service) recordAudit(eventKind string, actorID uint, documentID *uint, details map[string]interface{}) {
	if s.audit == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️ Audit recorder panic for %s: %v", eventKind, r)
		}
	}()
	s.audit.Record(eventKind, actorID, documentID, details)
}
