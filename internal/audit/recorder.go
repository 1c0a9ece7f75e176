package audit

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/doctrack-io/doctrackgo/internal/models"
)

// Recorder writes activity log rows outside the business transaction.
// It is called after a successful commit; a failure here is logged and
// swallowed, never surfaced to the caller.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder creates a recorder bound to the database.
func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Record persists one audit event, fire-and-forget.
func (r *Recorder) Record(eventKind string, actorID uint, documentID *uint, details map[string]interface{}) {
	entry := models.ActivityLog{
		EventKind:  eventKind,
		ActorID:    actorID,
		DocumentID: documentID,
	}
	if details != nil {
		payload, err := json.Marshal(details)
		if err != nil {
			log.Printf("⚠️ Audit: could not encode details for %s: %v", eventKind, err)
		} else {
			entry.Details = datatypes.JSON(payload)
		}
	}
	if err := r.db.Create(&entry).Error; err != nil {
		log.Printf("⚠️ Audit: failed to record %s: %v", eventKind, err)
	}
}
