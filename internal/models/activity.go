package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is a fire-and-forget audit trail entry, written after a
// successful commit. Failures writing it never roll back business data.
type ActivityLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	EventKind  string         `gorm:"not null;index" json:"eventKind"` // document.moved, document.finalized, ...
	ActorID    uint           `gorm:"index" json:"actorId"`
	DocumentID *uint          `gorm:"index" json:"documentId,omitempty"`
	Details    datatypes.JSON `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// TableName specifies the table name for ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}
