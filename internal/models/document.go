package models

import (
	"time"

	"gorm.io/gorm"
)

// Document statuses. Transitions are owned by the workflow service;
// nothing else writes Status directly.
const (
	StatusPending         = "pending"          // created, not yet routed
	StatusInMovement      = "in_movement"      // en route between departments
	StatusPendingApproval = "pending_approval" // physically at final destination
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
	StatusFinalized       = "finalized" // terminal
)

// Document represents a tracked paper/PDF document moving between departments.
// Standardized: Go (PascalCase) -> DB (snake_case) -> JSON (camelCase)
type Document struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	DocUniqueID      string     `gorm:"column:doc_unique_id;uniqueIndex;not null" json:"docUniqueId"`
	Title            string     `gorm:"not null" json:"title"`
	DocType          string     `gorm:"index" json:"docType"` // e.g. "Invoice", "Contract", "Letter"
	FilePath         string     `json:"filePath,omitempty"`   // owned by the upload/storage layer
	Department       string     `gorm:"not null;index" json:"department"`       // current location
	FinalDestination string     `gorm:"not null;index" json:"finalDestination"` // admin-settable target
	Status           string     `gorm:"default:'pending';index" json:"status"`
	FinalizedAt      *time.Time `json:"finalizedAt,omitempty"`
	FinalizedBy      *uint      `json:"finalizedBy,omitempty"`
	FinalizationNote string     `gorm:"type:text" json:"finalizationNote,omitempty"`
	SubmitterID      *uint      `gorm:"index" json:"submitterId,omitempty"` // client the document belongs to
	UploadedBy       uint       `gorm:"not null" json:"uploadedBy"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Submitter *UserAuth          `gorm:"foreignKey:SubmitterID" json:"submitter,omitempty"`
	Movements []DocumentMovement `gorm:"foreignKey:DocumentID" json:"movements,omitempty"`
}

// TableName specifies the table name
func (Document) TableName() string {
	return "documents"
}

// AtFinalDestination reports whether the document physically sits at its target.
func (d *Document) AtFinalDestination() bool {
	return d.Department == d.FinalDestination
}
