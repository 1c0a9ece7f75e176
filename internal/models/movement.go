package models

import "time"

// DocumentMovement is an immutable audit record of a single transfer.
// Rows are inserted by the workflow service and never updated or deleted.
type DocumentMovement struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DocumentID     uint      `gorm:"not null;index" json:"documentId"`
	FromDepartment string    `gorm:"not null" json:"fromDepartment"`
	ToDepartment   string    `gorm:"not null" json:"toDepartment"`
	MovedBy        uint      `gorm:"not null" json:"movedBy"`
	Note           string    `gorm:"type:text" json:"note,omitempty"`
	MovedAt        time.Time `gorm:"not null;index" json:"movedAt"`
}

// TableName specifies the table name
func (DocumentMovement) TableName() string {
	return "document_movements"
}
