package models

import "time"

// Department is a flat catalog entry for an organizational location a
// document can occupy. No hierarchy.
type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (Department) TableName() string {
	return "departments"
}
