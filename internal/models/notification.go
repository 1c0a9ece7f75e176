package models

import "time"

// ClientNotification is a one-way message to the client a document belongs to.
// Created inside the same transaction as the transition that triggered it;
// the only later mutation is the client marking it read.
type ClientNotification struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ClientID   uint      `gorm:"not null;index" json:"clientId"`
	DocumentID uint      `gorm:"not null;index" json:"documentId"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsRead     bool      `gorm:"default:false;index" json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (ClientNotification) TableName() string {
	return "client_notifications"
}
