// Package models contains domain entities and business models for the Play With Magic site
package models

import (
	"time"
)

// AuditLog records account-lifecycle events for traceability.
type AuditLog struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	MagicianID  *uint   `gorm:"index:idx_audit_logs_magician_id" json:"magician_id,omitempty"`
	Action      string  `gorm:"size:100;not null;index:idx_audit_logs_action" json:"action"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Success     *bool   `gorm:"default:false" json:"success"`

	IPAddress    *string `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent    *string `gorm:"type:text" json:"user_agent,omitempty"`
	RequestID    *string `gorm:"size:100" json:"request_id,omitempty"`
	ErrorMessage *string `gorm:"type:text" json:"error_message,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_audit_logs_created_at" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit action constants
const (
	AuditActionSignupCompleted = "signup_completed"
	AuditActionSignupFailed    = "signup_failed"
	AuditActionAccountUpdated  = "account_updated"
	AuditActionProfileUpdated  = "profile_updated"
	AuditActionLoginSuccess    = "login_success"
	AuditActionLoginFailed     = "login_failed"
	AuditActionAccountDeleted  = "account_deleted"
	AuditActionPhotoUploaded   = "photo_uploaded"
)

// AuditLogFilter represents filter criteria for audit log queries
type AuditLogFilter struct {
	ID         *uint
	MagicianID *uint
	Action     *string
	Success    *bool
}
