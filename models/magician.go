// Package models contains domain entities and business models for the Play With Magic site
package models

import (
	"time"

	"github.com/google/uuid"
)

// Magician is the registered user/profile entity. The numeric ID is the
// synthetic key assigned by the store; email is the logical unique key.
type Magician struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UUID           uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uk_magicians_uuid" json:"uuid"`
	MagicianTypeID uint         `gorm:"not null;index:idx_magicians_magician_type_id" json:"magician_type_id"`
	MagicianType   MagicianType `gorm:"foreignKey:MagicianTypeID;references:ID" json:"magician_type,omitempty"`

	// Required identity fields
	FirstName    string `gorm:"size:255;not null" json:"first_name"`
	LastName     string `gorm:"size:255;not null" json:"last_name"`
	Email        string `gorm:"size:255;not null;uniqueIndex:uk_magicians_email" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"` // Never serialize password hash

	// Optional profile fields
	StageName     *string `gorm:"size:255" json:"stage_name,omitempty"`
	Location      *string `gorm:"size:255" json:"location,omitempty"`
	PhotoURL      *string `gorm:"size:512" json:"photo_url,omitempty"`
	Biography     *string `gorm:"type:text" json:"biography,omitempty"`
	Interests     *string `gorm:"type:text" json:"interests,omitempty"`
	Influences    *string `gorm:"type:text" json:"influences,omitempty"`
	YearStarted   *int    `json:"year_started,omitempty"`
	Organizations *string `gorm:"type:text" json:"organizations,omitempty"`
	Website       *string `gorm:"size:512" json:"website,omitempty"`

	// Social media handles
	Facebook   *string `gorm:"size:255" json:"facebook,omitempty"`
	Twitter    *string `gorm:"size:255" json:"twitter,omitempty"`
	LinkedIn   *string `gorm:"size:255" json:"linked_in,omitempty"`
	GooglePlus *string `gorm:"size:255" json:"google_plus,omitempty"`
	Flickr     *string `gorm:"size:255" json:"flickr,omitempty"`
	Instagram  *string `gorm:"size:255" json:"instagram,omitempty"`

	// Timestamps
	CreatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_magicians_created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// Relations. Deleting a magician cascades to neither: routines stay
	// behind with their owner reference cleared, audit history is kept.
	Routines  []Routine  `gorm:"foreignKey:MagicianID;constraint:OnDelete:SET NULL" json:"-"`
	AuditLogs []AuditLog `gorm:"foreignKey:MagicianID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Magician) TableName() string {
	return "magicians"
}

// FullName returns the magician's display name: stage name when set,
// otherwise "First Last".
func (m *Magician) FullName() string {
	if m.StageName != nil && *m.StageName != "" {
		return *m.StageName
	}
	return m.FirstName + " " + m.LastName
}

// YearsOfExperience computes the years of practice from YearStarted.
// Returns 0 when YearStarted is unset or in the future.
func (m *Magician) YearsOfExperience(now time.Time) int {
	if m.YearStarted == nil {
		return 0
	}
	years := now.Year() - *m.YearStarted
	if years < 0 {
		return 0
	}
	return years
}

// MagicianFilter represents filter criteria for magician queries
type MagicianFilter struct {
	ID               *uint
	UUID             *uuid.UUID
	MagicianTypeID   *uint
	MagicianTypeName *string
	Email            *string
	FirstName        *string
	LastName         *string
	StageName        *string
	Location         *string
	CreatedAfter     *time.Time
	CreatedBefore    *time.Time
}
