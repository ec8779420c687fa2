// Package models contains domain entities and business models for the Play With Magic site
package models

import (
	"time"

	"github.com/google/uuid"
)

// Routine is a magic-trick catalog entry owned by a Magician. The owner
// column is nullable: deleting the owning account clears it instead of
// removing the routine.
type Routine struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_routines_uuid" json:"uuid"`
	MagicianID uint      `gorm:"index:idx_routines_magician_id" json:"magician_id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Duration    int    `gorm:"not null" json:"duration"` // minutes

	// Presentation details
	Method           *string `gorm:"type:text" json:"method,omitempty"`
	Handling         *string `gorm:"type:text" json:"handling,omitempty"`
	ResetDuration    *int    `json:"reset_duration,omitempty"` // minutes
	ResetDescription *string `gorm:"type:text" json:"reset_description,omitempty"`
	YouTubeURL       *string `gorm:"size:512" json:"youtube_url,omitempty"`
	ImageURL         *string `gorm:"size:512" json:"image_url,omitempty"`
	ReviewURL        *string `gorm:"size:512" json:"review_url,omitempty"`
	Inspiration      *string `gorm:"type:text" json:"inspiration,omitempty"`
	Placement        *string `gorm:"type:text" json:"placement,omitempty"`
	Choices          *string `gorm:"type:text" json:"choices,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`

	Materials []Material `gorm:"foreignKey:RoutineID" json:"materials,omitempty"`
}

func (Routine) TableName() string {
	return "routines"
}

// Material is a prop/item needed by a Routine.
type Material struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	RoutineID uint `gorm:"not null;index:idx_materials_routine_id" json:"routine_id"`

	Name          string  `gorm:"size:255;not null" json:"name"`
	IsInspectable bool    `gorm:"not null;default:false" json:"is_inspectable"`
	IsGivenAway   bool    `gorm:"not null;default:false" json:"is_given_away"`
	IsConsumed    bool    `gorm:"not null;default:false" json:"is_consumed"`
	Price         *int    `json:"price,omitempty"` // cents
	PurchaseURL   *string `gorm:"size:512" json:"purchase_url,omitempty"`
	ImageURL      *string `gorm:"size:512" json:"image_url,omitempty"`
	Description   *string `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (Material) TableName() string {
	return "materials"
}

// RoutineFilter represents filter criteria for routine queries
type RoutineFilter struct {
	ID         *uint
	UUID       *uuid.UUID
	MagicianID *uint
	Name       *string
	Keyword    *string // matches name or description, case-insensitive
}
