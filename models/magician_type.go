// Package models contains domain entities and business models for the Play With Magic site
package models

import (
	"time"
)

// MagicianType is an experience-level category assigned to every Magician.
// The set of types is fixed reference data seeded once at startup.
type MagicianType struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TypeName     string    `gorm:"size:50;not null;uniqueIndex:uk_magician_types_type_name" json:"type_name"`
	DisplayName  string    `gorm:"size:50;not null" json:"display_name"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (MagicianType) TableName() string {
	return "magician_types"
}

// Magician type constants
const (
	MagicianTypeNeophyte         = "Neophyte"
	MagicianTypeEnthusiast       = "Enthusiast"
	MagicianTypeHobbyist         = "Hobbyist"
	MagicianTypeSemiProfessional = "Semi-Professional"
	MagicianTypeProfessional     = "Professional"
	MagicianTypeHistorian        = "Historian"
	MagicianTypeCollector        = "Collector"
)

// DefaultMagicianTypeNames lists the fixed categories in registry order.
func DefaultMagicianTypeNames() []string {
	return []string{
		MagicianTypeNeophyte,
		MagicianTypeEnthusiast,
		MagicianTypeHobbyist,
		MagicianTypeSemiProfessional,
		MagicianTypeProfessional,
		MagicianTypeHistorian,
		MagicianTypeCollector,
	}
}

// MagicianTypeFilter represents filter criteria for magician type queries
type MagicianTypeFilter struct {
	ID          *uint
	TypeName    *string
	DisplayName *string
}
