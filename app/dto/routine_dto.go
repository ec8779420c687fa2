// Package dto contains Data Transfer Objects for API request and response structures
package dto

import "time"

// RoutineRequest carries the routine form. A zero ID creates a new
// routine for the authenticated magician; a non-zero ID updates one.
type RoutineRequest struct {
	ID uint `json:"id" validate:"omitempty"`

	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=2000"`
	Duration    int    `json:"duration" validate:"required,min=1,max=120"`

	Method           *string `json:"method,omitempty" validate:"omitempty,max=2000"`
	Handling         *string `json:"handling,omitempty" validate:"omitempty,max=2000"`
	ResetDuration    *int    `json:"reset_duration,omitempty" validate:"omitempty,min=0,max=120"`
	ResetDescription *string `json:"reset_description,omitempty" validate:"omitempty,max=2000"`
	YouTubeURL       *string `json:"youtube_url,omitempty" validate:"omitempty,url,max=512"`
	ImageURL         *string `json:"image_url,omitempty" validate:"omitempty,url,max=512"`
	ReviewURL        *string `json:"review_url,omitempty" validate:"omitempty,url,max=512"`
	Inspiration      *string `json:"inspiration,omitempty" validate:"omitempty,max=2000"`
	Placement        *string `json:"placement,omitempty" validate:"omitempty,max=2000"`
	Choices          *string `json:"choices,omitempty" validate:"omitempty,max=2000"`

	Materials []MaterialRequest `json:"materials,omitempty" validate:"omitempty,dive"`
}

// MaterialRequest carries a single material row of the routine form
type MaterialRequest struct {
	Name          string  `json:"name" validate:"required,max=255"`
	IsInspectable bool    `json:"is_inspectable"`
	IsGivenAway   bool    `json:"is_given_away"`
	IsConsumed    bool    `json:"is_consumed"`
	Price         *int    `json:"price,omitempty" validate:"omitempty,min=0"`
	PurchaseURL   *string `json:"purchase_url,omitempty" validate:"omitempty,url,max=512"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url,max=512"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// RoutineResponse represents the response after routine create or update
type RoutineResponse struct {
	Message string     `json:"message"`
	Routine RoutineDTO `json:"routine"`
}

// RoutineDTO represents routine data for API responses
type RoutineDTO struct {
	ID         uint   `json:"id"`
	UUID       string `json:"uuid"`
	MagicianID uint   `json:"magician_id"`

	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`

	Method           *string `json:"method,omitempty"`
	Handling         *string `json:"handling,omitempty"`
	ResetDuration    *int    `json:"reset_duration,omitempty"`
	ResetDescription *string `json:"reset_description,omitempty"`
	YouTubeURL       *string `json:"youtube_url,omitempty"`
	ImageURL         *string `json:"image_url,omitempty"`
	ReviewURL        *string `json:"review_url,omitempty"`
	Inspiration      *string `json:"inspiration,omitempty"`
	Placement        *string `json:"placement,omitempty"`
	Choices          *string `json:"choices,omitempty"`

	Materials []MaterialDTO `json:"materials,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MaterialDTO represents material data for API responses
type MaterialDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	IsInspectable bool    `json:"is_inspectable"`
	IsGivenAway   bool    `json:"is_given_away"`
	IsConsumed    bool    `json:"is_consumed"`
	Price         *int    `json:"price,omitempty"`
	PurchaseURL   *string `json:"purchase_url,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// RoutineListResponse represents a routine listing or search result
type RoutineListResponse struct {
	Routines []RoutineDTO `json:"routines"`
	Total    int64        `json:"total"`
}
