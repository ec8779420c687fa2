// Package dto contains Data Transfer Objects for API request and response structures
package dto

import "time"

// AccountRequest carries the account form. A zero ID registers a new
// magician; a non-zero ID updates the core account fields of an
// existing one.
type AccountRequest struct {
	ID uint `json:"id" validate:"omitempty"`

	FirstName    string `json:"first_name" validate:"required,max=255,alpha_space"`
	LastName     string `json:"last_name" validate:"required,max=255,alpha_space"`
	Email        string `json:"email" validate:"required,email,max=255"`
	MagicianType string `json:"magician_type" validate:"required,max=50"`

	// Required when registering, optional on update (blank keeps the
	// current password).
	Password string `json:"password,omitempty" validate:"required_if=ID 0,omitempty,min=8,max=100,password_strength"`

	// Captcha answer, required when registering
	CaptchaID    string  `json:"captcha_id,omitempty" validate:"required_if=ID 0,omitempty,max=64"`
	CaptchaAngle float64 `json:"captcha_angle,omitempty"`
}

// AccountResponse represents the response after account create or update
type AccountResponse struct {
	Message  string      `json:"message"`
	Magician MagicianDTO `json:"magician"`
}

// ProfileRequest carries the full profile form for an existing account.
// Every optional field is overwritten from the submitted value, so omitted
// fields clear their stored counterparts.
type ProfileRequest struct {
	ID uint `json:"id" validate:"omitempty"`

	FirstName    string `json:"first_name" validate:"required,max=255,alpha_space"`
	LastName     string `json:"last_name" validate:"required,max=255,alpha_space"`
	Email        string `json:"email" validate:"required,email,max=255"`
	MagicianType string `json:"magician_type" validate:"required,max=50"`

	// Optional; blank keeps the current password
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=100,password_strength"`

	StageName     *string `json:"stage_name,omitempty" validate:"omitempty,max=255"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Biography     *string `json:"biography,omitempty" validate:"omitempty,max=2000"`
	Interests     *string `json:"interests,omitempty" validate:"omitempty,max=2000"`
	Influences    *string `json:"influences,omitempty" validate:"omitempty,max=2000"`
	YearStarted   *int    `json:"year_started,omitempty" validate:"omitempty,year_started"`
	Organizations *string `json:"organizations,omitempty" validate:"omitempty,max=2000"`
	Website       *string `json:"website,omitempty" validate:"omitempty,url,max=512"`

	Facebook   *string `json:"facebook,omitempty" validate:"omitempty,max=255"`
	Twitter    *string `json:"twitter,omitempty" validate:"omitempty,max=255"`
	LinkedIn   *string `json:"linked_in,omitempty" validate:"omitempty,max=255"`
	GooglePlus *string `json:"google_plus,omitempty" validate:"omitempty,max=255"`
	Flickr     *string `json:"flickr,omitempty" validate:"omitempty,max=255"`
	Instagram  *string `json:"instagram,omitempty" validate:"omitempty,max=255"`
}

// ProfileResponse represents the response after profile create or update
type ProfileResponse struct {
	Message  string      `json:"message"`
	Magician MagicianDTO `json:"magician"`
}

// LoginRequest represents the request payload for magician login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"magician@example.com"`
	Password string `json:"password" validate:"required,min=8,max=100" example:"SecurePass123!"`
}

// LoginResponse represents the successful login response
type LoginResponse struct {
	Message      string      `json:"message"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type" example:"Bearer"`
	ExpiresIn    int         `json:"expires_in" example:"86400"`
	Magician     MagicianDTO `json:"magician"`
}

// RefreshTokenRequest represents the request payload for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse represents the new token pair after a refresh
type RefreshTokenResponse struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type" example:"Bearer"`
	ExpiresIn    int    `json:"expires_in" example:"86400"`
}

// ValidateCredentialsRequest represents a credential check without login
type ValidateCredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=100"`
}

// ValidateCredentialsResponse reports whether the credentials matched
type ValidateCredentialsResponse struct {
	Valid bool `json:"valid"`
}

// MagicianDTO represents magician data for API responses
type MagicianDTO struct {
	ID           uint   `json:"id"`
	UUID         string `json:"uuid"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	MagicianType string `json:"magician_type"`

	StageName     *string `json:"stage_name,omitempty"`
	Location      *string `json:"location,omitempty"`
	PhotoURL      *string `json:"photo_url,omitempty"`
	Biography     *string `json:"biography,omitempty"`
	Interests     *string `json:"interests,omitempty"`
	Influences    *string `json:"influences,omitempty"`
	YearStarted   *int    `json:"year_started,omitempty"`
	Organizations *string `json:"organizations,omitempty"`
	Website       *string `json:"website,omitempty"`

	Facebook   *string `json:"facebook,omitempty"`
	Twitter    *string `json:"twitter,omitempty"`
	LinkedIn   *string `json:"linked_in,omitempty"`
	GooglePlus *string `json:"google_plus,omitempty"`
	Flickr     *string `json:"flickr,omitempty"`
	Instagram  *string `json:"instagram,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// MagicianTypeDTO represents an experience-level category for API responses
type MagicianTypeDTO struct {
	ID          uint    `json:"id"`
	TypeName    string  `json:"type_name"`
	DisplayName string  `json:"display_name"`
	Description *string `json:"description,omitempty"`
}

// MagicianListResponse represents the magician roster listing
type MagicianListResponse struct {
	Magicians []MagicianDTO `json:"magicians"`
	Total     int64         `json:"total"`
}
