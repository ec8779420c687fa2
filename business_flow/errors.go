// Package businessflow contains the core business logic and use cases for account and profile workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Magician-related errors
	ErrMagicianNotFound     = errors.New("magician not found")
	ErrMagicianTypeNotFound = errors.New("magician type not found")
	ErrIncorrectPassword    = errors.New("incorrect password")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrPasswordRequired     = errors.New("password is required for new accounts")
	ErrRequiredFieldMissing = errors.New("a required field is missing")

	// Routine-related errors
	ErrRoutineNotFound     = errors.New("routine not found")
	ErrRoutineAccessDenied = errors.New("routine access denied")

	// Photo-related errors
	ErrPhotoTooLarge          = errors.New("photo exceeds the maximum allowed size")
	ErrUnsupportedPhotoFormat = errors.New("unsupported photo format")

	ErrCacheNotAvailable = errors.New("cache not available")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsMagicianNotFound(err error) bool {
	return errors.Is(err, ErrMagicianNotFound)
}

func IsMagicianTypeNotFound(err error) bool {
	return errors.Is(err, ErrMagicianTypeNotFound)
}

func IsIncorrectPassword(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

func IsEmailAlreadyExists(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists)
}

func IsPasswordRequired(err error) bool {
	return errors.Is(err, ErrPasswordRequired)
}

func IsRequiredFieldMissing(err error) bool {
	return errors.Is(err, ErrRequiredFieldMissing)
}

func IsRoutineNotFound(err error) bool {
	return errors.Is(err, ErrRoutineNotFound)
}

func IsRoutineAccessDenied(err error) bool {
	return errors.Is(err, ErrRoutineAccessDenied)
}

func IsPhotoTooLarge(err error) bool {
	return errors.Is(err, ErrPhotoTooLarge)
}

func IsUnsupportedPhotoFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedPhotoFormat)
}

func IsCacheNotAvailable(err error) bool {
	return errors.Is(err, ErrCacheNotAvailable)
}
