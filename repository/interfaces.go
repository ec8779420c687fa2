// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/PlayWithMagic/PlayWithMagic/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// MagicianTypeRepository defines operations for the fixed experience-level categories
type MagicianTypeRepository interface {
	Repository[models.MagicianType, models.MagicianTypeFilter]
	ByTypeName(ctx context.Context, typeName string) (*models.MagicianType, error)
	ListAll(ctx context.Context) ([]*models.MagicianType, error)
}

// MagicianRepository defines operations for magician accounts and profiles
type MagicianRepository interface {
	Repository[models.Magician, models.MagicianFilter]
	ByEmail(ctx context.Context, email string) (*models.Magician, error)
	ByUUID(ctx context.Context, uuid string) (*models.Magician, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListAll(ctx context.Context, limit, offset int) ([]*models.Magician, error)
	UpdatePassword(ctx context.Context, magicianID uint, passwordHash string) error
	UpdateLastLogin(ctx context.Context, magicianID uint) error
}

// RoutineRepository defines operations for routines and their materials
type RoutineRepository interface {
	Repository[models.Routine, models.RoutineFilter]
	ListByMagician(ctx context.Context, magicianID uint) ([]*models.Routine, error)
	Search(ctx context.Context, keyword string, limit, offset int) ([]*models.Routine, error)
	ClearMaterials(ctx context.Context, routineID uint) error
}

// AuditLogRepository defines operations for audit logs
type AuditLogRepository interface {
	Repository[models.AuditLog, models.AuditLogFilter]
	ListByMagician(ctx context.Context, magicianID uint, limit, offset int) ([]*models.AuditLog, error)
	ListByAction(ctx context.Context, action string, limit, offset int) ([]*models.AuditLog, error)
	ListFailedActions(ctx context.Context, limit, offset int) ([]*models.AuditLog, error)
}
