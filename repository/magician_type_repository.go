// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/PlayWithMagic/PlayWithMagic/models"
	"gorm.io/gorm"
)

// MagicianTypeRepositoryImpl implements MagicianTypeRepository interface
type MagicianTypeRepositoryImpl struct {
	*BaseRepository[models.MagicianType, models.MagicianTypeFilter]
}

// NewMagicianTypeRepository creates a new magician type repository
func NewMagicianTypeRepository(db *gorm.DB) MagicianTypeRepository {
	return &MagicianTypeRepositoryImpl{
		BaseRepository: NewBaseRepository[models.MagicianType, models.MagicianTypeFilter](db),
	}
}

// ByTypeName retrieves a magician type by its type name
func (r *MagicianTypeRepositoryImpl) ByTypeName(ctx context.Context, typeName string) (*models.MagicianType, error) {
	db := r.getDB(ctx)

	var magicianType models.MagicianType
	err := db.Where("type_name = ?", typeName).
		Last(&magicianType).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find magician type by name: %w", err)
	}

	return &magicianType, nil
}

// ListAll returns every magician type in display order
func (r *MagicianTypeRepositoryImpl) ListAll(ctx context.Context) ([]*models.MagicianType, error) {
	db := r.getDB(ctx)

	var magicianTypes []*models.MagicianType
	err := db.Order("display_order ASC").Find(&magicianTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list magician types: %w", err)
	}

	return magicianTypes, nil
}

// ByFilter retrieves magician types based on filter criteria
func (r *MagicianTypeRepositoryImpl) ByFilter(ctx context.Context, filter models.MagicianTypeFilter, orderBy string, limit, offset int) ([]*models.MagicianType, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.MagicianType{}), filter)

	// Apply ordering (default to display order)
	if orderBy == "" {
		orderBy = "display_order ASC"
	}
	query = query.Order(orderBy)

	// Apply pagination
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var magicianTypes []*models.MagicianType
	err := query.Find(&magicianTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find magician types by filter: %w", err)
	}

	return magicianTypes, nil
}

// Count returns the number of magician types matching the filter
func (r *MagicianTypeRepositoryImpl) Count(ctx context.Context, filter models.MagicianTypeFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.MagicianType{}), filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count magician types: %w", err)
	}

	return count, nil
}

// Exists checks if any magician type matching the filter exists
func (r *MagicianTypeRepositoryImpl) Exists(ctx context.Context, filter models.MagicianTypeFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *MagicianTypeRepositoryImpl) applyFilter(query *gorm.DB, filter models.MagicianTypeFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}

	if filter.TypeName != nil {
		query = query.Where("type_name = ?", *filter.TypeName)
	}

	if filter.DisplayName != nil {
		query = query.Where("display_name = ?", *filter.DisplayName)
	}

	return query
}
