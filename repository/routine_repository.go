// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/PlayWithMagic/PlayWithMagic/models"
	"gorm.io/gorm"
)

// RoutineRepositoryImpl implements RoutineRepository interface
type RoutineRepositoryImpl struct {
	*BaseRepository[models.Routine, models.RoutineFilter]
}

// NewRoutineRepository creates a new routine repository
func NewRoutineRepository(db *gorm.DB) RoutineRepository {
	return &RoutineRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Routine, models.RoutineFilter](db),
	}
}

// ByID retrieves a routine by ID with its materials preloaded
func (r *RoutineRepositoryImpl) ByID(ctx context.Context, id uint) (*models.Routine, error) {
	db := r.getDB(ctx)

	var routine models.Routine
	err := db.Preload("Materials").Last(&routine, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find routine by ID %d: %w", id, err)
	}

	return &routine, nil
}

// ListByMagician returns the routines owned by the magician, newest first
func (r *RoutineRepositoryImpl) ListByMagician(ctx context.Context, magicianID uint) ([]*models.Routine, error) {
	db := r.getDB(ctx)

	var routines []*models.Routine
	err := db.Preload("Materials").
		Where("magician_id = ?", magicianID).
		Order("id DESC").
		Find(&routines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list routines by magician: %w", err)
	}

	return routines, nil
}

// Search matches the keyword against routine names and descriptions, case-insensitive
func (r *RoutineRepositoryImpl) Search(ctx context.Context, keyword string, limit, offset int) ([]*models.Routine, error) {
	db := r.getDB(ctx)

	pattern := "%" + keyword + "%"
	query := db.Preload("Materials").
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var routines []*models.Routine
	err := query.Find(&routines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search routines: %w", err)
	}

	return routines, nil
}

// ClearMaterials removes every material row attached to the routine. Saving a
// routine appends its materials, so updates clear the old set first.
func (r *RoutineRepositoryImpl) ClearMaterials(ctx context.Context, routineID uint) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Where("routine_id = ?", routineID).Delete(&models.Material{}).Error
	if err != nil {
		err = fmt.Errorf("failed to clear materials for routine %d: %w", routineID, err)
		return err
	}

	return nil
}

// Delete removes a routine and its materials. Deleting an absent routine
// returns gorm.ErrRecordNotFound.
func (r *RoutineRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Where("routine_id = ?", id).Delete(&models.Material{}).Error
	if err != nil {
		err = fmt.Errorf("failed to delete materials for routine %d: %w", id, err)
		return err
	}

	result := db.Delete(&models.Routine{}, id)
	if result.Error != nil {
		err = fmt.Errorf("failed to delete routine %d: %w", id, result.Error)
		return err
	}
	if result.RowsAffected == 0 {
		err = gorm.ErrRecordNotFound
		return err
	}

	return nil
}

// ByFilter retrieves routines based on filter criteria
func (r *RoutineRepositoryImpl) ByFilter(ctx context.Context, filter models.RoutineFilter, orderBy string, limit, offset int) ([]*models.Routine, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Routine{}), filter)

	if orderBy == "" {
		orderBy = "id ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var routines []*models.Routine
	err := query.Preload("Materials").Find(&routines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find routines by filter: %w", err)
	}

	return routines, nil
}

// Count returns the number of routines matching the filter
func (r *RoutineRepositoryImpl) Count(ctx context.Context, filter models.RoutineFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Routine{}), filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count routines: %w", err)
	}

	return count, nil
}

// Exists checks if any routine matching the filter exists
func (r *RoutineRepositoryImpl) Exists(ctx context.Context, filter models.RoutineFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *RoutineRepositoryImpl) applyFilter(query *gorm.DB, filter models.RoutineFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}

	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}

	if filter.MagicianID != nil {
		query = query.Where("magician_id = ?", *filter.MagicianID)
	}

	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}

	if filter.Keyword != nil {
		pattern := "%" + *filter.Keyword + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	return query
}
