// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/PlayWithMagic/PlayWithMagic/models"
	"github.com/PlayWithMagic/PlayWithMagic/utils"
	"gorm.io/gorm"
)

// MagicianRepositoryImpl implements MagicianRepository interface
type MagicianRepositoryImpl struct {
	*BaseRepository[models.Magician, models.MagicianFilter]
}

// NewMagicianRepository creates a new magician repository
func NewMagicianRepository(db *gorm.DB) MagicianRepository {
	return &MagicianRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Magician, models.MagicianFilter](db),
	}
}

// ByEmail retrieves a magician by exact email match
func (r *MagicianRepositoryImpl) ByEmail(ctx context.Context, email string) (*models.Magician, error) {
	db := r.getDB(ctx)

	var magician models.Magician
	err := db.Preload("MagicianType").
		Where("email = ?", email).
		Last(&magician).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find magician by email: %w", err)
	}

	return &magician, nil
}

// ByUUID retrieves a magician by UUID
func (r *MagicianRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.Magician, error) {
	db := r.getDB(ctx)

	var magician models.Magician
	err := db.Preload("MagicianType").
		Where("uuid = ?", uuid).
		Last(&magician).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find magician by UUID: %w", err)
	}

	return &magician, nil
}

// ByID retrieves a magician by ID with the magician type preloaded
func (r *MagicianRepositoryImpl) ByID(ctx context.Context, id uint) (*models.Magician, error) {
	db := r.getDB(ctx)

	var magician models.Magician
	err := db.Preload("MagicianType").Last(&magician, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find magician by ID %d: %w", id, err)
	}

	return &magician, nil
}

// ExistsByEmail reports whether any magician already holds the email
func (r *MagicianRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, models.MagicianFilter{Email: utils.ToPtr(email)})
}

// ListAll returns magicians ordered by ascending ID (registration order)
func (r *MagicianRepositoryImpl) ListAll(ctx context.Context, limit, offset int) ([]*models.Magician, error) {
	db := r.getDB(ctx)
	query := db.Preload("MagicianType").Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var magicians []*models.Magician
	err := query.Find(&magicians).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list magicians: %w", err)
	}

	return magicians, nil
}

// UpdatePassword sets a new password hash for the magician
func (r *MagicianRepositoryImpl) UpdatePassword(ctx context.Context, magicianID uint, passwordHash string) error {
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

	result := db.Model(&models.Magician{}).
		Where("id = ?", magicianID).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    utils.UTCNow(),
		})
	if result.Error != nil {
		err = fmt.Errorf("failed to update password: %w", result.Error)
		return err
	}
	if result.RowsAffected == 0 {
		err = gorm.ErrRecordNotFound
		return err
	}

	return nil
}

// UpdateLastLogin stamps the magician's last successful login time
func (r *MagicianRepositoryImpl) UpdateLastLogin(ctx context.Context, magicianID uint) error {
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

	err = db.Model(&models.Magician{}).
		Where("id = ?", magicianID).
		Update("last_login_at", utils.UTCNow()).Error
	if err != nil {
		err = fmt.Errorf("failed to update last login: %w", err)
		return err
	}

	return nil
}

// ByFilter retrieves magicians based on filter criteria
func (r *MagicianRepositoryImpl) ByFilter(ctx context.Context, filter models.MagicianFilter, orderBy string, limit, offset int) ([]*models.Magician, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Magician{}), filter)

	// Apply ordering (default to id ASC)
	if orderBy == "" {
		orderBy = "id ASC"
	}
	query = query.Order(orderBy)

	// Apply pagination
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var magicians []*models.Magician
	err := query.Preload("MagicianType").Find(&magicians).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find magicians by filter: %w", err)
	}

	return magicians, nil
}

// Count returns the number of magicians matching the filter
func (r *MagicianRepositoryImpl) Count(ctx context.Context, filter models.MagicianFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Magician{}), filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count magicians: %w", err)
	}

	return count, nil
}

// Exists checks if any magician matching the filter exists
func (r *MagicianRepositoryImpl) Exists(ctx context.Context, filter models.MagicianFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *MagicianRepositoryImpl) applyFilter(query *gorm.DB, filter models.MagicianFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("magicians.id = ?", *filter.ID)
	}

	if filter.UUID != nil {
		query = query.Where("magicians.uuid = ?", *filter.UUID)
	}

	if filter.MagicianTypeID != nil {
		query = query.Where("magicians.magician_type_id = ?", *filter.MagicianTypeID)
	}

	if filter.MagicianTypeName != nil {
		query = query.Joins("JOIN magician_types ON magicians.magician_type_id = magician_types.id").
			Where("magician_types.type_name = ?", *filter.MagicianTypeName)
	}

	if filter.Email != nil {
		query = query.Where("magicians.email = ?", *filter.Email)
	}

	if filter.FirstName != nil {
		query = query.Where("magicians.first_name = ?", *filter.FirstName)
	}

	if filter.LastName != nil {
		query = query.Where("magicians.last_name = ?", *filter.LastName)
	}

	if filter.StageName != nil {
		query = query.Where("magicians.stage_name = ?", *filter.StageName)
	}

	if filter.Location != nil {
		query = query.Where("magicians.location = ?", *filter.Location)
	}

	if filter.CreatedAfter != nil {
		query = query.Where("magicians.created_at >= ?", *filter.CreatedAfter)
	}

	if filter.CreatedBefore != nil {
		query = query.Where("magicians.created_at <= ?", *filter.CreatedBefore)
	}

	return query
}
