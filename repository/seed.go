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

// EnsureDefaultMagicianTypes seeds the fixed experience-level categories.
// Running it again is a no-op for names that already exist, so it is safe
// to call on every startup.
func EnsureDefaultMagicianTypes(ctx context.Context, db *gorm.DB) error {
	descriptions := map[string]string{
		models.MagicianTypeNeophyte:         "Just getting started with magic",
		models.MagicianTypeEnthusiast:       "Practices magic as a pastime",
		models.MagicianTypeHobbyist:         "Performs for friends and family",
		models.MagicianTypeSemiProfessional: "Performs paid shows part-time",
		models.MagicianTypeProfessional:     "Earns a living performing magic",
		models.MagicianTypeHistorian:        "Studies the history of magic",
		models.MagicianTypeCollector:        "Collects magic props and ephemera",
	}

	return WithTransaction(ctx, db, func(txCtx context.Context) error {
		tx, _ := txCtx.Value(TxContextKey).(*gorm.DB)

		for order, name := range models.DefaultMagicianTypeNames() {
			var existing models.MagicianType
			err := tx.Where("type_name = ?", name).Last(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check magician type %q: %w", name, err)
			}

			magicianType := models.MagicianType{
				TypeName:     name,
				DisplayName:  name,
				Description:  utils.ToPtr(descriptions[name]),
				DisplayOrder: order + 1,
			}
			if err := tx.Create(&magicianType).Error; err != nil {
				return fmt.Errorf("failed to seed magician type %q: %w", name, err)
			}
		}

		return nil
	})
}
