package repository_test

import (
	"context"
	"testing"

	"github.com/PlayWithMagic/PlayWithMagic/models"
	"github.com/PlayWithMagic/PlayWithMagic/repository"
	testingutil "github.com/PlayWithMagic/PlayWithMagic/testing"
	"github.com/PlayWithMagic/PlayWithMagic/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMagicianTypeRegistry(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewMagicianTypeRepository(testDB.DB)

		t.Run("SeedIsIdempotent", func(t *testing.T) {
			// The harness already seeded once; a second pass must not duplicate
			err := repository.EnsureDefaultMagicianTypes(context.Background(), testDB.DB)
			require.NoError(t, err)

			all, err := repo.ListAll(context.Background())
			require.NoError(t, err)
			assert.Len(t, all, len(models.DefaultMagicianTypeNames()))
		})

		t.Run("ListAllInDisplayOrder", func(t *testing.T) {
			all, err := repo.ListAll(context.Background())
			require.NoError(t, err)
			require.Len(t, all, len(models.DefaultMagicianTypeNames()))

			for i, name := range models.DefaultMagicianTypeNames() {
				assert.Equal(t, name, all[i].TypeName)
				assert.Equal(t, i+1, all[i].DisplayOrder)
			}
		})

		t.Run("ByTypeName", func(t *testing.T) {
			found, err := repo.ByTypeName(context.Background(), models.MagicianTypeHistorian)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, models.MagicianTypeHistorian, found.TypeName)
		})

		t.Run("ByTypeNameUnknownReturnsNil", func(t *testing.T) {
			found, err := repo.ByTypeName(context.Background(), "Illusionist")
			require.NoError(t, err)
			assert.Nil(t, found)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestMagicianRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewMagicianRepository(testDB.DB)
		typeRepo := repository.NewMagicianTypeRepository(testDB.DB)

		neophyte, err := typeRepo.ByTypeName(context.Background(), models.MagicianTypeNeophyte)
		require.NoError(t, err)
		require.NotNil(t, neophyte)

		magician := &models.Magician{
			UUID:           uuid.New(),
			MagicianTypeID: neophyte.ID,
			FirstName:      "Mark",
			LastName:       "Nelson",
			Email:          "mark@example.com",
			PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
		}

		t.Run("SaveInsertsWithZeroID", func(t *testing.T) {
			err := repo.Save(context.Background(), magician)
			require.NoError(t, err)
			assert.NotZero(t, magician.ID)
		})

		t.Run("ByEmail", func(t *testing.T) {
			found, err := repo.ByEmail(context.Background(), "mark@example.com")
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, magician.ID, found.ID)
			assert.Equal(t, models.MagicianTypeNeophyte, found.MagicianType.TypeName)
		})

		t.Run("ByEmailUnknownReturnsNil", func(t *testing.T) {
			found, err := repo.ByEmail(context.Background(), "nobody@example.com")
			require.NoError(t, err)
			assert.Nil(t, found)
		})

		t.Run("ExistsByEmail", func(t *testing.T) {
			exists, err := repo.ExistsByEmail(context.Background(), "mark@example.com")
			require.NoError(t, err)
			assert.True(t, exists)

			exists, err = repo.ExistsByEmail(context.Background(), "nobody@example.com")
			require.NoError(t, err)
			assert.False(t, exists)
		})

		t.Run("SaveOverwritesWithNonZeroID", func(t *testing.T) {
			magician.FirstName = "Marcus"
			magician.StageName = utils.ToPtr("The Great Marko")
			err := repo.Save(context.Background(), magician)
			require.NoError(t, err)

			found, err := repo.ByID(context.Background(), magician.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "Marcus", found.FirstName)
			assert.Equal(t, "The Great Marko", utils.Deref(found.StageName))
		})

		t.Run("DuplicateEmailRejectedByUniqueIndex", func(t *testing.T) {
			dup := &models.Magician{
				UUID:           uuid.New(),
				MagicianTypeID: neophyte.ID,
				FirstName:      "Copy",
				LastName:       "Cat",
				Email:          "mark@example.com",
				PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
			}

			err := repo.Save(context.Background(), dup)
			require.Error(t, err)
			assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
		})

		t.Run("DeleteAbsentRowReportsNotFound", func(t *testing.T) {
			err := repo.Delete(context.Background(), 999999)
			require.Error(t, err)
			assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		})

		t.Run("DeleteExistingRow", func(t *testing.T) {
			err := repo.Delete(context.Background(), magician.ID)
			require.NoError(t, err)

			found, err := repo.ByID(context.Background(), magician.ID)
			require.NoError(t, err)
			assert.Nil(t, found)
		})

		return nil
	})
	require.NoError(t, err)
}
