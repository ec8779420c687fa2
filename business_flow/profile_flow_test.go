package businessflow

import (
	"context"
	"testing"

	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	"github.com/PlayWithMagic/PlayWithMagic/models"
	"github.com/PlayWithMagic/PlayWithMagic/repository"
	testingutil "github.com/PlayWithMagic/PlayWithMagic/testing"
	"github.com/PlayWithMagic/PlayWithMagic/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFlowForTest(testDB *testingutil.TestDB) ProfileFlow {
	magicianRepo := repository.NewMagicianRepository(testDB.DB)
	magicianTypeRepo := repository.NewMagicianTypeRepository(testDB.DB)
	auditRepo := repository.NewAuditLogRepository(testDB.DB)

	return NewProfileFlow(
		magicianRepo,
		magicianTypeRepo,
		auditRepo,
		nil,
		10,
		testDB.DB,
	)
}

func TestCreateOrUpdateProfile(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newProfileFlowForTest(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)
		magicianRepo := repository.NewMagicianRepository(testDB.DB)

		base, err := fixtures.CreateTestMagician(models.MagicianTypeHobbyist)
		require.NoError(t, err)

		t.Run("UpdateByID", func(t *testing.T) {
			req := &dto.ProfileRequest{
				ID:           base.ID,
				FirstName:    "Lee",
				LastName:     "Corden",
				Email:        base.Email,
				MagicianType: models.MagicianTypeHobbyist,
				StageName:    utils.ToPtr("Lee the Great"),
				Location:     utils.ToPtr("Portland, OR"),
				Biography:    utils.ToPtr("Started with a magic kit at age nine."),
				YearStarted:  utils.ToPtr(2005),
				Website:      utils.ToPtr("https://leethegreat.example.com"),
			}

			result, err := flow.CreateOrUpdateProfile(context.Background(), req, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, "Profile updated successfully", result.Message)
			assert.Equal(t, "Lee the Great", utils.Deref(result.Magician.StageName))
			assert.Equal(t, 2005, utils.Deref(result.Magician.YearStarted))
		})

		t.Run("TargetResolvedByEmailWithoutID", func(t *testing.T) {
			req := &dto.ProfileRequest{
				FirstName:    "Lee",
				LastName:     "Corden",
				Email:        base.Email,
				MagicianType: models.MagicianTypeSemiProfessional,
				StageName:    utils.ToPtr("Lee the Greater"),
			}

			result, err := flow.CreateOrUpdateProfile(context.Background(), req, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, "Profile updated successfully", result.Message)
			assert.Equal(t, models.MagicianTypeSemiProfessional, result.Magician.MagicianType)

			// Still one account for the email
			all, err := magicianRepo.ListAll(context.Background(), 0, 0)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})

		t.Run("MissedIDFallsBackToEmail", func(t *testing.T) {
			req := &dto.ProfileRequest{
				ID:           777777,
				FirstName:    "Lee",
				LastName:     "Corden",
				Email:        base.Email,
				MagicianType: models.MagicianTypeSemiProfessional,
				StageName:    utils.ToPtr("Lee the Greatest"),
			}

			result, err := flow.CreateOrUpdateProfile(context.Background(), req, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, base.ID, result.Magician.ID)
			assert.Equal(t, "Lee the Greatest", utils.Deref(result.Magician.StageName))

			all, err := magicianRepo.ListAll(context.Background(), 0, 0)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})

		t.Run("UnknownIDAndEmailFailsWithoutCreating", func(t *testing.T) {
			before, err := magicianRepo.ListAll(context.Background(), 0, 0)
			require.NoError(t, err)

			req := &dto.ProfileRequest{
				ID:           888888,
				FirstName:    "Nobody",
				LastName:     "Here",
				Email:        "nobody@test.com",
				MagicianType: models.MagicianTypeNeophyte,
			}

			result, err := flow.CreateOrUpdateProfile(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsMagicianNotFound(err))

			// The profile form never creates accounts
			after, err := magicianRepo.ListAll(context.Background(), 0, 0)
			require.NoError(t, err)
			assert.Len(t, after, len(before))
		})

		t.Run("UnknownEmailWithoutIDFails", func(t *testing.T) {
			req := &dto.ProfileRequest{
				FirstName:    "Pat",
				LastName:     "Silent",
				Email:        "pat@test.com",
				MagicianType: models.MagicianTypeNeophyte,
			}

			result, err := flow.CreateOrUpdateProfile(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsMagicianNotFound(err))

			stored, err := magicianRepo.ByEmail(context.Background(), "pat@test.com")
			require.NoError(t, err)
			assert.Nil(t, stored)
		})

		t.Run("FullOverwriteClearsOmittedFields", func(t *testing.T) {
			req := &dto.ProfileRequest{
				ID:           base.ID,
				FirstName:    "Lee",
				LastName:     "Corden",
				Email:        base.Email,
				MagicianType: models.MagicianTypeSemiProfessional,
				Location:     utils.ToPtr("Austin, TX"),
			}

			result, err := flow.CreateOrUpdateProfile(context.Background(), req, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, "Austin, TX", utils.Deref(result.Magician.Location))
			assert.Nil(t, result.Magician.StageName)
			assert.Nil(t, result.Magician.Biography)
			assert.Nil(t, result.Magician.YearStarted)
			assert.Nil(t, result.Magician.Website)
		})

		t.Run("BlankPasswordKeepsHash", func(t *testing.T) {
			stored, err := magicianRepo.ByID(context.Background(), base.ID)
			require.NoError(t, err)
			originalHash := stored.PasswordHash

			req := &dto.ProfileRequest{
				ID:           base.ID,
				FirstName:    "Lee",
				LastName:     "Corden",
				Email:        base.Email,
				MagicianType: models.MagicianTypeSemiProfessional,
			}

			_, err = flow.CreateOrUpdateProfile(context.Background(), req, testMetadata())
			require.NoError(t, err)

			updated, err := magicianRepo.ByID(context.Background(), base.ID)
			require.NoError(t, err)
			assert.Equal(t, originalHash, updated.PasswordHash)
		})

		t.Run("UnknownTypeFails", func(t *testing.T) {
			req := &dto.ProfileRequest{
				ID:           base.ID,
				FirstName:    "Lee",
				LastName:     "Corden",
				Email:        base.Email,
				MagicianType: "Sorcerer",
			}

			result, err := flow.CreateOrUpdateProfile(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsMagicianTypeNotFound(err))
		})

		t.Run("EmptyRequiredFieldRejected", func(t *testing.T) {
			req := &dto.ProfileRequest{
				ID:           base.ID,
				FirstName:    "Lee",
				LastName:     "",
				Email:        base.Email,
				MagicianType: models.MagicianTypeSemiProfessional,
			}

			result, err := flow.CreateOrUpdateProfile(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsRequiredFieldMissing(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestListMagicians(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newProfileFlowForTest(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)

		first, err := fixtures.CreateTestMagician(models.MagicianTypeNeophyte)
		require.NoError(t, err)
		second, err := fixtures.CreateTestMagician(models.MagicianTypeHistorian)
		require.NoError(t, err)

		result, err := flow.ListMagicians(context.Background())
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(2), result.Total)
		require.Len(t, result.Magicians, 2)

		// Registration order
		assert.Equal(t, first.ID, result.Magicians[0].ID)
		assert.Equal(t, second.ID, result.Magicians[1].ID)

		return nil
	})
	require.NoError(t, err)
}

func TestListMagicianTypes(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newProfileFlowForTest(testDB)

		types, err := flow.ListMagicianTypes(context.Background())
		require.NoError(t, err)
		require.Len(t, types, len(models.DefaultMagicianTypeNames()))

		for i, name := range models.DefaultMagicianTypeNames() {
			assert.Equal(t, name, types[i].TypeName)
		}

		return nil
	})
	require.NoError(t, err)
}

func TestGetProfile(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newProfileFlowForTest(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)

		magician, err := fixtures.CreateTestMagician(models.MagicianTypeEnthusiast)
		require.NoError(t, err)

		t.Run("ExistingMagician", func(t *testing.T) {
			result, err := flow.GetProfile(context.Background(), magician.ID)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, magician.Email, result.Email)
			assert.Equal(t, models.MagicianTypeEnthusiast, result.MagicianType)
		})

		t.Run("UnknownMagician", func(t *testing.T) {
			result, err := flow.GetProfile(context.Background(), 555555)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsMagicianNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}
