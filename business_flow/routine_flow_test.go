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

func newRoutineFlowForTest(testDB *testingutil.TestDB) RoutineFlow {
	routineRepo := repository.NewRoutineRepository(testDB.DB)
	magicianRepo := repository.NewMagicianRepository(testDB.DB)

	return NewRoutineFlow(routineRepo, magicianRepo, testDB.DB)
}

func TestCreateOrUpdateRoutine(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newRoutineFlowForTest(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)

		owner, err := fixtures.CreateTestMagician(models.MagicianTypeProfessional)
		require.NoError(t, err)
		stranger, err := fixtures.CreateTestMagician(models.MagicianTypeHobbyist)
		require.NoError(t, err)

		var routineID uint

		t.Run("CreateRoutineWithMaterials", func(t *testing.T) {
			req := &dto.RoutineRequest{
				Name:        "Torn and Restored",
				Description: "A borrowed bill is torn into quarters and restored.",
				Duration:    8,
				Method:      utils.ToPtr("Gimmicked duplicate bill."),
				Materials: []dto.MaterialRequest{
					{Name: "Dollar bill", IsGivenAway: true},
					{Name: "Thumb tip", Price: utils.ToPtr(1200)},
				},
			}

			result, err := flow.CreateOrUpdateRoutine(context.Background(), owner.ID, req, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotZero(t, result.Routine.ID)
			assert.Equal(t, owner.ID, result.Routine.MagicianID)
			assert.Len(t, result.Routine.Materials, 2)

			routineID = result.Routine.ID
		})

		t.Run("UpdateReplacesMaterials", func(t *testing.T) {
			req := &dto.RoutineRequest{
				ID:          routineID,
				Name:        "Torn and Restored Bill",
				Description: "A borrowed bill is torn into quarters and restored.",
				Duration:    10,
				Materials: []dto.MaterialRequest{
					{Name: "Twenty dollar bill", IsGivenAway: true},
				},
			}

			result, err := flow.CreateOrUpdateRoutine(context.Background(), owner.ID, req, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, "Torn and Restored Bill", result.Routine.Name)
			assert.Equal(t, 10, result.Routine.Duration)
			require.Len(t, result.Routine.Materials, 1)
			assert.Equal(t, "Twenty dollar bill", result.Routine.Materials[0].Name)
		})

		t.Run("UpdateByNonOwnerDenied", func(t *testing.T) {
			req := &dto.RoutineRequest{
				ID:          routineID,
				Name:        "Stolen Routine",
				Description: "Should never be saved.",
				Duration:    5,
			}

			result, err := flow.CreateOrUpdateRoutine(context.Background(), stranger.ID, req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsRoutineAccessDenied(err))
		})

		t.Run("UpdateUnknownRoutineFails", func(t *testing.T) {
			req := &dto.RoutineRequest{
				ID:          888888,
				Name:        "Phantom",
				Description: "No such routine.",
				Duration:    5,
			}

			result, err := flow.CreateOrUpdateRoutine(context.Background(), owner.ID, req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsRoutineNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestDeleteRoutine(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newRoutineFlowForTest(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)
		routineRepo := repository.NewRoutineRepository(testDB.DB)

		owner, err := fixtures.CreateTestMagician(models.MagicianTypeProfessional)
		require.NoError(t, err)
		stranger, err := fixtures.CreateTestMagician(models.MagicianTypeHobbyist)
		require.NoError(t, err)

		routine, err := fixtures.CreateTestRoutine(owner.ID, "Cups and Balls")
		require.NoError(t, err)

		t.Run("DeleteByNonOwnerDenied", func(t *testing.T) {
			err := flow.DeleteRoutine(context.Background(), stranger.ID, routine.ID, testMetadata())
			require.Error(t, err)
			assert.True(t, IsRoutineAccessDenied(err))
		})

		t.Run("DeleteByOwner", func(t *testing.T) {
			err := flow.DeleteRoutine(context.Background(), owner.ID, routine.ID, testMetadata())
			require.NoError(t, err)

			gone, err := routineRepo.ByID(context.Background(), routine.ID)
			require.NoError(t, err)
			assert.Nil(t, gone)
		})

		t.Run("DeleteUnknownRoutineFails", func(t *testing.T) {
			err := flow.DeleteRoutine(context.Background(), owner.ID, routine.ID, testMetadata())
			require.Error(t, err)
			assert.True(t, IsRoutineNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestSearchRoutines(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newRoutineFlowForTest(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)

		owner, err := fixtures.CreateTestMagician(models.MagicianTypeEnthusiast)
		require.NoError(t, err)

		_, err = fixtures.CreateTestRoutine(owner.ID, "Ambitious Card")
		require.NoError(t, err)
		_, err = fixtures.CreateTestRoutine(owner.ID, "Linking Rings")
		require.NoError(t, err)

		t.Run("MatchesByName", func(t *testing.T) {
			result, err := flow.SearchRoutines(context.Background(), "ambitious", 50, 0)
			require.NoError(t, err)
			require.Len(t, result.Routines, 1)
			assert.Equal(t, "Ambitious Card", result.Routines[0].Name)
		})

		t.Run("MatchesByDescription", func(t *testing.T) {
			result, err := flow.SearchRoutines(context.Background(), "sealed envelope", 50, 0)
			require.NoError(t, err)
			assert.Len(t, result.Routines, 2)
		})

		t.Run("NoMatches", func(t *testing.T) {
			result, err := flow.SearchRoutines(context.Background(), "levitation", 50, 0)
			require.NoError(t, err)
			assert.Empty(t, result.Routines)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestListRoutines(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newRoutineFlowForTest(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)

		owner, err := fixtures.CreateTestMagician(models.MagicianTypeCollector)
		require.NoError(t, err)
		other, err := fixtures.CreateTestMagician(models.MagicianTypeNeophyte)
		require.NoError(t, err)

		_, err = fixtures.CreateTestRoutine(owner.ID, "Ambitious Card")
		require.NoError(t, err)
		_, err = fixtures.CreateTestRoutine(other.ID, "Sponge Balls")
		require.NoError(t, err)

		result, err := flow.ListRoutines(context.Background(), owner.ID)
		require.NoError(t, err)
		require.Len(t, result.Routines, 1)
		assert.Equal(t, "Ambitious Card", result.Routines[0].Name)
		assert.Equal(t, int64(1), result.Total)

		return nil
	})
	require.NoError(t, err)
}
