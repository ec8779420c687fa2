package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	"github.com/PlayWithMagic/PlayWithMagic/app/services"
	"github.com/PlayWithMagic/PlayWithMagic/models"
	"github.com/PlayWithMagic/PlayWithMagic/repository"
	testingutil "github.com/PlayWithMagic/PlayWithMagic/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTokenService(t *testing.T) services.TokenService {
	t.Helper()
	tokenService, err := services.NewTokenService(
		1*time.Hour,
		24*time.Hour,
		"test-issuer",
		"test-audience",
		false,
		"",
		"",
		"test-secret-key-for-jwt-signing-32-chars",
	)
	require.NoError(t, err)
	return tokenService
}

func newAccountFlowForTest(t *testing.T, testDB *testingutil.TestDB) AccountFlow {
	t.Helper()

	magicianRepo := repository.NewMagicianRepository(testDB.DB)
	magicianTypeRepo := repository.NewMagicianTypeRepository(testDB.DB)
	auditRepo := repository.NewAuditLogRepository(testDB.DB)

	return NewAccountFlow(
		magicianRepo,
		magicianTypeRepo,
		auditRepo,
		createTestTokenService(t),
		nil,
		10,
		testDB.DB,
	)
}

func testMetadata() *ClientMetadata {
	return NewClientMetadata("127.0.0.1", "go-test")
}

func TestCreateOrUpdateAccount(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newAccountFlowForTest(t, testDB)
		magicianRepo := repository.NewMagicianRepository(testDB.DB)

		t.Run("SuccessfulRegistration", func(t *testing.T) {
			req := &dto.AccountRequest{
				FirstName:    "Mark",
				LastName:     "Nelson",
				Email:        "test@test.com",
				MagicianType: models.MagicianTypeNeophyte,
				Password:     "P@ssw0rd",
			}

			result, err := flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, "Account created successfully", result.Message)
			assert.NotZero(t, result.Magician.ID)
			assert.Equal(t, "test@test.com", result.Magician.Email)
			assert.Equal(t, models.MagicianTypeNeophyte, result.Magician.MagicianType)

			// Stored hash must never equal the plaintext password
			stored, err := magicianRepo.ByEmail(context.Background(), "test@test.com")
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.NotEqual(t, "P@ssw0rd", stored.PasswordHash)
			assert.NotEmpty(t, stored.UUID)
		})

		t.Run("DuplicateEmailConflicts", func(t *testing.T) {
			req := &dto.AccountRequest{
				FirstName:    "Second",
				LastName:     "Account",
				Email:        "test@test.com",
				MagicianType: models.MagicianTypeHobbyist,
				Password:     "An0therP@ss",
			}

			result, err := flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsEmailAlreadyExists(err))
		})

		t.Run("UnknownMagicianTypeRejected", func(t *testing.T) {
			req := &dto.AccountRequest{
				FirstName:    "Nadia",
				LastName:     "Vale",
				Email:        "nadia@test.com",
				MagicianType: "Wizard",
				Password:     "P@ssw0rd",
			}

			result, err := flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsMagicianTypeNotFound(err))

			// A failed registration must not leave a row behind
			stored, err := magicianRepo.ByEmail(context.Background(), "nadia@test.com")
			require.NoError(t, err)
			assert.Nil(t, stored)
		})

		t.Run("UnknownTypeReportedBeforeTakenEmail", func(t *testing.T) {
			// Both defects at once: the type error wins
			req := &dto.AccountRequest{
				FirstName:    "Copy",
				LastName:     "Cat",
				Email:        "test@test.com",
				MagicianType: "Wizard",
				Password:     "P@ssw0rd",
			}

			result, err := flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsMagicianTypeNotFound(err))
			assert.False(t, IsEmailAlreadyExists(err))
		})

		t.Run("EmptyRequiredFieldRejected", func(t *testing.T) {
			req := &dto.AccountRequest{
				FirstName:    "",
				LastName:     "Blank",
				Email:        "blank@test.com",
				MagicianType: models.MagicianTypeNeophyte,
				Password:     "P@ssw0rd",
			}

			result, err := flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsRequiredFieldMissing(err))

			// Nothing may be persisted from a partial form
			stored, err := magicianRepo.ByEmail(context.Background(), "blank@test.com")
			require.NoError(t, err)
			assert.Nil(t, stored)

			req.FirstName = "Blank"
			req.Email = ""
			result, err = flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsRequiredFieldMissing(err))
		})

		t.Run("RegistrationRequiresPassword", func(t *testing.T) {
			req := &dto.AccountRequest{
				FirstName:    "Ben",
				LastName:     "Quiet",
				Email:        "ben@test.com",
				MagicianType: models.MagicianTypeNeophyte,
			}

			result, err := flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsPasswordRequired(err))
		})

		t.Run("UpdatePreservesPasswordWhenBlank", func(t *testing.T) {
			stored, err := magicianRepo.ByEmail(context.Background(), "test@test.com")
			require.NoError(t, err)
			require.NotNil(t, stored)
			originalHash := stored.PasswordHash

			req := &dto.AccountRequest{
				ID:           stored.ID,
				FirstName:    "Marcus",
				LastName:     "Nelson",
				Email:        "test@test.com",
				MagicianType: models.MagicianTypeProfessional,
			}

			result, err := flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, "Account updated successfully", result.Message)
			assert.Equal(t, "Marcus", result.Magician.FirstName)
			assert.Equal(t, models.MagicianTypeProfessional, result.Magician.MagicianType)

			updated, err := magicianRepo.ByID(context.Background(), stored.ID)
			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.Equal(t, originalHash, updated.PasswordHash)

			// The original credentials must still validate
			valid, err := flow.ValidateCredentials(context.Background(), "test@test.com", "P@ssw0rd")
			require.NoError(t, err)
			assert.True(t, valid)
		})

		t.Run("UpdateUnknownIDFails", func(t *testing.T) {
			req := &dto.AccountRequest{
				ID:           999999,
				FirstName:    "Ghost",
				LastName:     "Writer",
				Email:        "ghost@test.com",
				MagicianType: models.MagicianTypeNeophyte,
			}

			result, err := flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsMagicianNotFound(err))
		})

		t.Run("UpdateToTakenEmailConflicts", func(t *testing.T) {
			other, err := flow.CreateOrUpdateAccount(context.Background(), &dto.AccountRequest{
				FirstName:    "Rival",
				LastName:     "Conjurer",
				Email:        "rival@test.com",
				MagicianType: models.MagicianTypeCollector,
				Password:     "P@ssw0rd",
			}, testMetadata())
			require.NoError(t, err)

			req := &dto.AccountRequest{
				ID:           other.Magician.ID,
				FirstName:    "Rival",
				LastName:     "Conjurer",
				Email:        "test@test.com",
				MagicianType: models.MagicianTypeCollector,
			}

			result, err := flow.CreateOrUpdateAccount(context.Background(), req, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsEmailAlreadyExists(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestValidateCredentials(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newAccountFlowForTest(t, testDB)

		_, err := flow.CreateOrUpdateAccount(context.Background(), &dto.AccountRequest{
			FirstName:    "Mark",
			LastName:     "Nelson",
			Email:        "test@test.com",
			MagicianType: models.MagicianTypeNeophyte,
			Password:     "P@ssw0rd",
		}, testMetadata())
		require.NoError(t, err)

		t.Run("CorrectCredentials", func(t *testing.T) {
			valid, err := flow.ValidateCredentials(context.Background(), "test@test.com", "P@ssw0rd")
			require.NoError(t, err)
			assert.True(t, valid)
		})

		t.Run("WrongPassword", func(t *testing.T) {
			valid, err := flow.ValidateCredentials(context.Background(), "test@test.com", "wrong-password")
			require.NoError(t, err)
			assert.False(t, valid)
		})

		t.Run("UnknownEmail", func(t *testing.T) {
			valid, err := flow.ValidateCredentials(context.Background(), "nobody@test.com", "P@ssw0rd")
			require.NoError(t, err)
			assert.False(t, valid)
		})

		t.Run("EmptyEmail", func(t *testing.T) {
			valid, err := flow.ValidateCredentials(context.Background(), "", "P@ssw0rd")
			require.NoError(t, err)
			assert.False(t, valid)
		})

		t.Run("EmptyPassword", func(t *testing.T) {
			valid, err := flow.ValidateCredentials(context.Background(), "test@test.com", "")
			require.NoError(t, err)
			assert.False(t, valid)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newAccountFlowForTest(t, testDB)
		magicianRepo := repository.NewMagicianRepository(testDB.DB)

		_, err := flow.CreateOrUpdateAccount(context.Background(), &dto.AccountRequest{
			FirstName:    "Mark",
			LastName:     "Nelson",
			Email:        "test@test.com",
			MagicianType: models.MagicianTypeNeophyte,
			Password:     "P@ssw0rd",
		}, testMetadata())
		require.NoError(t, err)

		t.Run("SuccessfulLogin", func(t *testing.T) {
			result, err := flow.Login(context.Background(), &dto.LoginRequest{
				Email:    "test@test.com",
				Password: "P@ssw0rd",
			}, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEmpty(t, result.Token)
			assert.NotEmpty(t, result.RefreshToken)
			assert.Equal(t, "Bearer", result.TokenType)

			stored, err := magicianRepo.ByEmail(context.Background(), "test@test.com")
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.NotNil(t, stored.LastLoginAt)
		})

		t.Run("WrongPassword", func(t *testing.T) {
			result, err := flow.Login(context.Background(), &dto.LoginRequest{
				Email:    "test@test.com",
				Password: "wrong-password",
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsIncorrectPassword(err))
		})

		t.Run("UnknownEmail", func(t *testing.T) {
			result, err := flow.Login(context.Background(), &dto.LoginRequest{
				Email:    "nobody@test.com",
				Password: "P@ssw0rd",
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsMagicianNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newAccountFlowForTest(t, testDB)
		fixtures := testingutil.NewTestFixtures(testDB)
		routineRepo := repository.NewRoutineRepository(testDB.DB)
		magicianRepo := repository.NewMagicianRepository(testDB.DB)

		magician, err := fixtures.CreateTestMagician(models.MagicianTypeProfessional)
		require.NoError(t, err)

		routine, err := fixtures.CreateTestRoutine(magician.ID, "Ambitious Card")
		require.NoError(t, err)

		t.Run("DeleteLeavesRoutinesBehind", func(t *testing.T) {
			err := flow.DeleteAccount(context.Background(), magician.ID, testMetadata())
			require.NoError(t, err)

			stored, err := magicianRepo.ByID(context.Background(), magician.ID)
			require.NoError(t, err)
			assert.Nil(t, stored)

			// No cascade: the routine survives with its owner reference cleared
			orphan, err := routineRepo.ByID(context.Background(), routine.ID)
			require.NoError(t, err)
			require.NotNil(t, orphan)
			assert.Zero(t, orphan.MagicianID)
		})

		t.Run("SecondDeleteReportsNotFound", func(t *testing.T) {
			err := flow.DeleteAccount(context.Background(), magician.ID, testMetadata())
			require.Error(t, err)
			assert.True(t, IsMagicianNotFound(err))
		})

		t.Run("DeleteUnknownIDReportsNotFound", func(t *testing.T) {
			err := flow.DeleteAccount(context.Background(), 424242, testMetadata())
			require.Error(t, err)
			assert.True(t, IsMagicianNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestRefreshToken(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newAccountFlowForTest(t, testDB)

		created, err := flow.CreateOrUpdateAccount(context.Background(), &dto.AccountRequest{
			FirstName:    "Mark",
			LastName:     "Nelson",
			Email:        "test@test.com",
			MagicianType: models.MagicianTypeNeophyte,
			Password:     "P@ssw0rd",
		}, testMetadata())
		require.NoError(t, err)

		login, err := flow.Login(context.Background(), &dto.LoginRequest{
			Email:    "test@test.com",
			Password: "P@ssw0rd",
		}, testMetadata())
		require.NoError(t, err)

		t.Run("RefreshIssuesNewPair", func(t *testing.T) {
			result, err := flow.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
				RefreshToken: login.RefreshToken,
			}, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEmpty(t, result.Token)
			assert.NotEmpty(t, result.RefreshToken)
			assert.Equal(t, "Bearer", result.TokenType)
		})

		t.Run("AccessTokenRejectedForRefresh", func(t *testing.T) {
			result, err := flow.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
				RefreshToken: login.Token,
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, services.ErrTokenInvalid)
		})

		t.Run("GarbageTokenRejected", func(t *testing.T) {
			result, err := flow.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
				RefreshToken: "not-a-token",
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
		})

		t.Run("DeletedAccountCannotRefresh", func(t *testing.T) {
			err := flow.DeleteAccount(context.Background(), created.Magician.ID, testMetadata())
			require.NoError(t, err)

			result, err := flow.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
				RefreshToken: login.RefreshToken,
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsMagicianNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestAuditRowCarriesRequestID(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newAccountFlowForTest(t, testDB)
		auditRepo := repository.NewAuditLogRepository(testDB.DB)

		ctx := context.WithValue(context.Background(), RequestIDKey, "req-1234")

		created, err := flow.CreateOrUpdateAccount(ctx, &dto.AccountRequest{
			FirstName:    "Mark",
			LastName:     "Nelson",
			Email:        "test@test.com",
			MagicianType: models.MagicianTypeNeophyte,
			Password:     "P@ssw0rd",
		}, testMetadata())
		require.NoError(t, err)

		logs, err := auditRepo.ListByMagician(context.Background(), created.Magician.ID, 10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, logs)
		require.NotNil(t, logs[0].RequestID)
		assert.Equal(t, "req-1234", *logs[0].RequestID)

		return nil
	})
	require.NoError(t, err)
}
