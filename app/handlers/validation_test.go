package handlers

import (
	"testing"
	"time"

	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	"github.com/PlayWithMagic/PlayWithMagic/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidatorCustomRules(t *testing.T) {
	v := newRequestValidator()

	t.Run("AlphaSpace", func(t *testing.T) {
		assert.NoError(t, v.Var("Mary Jane", "alpha_space"))
		assert.Error(t, v.Var("M4rk", "alpha_space"))
		assert.Error(t, v.Var("O'Brien", "alpha_space"))
	})

	t.Run("PasswordStrength", func(t *testing.T) {
		assert.NoError(t, v.Var("SecurePass123", "password_strength"))
		assert.Error(t, v.Var("password", "password_strength"))
		assert.Error(t, v.Var("PASSWORD", "password_strength"))
		assert.Error(t, v.Var("12345678", "password_strength"))
	})

	t.Run("YearStarted", func(t *testing.T) {
		assert.NoError(t, v.Var(1995, "year_started"))
		assert.NoError(t, v.Var(time.Now().Year(), "year_started"))
		assert.Error(t, v.Var(1850, "year_started"))
		assert.Error(t, v.Var(time.Now().Year()+1, "year_started"))
	})
}

func TestAccountRequestValidation(t *testing.T) {
	v := newRequestValidator()

	valid := func() *dto.AccountRequest {
		return &dto.AccountRequest{
			FirstName:    "Mary",
			LastName:     "Jane",
			Email:        "mary@test.com",
			MagicianType: "Hobbyist",
			Password:     "SecurePass123",
			CaptchaID:    "challenge-1",
			CaptchaAngle: 120,
		}
	}

	t.Run("ValidRegistration", func(t *testing.T) {
		require.NoError(t, v.Struct(valid()))
	})

	t.Run("DigitsInNameRejected", func(t *testing.T) {
		req := valid()
		req.FirstName = "M4ry"
		assert.Error(t, v.Struct(req))
	})

	t.Run("WeakPasswordRejected", func(t *testing.T) {
		req := valid()
		req.Password = "alllowercase"
		assert.Error(t, v.Struct(req))
	})

	t.Run("RegistrationRequiresPassword", func(t *testing.T) {
		req := valid()
		req.Password = ""
		assert.Error(t, v.Struct(req))
	})

	t.Run("RegistrationRequiresCaptcha", func(t *testing.T) {
		req := valid()
		req.CaptchaID = ""
		assert.Error(t, v.Struct(req))
	})

	t.Run("UpdateWithoutPasswordOrCaptcha", func(t *testing.T) {
		req := valid()
		req.ID = 42
		req.Password = ""
		req.CaptchaID = ""
		assert.NoError(t, v.Struct(req))
	})
}

func TestProfileRequestValidation(t *testing.T) {
	v := newRequestValidator()

	valid := func() *dto.ProfileRequest {
		return &dto.ProfileRequest{
			ID:           7,
			FirstName:    "Mary",
			LastName:     "Jane",
			Email:        "mary@test.com",
			MagicianType: "Professional",
			StageName:    utils.ToPtr("The Marvelous Mary"),
			YearStarted:  utils.ToPtr(2001),
			Website:      utils.ToPtr("https://marvelousmary.example.com"),
		}
	}

	t.Run("ValidForm", func(t *testing.T) {
		require.NoError(t, v.Struct(valid()))
	})

	t.Run("BlankPasswordAllowed", func(t *testing.T) {
		req := valid()
		req.Password = ""
		assert.NoError(t, v.Struct(req))
	})

	t.Run("YearBeforeRangeRejected", func(t *testing.T) {
		req := valid()
		req.YearStarted = utils.ToPtr(1850)
		assert.Error(t, v.Struct(req))
	})

	t.Run("BadWebsiteRejected", func(t *testing.T) {
		req := valid()
		req.Website = utils.ToPtr("not a url")
		assert.Error(t, v.Struct(req))
	})
}
