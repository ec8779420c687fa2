// Package businessflow contains the core business logic and use cases for account and profile workflows
package businessflow

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	"github.com/PlayWithMagic/PlayWithMagic/app/services"
	"github.com/PlayWithMagic/PlayWithMagic/models"
	"github.com/PlayWithMagic/PlayWithMagic/repository"
	"github.com/PlayWithMagic/PlayWithMagic/utils"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// AccountFlow handles magician account lifecycle business logic
type AccountFlow interface {
	CreateOrUpdateAccount(ctx context.Context, req *dto.AccountRequest, metadata *ClientMetadata) (*dto.AccountResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest, metadata *ClientMetadata) (*dto.RefreshTokenResponse, error)
	ValidateCredentials(ctx context.Context, email, password string) (bool, error)
	DeleteAccount(ctx context.Context, magicianID uint, metadata *ClientMetadata) error
}

// AccountFlowImpl implements the account business flow
type AccountFlowImpl struct {
	magicianRepo     repository.MagicianRepository
	magicianTypeRepo repository.MagicianTypeRepository
	auditRepo        repository.AuditLogRepository
	tokenService     services.TokenService
	redisClient      *redis.Client
	bcryptCost       int
	db               *gorm.DB
}

// NewAccountFlow creates a new account flow instance
func NewAccountFlow(
	magicianRepo repository.MagicianRepository,
	magicianTypeRepo repository.MagicianTypeRepository,
	auditRepo repository.AuditLogRepository,
	tokenService services.TokenService,
	redisClient *redis.Client,
	bcryptCost int,
	db *gorm.DB,
) AccountFlow {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &AccountFlowImpl{
		magicianRepo:     magicianRepo,
		magicianTypeRepo: magicianTypeRepo,
		auditRepo:        auditRepo,
		tokenService:     tokenService,
		redisClient:      redisClient,
		bcryptCost:       bcryptCost,
		db:               db,
	}
}

// CreateOrUpdateAccount registers a new magician when the request carries a
// zero ID, otherwise it updates the core account fields of the existing one.
func (a *AccountFlowImpl) CreateOrUpdateAccount(ctx context.Context, req *dto.AccountRequest, metadata *ClientMetadata) (*dto.AccountResponse, error) {
	var magician *models.Magician
	isNew := req.ID == 0

	err := repository.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		var err error
		if isNew {
			magician, err = a.registerMagician(txCtx, req)
		} else {
			magician, err = a.updateAccount(txCtx, req)
		}
		if err != nil {
			return err
		}

		// Reload to pick up the stored type association
		magician, err = a.magicianRepo.ByID(txCtx, magician.ID)
		if err != nil {
			return err
		}
		if magician == nil {
			return ErrMagicianNotFound
		}

		return nil
	})

	action := models.AuditActionAccountUpdated
	if isNew {
		action = models.AuditActionSignupCompleted
	}

	if err != nil {
		errMsg := fmt.Sprintf("Account save failed: %s", err.Error())
		failAction := action
		if isNew {
			failAction = models.AuditActionSignupFailed
		}
		_ = a.createAuditLog(ctx, magician, failAction, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("ACCOUNT_SAVE_FAILED", "Account save failed", err)
	}

	msg := fmt.Sprintf("Account saved successfully: %d", magician.ID)
	_ = a.createAuditLog(ctx, magician, action, msg, true, nil, metadata)

	a.invalidateMagicianListCache(ctx)

	message := "Account updated successfully"
	if isNew {
		message = "Account created successfully"
	}

	return &dto.AccountResponse{
		Message:  message,
		Magician: ToMagicianDTO(*magician),
	}, nil
}

// Login authenticates a magician by email and password and issues tokens
func (a *AccountFlowImpl) Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	magician, err := a.magicianRepo.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}
	if magician == nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrMagicianNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(magician.PasswordHash), []byte(req.Password)); err != nil {
		errMsg := fmt.Sprintf("Login failed for magician %d: incorrect password", magician.ID)
		_ = a.createAuditLog(ctx, magician, models.AuditActionLoginFailed, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrIncorrectPassword)
	}

	accessToken, refreshToken, err := a.tokenService.GenerateTokens(magician.ID)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	if err := a.magicianRepo.UpdateLastLogin(ctx, magician.ID); err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	msg := fmt.Sprintf("Login successful: %d", magician.ID)
	_ = a.createAuditLog(ctx, magician, models.AuditActionLoginSuccess, msg, true, nil, metadata)

	return &dto.LoginResponse{
		Message:      "Login successful",
		Token:        accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(utils.AccessTokenTTL.Seconds()),
		Magician:     ToMagicianDTO(*magician),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh access/refresh
// pair. The account must still exist, so tokens issued to a since-deleted
// account cannot be redeemed.
func (a *AccountFlowImpl) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest, metadata *ClientMetadata) (*dto.RefreshTokenResponse, error) {
	claims, err := a.tokenService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, NewBusinessError("TOKEN_REFRESH_FAILED", "Token refresh failed", err)
	}
	if claims.TokenType != "refresh" {
		return nil, NewBusinessError("TOKEN_REFRESH_FAILED", "Token refresh failed", services.ErrTokenInvalid)
	}

	magician, err := a.magicianRepo.ByID(ctx, claims.MagicianID)
	if err != nil {
		return nil, NewBusinessError("TOKEN_REFRESH_FAILED", "Token refresh failed", err)
	}
	if magician == nil {
		return nil, NewBusinessError("TOKEN_REFRESH_FAILED", "Token refresh failed", ErrMagicianNotFound)
	}

	accessToken, refreshToken, err := a.tokenService.RefreshToken(req.RefreshToken)
	if err != nil {
		return nil, NewBusinessError("TOKEN_REFRESH_FAILED", "Token refresh failed", err)
	}

	return &dto.RefreshTokenResponse{
		Message:      "Token refreshed successfully",
		Token:        accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(utils.AccessTokenTTL.Seconds()),
	}, nil
}

// ValidateCredentials reports whether the email and password match a stored
// account. Empty arguments, unknown emails, and wrong passwords all yield
// false without an error; only storage failures surface as errors.
func (a *AccountFlowImpl) ValidateCredentials(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	magician, err := a.magicianRepo.ByEmail(ctx, email)
	if err != nil {
		return false, NewBusinessError("CREDENTIAL_CHECK_FAILED", "Credential check failed", err)
	}
	if magician == nil {
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(magician.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}

	return true, nil
}

// DeleteAccount hard-deletes the magician row only. Owned routines are not
// cascaded; their owner reference is cleared at the storage boundary and the
// rows stay behind. Deleting an absent ID fails with ErrMagicianNotFound, so
// a second delete of the same account reports the same error as deleting a
// never-existing one.
func (a *AccountFlowImpl) DeleteAccount(ctx context.Context, magicianID uint, metadata *ClientMetadata) error {
	var magician *models.Magician

	err := repository.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		var err error
		magician, err = a.magicianRepo.ByID(txCtx, magicianID)
		if err != nil {
			return err
		}
		if magician == nil {
			return ErrMagicianNotFound
		}

		if err := a.magicianRepo.Delete(txCtx, magicianID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMagicianNotFound
			}
			return err
		}

		return nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Account deletion failed: %s", err.Error())
		_ = a.createAuditLog(ctx, magician, models.AuditActionAccountDeleted, errMsg, false, &errMsg, metadata)

		return NewBusinessError("ACCOUNT_DELETION_FAILED", "Account deletion failed", err)
	}

	msg := fmt.Sprintf("Account deleted successfully: %d", magicianID)
	_ = a.createAuditLog(ctx, magician, models.AuditActionAccountDeleted, msg, true, nil, metadata)

	a.invalidateMagicianListCache(ctx)

	return nil
}

// Private helper methods

func (a *AccountFlowImpl) registerMagician(ctx context.Context, req *dto.AccountRequest) (*models.Magician, error) {
	if err := requireAccountFields(req); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	// Type resolution comes before the uniqueness check so an unknown type
	// is reported even when the email is also taken
	magicianType, err := a.magicianTypeRepo.ByTypeName(ctx, req.MagicianType)
	if err != nil {
		return nil, err
	}
	if magicianType == nil {
		return nil, ErrMagicianTypeNotFound
	}

	exists, err := a.magicianRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return nil, err
	}

	magician := &models.Magician{
		UUID:           uuid.New(),
		MagicianTypeID: magicianType.ID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordHash:   string(hashedPassword),
	}

	if err := a.magicianRepo.Save(ctx, magician); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return magician, nil
}

func (a *AccountFlowImpl) updateAccount(ctx context.Context, req *dto.AccountRequest) (*models.Magician, error) {
	if err := requireAccountFields(req); err != nil {
		return nil, err
	}

	magician, err := a.magicianRepo.ByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if magician == nil {
		return nil, ErrMagicianNotFound
	}

	if req.Email != magician.Email {
		existing, err := a.magicianRepo.ByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != magician.ID {
			return nil, ErrEmailAlreadyExists
		}
	}

	magicianType, err := a.magicianTypeRepo.ByTypeName(ctx, req.MagicianType)
	if err != nil {
		return nil, err
	}
	if magicianType == nil {
		return nil, ErrMagicianTypeNotFound
	}

	magician.FirstName = req.FirstName
	magician.LastName = req.LastName
	magician.Email = req.Email
	magician.MagicianTypeID = magicianType.ID
	magician.UpdatedAt = utils.UTCNow()

	// Blank password keeps the current hash
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
		if err != nil {
			return nil, err
		}
		magician.PasswordHash = string(hashedPassword)
	}

	if err := a.magicianRepo.Save(ctx, magician); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return magician, nil
}

// requireAccountFields rejects empty required fields before anything is
// persisted. The form-binding layer validates too, but partial records must
// never reach the store.
func requireAccountFields(req *dto.AccountRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.MagicianType == "" {
		return ErrRequiredFieldMissing
	}
	return nil
}

func (a *AccountFlowImpl) invalidateMagicianListCache(ctx context.Context) {
	if a.redisClient == nil {
		return
	}
	_ = a.redisClient.Del(ctx, utils.MagicianListCacheKey).Err()
}

func (a *AccountFlowImpl) createAuditLog(ctx context.Context, magician *models.Magician, action, description string, success bool, errorMsg *string, metadata *ClientMetadata) error {
	var magicianID *uint
	if magician != nil {
		magicianID = &magician.ID
	}

	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		MagicianID:   magicianID,
		Action:       action,
		Description:  &description,
		Success:      utils.ToPtr(success),
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		ErrorMessage: errorMsg,
	}

	requestID := ctx.Value(RequestIDKey)
	if requestID != nil {
		requestIDStr, ok := requestID.(string)
		if ok {
			audit.RequestID = &requestIDStr
		}
	}

	return a.auditRepo.Save(ctx, audit)
}
