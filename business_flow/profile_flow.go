// Package businessflow contains the core business logic and use cases for account and profile workflows
package businessflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	"github.com/PlayWithMagic/PlayWithMagic/models"
	"github.com/PlayWithMagic/PlayWithMagic/repository"
	"github.com/PlayWithMagic/PlayWithMagic/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ProfileFlow handles magician profile business logic
type ProfileFlow interface {
	CreateOrUpdateProfile(ctx context.Context, req *dto.ProfileRequest, metadata *ClientMetadata) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, magicianID uint) (*dto.MagicianDTO, error)
	ListMagicians(ctx context.Context) (*dto.MagicianListResponse, error)
	ListMagicianTypes(ctx context.Context) ([]dto.MagicianTypeDTO, error)
}

// ProfileFlowImpl implements the profile business flow
type ProfileFlowImpl struct {
	magicianRepo     repository.MagicianRepository
	magicianTypeRepo repository.MagicianTypeRepository
	auditRepo        repository.AuditLogRepository
	redisClient      *redis.Client
	bcryptCost       int
	db               *gorm.DB
}

// NewProfileFlow creates a new profile flow instance
func NewProfileFlow(
	magicianRepo repository.MagicianRepository,
	magicianTypeRepo repository.MagicianTypeRepository,
	auditRepo repository.AuditLogRepository,
	redisClient *redis.Client,
	bcryptCost int,
	db *gorm.DB,
) ProfileFlow {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &ProfileFlowImpl{
		magicianRepo:     magicianRepo,
		magicianTypeRepo: magicianTypeRepo,
		auditRepo:        auditRepo,
		redisClient:      redisClient,
		bcryptCost:       bcryptCost,
		db:               db,
	}
}

// CreateOrUpdateProfile saves the full profile form. The target magician is
// resolved by ID first, falling back to email when the ID misses; editing a
// profile requires an existing account, so when neither resolves the save
// fails with ErrMagicianNotFound. Every optional field is overwritten with
// the submitted value, so fields left blank on the form clear their stored
// counterparts.
func (p *ProfileFlowImpl) CreateOrUpdateProfile(ctx context.Context, req *dto.ProfileRequest, metadata *ClientMetadata) (*dto.ProfileResponse, error) {
	var magician *models.Magician

	err := repository.WithTransaction(ctx, p.db, func(txCtx context.Context) error {
		var err error
		magician, err = p.saveProfile(txCtx, req)
		if err != nil {
			return err
		}

		magician, err = p.magicianRepo.ByID(txCtx, magician.ID)
		if err != nil {
			return err
		}
		if magician == nil {
			return ErrMagicianNotFound
		}

		return nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Profile save failed: %s", err.Error())
		_ = p.createAuditLog(ctx, magician, models.AuditActionProfileUpdated, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("PROFILE_SAVE_FAILED", "Profile save failed", err)
	}

	msg := fmt.Sprintf("Profile saved successfully: %d", magician.ID)
	_ = p.createAuditLog(ctx, magician, models.AuditActionProfileUpdated, msg, true, nil, metadata)

	p.invalidateMagicianListCache(ctx)

	return &dto.ProfileResponse{
		Message:  "Profile updated successfully",
		Magician: ToMagicianDTO(*magician),
	}, nil
}

// GetProfile returns the full profile of a magician
func (p *ProfileFlowImpl) GetProfile(ctx context.Context, magicianID uint) (*dto.MagicianDTO, error) {
	magician, err := p.magicianRepo.ByID(ctx, magicianID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_FETCH_FAILED", "Profile fetch failed", err)
	}
	if magician == nil {
		return nil, NewBusinessError("PROFILE_FETCH_FAILED", "Profile fetch failed", ErrMagicianNotFound)
	}

	result := ToMagicianDTO(*magician)
	return &result, nil
}

// ListMagicians returns the full roster in registration order. The listing
// is cached briefly; a cold or unavailable cache falls through to the store.
func (p *ProfileFlowImpl) ListMagicians(ctx context.Context) (*dto.MagicianListResponse, error) {
	if cached := p.readMagicianListCache(ctx); cached != nil {
		return cached, nil
	}

	magicians, err := p.magicianRepo.ListAll(ctx, 0, 0)
	if err != nil {
		return nil, NewBusinessError("MAGICIAN_LIST_FAILED", "Magician list failed", err)
	}

	items := make([]dto.MagicianDTO, 0, len(magicians))
	for _, m := range magicians {
		items = append(items, ToMagicianDTO(*m))
	}

	response := &dto.MagicianListResponse{
		Magicians: items,
		Total:     int64(len(items)),
	}

	p.writeMagicianListCache(ctx, response)

	return response, nil
}

// ListMagicianTypes returns the fixed experience-level categories in display order
func (p *ProfileFlowImpl) ListMagicianTypes(ctx context.Context) ([]dto.MagicianTypeDTO, error) {
	magicianTypes, err := p.magicianTypeRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("MAGICIAN_TYPE_LIST_FAILED", "Magician type list failed", err)
	}

	items := make([]dto.MagicianTypeDTO, 0, len(magicianTypes))
	for _, mt := range magicianTypes {
		items = append(items, ToMagicianTypeDTO(*mt))
	}

	return items, nil
}

// Private helper methods

func (p *ProfileFlowImpl) saveProfile(ctx context.Context, req *dto.ProfileRequest) (*models.Magician, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.MagicianType == "" {
		return nil, ErrRequiredFieldMissing
	}

	magician, err := p.resolveTarget(ctx, req)
	if err != nil {
		return nil, err
	}

	magicianType, err := p.magicianTypeRepo.ByTypeName(ctx, req.MagicianType)
	if err != nil {
		return nil, err
	}
	if magicianType == nil {
		return nil, ErrMagicianTypeNotFound
	}

	if req.Email != magician.Email {
		existing, err := p.magicianRepo.ByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != magician.ID {
			return nil, ErrEmailAlreadyExists
		}
	}

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), p.bcryptCost)
		if err != nil {
			return nil, err
		}
		magician.PasswordHash = string(hashedPassword)
	}

	magician.UpdatedAt = utils.UTCNow()

	magician.FirstName = req.FirstName
	magician.LastName = req.LastName
	magician.Email = req.Email
	magician.MagicianTypeID = magicianType.ID

	// Full overwrite of profile fields
	magician.StageName = req.StageName
	magician.Location = req.Location
	magician.Biography = req.Biography
	magician.Interests = req.Interests
	magician.Influences = req.Influences
	magician.YearStarted = req.YearStarted
	magician.Organizations = req.Organizations
	magician.Website = req.Website
	magician.Facebook = req.Facebook
	magician.Twitter = req.Twitter
	magician.LinkedIn = req.LinkedIn
	magician.GooglePlus = req.GooglePlus
	magician.Flickr = req.Flickr
	magician.Instagram = req.Instagram

	if err := p.magicianRepo.Save(ctx, magician); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return magician, nil
}

// resolveTarget finds the magician the profile form addresses: by ID when
// one is given, falling back to email when the ID misses. The profile form
// never creates accounts, so an unresolved target is ErrMagicianNotFound.
func (p *ProfileFlowImpl) resolveTarget(ctx context.Context, req *dto.ProfileRequest) (*models.Magician, error) {
	if req.ID != 0 {
		magician, err := p.magicianRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if magician != nil {
			return magician, nil
		}
	}

	magician, err := p.magicianRepo.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if magician == nil {
		return nil, ErrMagicianNotFound
	}

	return magician, nil
}

func (p *ProfileFlowImpl) readMagicianListCache(ctx context.Context) *dto.MagicianListResponse {
	if p.redisClient == nil {
		return nil
	}

	payload, err := p.redisClient.Get(ctx, utils.MagicianListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("magician list cache read failed: %v", err)
		}
		return nil
	}

	var response dto.MagicianListResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil
	}

	return &response
}

func (p *ProfileFlowImpl) writeMagicianListCache(ctx context.Context, response *dto.MagicianListResponse) {
	if p.redisClient == nil {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return
	}

	if err := p.redisClient.Set(ctx, utils.MagicianListCacheKey, payload, utils.MagicianListCacheTTL).Err(); err != nil {
		log.Printf("magician list cache write failed: %v", err)
	}
}

func (p *ProfileFlowImpl) invalidateMagicianListCache(ctx context.Context) {
	if p.redisClient == nil {
		return
	}
	_ = p.redisClient.Del(ctx, utils.MagicianListCacheKey).Err()
}

func (p *ProfileFlowImpl) createAuditLog(ctx context.Context, magician *models.Magician, action, description string, success bool, errorMsg *string, metadata *ClientMetadata) error {
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

	return p.auditRepo.Save(ctx, audit)
}
