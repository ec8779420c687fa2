// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	"github.com/PlayWithMagic/PlayWithMagic/app/services"
	businessflow "github.com/PlayWithMagic/PlayWithMagic/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// MagicianHandlerInterface defines the contract for magician account and profile handlers
type MagicianHandlerInterface interface {
	CreateOrUpdateAccount(c fiber.Ctx) error
	CreateOrUpdateProfile(c fiber.Ctx) error
	GetProfile(c fiber.Ctx) error
	ListMagicians(c fiber.Ctx) error
	ListMagicianTypes(c fiber.Ctx) error
	DeleteAccount(c fiber.Ctx) error
	UploadPhoto(c fiber.Ctx) error
	ExportRoster(c fiber.Ctx) error
}

// MagicianHandler handles magician account and profile HTTP requests
type MagicianHandler struct {
	accountFlow      businessflow.AccountFlow
	profileFlow      businessflow.ProfileFlow
	photoFlow        businessflow.PhotoFlow
	rosterExportFlow businessflow.RosterExportFlow
	captchaService   services.CaptchaService
	validator        *validator.Validate
}

// NewMagicianHandler creates a new magician handler
func NewMagicianHandler(
	accountFlow businessflow.AccountFlow,
	profileFlow businessflow.ProfileFlow,
	photoFlow businessflow.PhotoFlow,
	rosterExportFlow businessflow.RosterExportFlow,
	captchaService services.CaptchaService,
) *MagicianHandler {
	return &MagicianHandler{
		accountFlow:      accountFlow,
		profileFlow:      profileFlow,
		photoFlow:        photoFlow,
		rosterExportFlow: rosterExportFlow,
		captchaService:   captchaService,
		validator:        newRequestValidator(),
	}
}

func (h *MagicianHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *MagicianHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreateOrUpdateAccount handles the account form
// @Summary Create or Update Account
// @Description Register a new magician (zero id) or update an existing account's core fields
// @Tags Magicians
// @Accept json
// @Produce json
// @Param request body dto.AccountRequest true "Account form data"
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse} "Account saved"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Magician not found"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/magicians/account [post]
func (h *MagicianHandler) CreateOrUpdateAccount(c fiber.Ctx) error {
	var req dto.AccountRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	// New registrations answer the rotate captcha issued by /auth/captcha
	if req.ID == 0 && !h.captchaService.Verify(c.Context(), req.CaptchaID, req.CaptchaAngle) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Captcha verification failed", "CAPTCHA_FAILED", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.accountFlow.CreateOrUpdateAccount(h.createRequestContext(c, "/api/v1/magicians/account"), &req, metadata)
	if err != nil {
		if businessflow.IsEmailAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Email already exists", "EMAIL_EXISTS", nil)
		}
		if businessflow.IsMagicianNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Magician not found", "MAGICIAN_NOT_FOUND", nil)
		}
		if businessflow.IsMagicianTypeNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Magician type not found", "MAGICIAN_TYPE_NOT_FOUND", nil)
		}
		if businessflow.IsPasswordRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Password is required for new accounts", "PASSWORD_REQUIRED", nil)
		}
		if businessflow.IsRequiredFieldMissing(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "A required field is missing", "REQUIRED_FIELD_MISSING", nil)
		}

		log.Println("Account save failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Account save failed", "ACCOUNT_SAVE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result.Magician)
}

// CreateOrUpdateProfile handles the full profile form
// @Summary Create or Update Profile
// @Description Save the full profile form of an existing account, overwriting every optional field
// @Tags Magicians
// @Accept json
// @Produce json
// @Param request body dto.ProfileRequest true "Profile form data"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile saved"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Magician not found"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/magicians/profile [post]
func (h *MagicianHandler) CreateOrUpdateProfile(c fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.profileFlow.CreateOrUpdateProfile(h.createRequestContext(c, "/api/v1/magicians/profile"), &req, metadata)
	if err != nil {
		if businessflow.IsEmailAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Email already exists", "EMAIL_EXISTS", nil)
		}
		if businessflow.IsMagicianNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Magician not found", "MAGICIAN_NOT_FOUND", nil)
		}
		if businessflow.IsMagicianTypeNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Magician type not found", "MAGICIAN_TYPE_NOT_FOUND", nil)
		}
		if businessflow.IsRequiredFieldMissing(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "A required field is missing", "REQUIRED_FIELD_MISSING", nil)
		}

		log.Println("Profile save failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Profile save failed", "PROFILE_SAVE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result.Magician)
}

// GetProfile returns the full profile of a magician
// @Summary Get Profile
// @Description Fetch the full profile of a magician by ID
// @Tags Magicians
// @Produce json
// @Param id path int true "Magician ID"
// @Success 200 {object} dto.APIResponse{data=dto.MagicianDTO} "Profile fetched"
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 404 {object} dto.APIResponse "Magician not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/magicians/{id} [get]
func (h *MagicianHandler) GetProfile(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid magician ID", "INVALID_ID", nil)
	}

	result, err := h.profileFlow.GetProfile(h.createRequestContext(c, "/api/v1/magicians/:id"), uint(id))
	if err != nil {
		if businessflow.IsMagicianNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Magician not found", "MAGICIAN_NOT_FOUND", nil)
		}

		log.Println("Profile fetch failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Profile fetch failed", "PROFILE_FETCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Profile fetched successfully", result)
}

// ListMagicians returns the full roster in registration order
// @Summary List Magicians
// @Description List every registered magician in registration order
// @Tags Magicians
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MagicianListResponse} "Roster fetched"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/magicians [get]
func (h *MagicianHandler) ListMagicians(c fiber.Ctx) error {
	result, err := h.profileFlow.ListMagicians(h.createRequestContext(c, "/api/v1/magicians"))
	if err != nil {
		log.Println("Magician list failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Magician list failed", "MAGICIAN_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Magicians fetched successfully", result)
}

// ListMagicianTypes returns the fixed experience-level categories
// @Summary List Magician Types
// @Description List the experience-level categories in display order
// @Tags Magicians
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.MagicianTypeDTO} "Types fetched"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/magician-types [get]
func (h *MagicianHandler) ListMagicianTypes(c fiber.Ctx) error {
	result, err := h.profileFlow.ListMagicianTypes(h.createRequestContext(c, "/api/v1/magician-types"))
	if err != nil {
		log.Println("Magician type list failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Magician type list failed", "MAGICIAN_TYPE_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Magician types fetched successfully", result)
}

// DeleteAccount removes the authenticated magician's account
// @Summary Delete Account
// @Description Delete the authenticated magician's account; owned routines stay behind without an owner
// @Tags Magicians
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Account deleted"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Magician not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/magicians/account [delete]
func (h *MagicianHandler) DeleteAccount(c fiber.Ctx) error {
	magicianID, ok := c.Locals("magician_id").(uint)
	if !ok || magicianID == 0 {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "UNAUTHORIZED", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	err := h.accountFlow.DeleteAccount(h.createRequestContext(c, "/api/v1/magicians/account"), magicianID, metadata)
	if err != nil {
		if businessflow.IsMagicianNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Magician not found", "MAGICIAN_NOT_FOUND", nil)
		}

		log.Println("Account deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Account deletion failed", "ACCOUNT_DELETION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Account deleted successfully", nil)
}

// UploadPhoto stores a profile photo for the authenticated magician
// @Summary Upload Profile Photo
// @Description Upload a profile photo and generate a thumbnail
// @Tags Magicians
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Profile photo"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoUploadResponse} "Photo uploaded"
// @Failure 400 {object} dto.APIResponse "Invalid photo"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/magicians/photo [post]
func (h *MagicianHandler) UploadPhoto(c fiber.Ctx) error {
	magicianID, ok := c.Locals("magician_id").(uint)
	if !ok || magicianID == 0 {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "UNAUTHORIZED", nil)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Photo file is required", "INVALID_REQUEST", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Photo file could not be read", "INVALID_REQUEST", nil)
	}
	defer file.Close()

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.photoFlow.UploadPhoto(h.createRequestContext(c, "/api/v1/magicians/photo"), magicianID, fileHeader.Filename, fileHeader.Size, file, metadata)
	if err != nil {
		if businessflow.IsPhotoTooLarge(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Photo exceeds the maximum allowed size", "PHOTO_TOO_LARGE", nil)
		}
		if businessflow.IsUnsupportedPhotoFormat(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Unsupported photo format", "UNSUPPORTED_PHOTO_FORMAT", nil)
		}
		if businessflow.IsMagicianNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Magician not found", "MAGICIAN_NOT_FOUND", nil)
		}

		log.Println("Photo upload failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Photo upload failed", "PHOTO_UPLOAD_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ExportRoster downloads the roster as an xlsx workbook
// @Summary Export Roster
// @Description Download the full magician roster as an Excel file
// @Tags Magicians
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary "Roster workbook"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/magicians/export [get]
func (h *MagicianHandler) ExportRoster(c fiber.Ctx) error {
	filename, payload, err := h.rosterExportFlow.DownloadRosterExcel(h.createRequestContext(c, "/api/v1/magicians/export"))
	if err != nil {
		log.Println("Roster export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Roster export failed", "ROSTER_EXPORT_FAILED", nil)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *MagicianHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, "user_agent", c.Get("User-Agent"))
	ctx = context.WithValue(ctx, "ip_address", c.IP())
	ctx = context.WithValue(ctx, "endpoint", endpoint)
	ctx = context.WithValue(ctx, "cancel_func", cancel) // Store cancel function for cleanup

	return ctx
}
