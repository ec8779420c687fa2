// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	businessflow "github.com/PlayWithMagic/PlayWithMagic/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// RoutineHandlerInterface defines the contract for routine handlers
type RoutineHandlerInterface interface {
	CreateOrUpdateRoutine(c fiber.Ctx) error
	GetRoutine(c fiber.Ctx) error
	ListMyRoutines(c fiber.Ctx) error
	SearchRoutines(c fiber.Ctx) error
	DeleteRoutine(c fiber.Ctx) error
}

// RoutineHandler handles routine catalog HTTP requests
type RoutineHandler struct {
	routineFlow businessflow.RoutineFlow
	validator   *validator.Validate
}

// NewRoutineHandler creates a new routine handler
func NewRoutineHandler(routineFlow businessflow.RoutineFlow) *RoutineHandler {
	return &RoutineHandler{
		routineFlow: routineFlow,
		validator:   newRequestValidator(),
	}
}

func (h *RoutineHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *RoutineHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreateOrUpdateRoutine handles the routine form
// @Summary Create or Update Routine
// @Description Save a routine for the authenticated magician
// @Tags Routines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RoutineRequest true "Routine form data"
// @Success 200 {object} dto.APIResponse{data=dto.RoutineResponse} "Routine saved"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Routine owned by another magician"
// @Failure 404 {object} dto.APIResponse "Routine not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/routines [post]
func (h *RoutineHandler) CreateOrUpdateRoutine(c fiber.Ctx) error {
	magicianID, ok := c.Locals("magician_id").(uint)
	if !ok || magicianID == 0 {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "UNAUTHORIZED", nil)
	}

	var req dto.RoutineRequest
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

	result, err := h.routineFlow.CreateOrUpdateRoutine(h.createRequestContext(c, "/api/v1/routines"), magicianID, &req, metadata)
	if err != nil {
		if businessflow.IsRoutineNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Routine not found", "ROUTINE_NOT_FOUND", nil)
		}
		if businessflow.IsRoutineAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Routine owned by another magician", "ROUTINE_ACCESS_DENIED", nil)
		}
		if businessflow.IsMagicianNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Magician not found", "MAGICIAN_NOT_FOUND", nil)
		}

		log.Println("Routine save failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Routine save failed", "ROUTINE_SAVE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result.Routine)
}

// GetRoutine returns a routine with its materials
// @Summary Get Routine
// @Description Fetch a routine by ID
// @Tags Routines
// @Produce json
// @Param id path int true "Routine ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoutineDTO} "Routine fetched"
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 404 {object} dto.APIResponse "Routine not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/routines/{id} [get]
func (h *RoutineHandler) GetRoutine(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid routine ID", "INVALID_ID", nil)
	}

	result, err := h.routineFlow.GetRoutine(h.createRequestContext(c, "/api/v1/routines/:id"), uint(id))
	if err != nil {
		if businessflow.IsRoutineNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Routine not found", "ROUTINE_NOT_FOUND", nil)
		}

		log.Println("Routine fetch failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Routine fetch failed", "ROUTINE_FETCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Routine fetched successfully", result)
}

// ListMyRoutines returns the authenticated magician's routines
// @Summary List My Routines
// @Description List the routines owned by the authenticated magician
// @Tags Routines
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RoutineListResponse} "Routines fetched"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/routines/mine [get]
func (h *RoutineHandler) ListMyRoutines(c fiber.Ctx) error {
	magicianID, ok := c.Locals("magician_id").(uint)
	if !ok || magicianID == 0 {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "UNAUTHORIZED", nil)
	}

	result, err := h.routineFlow.ListRoutines(h.createRequestContext(c, "/api/v1/routines/mine"), magicianID)
	if err != nil {
		if businessflow.IsMagicianNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Magician not found", "MAGICIAN_NOT_FOUND", nil)
		}

		log.Println("Routine list failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Routine list failed", "ROUTINE_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Routines fetched successfully", result)
}

// SearchRoutines matches a keyword against routine names and descriptions
// @Summary Search Routines
// @Description Search routines by keyword
// @Tags Routines
// @Produce json
// @Param q query string true "Search keyword"
// @Param limit query int false "Maximum results"
// @Param offset query int false "Result offset"
// @Success 200 {object} dto.APIResponse{data=dto.RoutineListResponse} "Search completed"
// @Failure 400 {object} dto.APIResponse "Missing keyword"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/routines/search [get]
func (h *RoutineHandler) SearchRoutines(c fiber.Ctx) error {
	keyword := c.Query("q")
	if keyword == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Search keyword is required", "INVALID_REQUEST", nil)
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	result, err := h.routineFlow.SearchRoutines(h.createRequestContext(c, "/api/v1/routines/search"), keyword, limit, offset)
	if err != nil {
		log.Println("Routine search failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Routine search failed", "ROUTINE_SEARCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Search completed successfully", result)
}

// DeleteRoutine removes a routine owned by the authenticated magician
// @Summary Delete Routine
// @Description Delete a routine owned by the authenticated magician
// @Tags Routines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Routine ID"
// @Success 200 {object} dto.APIResponse "Routine deleted"
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Routine owned by another magician"
// @Failure 404 {object} dto.APIResponse "Routine not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/routines/{id} [delete]
func (h *RoutineHandler) DeleteRoutine(c fiber.Ctx) error {
	magicianID, ok := c.Locals("magician_id").(uint)
	if !ok || magicianID == 0 {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "UNAUTHORIZED", nil)
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid routine ID", "INVALID_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	err = h.routineFlow.DeleteRoutine(h.createRequestContext(c, "/api/v1/routines/:id"), magicianID, uint(id), metadata)
	if err != nil {
		if businessflow.IsRoutineNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Routine not found", "ROUTINE_NOT_FOUND", nil)
		}
		if businessflow.IsRoutineAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Routine owned by another magician", "ROUTINE_ACCESS_DENIED", nil)
		}

		log.Println("Routine deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Routine deletion failed", "ROUTINE_DELETION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Routine deleted successfully", nil)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *RoutineHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, "user_agent", c.Get("User-Agent"))
	ctx = context.WithValue(ctx, "ip_address", c.IP())
	ctx = context.WithValue(ctx, "endpoint", endpoint)
	ctx = context.WithValue(ctx, "cancel_func", cancel) // Store cancel function for cleanup

	return ctx
}
