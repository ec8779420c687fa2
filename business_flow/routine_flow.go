// Package businessflow contains the core business logic and use cases for account and profile workflows
package businessflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	"github.com/PlayWithMagic/PlayWithMagic/models"
	"github.com/PlayWithMagic/PlayWithMagic/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoutineFlow handles routine catalog business logic
type RoutineFlow interface {
	CreateOrUpdateRoutine(ctx context.Context, magicianID uint, req *dto.RoutineRequest, metadata *ClientMetadata) (*dto.RoutineResponse, error)
	GetRoutine(ctx context.Context, routineID uint) (*dto.RoutineDTO, error)
	ListRoutines(ctx context.Context, magicianID uint) (*dto.RoutineListResponse, error)
	SearchRoutines(ctx context.Context, keyword string, limit, offset int) (*dto.RoutineListResponse, error)
	DeleteRoutine(ctx context.Context, magicianID, routineID uint, metadata *ClientMetadata) error
}

// RoutineFlowImpl implements the routine business flow
type RoutineFlowImpl struct {
	routineRepo  repository.RoutineRepository
	magicianRepo repository.MagicianRepository
	db           *gorm.DB
}

// NewRoutineFlow creates a new routine flow instance
func NewRoutineFlow(
	routineRepo repository.RoutineRepository,
	magicianRepo repository.MagicianRepository,
	db *gorm.DB,
) RoutineFlow {
	return &RoutineFlowImpl{
		routineRepo:  routineRepo,
		magicianRepo: magicianRepo,
		db:           db,
	}
}

// CreateOrUpdateRoutine saves a routine for the authenticated magician. A
// zero ID creates a new routine; a non-zero ID overwrites an existing one,
// which must belong to the caller.
func (r *RoutineFlowImpl) CreateOrUpdateRoutine(ctx context.Context, magicianID uint, req *dto.RoutineRequest, metadata *ClientMetadata) (*dto.RoutineResponse, error) {
	var routine *models.Routine
	isNew := req.ID == 0

	err := repository.WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		owner, err := r.magicianRepo.ByID(txCtx, magicianID)
		if err != nil {
			return err
		}
		if owner == nil {
			return ErrMagicianNotFound
		}

		if isNew {
			routine = &models.Routine{
				UUID:       uuid.New(),
				MagicianID: magicianID,
			}
		} else {
			routine, err = r.routineRepo.ByID(txCtx, req.ID)
			if err != nil {
				return err
			}
			if routine == nil {
				return ErrRoutineNotFound
			}
			if routine.MagicianID != magicianID {
				return ErrRoutineAccessDenied
			}

			// Materials are replaced wholesale on every save
			if err := r.routineRepo.ClearMaterials(txCtx, routine.ID); err != nil {
				return err
			}
		}

		r.applyRequest(routine, req)

		if err := r.routineRepo.Save(txCtx, routine); err != nil {
			return err
		}

		routine, err = r.routineRepo.ByID(txCtx, routine.ID)
		if err != nil {
			return err
		}
		if routine == nil {
			return ErrRoutineNotFound
		}

		return nil
	})

	if err != nil {
		return nil, NewBusinessError("ROUTINE_SAVE_FAILED", "Routine save failed", err)
	}

	message := "Routine updated successfully"
	if isNew {
		message = "Routine created successfully"
	}

	return &dto.RoutineResponse{
		Message: message,
		Routine: ToRoutineDTO(*routine),
	}, nil
}

// GetRoutine returns a routine with its materials
func (r *RoutineFlowImpl) GetRoutine(ctx context.Context, routineID uint) (*dto.RoutineDTO, error) {
	routine, err := r.routineRepo.ByID(ctx, routineID)
	if err != nil {
		return nil, NewBusinessError("ROUTINE_FETCH_FAILED", "Routine fetch failed", err)
	}
	if routine == nil {
		return nil, NewBusinessError("ROUTINE_FETCH_FAILED", "Routine fetch failed", ErrRoutineNotFound)
	}

	result := ToRoutineDTO(*routine)
	return &result, nil
}

// ListRoutines returns the routines owned by a magician
func (r *RoutineFlowImpl) ListRoutines(ctx context.Context, magicianID uint) (*dto.RoutineListResponse, error) {
	magician, err := r.magicianRepo.ByID(ctx, magicianID)
	if err != nil {
		return nil, NewBusinessError("ROUTINE_LIST_FAILED", "Routine list failed", err)
	}
	if magician == nil {
		return nil, NewBusinessError("ROUTINE_LIST_FAILED", "Routine list failed", ErrMagicianNotFound)
	}

	routines, err := r.routineRepo.ListByMagician(ctx, magicianID)
	if err != nil {
		return nil, NewBusinessError("ROUTINE_LIST_FAILED", "Routine list failed", err)
	}

	return r.toListResponse(routines), nil
}

// SearchRoutines matches the keyword against routine names and descriptions
func (r *RoutineFlowImpl) SearchRoutines(ctx context.Context, keyword string, limit, offset int) (*dto.RoutineListResponse, error) {
	routines, err := r.routineRepo.Search(ctx, keyword, limit, offset)
	if err != nil {
		return nil, NewBusinessError("ROUTINE_SEARCH_FAILED", "Routine search failed", err)
	}

	return r.toListResponse(routines), nil
}

// DeleteRoutine removes a routine owned by the caller
func (r *RoutineFlowImpl) DeleteRoutine(ctx context.Context, magicianID, routineID uint, metadata *ClientMetadata) error {
	err := repository.WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		routine, err := r.routineRepo.ByID(txCtx, routineID)
		if err != nil {
			return err
		}
		if routine == nil {
			return ErrRoutineNotFound
		}
		if routine.MagicianID != magicianID {
			return ErrRoutineAccessDenied
		}

		if err := r.routineRepo.Delete(txCtx, routineID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoutineNotFound
			}
			return err
		}

		return nil
	})

	if err != nil {
		return NewBusinessError("ROUTINE_DELETION_FAILED", fmt.Sprintf("Routine deletion failed: %d", routineID), err)
	}

	return nil
}

// Private helper methods

func (r *RoutineFlowImpl) applyRequest(routine *models.Routine, req *dto.RoutineRequest) {
	routine.Name = req.Name
	routine.Description = req.Description
	routine.Duration = req.Duration
	routine.Method = req.Method
	routine.Handling = req.Handling
	routine.ResetDuration = req.ResetDuration
	routine.ResetDescription = req.ResetDescription
	routine.YouTubeURL = req.YouTubeURL
	routine.ImageURL = req.ImageURL
	routine.ReviewURL = req.ReviewURL
	routine.Inspiration = req.Inspiration
	routine.Placement = req.Placement
	routine.Choices = req.Choices

	materials := make([]models.Material, 0, len(req.Materials))
	for _, m := range req.Materials {
		materials = append(materials, models.Material{
			RoutineID:     routine.ID,
			Name:          m.Name,
			IsInspectable: m.IsInspectable,
			IsGivenAway:   m.IsGivenAway,
			IsConsumed:    m.IsConsumed,
			Price:         m.Price,
			PurchaseURL:   m.PurchaseURL,
			ImageURL:      m.ImageURL,
			Description:   m.Description,
		})
	}
	routine.Materials = materials
}

func (r *RoutineFlowImpl) toListResponse(routines []*models.Routine) *dto.RoutineListResponse {
	items := make([]dto.RoutineDTO, 0, len(routines))
	for _, routine := range routines {
		items = append(items, ToRoutineDTO(*routine))
	}

	return &dto.RoutineListResponse{
		Routines: items,
		Total:    int64(len(items)),
	}
}
