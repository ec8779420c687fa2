// Package businessflow contains the business logic for the application.
package businessflow

import (
	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	"github.com/PlayWithMagic/PlayWithMagic/models"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds all client-related information for audit logging
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToMagicianDTO converts a magician model to MagicianDTO for API responses
func ToMagicianDTO(magician models.Magician) dto.MagicianDTO {
	return dto.MagicianDTO{
		ID:            magician.ID,
		UUID:          magician.UUID.String(),
		FirstName:     magician.FirstName,
		LastName:      magician.LastName,
		Email:         magician.Email,
		MagicianType:  magician.MagicianType.TypeName,
		StageName:     magician.StageName,
		Location:      magician.Location,
		PhotoURL:      magician.PhotoURL,
		Biography:     magician.Biography,
		Interests:     magician.Interests,
		Influences:    magician.Influences,
		YearStarted:   magician.YearStarted,
		Organizations: magician.Organizations,
		Website:       magician.Website,
		Facebook:      magician.Facebook,
		Twitter:       magician.Twitter,
		LinkedIn:      magician.LinkedIn,
		GooglePlus:    magician.GooglePlus,
		Flickr:        magician.Flickr,
		Instagram:     magician.Instagram,
		CreatedAt:     magician.CreatedAt,
		LastLoginAt:   magician.LastLoginAt,
	}
}

// ToRoutineDTO converts a routine model to RoutineDTO for API responses
func ToRoutineDTO(routine models.Routine) dto.RoutineDTO {
	materials := make([]dto.MaterialDTO, 0, len(routine.Materials))
	for _, m := range routine.Materials {
		materials = append(materials, dto.MaterialDTO{
			ID:            m.ID,
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

	return dto.RoutineDTO{
		ID:               routine.ID,
		UUID:             routine.UUID.String(),
		MagicianID:       routine.MagicianID,
		Name:             routine.Name,
		Description:      routine.Description,
		Duration:         routine.Duration,
		Method:           routine.Method,
		Handling:         routine.Handling,
		ResetDuration:    routine.ResetDuration,
		ResetDescription: routine.ResetDescription,
		YouTubeURL:       routine.YouTubeURL,
		ImageURL:         routine.ImageURL,
		ReviewURL:        routine.ReviewURL,
		Inspiration:      routine.Inspiration,
		Placement:        routine.Placement,
		Choices:          routine.Choices,
		Materials:        materials,
		CreatedAt:        routine.CreatedAt,
		UpdatedAt:        routine.UpdatedAt,
	}
}

// ToMagicianTypeDTO converts a magician type model to MagicianTypeDTO
func ToMagicianTypeDTO(magicianType models.MagicianType) dto.MagicianTypeDTO {
	return dto.MagicianTypeDTO{
		ID:          magicianType.ID,
		TypeName:    magicianType.TypeName,
		DisplayName: magicianType.DisplayName,
		Description: magicianType.Description,
	}
}
