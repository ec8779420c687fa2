// Package testing provides test utilities and database setup for testing the magician community API
package testing

import (
	"fmt"
	"math/rand"

	"github.com/PlayWithMagic/PlayWithMagic/models"
	"github.com/PlayWithMagic/PlayWithMagic/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestMagician creates a test magician with the specified experience level
func (tf *TestFixtures) CreateTestMagician(typeName string) (*models.Magician, error) {
	var magicianType models.MagicianType
	err := tf.DB.DB.Where("type_name = ?", typeName).Last(&magicianType).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find magician type %s: %w", typeName, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("TestPass123!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	suffix := rand.Intn(900000000) + 100000000

	magician := &models.Magician{
		UUID:           uuid.New(),
		MagicianTypeID: magicianType.ID,
		FirstName:      "Alyssa",
		LastName:       "Hacker",
		Email:          fmt.Sprintf("alyssa.hacker.%d.%d@example.com", magicianType.ID, suffix),
		PasswordHash:   string(hashedPassword),
		StageName:      utils.ToPtr("The Amazing Alyssa"),
		Location:       utils.ToPtr("Seattle, WA"),
	}

	err = tf.DB.DB.Create(magician).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test magician: %w", err)
	}

	return magician, nil
}

// CreateTestRoutine creates a test routine owned by the given magician
func (tf *TestFixtures) CreateTestRoutine(magicianID uint, name string) (*models.Routine, error) {
	routine := &models.Routine{
		UUID:        uuid.New(),
		MagicianID:  magicianID,
		Name:        name,
		Description: "A card is selected, signed, and found inside a sealed envelope.",
		Duration:    10,
		Materials: []models.Material{
			{
				Name:          "Bicycle deck",
				IsInspectable: true,
				Price:         utils.ToPtr(500),
			},
		},
	}

	err := tf.DB.DB.Create(routine).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test routine: %w", err)
	}

	return routine, nil
}
