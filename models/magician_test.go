package models

import (
	"testing"
	"time"

	"github.com/PlayWithMagic/PlayWithMagic/utils"
	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name     string
		magician Magician
		expected string
	}{
		{
			name:     "stage name wins when set",
			magician: Magician{FirstName: "Mark", LastName: "Nelson", StageName: utils.ToPtr("The Great Marko")},
			expected: "The Great Marko",
		},
		{
			name:     "blank stage name falls back to first and last",
			magician: Magician{FirstName: "Mark", LastName: "Nelson", StageName: utils.ToPtr("")},
			expected: "Mark Nelson",
		},
		{
			name:     "nil stage name falls back to first and last",
			magician: Magician{FirstName: "Mark", LastName: "Nelson"},
			expected: "Mark Nelson",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.magician.FullName())
		})
	}
}

func TestYearsOfExperience(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		magician Magician
		expected int
	}{
		{
			name:     "unset year started",
			magician: Magician{},
			expected: 0,
		},
		{
			name:     "started twenty years ago",
			magician: Magician{YearStarted: utils.ToPtr(2005)},
			expected: 20,
		},
		{
			name:     "started this year",
			magician: Magician{YearStarted: utils.ToPtr(2025)},
			expected: 0,
		},
		{
			name:     "future year clamps to zero",
			magician: Magician{YearStarted: utils.ToPtr(2030)},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.magician.YearsOfExperience(now))
		})
	}
}

func TestDefaultMagicianTypeNames(t *testing.T) {
	names := DefaultMagicianTypeNames()

	assert.Equal(t, []string{
		MagicianTypeNeophyte,
		MagicianTypeEnthusiast,
		MagicianTypeHobbyist,
		MagicianTypeSemiProfessional,
		MagicianTypeProfessional,
		MagicianTypeHistorian,
		MagicianTypeCollector,
	}, names)

	// Registry order is stable across calls
	assert.Equal(t, names, DefaultMagicianTypeNames())
}
