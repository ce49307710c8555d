package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ArtisanProfile is the 1:1 extension of a User with role artisan.
// Latitude/Longitude are optional; profiles without both are excluded from
// radius search.
type ArtisanProfile struct {
	BaseModel
	UserID    string         `gorm:"uniqueIndex;not null"`
	Skills    datatypes.JSON `gorm:"type:jsonb"` // ["plumbing", "tiling"]
	Location  string         `gorm:"not null;index"`
	Latitude  *float64
	Longitude *float64

	User User `gorm:"foreignKey:UserID"`
}

// HasCoordinates reports whether both coordinates are populated.
func (a *ArtisanProfile) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// GetSkills decodes the JSONB skills column. Returns nil on empty or
// malformed data.
func (a *ArtisanProfile) GetSkills() []string {
	if len(a.Skills) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(a.Skills, &skills); err != nil {
		return nil
	}
	return skills
}

// SetSkills encodes the given skill tags into the JSONB column.
func (a *ArtisanProfile) SetSkills(skills []string) error {
	data, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	a.Skills = datatypes.JSON(data)
	return nil
}
