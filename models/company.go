package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Company represents a client organization whose content is planned.
// Companies are seeded out-of-band and read-only from the API's perspective.
type Company struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `json:"name" gorm:"not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"` // url-safe, used for routing

	// Brand colors as jsonb: {"primary": "#0c1f32", "secondary": "#1a3a5c"}
	Colors  datatypes.JSON `json:"colors,omitempty" gorm:"type:jsonb"`
	LogoURL string         `json:"logo_url,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

// BrandColors decodes the jsonb color payload. Missing or malformed colors
// yield zero values so callers can apply their own defaults.
type BrandColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

func (c *Company) BrandColors() BrandColors {
	var bc BrandColors
	if len(c.Colors) > 0 {
		_ = json.Unmarshal(c.Colors, &bc)
	}
	return bc
}
