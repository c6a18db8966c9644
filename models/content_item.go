package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ContentItem represents a single planned piece of content for a company,
// tracked through the workflow from ideation to publication.
type ContentItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyID uint `json:"company_id" gorm:"index;not null"`

	Title       string      `json:"title" gorm:"not null"`
	Type        ContentType `json:"type" gorm:"index;default:'carousel'"`
	Badge       string      `json:"badge,omitempty"` // free-text label, e.g. "VIRAL"
	PublishDate *time.Time  `json:"publish_date,omitempty"`
	Status      Status      `json:"status" gorm:"index;default:'draft'"`

	Description string `json:"description,omitempty" gorm:"type:text"` // narrative
	Caption     string `json:"caption,omitempty" gorm:"type:text"`

	// Ordered jsonb sequences. Slides accept plain strings or objects with a
	// text field; SlideTexts flattens both shapes.
	Slides       datatypes.JSON `json:"slides,omitempty" gorm:"type:jsonb"`
	ImagePrompts datatypes.JSON `json:"image_prompts,omitempty" gorm:"type:jsonb"`
	VideoPrompts datatypes.JSON `json:"video_prompts,omitempty" gorm:"type:jsonb"`
	MediaURLs    datatypes.JSON `json:"media_urls,omitempty" gorm:"type:jsonb"`

	// Calendar bucket: month/year plus manual sort position within the month.
	Month     int `json:"month" gorm:"index"` // 1-12
	Year      int `json:"year" gorm:"index"`
	SortOrder int `json:"sort_order"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

// slideObject is the structured slide shape older records used.
type slideObject struct {
	Text    string `json:"text"`
	Content string `json:"content"`
}

// SlideTexts returns the slide texts in order, flattening both the plain-string
// and the structured-object shape. Slides that decode to neither are skipped.
func (c *ContentItem) SlideTexts() []string {
	if len(c.Slides) == 0 {
		return nil
	}
	var rawSlides []json.RawMessage
	if err := json.Unmarshal(c.Slides, &rawSlides); err != nil {
		return nil
	}
	texts := make([]string, 0, len(rawSlides))
	for _, raw := range rawSlides {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			texts = append(texts, s)
			continue
		}
		var obj slideObject
		if err := json.Unmarshal(raw, &obj); err == nil {
			if obj.Text != "" {
				texts = append(texts, obj.Text)
			} else if obj.Content != "" {
				texts = append(texts, obj.Content)
			}
		}
	}
	return texts
}

// MediaURLList decodes the media_urls jsonb array.
func (c *ContentItem) MediaURLList() []string {
	var urls []string
	if len(c.MediaURLs) > 0 {
		_ = json.Unmarshal(c.MediaURLs, &urls)
	}
	return urls
}
