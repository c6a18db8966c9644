package models

import "time"

// ApprovalStatus is the response state of an approval link. Once it leaves
// pending it is terminal.
type ApprovalStatus string

const (
	ApprovalPending          ApprovalStatus = "pending"
	ApprovalApproved         ApprovalStatus = "approved"
	ApprovalChangesRequested ApprovalStatus = "changes_requested"
)

// ApprovalLink is a token-gated, single-response record that lets an external
// client approve a content item or request changes. The token is the sole
// lookup key and access control.
type ApprovalLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ContentID uint `json:"content_id" gorm:"index;not null"`
	CompanyID uint `json:"company_id" gorm:"index;not null"`

	Token  string         `json:"token" gorm:"uniqueIndex;size:32;not null"`
	Status ApprovalStatus `json:"status" gorm:"index;default:'pending'"`

	ClientName  string     `json:"client_name,omitempty"`
	Comment     string     `json:"comment,omitempty" gorm:"type:text"`
	ExpiresAt   time.Time  `json:"expires_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func (ApprovalLink) TableName() string {
	return "approval_links"
}

// Expired reports whether the link's validity window has passed. Expiry is a
// read-time check only, never a stored mutation.
func (a *ApprovalLink) Expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && a.ExpiresAt.Before(now)
}

// Responded reports whether the link already received its one response.
func (a *ApprovalLink) Responded() bool {
	return a.Status != ApprovalPending
}
