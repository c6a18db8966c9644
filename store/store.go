package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"content-studio/models"
)

// ErrNotFound is returned when a lookup by id, slug or token misses.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyResponded is returned when a response is submitted against an
// approval link that already left the pending state.
var ErrAlreadyResponded = errors.New("approval link already responded")

// Gateway is the persistence contract the services are written against.
// Tests substitute mocks; production uses the gorm-backed Store below.
type Gateway interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompanyBySlug(ctx context.Context, slug string) (*models.Company, error)

	ListContentItems(ctx context.Context, companyID uint, month, year *int) ([]models.ContentItem, error)
	GetContentItem(ctx context.Context, id uint) (*models.ContentItem, error)
	CreateContentItem(ctx context.Context, item *models.ContentItem) error
	UpdateContentItem(ctx context.Context, id uint, fields map[string]interface{}) (*models.ContentItem, error)
	DeleteContentItem(ctx context.Context, id uint) error
	CountContentItems(ctx context.Context, companyID uint) (int64, error)

	CreateApprovalLink(ctx context.Context, link *models.ApprovalLink) error
	GetApprovalLinkByToken(ctx context.Context, token string) (*models.ApprovalLink, error)
	RespondApprovalLink(ctx context.Context, token string, status models.ApprovalStatus, comment, clientName string) (*models.ApprovalLink, error)
}

// Store implements Gateway on a gorm Postgres connection.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := s.db.WithContext(ctx).Order("name").Find(&companies).Error
	return companies, err
}

func (s *Store) GetCompanyBySlug(ctx context.Context, slug string) (*models.Company, error) {
	var company models.Company
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// ListContentItems returns the company's items ordered by manual sort position
// then publication date. Month and year restrict the calendar bucket when set.
func (s *Store) ListContentItems(ctx context.Context, companyID uint, month, year *int) ([]models.ContentItem, error) {
	query := s.db.WithContext(ctx).Where("company_id = ?", companyID)
	if month != nil {
		query = query.Where("month = ?", *month)
	}
	if year != nil {
		query = query.Where("year = ?", *year)
	}
	var items []models.ContentItem
	err := query.Order("sort_order asc").Order("publish_date asc").Find(&items).Error
	return items, err
}

func (s *Store) GetContentItem(ctx context.Context, id uint) (*models.ContentItem, error) {
	var item models.ContentItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateContentItem(ctx context.Context, item *models.ContentItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// UpdateContentItem applies a partial update and stamps updated_at.
func (s *Store) UpdateContentItem(ctx context.Context, id uint, fields map[string]interface{}) (*models.ContentItem, error) {
	fields["updated_at"] = time.Now()
	res := s.db.WithContext(ctx).Model(&models.ContentItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetContentItem(ctx, id)
}

func (s *Store) DeleteContentItem(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.ContentItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CountContentItems(ctx context.Context, companyID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.ContentItem{}).
		Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (s *Store) CreateApprovalLink(ctx context.Context, link *models.ApprovalLink) error {
	return s.db.WithContext(ctx).Create(link).Error
}

func (s *Store) GetApprovalLinkByToken(ctx context.Context, token string) (*models.ApprovalLink, error) {
	var link models.ApprovalLink
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// RespondApprovalLink records the one allowed response. The update is
// conditional on the stored status still being pending, so two concurrent
// responses cannot both win; the loser gets ErrAlreadyResponded.
func (s *Store) RespondApprovalLink(ctx context.Context, token string, status models.ApprovalStatus, comment, clientName string) (*models.ApprovalLink, error) {
	now := time.Now()
	res := s.db.WithContext(ctx).Model(&models.ApprovalLink{}).
		Where("token = ? AND status = ?", token, models.ApprovalPending).
		Updates(map[string]interface{}{
			"status":       status,
			"comment":      comment,
			"client_name":  clientName,
			"responded_at": now,
			"updated_at":   now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing link from one that already took a response.
		link, err := s.GetApprovalLinkByToken(ctx, token)
		if err != nil {
			return nil, err
		}
		if link.Responded() {
			return nil, ErrAlreadyResponded
		}
		return nil, ErrNotFound
	}
	return s.GetApprovalLinkByToken(ctx, token)
}
