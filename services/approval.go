package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"

	"content-studio/models"
	"content-studio/store"
)

// ErrExpired marks an approval link whose validity window has passed while it
// was still pending.
var ErrExpired = errors.New("approval link expired")

// Decision is the terminal response an external client can give.
type Decision string

const (
	DecisionApprove        Decision = "approve"
	DecisionRequestChanges Decision = "request_changes"
)

const (
	tokenLength   = 32
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateToken returns a fixed-length alphanumeric capability token drawn
// from crypto/rand. The token is the sole access control of the approval
// page, so it has to be unguessable.
func GenerateToken() (string, error) {
	var b strings.Builder
	b.Grow(tokenLength)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := 0; i < tokenLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(tokenAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// ApprovalView is the denormalized payload the approval page renders: the
// link plus its content item and company.
type ApprovalView struct {
	Link    *models.ApprovalLink `json:"link"`
	Content *models.ContentItem  `json:"content"`
	Company *models.Company      `json:"company"`
}

// ApprovalService owns the approval-link lifecycle: creation with a fresh
// token, token-gated loading, and the single allowed response.
type ApprovalService struct {
	Store  store.Gateway
	Logger *zap.Logger
	TTL    time.Duration // validity window for new links

	now func() time.Time // test hook
}

func NewApprovalService(st store.Gateway, logger *zap.Logger, ttl time.Duration) *ApprovalService {
	return &ApprovalService{Store: st, Logger: logger, TTL: ttl, now: time.Now}
}

// CreateLink generates a link for the content item. A content item may carry
// several links over its life; each gets its own token and expiry.
func (s *ApprovalService) CreateLink(ctx context.Context, contentID uint) (*models.ApprovalLink, error) {
	content, err := s.Store.GetContentItem(ctx, contentID)
	if err != nil {
		return nil, err
	}
	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}
	link := &models.ApprovalLink{
		ContentID: content.ID,
		CompanyID: content.CompanyID,
		Token:     token,
		Status:    models.ApprovalPending,
		ExpiresAt: s.now().Add(s.TTL),
	}
	if err := s.Store.CreateApprovalLink(ctx, link); err != nil {
		return nil, err
	}
	s.Logger.Info("approval link created",
		zap.Uint("content_id", content.ID),
		zap.Time("expires_at", link.ExpiresAt))
	return link, nil
}

// LoadApproval resolves a token to its renderable view. An empty or unknown
// token is ErrNotFound; a link still pending past its expiry is ErrExpired.
// Links that already took a response load normally so the page can show the
// "already responded" state with the stored comment.
func (s *ApprovalService) LoadApproval(ctx context.Context, token string) (*ApprovalView, error) {
	if token == "" {
		return nil, store.ErrNotFound
	}
	link, err := s.Store.GetApprovalLinkByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !link.Responded() && link.Expired(s.now()) {
		return nil, ErrExpired
	}
	content, err := s.Store.GetContentItem(ctx, link.ContentID)
	if err != nil {
		return nil, err
	}
	var company *models.Company
	companies, err := s.Store.ListCompanies(ctx)
	if err == nil {
		for i := range companies {
			if companies[i].ID == link.CompanyID {
				company = &companies[i]
				break
			}
		}
	}
	return &ApprovalView{Link: link, Content: content, Company: company}, nil
}

// Respond records the one allowed response for the link. Request-changes
// requires a non-blank comment, rejected before any gateway call. The stored
// status is re-validated through a conditional update, so a second concurrent
// response loses with store.ErrAlreadyResponded and never re-triggers the
// content side effect. Approval moves the content item to approved_scheduled.
func (s *ApprovalService) Respond(ctx context.Context, token string, decision Decision, comment, clientName string) (*models.ApprovalLink, error) {
	var status models.ApprovalStatus
	switch decision {
	case DecisionApprove:
		status = models.ApprovalApproved
	case DecisionRequestChanges:
		if strings.TrimSpace(comment) == "" {
			return nil, fmt.Errorf("%w: a comment describing the requested changes is required", ErrValidation)
		}
		status = models.ApprovalChangesRequested
	default:
		return nil, fmt.Errorf("%w: unknown decision %q", ErrValidation, decision)
	}

	link, err := s.Store.GetApprovalLinkByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link.Responded() {
		return nil, store.ErrAlreadyResponded
	}
	if link.Expired(s.now()) {
		return nil, ErrExpired
	}

	updated, err := s.Store.RespondApprovalLink(ctx, token, status, comment, clientName)
	if err != nil {
		return nil, err
	}

	if status == models.ApprovalApproved {
		if _, err := s.Store.UpdateContentItem(ctx, updated.ContentID, map[string]interface{}{
			"status": models.StatusApprovedScheduled,
		}); err != nil {
			// The response itself is committed; the content status catches up
			// on the next manual move.
			s.Logger.Error("content status side effect failed",
				zap.Uint("content_id", updated.ContentID),
				zap.Error(err))
		}
	}

	s.Logger.Info("approval link responded",
		zap.Uint("content_id", updated.ContentID),
		zap.String("decision", string(decision)))
	return updated, nil
}
