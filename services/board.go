package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"content-studio/models"
	"content-studio/store"
)

// ErrValidation marks a request rejected before any persistence call was made
// (missing title, blank comment and the like).
var ErrValidation = errors.New("validation error")

// MonthAll is the sentinel month filter meaning "no month restriction".
const MonthAll = 0

// Board holds the Kanban state: one ordered item list per workflow column.
// Column iteration order is models.BoardColumns.
type Board struct {
	Columns map[models.Status][]models.ContentItem `json:"columns"`
}

// NewBoard returns a board with every column present and empty.
func NewBoard() *Board {
	b := &Board{Columns: make(map[models.Status][]models.ContentItem, len(models.BoardColumns))}
	for _, col := range models.BoardColumns {
		b.Columns[col] = []models.ContentItem{}
	}
	return b
}

// Total returns the number of items across all columns.
func (b *Board) Total() int {
	n := 0
	for _, items := range b.Columns {
		n += len(items)
	}
	return n
}

// find returns the column and index of the item, or ("", -1).
func (b *Board) find(itemID uint) (models.Status, int) {
	for _, col := range models.BoardColumns {
		for i, item := range b.Columns[col] {
			if item.ID == itemID {
				return col, i
			}
		}
	}
	return "", -1
}

// dragSession is the single in-flight drag. Source column and item id are
// captured at begin time so a completion callback applies the move against
// the state the user actually saw, not a re-read of possibly changed state.
type dragSession struct {
	itemID uint
	source models.Status
}

// BoardService loads and mutates the Kanban board for a company. Status
// writes for the same item id are serialized through per-item locks so two
// rapid drags cannot interleave their updates.
type BoardService struct {
	Store  store.Gateway
	Logger *zap.Logger

	mu        sync.Mutex
	drag      *dragSession
	itemLocks map[uint]*sync.Mutex
}

func NewBoardService(st store.Gateway, logger *zap.Logger) *BoardService {
	return &BoardService{
		Store:     st,
		Logger:    logger,
		itemLocks: make(map[uint]*sync.Mutex),
	}
}

func (s *BoardService) lockItem(id uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.itemLocks[id]; ok {
		return m
	}
	m := &sync.Mutex{}
	s.itemLocks[id] = m
	return m
}

// LoadBoard fetches every content item of the company (the board spans the
// whole dataset, no date restriction) and groups it into columns. Items whose
// stored status is not a known column key land in the draft column.
func (s *BoardService) LoadBoard(ctx context.Context, companyID uint) (*Board, error) {
	items, err := s.Store.ListContentItems(ctx, companyID, nil, nil)
	if err != nil {
		return nil, err
	}
	board := NewBoard()
	for _, item := range items {
		col := item.Status
		if !col.Known() {
			col = models.StatusDraft
		}
		board.Columns[col] = append(board.Columns[col], item)
	}
	return board, nil
}

// ApplyFilters returns a new board containing, per column, only the items
// matching the month filter (MonthAll keeps everything) and the status filter
// (empty keeps every column's items). The input board is not mutated.
func ApplyFilters(board *Board, monthFilter int, statusFilter models.Status) *Board {
	filtered := NewBoard()
	for _, col := range models.BoardColumns {
		for _, item := range board.Columns[col] {
			if monthFilter != MonthAll && item.Month != monthFilter {
				continue
			}
			if statusFilter != "" && item.Status != statusFilter {
				continue
			}
			filtered.Columns[col] = append(filtered.Columns[col], item)
		}
	}
	return filtered
}

// BeginDrag starts a drag for the given item. Only one drag can be in flight.
func (s *BoardService) BeginDrag(board *Board, itemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag != nil {
		return fmt.Errorf("drag already in progress for item %d", s.drag.itemID)
	}
	col, idx := board.find(itemID)
	if idx < 0 {
		return fmt.Errorf("item %d not on board", itemID)
	}
	s.drag = &dragSession{itemID: itemID, source: col}
	return nil
}

// CancelDrag abandons the in-flight drag without mutating the board.
func (s *BoardService) CancelDrag() {
	s.mu.Lock()
	s.drag = nil
	s.mu.Unlock()
}

// Drop completes the drag into targetColumn. A drop onto the source column is
// a no-op. Otherwise the status update is persisted first; only on success is
// the in-memory board changed, by removing the item from its source column
// and appending it to the end of the target column. On failure the board is
// left exactly as before and the error is returned for the caller to surface.
func (s *BoardService) Drop(ctx context.Context, board *Board, targetColumn models.Status) error {
	s.mu.Lock()
	drag := s.drag
	s.drag = nil
	s.mu.Unlock()

	if drag == nil {
		return errors.New("no drag in progress")
	}
	if !targetColumn.Known() {
		return fmt.Errorf("unknown column %q", targetColumn)
	}
	if targetColumn == drag.source {
		return nil
	}

	if _, err := s.MoveStatus(ctx, drag.itemID, targetColumn); err != nil {
		s.Logger.Error("status update failed, keeping item in source column",
			zap.Uint("item_id", drag.itemID),
			zap.String("target", string(targetColumn)),
			zap.Error(err))
		return err
	}

	source := board.Columns[drag.source]
	for i, item := range source {
		if item.ID != drag.itemID {
			continue
		}
		moved := item
		moved.Status = targetColumn
		board.Columns[drag.source] = append(append([]models.ContentItem{}, source[:i]...), source[i+1:]...)
		board.Columns[targetColumn] = append(board.Columns[targetColumn], moved)
		break
	}
	return nil
}

// MoveStatus persists a status change for one item. Writes for the same item
// id are serialized, so two rapid moves apply in order instead of racing.
func (s *BoardService) MoveStatus(ctx context.Context, itemID uint, target models.Status) (*models.ContentItem, error) {
	if !target.Known() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, target)
	}
	lock := s.lockItem(itemID)
	lock.Lock()
	defer lock.Unlock()
	return s.Store.UpdateContentItem(ctx, itemID, map[string]interface{}{
		"status": target,
	})
}

// CardRect is the vertical extent of a rendered card, supplied by the input
// adapter during a drag.
type CardRect struct {
	Top    float64
	Height float64
}

// InsertionIndex computes where a between-cards placeholder belongs: among
// the siblings (dragged card excluded) whose vertical midpoint lies below y,
// the one closest to y wins; with none below, the card appends at the end.
func InsertionIndex(y float64, siblings []CardRect) int {
	best := len(siblings)
	bestOffset := -1.0
	for i, r := range siblings {
		offset := y - (r.Top + r.Height/2)
		if offset < 0 && (bestOffset < 0 || offset > bestOffset) {
			best = i
			bestOffset = offset
		}
	}
	return best
}

// QuickCreateInput is the field set of the new-content and quick-demand
// actions. Everything beyond the title is optional.
type QuickCreateInput struct {
	Title       string
	Type        models.ContentType
	Badge       string
	Status      models.Status
	Description string
	Caption     string
	PublishDate *time.Time
	Slides      []string
	Month       int
	Year        int
}

// QuickCreate persists a new content item with status forced to draft unless
// the caller explicitly advances it, and sort position after all existing
// items of the company. On success the item is appended to its in-memory
// column without a full board reload.
func (s *BoardService) QuickCreate(ctx context.Context, board *Board, companyID uint, in QuickCreateInput) (*models.ContentItem, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	status := in.Status
	if !status.Known() {
		status = models.StatusDraft
	}
	contentType := in.Type
	if !models.ValidContentType(contentType) {
		contentType = models.TypeCarousel
	}

	count, err := s.Store.CountContentItems(ctx, companyID)
	if err != nil {
		return nil, err
	}

	item := &models.ContentItem{
		CompanyID:   companyID,
		Title:       in.Title,
		Type:        contentType,
		Badge:       in.Badge,
		Status:      status,
		Description: in.Description,
		Caption:     in.Caption,
		PublishDate: in.PublishDate,
		Month:       in.Month,
		Year:        in.Year,
		SortOrder:   int(count) + 1,
	}
	if len(in.Slides) > 0 {
		encoded, err := json.Marshal(in.Slides)
		if err != nil {
			return nil, err
		}
		item.Slides = datatypes.JSON(encoded)
	}
	if err := s.Store.CreateContentItem(ctx, item); err != nil {
		return nil, err
	}
	if board != nil {
		board.Columns[status] = append(board.Columns[status], *item)
	}
	s.Logger.Info("content item created",
		zap.Uint("id", item.ID),
		zap.Uint("company_id", companyID),
		zap.String("status", string(status)))
	return item, nil
}

// GroupByMonth buckets items into the 12 months of the annual view. Items
// with a month outside 1-12 are excluded from every bucket.
func GroupByMonth(items []models.ContentItem) map[int][]models.ContentItem {
	buckets := make(map[int][]models.ContentItem, 12)
	for m := 1; m <= 12; m++ {
		buckets[m] = []models.ContentItem{}
	}
	for _, item := range items {
		if item.Month >= 1 && item.Month <= 12 {
			buckets[item.Month] = append(buckets[item.Month], item)
		}
	}
	return buckets
}
