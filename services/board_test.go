package services_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"content-studio/models"
	"content-studio/services"
	"content-studio/store"
)

// mockGateway is an in-memory store.Gateway shared by the service tests.
type updateCall struct {
	id     uint
	fields map[string]interface{}
}

type mockGateway struct {
	mu        sync.Mutex
	companies []models.Company
	items     map[uint]*models.ContentItem
	links     map[string]*models.ApprovalLink
	nextID    uint

	failUpdates bool
	updates     []updateCall
}

func newMockGateway() *mockGateway {
	return &mockGateway{
		items: map[uint]*models.ContentItem{},
		links: map[string]*models.ApprovalLink{},
	}
}

func (m *mockGateway) addItem(item models.ContentItem) *models.ContentItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID == 0 {
		m.nextID++
		item.ID = m.nextID
	} else if item.ID > m.nextID {
		m.nextID = item.ID
	}
	stored := item
	m.items[stored.ID] = &stored
	return &stored
}

func (m *mockGateway) updateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.updates)
}

func (m *mockGateway) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return m.companies, nil
}

func (m *mockGateway) GetCompanyBySlug(ctx context.Context, slug string) (*models.Company, error) {
	for i := range m.companies {
		if m.companies[i].Slug == slug {
			return &m.companies[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockGateway) ListContentItems(ctx context.Context, companyID uint, month, year *int) ([]models.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ContentItem
	for _, item := range m.items {
		if item.CompanyID != companyID {
			continue
		}
		if month != nil && item.Month != *month {
			continue
		}
		if year != nil && item.Year != *year {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *mockGateway) GetContentItem(ctx context.Context, id uint) (*models.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copy := *item
	return &copy, nil
}

func (m *mockGateway) CreateContentItem(ctx context.Context, item *models.ContentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	item.ID = m.nextID
	stored := *item
	m.items[item.ID] = &stored
	return nil
}

func (m *mockGateway) UpdateContentItem(ctx context.Context, id uint, fields map[string]interface{}) (*models.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failUpdates {
		return nil, errors.New("persistence failure")
	}
	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	m.updates = append(m.updates, updateCall{id: id, fields: fields})
	if v, ok := fields["status"]; ok {
		switch s := v.(type) {
		case models.Status:
			item.Status = s
		case string:
			item.Status = models.Status(s)
		}
	}
	if v, ok := fields["title"].(string); ok {
		item.Title = v
	}
	item.UpdatedAt = time.Now()
	copy := *item
	return &copy, nil
}

func (m *mockGateway) DeleteContentItem(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockGateway) CountContentItems(ctx context.Context, companyID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, item := range m.items {
		if item.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

func (m *mockGateway) CreateApprovalLink(ctx context.Context, link *models.ApprovalLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	link.ID = m.nextID
	stored := *link
	m.links[link.Token] = &stored
	return nil
}

func (m *mockGateway) GetApprovalLinkByToken(ctx context.Context, token string) (*models.ApprovalLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	link, ok := m.links[token]
	if !ok {
		return nil, store.ErrNotFound
	}
	copy := *link
	return &copy, nil
}

func (m *mockGateway) RespondApprovalLink(ctx context.Context, token string, status models.ApprovalStatus, comment, clientName string) (*models.ApprovalLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	link, ok := m.links[token]
	if !ok {
		return nil, store.ErrNotFound
	}
	if link.Status != models.ApprovalPending {
		return nil, store.ErrAlreadyResponded
	}
	now := time.Now()
	link.Status = status
	link.Comment = comment
	link.ClientName = clientName
	link.RespondedAt = &now
	copy := *link
	return &copy, nil
}

func testBoardService(m *mockGateway) *services.BoardService {
	return services.NewBoardService(m, zap.NewNop())
}

func TestLoadBoardGroupsByStatus(t *testing.T) {
	m := newMockGateway()
	m.addItem(models.ContentItem{CompanyID: 1, Title: "a", Status: models.StatusDraft, Month: 6, Year: 2024, SortOrder: 1})
	m.addItem(models.ContentItem{CompanyID: 1, Title: "b", Status: models.StatusContent, Month: 6, Year: 2024, SortOrder: 2})
	m.addItem(models.ContentItem{CompanyID: 1, Title: "c", Status: models.StatusDone, Month: 6, Year: 2024, SortOrder: 3})
	m.addItem(models.ContentItem{CompanyID: 2, Title: "other company", Status: models.StatusDraft, SortOrder: 1})

	board, err := testBoardService(m).LoadBoard(context.Background(), 1)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}

	wantCounts := map[models.Status]int{
		models.StatusDraft:   1,
		models.StatusContent: 1,
		models.StatusDone:    1,
	}
	for _, col := range models.BoardColumns {
		if got, want := len(board.Columns[col]), wantCounts[col]; got != want {
			t.Errorf("column %s has %d items, want %d", col, got, want)
		}
	}
	if board.Total() != 3 {
		t.Errorf("board total = %d, want 3", board.Total())
	}
}

func TestLoadBoardUnknownStatusFallsBackToDraft(t *testing.T) {
	m := newMockGateway()
	m.addItem(models.ContentItem{CompanyID: 1, Title: "old", Status: "em_producao", SortOrder: 1})

	board, err := testBoardService(m).LoadBoard(context.Background(), 1)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if len(board.Columns[models.StatusDraft]) != 1 {
		t.Fatalf("unknown status should land in the draft column, got %d items there", len(board.Columns[models.StatusDraft]))
	}
}

func boardCounts(b *services.Board) map[models.Status]int {
	counts := map[models.Status]int{}
	for col, items := range b.Columns {
		counts[col] = len(items)
	}
	return counts
}

func TestApplyFilters(t *testing.T) {
	m := newMockGateway()
	m.addItem(models.ContentItem{CompanyID: 1, Title: "jan draft", Status: models.StatusDraft, Month: 1, SortOrder: 1})
	m.addItem(models.ContentItem{CompanyID: 1, Title: "jun draft", Status: models.StatusDraft, Month: 6, SortOrder: 2})
	m.addItem(models.ContentItem{CompanyID: 1, Title: "jun done", Status: models.StatusDone, Month: 6, SortOrder: 3})

	board, err := testBoardService(m).LoadBoard(context.Background(), 1)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	before := boardCounts(board)

	t.Run("month filter", func(t *testing.T) {
		filtered := services.ApplyFilters(board, 6, "")
		if len(filtered.Columns[models.StatusDraft]) != 1 {
			t.Errorf("draft column = %d items, want 1", len(filtered.Columns[models.StatusDraft]))
		}
		if len(filtered.Columns[models.StatusDone]) != 1 {
			t.Errorf("done column = %d items, want 1", len(filtered.Columns[models.StatusDone]))
		}
	})

	t.Run("status filter", func(t *testing.T) {
		filtered := services.ApplyFilters(board, services.MonthAll, models.StatusDraft)
		if len(filtered.Columns[models.StatusDraft]) != 2 {
			t.Errorf("draft column = %d items, want 2", len(filtered.Columns[models.StatusDraft]))
		}
		if len(filtered.Columns[models.StatusDone]) != 0 {
			t.Errorf("done column should be empty under a draft filter")
		}
	})

	t.Run("all filter is a no-op", func(t *testing.T) {
		filtered := services.ApplyFilters(board, services.MonthAll, "")
		if got := boardCounts(filtered); fmt.Sprint(got) != fmt.Sprint(before) {
			t.Errorf("all filter changed the board: %v != %v", got, before)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := services.ApplyFilters(board, 6, models.StatusDraft)
		twice := services.ApplyFilters(once, 6, models.StatusDraft)
		if fmt.Sprint(boardCounts(once)) != fmt.Sprint(boardCounts(twice)) {
			t.Error("applying the same filter twice changed the result")
		}
	})

	t.Run("input not mutated", func(t *testing.T) {
		services.ApplyFilters(board, 2, models.StatusDone)
		if got := boardCounts(board); fmt.Sprint(got) != fmt.Sprint(before) {
			t.Errorf("ApplyFilters mutated its input: %v != %v", got, before)
		}
	})
}

// countOccurrences returns how many columns hold the item and in which one.
func countOccurrences(b *services.Board, itemID uint) (int, models.Status) {
	n := 0
	var where models.Status
	for col, items := range b.Columns {
		for _, item := range items {
			if item.ID == itemID {
				n++
				where = col
			}
		}
	}
	return n, where
}

func TestDropSuccessMovesItemExactlyOnce(t *testing.T) {
	m := newMockGateway()
	item := m.addItem(models.ContentItem{CompanyID: 1, Title: "x", Status: models.StatusDraft, SortOrder: 1})
	svc := testBoardService(m)

	board, _ := svc.LoadBoard(context.Background(), 1)
	if err := svc.BeginDrag(board, item.ID); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if err := svc.Drop(context.Background(), board, models.StatusContent); err != nil {
		t.Fatalf("Drop: %v", err)
	}

	n, where := countOccurrences(board, item.ID)
	if n != 1 || where != models.StatusContent {
		t.Fatalf("item appears %d times in column %q, want once in %q", n, where, models.StatusContent)
	}
	stored, _ := m.GetContentItem(context.Background(), item.ID)
	if stored.Status != models.StatusContent {
		t.Errorf("persisted status = %q, want %q", stored.Status, models.StatusContent)
	}
}

func TestDropFailureKeepsItemInSource(t *testing.T) {
	m := newMockGateway()
	item := m.addItem(models.ContentItem{CompanyID: 1, Title: "x", Status: models.StatusDraft, SortOrder: 1})
	svc := testBoardService(m)

	board, _ := svc.LoadBoard(context.Background(), 1)
	m.failUpdates = true

	if err := svc.BeginDrag(board, item.ID); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if err := svc.Drop(context.Background(), board, models.StatusContent); err == nil {
		t.Fatal("Drop should surface the persistence failure")
	}

	n, where := countOccurrences(board, item.ID)
	if n != 1 || where != models.StatusDraft {
		t.Fatalf("after failed drop item appears %d times in %q, want once in %q", n, where, models.StatusDraft)
	}
}

func TestDropOntoSourceColumnIsNoop(t *testing.T) {
	m := newMockGateway()
	item := m.addItem(models.ContentItem{CompanyID: 1, Title: "x", Status: models.StatusDraft, SortOrder: 1})
	svc := testBoardService(m)

	board, _ := svc.LoadBoard(context.Background(), 1)
	if err := svc.BeginDrag(board, item.ID); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if err := svc.Drop(context.Background(), board, models.StatusDraft); err != nil {
		t.Fatalf("Drop onto source: %v", err)
	}
	if m.updateCount() != 0 {
		t.Error("drop onto the source column must not hit the store")
	}
}

func TestCancelDragLeavesBoardUntouched(t *testing.T) {
	m := newMockGateway()
	item := m.addItem(models.ContentItem{CompanyID: 1, Title: "x", Status: models.StatusDraft, SortOrder: 1})
	svc := testBoardService(m)

	board, _ := svc.LoadBoard(context.Background(), 1)
	if err := svc.BeginDrag(board, item.ID); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	svc.CancelDrag()

	if err := svc.Drop(context.Background(), board, models.StatusDone); err == nil {
		t.Error("Drop after cancel should fail, no drag is in flight")
	}
	n, where := countOccurrences(board, item.ID)
	if n != 1 || where != models.StatusDraft {
		t.Errorf("cancel mutated the board: item %d times in %q", n, where)
	}
}

func TestQuickCreateDefaultsAndOrdering(t *testing.T) {
	m := newMockGateway()
	m.addItem(models.ContentItem{CompanyID: 7, Title: "existing 1", Status: models.StatusDraft, SortOrder: 1})
	m.addItem(models.ContentItem{CompanyID: 7, Title: "existing 2", Status: models.StatusDone, SortOrder: 2})
	svc := testBoardService(m)

	board, _ := svc.LoadBoard(context.Background(), 7)
	item, err := svc.QuickCreate(context.Background(), board, 7, services.QuickCreateInput{
		Title: "Launch post",
		Month: 3,
		Year:  2025,
	})
	if err != nil {
		t.Fatalf("QuickCreate: %v", err)
	}

	if item.Status != models.StatusDraft {
		t.Errorf("status = %q, want draft", item.Status)
	}
	if item.SortOrder != 3 {
		t.Errorf("sort order = %d, want prior count+1 = 3", item.SortOrder)
	}
	if n, where := countOccurrences(board, item.ID); n != 1 || where != models.StatusDraft {
		t.Errorf("created item appears %d times in %q, want once in draft", n, where)
	}
}

func TestQuickCreateExplicitStatus(t *testing.T) {
	m := newMockGateway()
	svc := testBoardService(m)

	item, err := svc.QuickCreate(context.Background(), nil, 1, services.QuickCreateInput{
		Title:  "Planned piece",
		Status: models.StatusPlanned,
	})
	if err != nil {
		t.Fatalf("QuickCreate: %v", err)
	}
	if item.Status != models.StatusPlanned {
		t.Errorf("status = %q, want planned", item.Status)
	}
}

func TestQuickCreateEmptyTitleRejected(t *testing.T) {
	m := newMockGateway()
	svc := testBoardService(m)

	_, err := svc.QuickCreate(context.Background(), nil, 1, services.QuickCreateInput{Title: "   "})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(m.items) != 0 {
		t.Error("validation failure must not create anything")
	}
}

func TestInsertionIndex(t *testing.T) {
	siblings := []services.CardRect{
		{Top: 0, Height: 100},   // midpoint 50
		{Top: 100, Height: 100}, // midpoint 150
		{Top: 200, Height: 100}, // midpoint 250
	}
	cases := []struct {
		y    float64
		want int
	}{
		{y: 10, want: 0},
		{y: 120, want: 1},
		{y: 240, want: 2},
		{y: 260, want: 3}, // below every midpoint: append
	}
	for _, tc := range cases {
		if got := services.InsertionIndex(tc.y, siblings); got != tc.want {
			t.Errorf("InsertionIndex(%v) = %d, want %d", tc.y, got, tc.want)
		}
	}
	if got := services.InsertionIndex(50, nil); got != 0 {
		t.Errorf("InsertionIndex with no siblings = %d, want 0", got)
	}
}

func TestGroupByMonthPreservesMembership(t *testing.T) {
	items := []models.ContentItem{
		{ID: 1, Month: 1},
		{ID: 2, Month: 6},
		{ID: 3, Month: 6},
		{ID: 4, Month: 12},
		{ID: 5, Month: 0},  // out of range, excluded
		{ID: 6, Month: 13}, // out of range, excluded
	}

	buckets := services.GroupByMonth(items)

	seen := map[uint]int{}
	for m := 1; m <= 12; m++ {
		for _, item := range buckets[m] {
			seen[item.ID]++
			if item.Month != m {
				t.Errorf("item %d with month %d landed in bucket %d", item.ID, item.Month, m)
			}
		}
	}
	for _, id := range []uint{1, 2, 3, 4} {
		if seen[id] != 1 {
			t.Errorf("item %d appears %d times across buckets, want exactly once", id, seen[id])
		}
	}
	for _, id := range []uint{5, 6} {
		if seen[id] != 0 {
			t.Errorf("out-of-range item %d should be in no bucket", id)
		}
	}
}
