package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"content-studio/store"
)

// pendingSave accumulates the fields of one item between flushes.
type pendingSave struct {
	timer  *time.Timer
	fields map[string]interface{}
}

// Autosaver collapses rapid inline edits of the same content item into a
// single save: each Queue call merges its fields over the pending ones and
// resets the quiet-window timer, so continuous typing defers the write until
// input pauses. Only the most recent value per field is persisted.
type Autosaver struct {
	Store  store.Gateway
	Logger *zap.Logger
	Delay  time.Duration

	mu      sync.Mutex
	pending map[uint]*pendingSave
}

func NewAutosaver(st store.Gateway, logger *zap.Logger, delay time.Duration) *Autosaver {
	return &Autosaver{
		Store:   st,
		Logger:  logger,
		Delay:   delay,
		pending: make(map[uint]*pendingSave),
	}
}

// Queue schedules fields of the item for saving after the quiet window.
func (a *Autosaver) Queue(itemID uint, fields map[string]interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.pending[itemID]
	if !ok {
		p = &pendingSave{fields: make(map[string]interface{})}
		a.pending[itemID] = p
	}
	for k, v := range fields {
		p.fields[k] = v
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(a.Delay, func() { a.flush(itemID) })
}

func (a *Autosaver) flush(itemID uint) {
	a.mu.Lock()
	p, ok := a.pending[itemID]
	if !ok {
		a.mu.Unlock()
		return
	}
	delete(a.pending, itemID)
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := a.Store.UpdateContentItem(ctx, itemID, p.fields); err != nil {
		a.Logger.Error("autosave flush failed", zap.Uint("item_id", itemID), zap.Error(err))
	}
}

// FlushAll force-saves everything still pending, used on shutdown.
func (a *Autosaver) FlushAll() {
	a.mu.Lock()
	ids := make([]uint, 0, len(a.pending))
	for id, p := range a.pending {
		if p.timer != nil {
			p.timer.Stop()
		}
		ids = append(ids, id)
	}
	a.mu.Unlock()

	for _, id := range ids {
		a.flush(id)
	}
}
