package database

import (
	"context"
	"errors"
	"sync"

	"cleaning-marketplace-server/models"
)

// ErrCorruptStore is returned when the persisted document cannot be decoded
var ErrCorruptStore = errors.New("persisted document is corrupt")

// Store loads and replaces the whole persisted document.
// Implementations never apply partial updates.
type Store interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

// Gateway runs one logical operation against a fresh snapshot of the store.
// Updates inside a single process are serialised so read/modify/write cycles
// cannot overwrite each other.
type Gateway struct {
	store Store
	mu    sync.RWMutex
}

// NewGateway wraps a store
func NewGateway(store Store) *Gateway {
	return &Gateway{store: store}
}

// View loads the current document and passes it to fn. Changes made by fn are discarded.
func (g *Gateway) View(ctx context.Context, fn func(doc *models.Document) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	doc, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update loads the current document, passes it to fn and writes it back if fn succeeds
func (g *Gateway) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return g.store.Save(ctx, doc)
}
