package port

import (
	"context"
	"errors"

	"github.com/rl1809/sku-pricing/internal/core/domain"
)

var (
	ErrRecordNotFound  = errors.New("price record not found")
	ErrDuplicateRecord = errors.New("price record already exists")
)

// PriceCollection is the persisted keyed collection of SKU price records.
// Implementations write through synchronously. They are not required to be
// safe for concurrent mutation; callers serialize access.
type PriceCollection interface {
	// Find returns a copy of the record, or ErrRecordNotFound
	Find(ctx context.Context, sku uint32) (domain.SkuPrice, error)

	// Insert stores a new record, or fails with ErrDuplicateRecord
	Insert(ctx context.Context, record domain.SkuPrice) error

	// Update replaces an existing record, or fails with ErrRecordNotFound
	Update(ctx context.Context, record domain.SkuPrice) error

	// All returns copies of every record in the collection's iteration order
	All(ctx context.Context) ([]domain.SkuPrice, error)

	Close() error
}
