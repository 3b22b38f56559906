package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/port"
)

// PricingStore serializes every operation on the price collection behind a
// single mutex. Reads started after a write returns observe all of it.
type PricingStore struct {
	mu         sync.Mutex
	collection port.PriceCollection
	now        func() time.Time
}

type Option func(*PricingStore)

// WithClock overrides the wall clock used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *PricingStore) {
		s.now = now
	}
}

func NewPricingStore(collection port.PriceCollection, opts ...Option) *PricingStore {
	s := &PricingStore{
		collection: collection,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the record for sku. The boolean is false when no price was ever set.
func (s *PricingStore) Get(ctx context.Context, sku uint32) (domain.SkuPrice, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.find(ctx, sku)
}

// GetMany returns the records that exist among skus. Results follow the
// collection's iteration order, not the order of skus.
func (s *PricingStore) GetMany(ctx context.Context, skus []uint32) ([]domain.SkuPrice, error) {
	wanted := lo.SliceToMap(skus, func(sku uint32) (uint32, struct{}) {
		return sku, struct{}{}
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.collection.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}

	return lo.Filter(all, func(p domain.SkuPrice, _ int) bool {
		_, ok := wanted[p.SKU]
		return ok
	}), nil
}

// SetPrice updates the record for sku, creating it first when absent. The
// lookup and the write happen in one critical section.
func (s *PricingStore) SetPrice(ctx context.Context, sku, net uint32, tax domain.TaxCategory, actor string) (domain.SkuPrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists, err := s.find(ctx, sku)
	if err != nil {
		return domain.SkuPrice{}, err
	}
	if !exists {
		record = domain.NewSkuPrice(sku)
	}

	snapshot := record.SetPrice(net, tax, actor, s.now())

	if exists {
		err = s.collection.Update(ctx, record)
	} else {
		err = s.collection.Insert(ctx, record)
	}
	if err != nil {
		return domain.SkuPrice{}, fmt.Errorf("save price %d: %w", sku, err)
	}

	return snapshot, nil
}

// History returns the price history of sku, empty when the SKU is unknown.
func (s *PricingStore) History(ctx context.Context, sku uint32) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists, err := s.find(ctx, sku)
	if err != nil || !exists {
		return nil, err
	}
	return record.History, nil
}

// ChangedBetween returns, in ascending order, the SKUs whose most recent
// change happened within [from, till].
func (s *PricingStore) ChangedBetween(ctx context.Context, from, till time.Time) ([]uint32, error) {
	s.mu.Lock()
	all, err := s.collection.All(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}

	skus := make([]uint32, 0)
	for _, p := range all {
		if p.ChangedBetween(from, till) {
			skus = append(skus, p.SKU)
		}
	}
	sort.Slice(skus, func(i, j int) bool { return skus[i] < skus[j] })

	return skus, nil
}

func (s *PricingStore) find(ctx context.Context, sku uint32) (domain.SkuPrice, bool, error) {
	record, err := s.collection.Find(ctx, sku)
	if errors.Is(err, port.ErrRecordNotFound) {
		return domain.SkuPrice{}, false, nil
	}
	if err != nil {
		return domain.SkuPrice{}, false, fmt.Errorf("find price %d: %w", sku, err)
	}
	return record, true, nil
}
