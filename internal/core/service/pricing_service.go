package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/samber/lo"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/core/store"
	"github.com/rl1809/sku-pricing/internal/logger"
	"github.com/rl1809/sku-pricing/internal/port"
)

var (
	ErrNotFound                     = errors.New("price not found")
	ErrInvalidDateRange             = errors.New("invalid date range")
	ErrDownstreamNotificationFailed = errors.New("price stored but inventory notification failed")
)

type SetPriceInput struct {
	SKU      uint32
	NetPrice uint32
	TaxCode  string
	Actor    string
	// GrossPrice is the caller's own computation. It is only compared against
	// the authoritative value, never stored.
	GrossPrice *uint32
}

type PricingService struct {
	store    *store.PricingStore
	notifier port.PriceNotifier
	log      *logger.Logger
}

func NewPricingService(store *store.PricingStore, notifier port.PriceNotifier, log *logger.Logger) *PricingService {
	return &PricingService{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// SetPrice stores the new price and then notifies the inventory service.
// A failed notification is returned as ErrDownstreamNotificationFailed along
// with the stored record; the stored price is not rolled back, and retrying
// the whole call is safe.
func (s *PricingService) SetPrice(ctx context.Context, in SetPriceInput) (domain.SkuPrice, error) {
	tax, err := domain.ParseTaxCategory(in.TaxCode)
	if err != nil {
		return domain.SkuPrice{}, err
	}

	record, err := s.store.SetPrice(ctx, in.SKU, in.NetPrice, tax, in.Actor)
	if err != nil {
		return domain.SkuPrice{}, fmt.Errorf("set price: %w", err)
	}

	if in.GrossPrice != nil && *in.GrossPrice != record.GrossPrice {
		s.log.Warnw("client gross price ignored",
			"sku", in.SKU,
			"client_gross", *in.GrossPrice,
			"gross", record.GrossPrice,
		)
	}

	s.log.Infow("price set",
		"sku", record.SKU,
		"net", record.NetPrice,
		"tax", record.Tax,
		"gross", record.GrossPrice,
		"actor", in.Actor,
	)

	if err := s.notifier.NotifyPriceChange(ctx, domain.NewPriceChange(record)); err != nil {
		s.log.Errorw("inventory notification failed, stored price left in place",
			"sku", record.SKU,
			"error", err,
		)
		return record, fmt.Errorf("%w: %v", ErrDownstreamNotificationFailed, err)
	}

	return record, nil
}

func (s *PricingService) GetPrice(ctx context.Context, sku uint32) (domain.SkuPrice, error) {
	record, ok, err := s.store.Get(ctx, sku)
	if err != nil {
		return domain.SkuPrice{}, fmt.Errorf("get price: %w", err)
	}
	if !ok {
		return domain.SkuPrice{}, fmt.Errorf("%w: sku %d", ErrNotFound, sku)
	}
	return record, nil
}

// GetPriceBulk snapshots the known prices among skus and returns them as a
// single-use sequence. Unknown SKUs are left out.
func (s *PricingService) GetPriceBulk(ctx context.Context, skus []uint32) (iter.Seq[domain.SkuPrice], error) {
	records, err := s.store.GetMany(ctx, lo.Uniq(skus))
	if err != nil {
		return nil, fmt.Errorf("get prices: %w", err)
	}
	return once(records), nil
}

// GetPriceHistory returns the history of sku oldest first. An unknown SKU has
// an empty history.
func (s *PricingService) GetPriceHistory(ctx context.Context, sku uint32) (iter.Seq[domain.HistoryEntry], error) {
	history, err := s.store.History(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("get price history: %w", err)
	}
	return once(history), nil
}

// GetLatestPriceChanges lists the SKUs whose last change falls in
// [dateFrom, dateTill]. Both bounds are RFC3339 timestamps.
func (s *PricingService) GetLatestPriceChanges(ctx context.Context, dateFrom, dateTill string) ([]uint32, error) {
	from, err := time.Parse(time.RFC3339, dateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: date_from: %v", ErrInvalidDateRange, err)
	}
	till, err := time.Parse(time.RFC3339, dateTill)
	if err != nil {
		return nil, fmt.Errorf("%w: date_till: %v", ErrInvalidDateRange, err)
	}

	skus, err := s.store.ChangedBetween(ctx, from, till)
	if err != nil {
		return nil, fmt.Errorf("get latest price changes: %w", err)
	}
	return skus, nil
}

// once yields items at most one time; later iterations yield nothing.
func once[T any](items []T) iter.Seq[T] {
	var used atomic.Bool
	return func(yield func(T) bool) {
		if used.Swap(true) {
			return
		}
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
