package handler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rl1809/sku-pricing/internal/adapter/storage"
	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/core/service"
	"github.com/rl1809/sku-pricing/internal/core/store"
	"github.com/rl1809/sku-pricing/internal/logger"
)

// Mock PriceNotifier
type mockNotifier struct {
	mu      sync.Mutex
	changes []domain.PriceChange
	err     error
}

func (m *mockNotifier) NotifyPriceChange(ctx context.Context, change domain.PriceChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.changes = append(m.changes, change)
	return nil
}

var errInventoryDown = errors.New("inventory down")

func newTestService(t *testing.T, notifier *mockNotifier) *service.PricingService {
	t.Helper()

	collection, err := storage.OpenFileCollection(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { collection.Close() })

	return service.NewPricingService(store.NewPricingStore(collection), notifier, logger.NewNopLogger())
}
