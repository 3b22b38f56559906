package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/port"
)

// Mock PriceCollection
type mockCollection struct {
	mu      sync.Mutex
	order   []uint32
	records map[uint32]domain.SkuPrice
	inserts int
	updates int
	failErr error
}

func newMockCollection() *mockCollection {
	return &mockCollection{records: make(map[uint32]domain.SkuPrice)}
}

func (m *mockCollection) Find(ctx context.Context, sku uint32) (domain.SkuPrice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.records[sku]
	if !ok {
		return domain.SkuPrice{}, port.ErrRecordNotFound
	}
	return p.Clone(), nil
}

func (m *mockCollection) Insert(ctx context.Context, record domain.SkuPrice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.records[record.SKU]; ok {
		return port.ErrDuplicateRecord
	}
	m.records[record.SKU] = record.Clone()
	m.order = append(m.order, record.SKU)
	m.inserts++
	return nil
}

func (m *mockCollection) Update(ctx context.Context, record domain.SkuPrice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.records[record.SKU]; !ok {
		return port.ErrRecordNotFound
	}
	m.records[record.SKU] = record.Clone()
	m.updates++
	return nil
}

func (m *mockCollection) All(ctx context.Context) ([]domain.SkuPrice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.SkuPrice, 0, len(m.order))
	for _, sku := range m.order {
		out = append(out, m.records[sku].Clone())
	}
	return out, nil
}

func (m *mockCollection) Close() error { return nil }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSetPrice_CreatesRecord(t *testing.T) {
	coll := newMockCollection()
	s := NewPricingStore(coll)
	ctx := context.Background()

	p, err := s.SetPrice(ctx, 100, 1000, domain.Tax27, "u1")
	require.NoError(t, err)

	assert.Equal(t, uint32(100), p.SKU)
	assert.Equal(t, uint32(1000), p.NetPrice)
	assert.Equal(t, uint32(1270), p.GrossPrice)
	assert.Len(t, p.History, 1)
	assert.Equal(t, 1, coll.inserts)
	assert.Equal(t, 0, coll.updates)
}

func TestSetPrice_UpdatesExistingRecord(t *testing.T) {
	coll := newMockCollection()
	s := NewPricingStore(coll)
	ctx := context.Background()

	_, err := s.SetPrice(ctx, 100, 1000, domain.Tax27, "u1")
	require.NoError(t, err)
	p, err := s.SetPrice(ctx, 100, 1000, domain.Tax5, "u2")
	require.NoError(t, err)

	assert.Equal(t, uint32(100), p.SKU)
	assert.Equal(t, uint32(1050), p.GrossPrice)
	assert.Len(t, p.History, 2)
	assert.Equal(t, 1, coll.inserts)
	assert.Equal(t, 1, coll.updates)

	stored, ok, err := s.Get(ctx, 100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, stored)
}

func TestSetPrice_PersistFailureLeavesCollectionUntouched(t *testing.T) {
	coll := newMockCollection()
	s := NewPricingStore(coll)
	ctx := context.Background()

	_, err := s.SetPrice(ctx, 5, 100, domain.Tax27, "u1")
	require.NoError(t, err)

	coll.failErr = errors.New("disk full")
	_, err = s.SetPrice(ctx, 5, 200, domain.Tax27, "u1")
	require.Error(t, err)

	p, _, err := s.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), p.NetPrice)
	assert.Len(t, p.History, 1)
}

func TestGet_NotFound(t *testing.T) {
	s := NewPricingStore(newMockCollection())

	_, ok, err := s.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetMany_OmitsUnknownAndKeepsCollectionOrder(t *testing.T) {
	s := NewPricingStore(newMockCollection())
	ctx := context.Background()

	for _, sku := range []uint32{3, 1, 2} {
		_, err := s.SetPrice(ctx, sku, 100, domain.Tax27, "u1")
		require.NoError(t, err)
	}

	got, err := s.GetMany(ctx, []uint32{1, 2, 3, 99})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uint32{3, 1, 2}, []uint32{got[0].SKU, got[1].SKU, got[2].SKU})

	got, err = s.GetMany(ctx, []uint32{98, 99})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistory(t *testing.T) {
	s := NewPricingStore(newMockCollection())
	ctx := context.Background()

	h, err := s.History(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, h)

	_, _ = s.SetPrice(ctx, 1, 100, domain.Tax27, "u1")
	_, _ = s.SetPrice(ctx, 1, 200, domain.Tax18, "u2")

	h, err = s.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, "u1", h[0].CreatedBy)
	assert.Equal(t, uint32(236), h[1].GrossPrice)
}

func TestChangedBetween(t *testing.T) {
	coll := newMockCollection()
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := NewPricingStore(coll, WithClock(fixedClock(t0.Add(-time.Hour)))).SetPrice(ctx, 1, 100, domain.Tax27, "u1")
	require.NoError(t, err)
	_, err = NewPricingStore(coll, WithClock(fixedClock(t0))).SetPrice(ctx, 2, 100, domain.Tax27, "u1")
	require.NoError(t, err)
	_, err = NewPricingStore(coll, WithClock(fixedClock(t0.Add(time.Hour)))).SetPrice(ctx, 3, 100, domain.Tax27, "u1")
	require.NoError(t, err)

	s := NewPricingStore(coll)

	skus, err := s.ChangedBetween(ctx, t0.Add(-time.Hour), t0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, skus)

	skus, err = s.ChangedBetween(ctx, t0, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 3}, skus)

	skus, err = s.ChangedBetween(ctx, t0.Add(2*time.Hour), t0.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, skus)
}

func TestSetPrice_ConcurrentFirstWrites(t *testing.T) {
	coll := newMockCollection()
	s := NewPricingStore(coll)
	ctx := context.Background()
	writers := 50

	var wg conc.WaitGroup
	for i := 0; i < writers; i++ {
		tax := domain.Tax27
		if i%2 == 0 {
			tax = domain.Tax5
		}
		net := uint32(100 + i)
		wg.Go(func() {
			_, err := s.SetPrice(ctx, 1, net, tax, "u")
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	assert.Equal(t, 1, coll.inserts, "only the first writer creates the record")
	assert.Equal(t, writers-1, coll.updates)

	p, ok, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, p.History, writers)
	assert.Equal(t, p.Tax.Gross(p.NetPrice), p.GrossPrice)

	last, _ := p.LastChange()
	assert.Equal(t, p.NetPrice, last.NetPrice)
	assert.Equal(t, p.GrossPrice, last.GrossPrice)
	for i := 1; i < len(p.History); i++ {
		assert.False(t, p.History[i].CreatedAt.Before(p.History[i-1].CreatedAt))
		assert.Equal(t, p.History[i].Tax.Gross(p.History[i].NetPrice), p.History[i].GrossPrice)
	}
}
