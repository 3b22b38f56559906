package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/port"
)

func pricedRecord(sku, net uint32, tax domain.TaxCategory) domain.SkuPrice {
	p := domain.NewSkuPrice(sku)
	p.SetPrice(net, tax, "tester", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	return p
}

func TestFileCollection_InsertFindReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	c, err := OpenFileCollection(dir)
	require.NoError(t, err)

	record := pricedRecord(100, 1000, domain.Tax27)
	require.NoError(t, c.Insert(ctx, record))

	_, err = os.Stat(filepath.Join(dir, "100.json"))
	require.NoError(t, err, "record file written on insert")

	reopened, err := OpenFileCollection(dir)
	require.NoError(t, err)

	got, err := reopened.Find(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestFileCollection_InsertDuplicate(t *testing.T) {
	c, err := OpenFileCollection(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Insert(ctx, pricedRecord(1, 100, domain.Tax5)))
	err = c.Insert(ctx, pricedRecord(1, 200, domain.Tax5))
	if !errors.Is(err, port.ErrDuplicateRecord) {
		t.Errorf("expected ErrDuplicateRecord, got: %v", err)
	}
}

func TestFileCollection_UpdateMissing(t *testing.T) {
	c, err := OpenFileCollection(t.TempDir())
	require.NoError(t, err)

	err = c.Update(context.Background(), pricedRecord(1, 100, domain.Tax5))
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
}

func TestFileCollection_FindMissing(t *testing.T) {
	c, err := OpenFileCollection(t.TempDir())
	require.NoError(t, err)

	_, err = c.Find(context.Background(), 1)
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
}

func TestFileCollection_UpdatePersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	c, err := OpenFileCollection(dir)
	require.NoError(t, err)

	record := pricedRecord(5, 100, domain.Tax27)
	require.NoError(t, c.Insert(ctx, record))

	record.SetPrice(300, domain.TaxExemptFAD, "tester", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, c.Update(ctx, record))

	reopened, err := OpenFileCollection(dir)
	require.NoError(t, err)
	got, err := reopened.Find(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(300), got.GrossPrice)
	assert.Len(t, got.History, 2)
}

func TestFileCollection_AllOrder(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	c, err := OpenFileCollection(dir)
	require.NoError(t, err)

	for _, sku := range []uint32{30, 10, 20} {
		require.NoError(t, c.Insert(ctx, pricedRecord(sku, 100, domain.Tax27)))
	}

	all, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint32(30), all[0].SKU, "insertion order while open")

	reopened, err := OpenFileCollection(dir)
	require.NoError(t, err)
	all, err = reopened.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{all[0].SKU, all[1].SKU, all[2].SKU}, "sku order after reload")
}

func TestFileCollection_ReturnsCopies(t *testing.T) {
	c, err := OpenFileCollection(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Insert(ctx, pricedRecord(1, 100, domain.Tax27)))

	got, _ := c.Find(ctx, 1)
	got.History[0].NetPrice = 1
	got.NetPrice = 1

	again, _ := c.Find(ctx, 1)
	assert.Equal(t, uint32(100), again.NetPrice)
	assert.Equal(t, uint32(100), again.History[0].NetPrice)
}

func TestOpenFileCollection_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "7.json"), []byte("{not json"), 0o644))

	_, err := OpenFileCollection(dir)
	assert.Error(t, err)
}

func TestOpenFileCollection_MismatchedName(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenFileCollection(dir)
	require.NoError(t, err)
	require.NoError(t, c.Insert(context.Background(), pricedRecord(7, 100, domain.Tax27)))
	require.NoError(t, os.Rename(filepath.Join(dir, "7.json"), filepath.Join(dir, "8.json")))

	_, err = OpenFileCollection(dir)
	assert.Error(t, err)
}

func TestOpenFileCollection_UnknownTax(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"current", `{"sku":7,"net_retail_price":100,"vat":"12","gross_retail_price":112,"history":[]}`},
		{"padded", `{"sku":7,"net_retail_price":100,"vat":" 27","gross_retail_price":127,"history":[]}`},
		{"history", `{"sku":7,"net_retail_price":100,"vat":"27","gross_retail_price":127,"history":[` +
			`{"net_retail_price":100,"vat":"9","gross_retail_price":109,"created_by":"a","created_at":"2024-03-01T10:00:00Z"},` +
			`{"net_retail_price":100,"vat":"27","gross_retail_price":127,"created_by":"a","created_at":"2024-03-01T11:00:00Z"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "7.json"), []byte(tt.record), 0o644))

			_, err := OpenFileCollection(dir)
			assert.True(t, errors.Is(err, domain.ErrInvalidTaxCode), "got: %v", err)
		})
	}
}

func TestOpenFileCollection_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{}"), 0o644))

	c, err := OpenFileCollection(dir)
	require.NoError(t, err)
	all, err := c.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
