package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/port"
)

const recordExt = ".json"

// FileCollection keeps every price record in memory and writes each record
// through to its own JSON file, <dir>/<sku>.json.
type FileCollection struct {
	dir     string
	mu      sync.RWMutex
	order   []uint32
	records map[uint32]domain.SkuPrice
}

var _ port.PriceCollection = (*FileCollection)(nil)

// OpenFileCollection loads all records under dir, creating dir if needed.
// A record that cannot be decoded or carries an unknown VAT code fails the
// whole open.
func OpenFileCollection(dir string) (*FileCollection, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create collection dir: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read collection dir: %w", err)
	}

	c := &FileCollection{
		dir:     dir,
		records: make(map[uint32]domain.SkuPrice),
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		sku, err := strconv.ParseUint(strings.TrimSuffix(e.Name(), recordExt), 10, 32)
		if err != nil {
			continue
		}

		var record domain.SkuPrice
		if err := readJSON(filepath.Join(dir, e.Name()), &record); err != nil {
			return nil, fmt.Errorf("load record %s: %w", e.Name(), err)
		}
		if record.SKU != uint32(sku) {
			return nil, fmt.Errorf("load record %s: file holds sku %d", e.Name(), record.SKU)
		}
		if err := validateTax(record); err != nil {
			return nil, fmt.Errorf("load record %s: %w", e.Name(), err)
		}
		c.records[record.SKU] = record
		c.order = append(c.order, record.SKU)
	}
	sort.Slice(c.order, func(i, j int) bool { return c.order[i] < c.order[j] })

	return c, nil
}

func validateTax(record domain.SkuPrice) error {
	if !record.Tax.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTaxCode, record.Tax)
	}
	for i, h := range record.History {
		if !h.Tax.Valid() {
			return fmt.Errorf("history entry %d: %w: %q", i, domain.ErrInvalidTaxCode, h.Tax)
		}
	}
	return nil
}

func (c *FileCollection) Find(ctx context.Context, sku uint32) (domain.SkuPrice, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[sku]
	if !ok {
		return domain.SkuPrice{}, port.ErrRecordNotFound
	}
	return record.Clone(), nil
}

func (c *FileCollection) Insert(ctx context.Context, record domain.SkuPrice) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[record.SKU]; ok {
		return port.ErrDuplicateRecord
	}
	if err := c.save(record); err != nil {
		return err
	}

	c.records[record.SKU] = record.Clone()
	c.order = append(c.order, record.SKU)
	return nil
}

func (c *FileCollection) Update(ctx context.Context, record domain.SkuPrice) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[record.SKU]; !ok {
		return port.ErrRecordNotFound
	}
	if err := c.save(record); err != nil {
		return err
	}

	c.records[record.SKU] = record.Clone()
	return nil
}

func (c *FileCollection) All(ctx context.Context) ([]domain.SkuPrice, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.SkuPrice, 0, len(c.order))
	for _, sku := range c.order {
		out = append(out, c.records[sku].Clone())
	}
	return out, nil
}

func (c *FileCollection) Close() error {
	return nil
}

func (c *FileCollection) save(record domain.SkuPrice) error {
	path := filepath.Join(c.dir, strconv.FormatUint(uint64(record.SKU), 10)+recordExt)
	if err := writeJSON(path, record, 0o644); err != nil {
		return fmt.Errorf("write record %d: %w", record.SKU, err)
	}
	return nil
}

func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// writeJSON writes via a temp file, then atomically replaces the target.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
