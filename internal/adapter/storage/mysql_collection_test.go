package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/core/store"
	"github.com/rl1809/sku-pricing/internal/port"
)

func getMySQLCollection(t *testing.T) (*MySQLCollection, *sql.DB) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/pricing?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("MySQL not available: %v", err)
	}

	c, err := OpenMySQLCollection(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return c, db
}

func cleanupSKUs(db *sql.DB, skus ...uint32) {
	for _, sku := range skus {
		db.Exec(`DELETE FROM price_history WHERE sku = ?`, sku)
		db.Exec(`DELETE FROM sku_prices WHERE sku = ?`, sku)
	}
}

func TestMySQLCollection_InsertFind(t *testing.T) {
	c, db := getMySQLCollection(t)
	ctx := context.Background()
	cleanupSKUs(db, 900001)
	defer cleanupSKUs(db, 900001)

	record := pricedRecord(900001, 1000, domain.Tax27)
	require.NoError(t, c.Insert(ctx, record))

	got, err := c.Find(ctx, 900001)
	require.NoError(t, err)
	assert.Equal(t, uint32(1270), got.GrossPrice)
	assert.Equal(t, domain.Tax27, got.Tax)
	require.Len(t, got.History, 1)
	assert.Equal(t, "tester", got.History[0].CreatedBy)
	assert.True(t, record.History[0].CreatedAt.Equal(got.History[0].CreatedAt))

	err = c.Insert(ctx, record)
	if !errors.Is(err, port.ErrDuplicateRecord) {
		t.Errorf("expected ErrDuplicateRecord, got: %v", err)
	}
}

func TestMySQLCollection_UpdateAppendsHistory(t *testing.T) {
	c, db := getMySQLCollection(t)
	ctx := context.Background()
	cleanupSKUs(db, 900002)
	defer cleanupSKUs(db, 900002)

	record := pricedRecord(900002, 1000, domain.Tax27)
	require.NoError(t, c.Insert(ctx, record))

	record.SetPrice(1000, domain.Tax5, "tester2", time.Now())
	require.NoError(t, c.Update(ctx, record))

	got, err := c.Find(ctx, 900002)
	require.NoError(t, err)
	assert.Equal(t, uint32(1050), got.GrossPrice)
	require.Len(t, got.History, 2)
	assert.Equal(t, "tester2", got.History[1].CreatedBy)

	var count int
	db.QueryRow(`SELECT COUNT(*) FROM price_history WHERE sku = ?`, 900002).Scan(&count)
	assert.Equal(t, 2, count)
}

func TestMySQLCollection_NotFound(t *testing.T) {
	c, db := getMySQLCollection(t)
	ctx := context.Background()
	cleanupSKUs(db, 900003)

	_, err := c.Find(ctx, 900003)
	assert.ErrorIs(t, err, port.ErrRecordNotFound)

	err = c.Update(ctx, pricedRecord(900003, 1, domain.Tax5))
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
}

func TestMySQLCollection_BehindPricingStore(t *testing.T) {
	c, db := getMySQLCollection(t)
	ctx := context.Background()
	cleanupSKUs(db, 900004, 900005)
	defer cleanupSKUs(db, 900004, 900005)

	s := store.NewPricingStore(c)
	_, err := s.SetPrice(ctx, 900004, 500, domain.Tax18, "u1")
	require.NoError(t, err)
	_, err = s.SetPrice(ctx, 900004, 600, domain.Tax18, "u1")
	require.NoError(t, err)

	got, err := s.GetMany(ctx, []uint32{900004, 900005})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(708), got[0].GrossPrice)
	assert.Len(t, got[0].History, 2)
}
