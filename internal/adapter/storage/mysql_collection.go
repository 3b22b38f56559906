package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/port"
)

const mysqlDuplicateEntry = 1062

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sku_prices (
		sku         INT UNSIGNED NOT NULL PRIMARY KEY,
		net_price   INT UNSIGNED NOT NULL,
		tax         VARCHAR(3)   NOT NULL,
		gross_price INT UNSIGNED NOT NULL,
		updated_at  DATETIME(6)  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS price_history (
		sku         INT UNSIGNED NOT NULL,
		seq         INT UNSIGNED NOT NULL,
		net_price   INT UNSIGNED NOT NULL,
		tax         VARCHAR(3)   NOT NULL,
		gross_price INT UNSIGNED NOT NULL,
		created_by  VARCHAR(255) NOT NULL,
		created_at  DATETIME(6)  NOT NULL,
		PRIMARY KEY (sku, seq),
		INDEX idx_price_history_created_at (created_at)
	)`,
}

// MySQLCollection stores current prices in sku_prices and the append-only
// log in price_history. Records iterate in ascending SKU order.
type MySQLCollection struct {
	db *sql.DB
}

var _ port.PriceCollection = (*MySQLCollection)(nil)

func NewMySQLCollection(db *sql.DB) *MySQLCollection {
	return &MySQLCollection{db: db}
}

// OpenMySQLCollection checks connectivity and creates missing tables.
func OpenMySQLCollection(ctx context.Context, db *sql.DB) (*MySQLCollection, error) {
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return NewMySQLCollection(db), nil
}

func (m *MySQLCollection) Find(ctx context.Context, sku uint32) (domain.SkuPrice, error) {
	var p domain.SkuPrice
	err := m.db.QueryRowContext(ctx, `
		SELECT sku, net_price, tax, gross_price
		FROM sku_prices WHERE sku = ?`, sku,
	).Scan(&p.SKU, &p.NetPrice, &p.Tax, &p.GrossPrice)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.SkuPrice{}, port.ErrRecordNotFound
	}
	if err != nil {
		return domain.SkuPrice{}, fmt.Errorf("query price: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT sku, net_price, tax, gross_price, created_by, created_at
		FROM price_history WHERE sku = ? ORDER BY seq`, sku)
	if err != nil {
		return domain.SkuPrice{}, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	history, err := scanHistory(rows)
	if err != nil {
		return domain.SkuPrice{}, err
	}
	p.History = history[sku]

	return p, nil
}

func (m *MySQLCollection) Insert(ctx context.Context, record domain.SkuPrice) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sku_prices (sku, net_price, tax, gross_price, updated_at)
		VALUES (?, ?, ?, ?, UTC_TIMESTAMP(6))`,
		record.SKU, record.NetPrice, record.Tax, record.GrossPrice,
	)
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return port.ErrDuplicateRecord
	}
	if err != nil {
		return fmt.Errorf("insert price: %w", err)
	}

	if err := insertHistory(ctx, tx, record, 0); err != nil {
		return err
	}

	return tx.Commit()
}

// Update rewrites the current price and appends the history entries that
// are not stored yet. Stored entries are never rewritten.
func (m *MySQLCollection) Update(ctx context.Context, record domain.SkuPrice) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE sku_prices
		SET net_price = ?, tax = ?, gross_price = ?, updated_at = UTC_TIMESTAMP(6)
		WHERE sku = ?`,
		record.NetPrice, record.Tax, record.GrossPrice, record.SKU,
	)
	if err != nil {
		return fmt.Errorf("update price: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM sku_prices WHERE sku = ?`, record.SKU).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return port.ErrRecordNotFound
		}
		if err != nil {
			return fmt.Errorf("query price: %w", err)
		}
	}

	var stored int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM price_history WHERE sku = ? FOR UPDATE`, record.SKU,
	).Scan(&stored)
	if err != nil {
		return fmt.Errorf("count history: %w", err)
	}

	if err := insertHistory(ctx, tx, record, stored); err != nil {
		return err
	}

	return tx.Commit()
}

func (m *MySQLCollection) All(ctx context.Context) ([]domain.SkuPrice, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT sku, net_price, tax, gross_price
		FROM sku_prices ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}
	defer rows.Close()

	var prices []domain.SkuPrice
	for rows.Next() {
		var p domain.SkuPrice
		if err := rows.Scan(&p.SKU, &p.NetPrice, &p.Tax, &p.GrossPrice); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prices: %w", err)
	}

	hrows, err := m.db.QueryContext(ctx, `
		SELECT sku, net_price, tax, gross_price, created_by, created_at
		FROM price_history ORDER BY sku, seq`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer hrows.Close()

	history, err := scanHistory(hrows)
	if err != nil {
		return nil, err
	}
	for i := range prices {
		prices[i].History = history[prices[i].SKU]
	}

	return prices, nil
}

func (m *MySQLCollection) Close() error {
	return m.db.Close()
}

func insertHistory(ctx context.Context, tx *sql.Tx, record domain.SkuPrice, from int) error {
	for i := from; i < len(record.History); i++ {
		h := record.History[i]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO price_history (sku, seq, net_price, tax, gross_price, created_by, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			record.SKU, i+1, h.NetPrice, h.Tax, h.GrossPrice, h.CreatedBy, h.CreatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
	}
	return nil
}

func scanHistory(rows *sql.Rows) (map[uint32][]domain.HistoryEntry, error) {
	history := make(map[uint32][]domain.HistoryEntry)
	for rows.Next() {
		var sku uint32
		var h domain.HistoryEntry
		if err := rows.Scan(&sku, &h.NetPrice, &h.Tax, &h.GrossPrice, &h.CreatedBy, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		h.CreatedAt = h.CreatedAt.UTC()
		history[sku] = append(history[sku], h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return history, nil
}
