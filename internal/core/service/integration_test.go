package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc"

	"github.com/rl1809/sku-pricing/internal/adapter/notifier"
	"github.com/rl1809/sku-pricing/internal/adapter/storage"
	"github.com/rl1809/sku-pricing/internal/core/service"
	"github.com/rl1809/sku-pricing/internal/core/store"
	"github.com/rl1809/sku-pricing/internal/logger"
)

type testEnv struct {
	redis    *redis.Client
	mysql    *sql.DB
	prices   *storage.MySQLCollection
	notifier *notifier.RedisNotifier
	cleanup  func()
}

func setupTestEnv(t *testing.T) *testEnv {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/pricing?parseTime=true"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	prices, err := storage.OpenMySQLCollection(context.Background(), db)
	if err != nil {
		t.Fatalf("open collection: %v", err)
	}

	stream := fmt.Sprintf("test:price:changes:%s", t.Name())
	return &testEnv{
		redis:    rdb,
		mysql:    db,
		prices:   prices,
		notifier: notifier.NewRedisNotifier(rdb, stream),
		cleanup: func() {
			rdb.Del(context.Background(), stream)
			rdb.Close()
			db.Close()
		},
	}
}

func (e *testEnv) resetSKU(ctx context.Context, sku uint32) {
	e.mysql.ExecContext(ctx, `DELETE FROM price_history WHERE sku = ?`, sku)
	e.mysql.ExecContext(ctx, `DELETE FROM sku_prices WHERE sku = ?`, sku)
	e.redis.Del(ctx, fmt.Sprintf("price:last:%d", sku))
}

func TestIntegration_ConcurrentPriceUpdates(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	sku := uint32(910001)
	env.resetSKU(ctx, sku)
	defer env.resetSKU(ctx, sku)

	svc := service.NewPricingService(store.NewPricingStore(env.prices), env.notifier, logger.NewNopLogger())

	var successCount atomic.Int32
	var wg conc.WaitGroup
	totalRequests := 20

	for i := 0; i < totalRequests; i++ {
		wg.Go(func() {
			_, err := svc.SetPrice(ctx, service.SetPriceInput{
				SKU:      sku,
				NetPrice: uint32(100 * (i + 1)),
				TaxCode:  "27",
				Actor:    fmt.Sprintf("user-%d", i),
			})
			if err == nil {
				successCount.Add(1)
			}
		})
	}
	wg.Wait()

	if successCount.Load() != int32(totalRequests) {
		t.Errorf("expected %d successful updates, got %d", totalRequests, successCount.Load())
	}

	// Verify MySQL history
	var historyCount int
	env.mysql.QueryRowContext(ctx, `SELECT COUNT(*) FROM price_history WHERE sku = ?`, sku).Scan(&historyCount)
	if historyCount != totalRequests {
		t.Errorf("expected %d history rows in MySQL, got %d", totalRequests, historyCount)
	}

	// Verify every change reached the stream
	streamLen, err := env.redis.XLen(ctx, fmt.Sprintf("test:price:changes:%s", t.Name())).Result()
	if err != nil {
		t.Fatalf("stream length: %v", err)
	}
	if streamLen != int64(totalRequests) {
		t.Errorf("expected %d stream entries, got %d", totalRequests, streamLen)
	}

	if _, ok, err := env.notifier.LastChange(ctx, sku); err != nil || !ok {
		t.Errorf("expected last change marker, ok=%v err=%v", ok, err)
	}
}

func TestIntegration_NotificationFailureKeepsPrice(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	sku := uint32(910002)
	env.resetSKU(ctx, sku)
	defer env.resetSKU(ctx, sku)

	// A closed client makes every publish fail.
	deadClient := redis.NewClient(&redis.Options{Addr: env.redis.Options().Addr})
	deadClient.Close()
	svc := service.NewPricingService(
		store.NewPricingStore(env.prices),
		notifier.NewRedisNotifier(deadClient, "unused"),
		logger.NewNopLogger(),
	)

	record, err := svc.SetPrice(ctx, service.SetPriceInput{SKU: sku, NetPrice: 500, TaxCode: "18", Actor: "user"})
	if !errors.Is(err, service.ErrDownstreamNotificationFailed) {
		t.Fatalf("expected ErrDownstreamNotificationFailed, got: %v", err)
	}
	if record.GrossPrice != 590 {
		t.Errorf("expected returned gross 590, got %d", record.GrossPrice)
	}

	stored, err := svc.GetPrice(ctx, sku)
	if err != nil {
		t.Fatalf("price should stay stored: %v", err)
	}
	if stored.GrossPrice != 590 {
		t.Errorf("expected stored gross 590, got %d", stored.GrossPrice)
	}

	// No marker means the gap is visible to reconciliation.
	if _, ok, _ := env.notifier.LastChange(ctx, sku); ok {
		t.Errorf("expected no last change marker for sku %d", sku)
	}
}
