package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/port"
)

const (
	defaultStream    = "price:changes"
	streamMaxLen     = 100000
	lastChangePrefix = "price:last:"
	lastChangeTTL    = 7 * 24 * time.Hour
)

// RedisNotifier publishes price changes to a Redis stream consumed by the
// inventory/label service. It also keeps the latest change per SKU under
// price:last:<sku> so consumers can reconcile after downtime.
type RedisNotifier struct {
	client *redis.Client
	stream string
}

var _ port.PriceNotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(client *redis.Client, stream string) *RedisNotifier {
	if stream == "" {
		stream = defaultStream
	}
	return &RedisNotifier{client: client, stream: stream}
}

func (r *RedisNotifier) NotifyPriceChange(ctx context.Context, change domain.PriceChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("encode price change: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"sku":     change.SKU,
			"tax":     change.Tax.String(),
			"gross":   change.GrossPrice,
			"payload": payload,
		},
	})
	pipe.Set(ctx, lastChangeKey(change.SKU), payload, lastChangeTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish price change: %w", err)
	}
	return nil
}

// LastChange returns the latest change published for sku, if any.
func (r *RedisNotifier) LastChange(ctx context.Context, sku uint32) (domain.PriceChange, bool, error) {
	b, err := r.client.Get(ctx, lastChangeKey(sku)).Bytes()
	if err == redis.Nil {
		return domain.PriceChange{}, false, nil
	}
	if err != nil {
		return domain.PriceChange{}, false, err
	}

	var change domain.PriceChange
	if err := json.Unmarshal(b, &change); err != nil {
		return domain.PriceChange{}, false, fmt.Errorf("decode price change: %w", err)
	}
	return change, true, nil
}

func lastChangeKey(sku uint32) string {
	return lastChangePrefix + strconv.FormatUint(uint64(sku), 10)
}
