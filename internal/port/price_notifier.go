package port

import (
	"context"

	"github.com/rl1809/sku-pricing/internal/core/domain"
)

type PriceNotifier interface {
	// NotifyPriceChange tells the inventory/label service about a stored price
	NotifyPriceChange(ctx context.Context, change domain.PriceChange) error
}
