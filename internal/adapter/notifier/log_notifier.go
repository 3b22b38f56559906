package notifier

import (
	"context"

	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/logger"
	"github.com/rl1809/sku-pricing/internal/port"
)

// LogNotifier only logs price changes. It stands in for the inventory
// service in local runs.
type LogNotifier struct {
	log *logger.Logger
}

var _ port.PriceNotifier = (*LogNotifier)(nil)

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyPriceChange(ctx context.Context, change domain.PriceChange) error {
	n.log.Infow("price change",
		"sku", change.SKU,
		"net", change.NetPrice,
		"tax", change.Tax,
		"gross", change.GrossPrice,
		"changed_by", change.ChangedBy,
		"changed_at", change.ChangedAt,
	)
	return nil
}
