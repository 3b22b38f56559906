package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/sku-pricing/internal/adapter/handler/pb"
	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/logger"
	"github.com/rl1809/sku-pricing/internal/port"
)

// GRPCNotifier calls InventoryService.NotifyPriceChange, retrying transient
// failures with exponential backoff.
type GRPCNotifier struct {
	client     pb.InventoryServiceClient
	maxRetries uint64
	timeout    time.Duration
	log        *logger.Logger
}

var _ port.PriceNotifier = (*GRPCNotifier)(nil)

func NewGRPCNotifier(client pb.InventoryServiceClient, maxRetries uint64, timeout time.Duration, log *logger.Logger) *GRPCNotifier {
	return &GRPCNotifier{
		client:     client,
		maxRetries: maxRetries,
		timeout:    timeout,
		log:        log,
	}
}

func (n *GRPCNotifier) NotifyPriceChange(ctx context.Context, change domain.PriceChange) error {
	req := &pb.NotifyPriceChangeRequest{
		Sku:        change.SKU,
		NetPrice:   change.NetPrice,
		Vat:        change.Tax.String(),
		GrossPrice: change.GrossPrice,
		ChangedBy:  change.ChangedBy,
		ChangedAt:  change.ChangedAt.Format(time.RFC3339Nano),
	}

	attempt := 0
	op := func() error {
		attempt++
		callCtx := ctx
		if n.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, n.timeout)
			defer cancel()
		}

		_, err := n.client.NotifyPriceChange(callCtx, req)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return backoff.Permanent(err)
		}
		n.log.Warnw("inventory notification attempt failed",
			"sku", change.SKU,
			"attempt", attempt,
			"error", err,
		)
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), n.maxRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return fmt.Errorf("notify inventory after %d attempt(s): %w", attempt, err)
	}
	return nil
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second
	return b
}

func retryable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return true
	default:
		return false
	}
}
