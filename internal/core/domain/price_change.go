package domain

import "time"

// PriceChange is sent to the inventory/label service after a price is stored.
type PriceChange struct {
	SKU        uint32      `json:"sku"`
	NetPrice   uint32      `json:"net_retail_price"`
	Tax        TaxCategory `json:"vat"`
	GrossPrice uint32      `json:"gross_retail_price"`
	ChangedBy  string      `json:"changed_by"`
	ChangedAt  time.Time   `json:"changed_at"`
}

func NewPriceChange(p SkuPrice) PriceChange {
	change := PriceChange{
		SKU:        p.SKU,
		NetPrice:   p.NetPrice,
		Tax:        p.Tax,
		GrossPrice: p.GrossPrice,
	}
	if last, ok := p.LastChange(); ok {
		change.ChangedBy = last.CreatedBy
		change.ChangedAt = last.CreatedAt
	}
	return change
}
