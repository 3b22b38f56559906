package domain

import "time"

// HistoryEntry is one past price state of a SKU. Entries are never modified
// after they are appended.
type HistoryEntry struct {
	NetPrice   uint32      `json:"net_retail_price"`
	Tax        TaxCategory `json:"vat"`
	GrossPrice uint32      `json:"gross_retail_price"`
	CreatedBy  string      `json:"created_by"`
	CreatedAt  time.Time   `json:"created_at"`
}

// SkuPrice holds the current price of a SKU together with every change that
// led to it. The last history entry always mirrors the current fields.
type SkuPrice struct {
	SKU        uint32         `json:"sku"`
	NetPrice   uint32         `json:"net_retail_price"`
	Tax        TaxCategory    `json:"vat"`
	GrossPrice uint32         `json:"gross_retail_price"`
	History    []HistoryEntry `json:"history"`
}

func NewSkuPrice(sku uint32) SkuPrice {
	return SkuPrice{
		SKU: sku,
		Tax: DefaultTaxCategory,
	}
}

// SetPrice applies a new net price and tax category. The gross price is always
// derived from the two, so the transition cannot fail for a valid category.
// The timestamp is clamped so history never goes backwards.
func (p *SkuPrice) SetPrice(net uint32, tax TaxCategory, actor string, at time.Time) SkuPrice {
	at = at.UTC()
	if last, ok := p.LastChange(); ok && at.Before(last.CreatedAt) {
		at = last.CreatedAt
	}

	gross := tax.Gross(net)
	p.NetPrice = net
	p.Tax = tax
	p.GrossPrice = gross
	p.History = append(p.History, HistoryEntry{
		NetPrice:   net,
		Tax:        tax,
		GrossPrice: gross,
		CreatedBy:  actor,
		CreatedAt:  at,
	})

	return p.Clone()
}

// LastChange returns the most recent history entry.
func (p SkuPrice) LastChange() (HistoryEntry, bool) {
	if len(p.History) == 0 {
		return HistoryEntry{}, false
	}
	return p.History[len(p.History)-1], true
}

// ChangedBetween reports whether the last change falls in [from, till].
func (p SkuPrice) ChangedBetween(from, till time.Time) bool {
	last, ok := p.LastChange()
	if !ok {
		return false
	}
	return !last.CreatedAt.Before(from) && !last.CreatedAt.After(till)
}

// Clone returns a copy that shares no memory with p.
func (p SkuPrice) Clone() SkuPrice {
	c := p
	if p.History != nil {
		c.History = make([]HistoryEntry, len(p.History))
		copy(c.History, p.History)
	}
	return c
}
