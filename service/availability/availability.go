// Package availability decides whether a product can be shown or added to
// a cart under the active shopping mode, given its per-size stock pools.
// Everything here is a pure function over model types; inventory comes in
// as a snapshot from the catalog repository.
package availability

import (
	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

// ForMode reports whether the product may be offered at all in the given
// mode. A product with neither flag set is offered in no mode.
func ForMode(p *model.Product, mode model.ShoppingMode) bool {
	if p == nil {
		return false
	}
	if mode == model.ModeRent {
		return p.IsRentable
	}
	return p.IsPurchasable
}

// OutOfStock is true when no inventory record exists for the size, or the
// mode-relevant counter is zero or negative. A missing record counts as
// zero stock, not an error.
func OutOfStock(inv []model.Stock, size model.Size, mode model.ShoppingMode) bool {
	return StockFor(inv, size, mode) <= 0
}

// StockFor returns the mode-relevant stock count for a size, zero when the
// size has no record.
func StockFor(inv []model.Stock, size model.Size, mode model.ShoppingMode) int {
	for _, rec := range inv {
		if rec.Size != size {
			continue
		}
		if mode == model.ModeRent {
			return rec.RentStock
		}
		return rec.BuyStock
	}
	return 0
}

// Sizes filters the canonical size list down to sizes with positive stock
// in the given mode, preserving display order.
func Sizes(inv []model.Stock, mode model.ShoppingMode) []model.Size {
	var out []model.Size
	for _, size := range model.AllSizes {
		if !OutOfStock(inv, size, mode) {
			out = append(out, size)
		}
	}
	return out
}

// SwitchTarget implements the product-detail force switch: when the
// product is unavailable in the active mode but available in the other,
// it returns the other mode and true. The caller persists the switch and
// surfaces the notification.
func SwitchTarget(p *model.Product, mode model.ShoppingMode) (model.ShoppingMode, bool) {
	if p == nil || ForMode(p, mode) {
		return mode, false
	}
	other := model.ModeRent
	if mode == model.ModeRent {
		other = model.ModeBuy
	}
	if ForMode(p, other) {
		return other, true
	}
	return mode, false
}
