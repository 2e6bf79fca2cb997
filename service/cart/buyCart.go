package cart

import (
	"context"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	"github.com/vipinrawat0001/closet-carousel-commerce/service/availability"
)

// AddBuy validates a purchase request against the product snapshot and
// appends it to the buy ledger. Adding an existing (product, size) pair
// merges additively: the existing line's quantity grows and the incoming
// line's identity is discarded. Returns the surviving line so the caller
// can name the product and size in its confirmation.
func (m *Manager) AddBuy(ctx context.Context, s *Session, p *model.Product, size model.Size, quantity int) (model.BuyLine, error) {
	if !availability.ForMode(p, model.ModeBuy) {
		return model.BuyLine{}, makeErr(ErrNotAvailable)
	}
	if size == "" {
		return model.BuyLine{}, makeErr(ErrSizeRequired)
	}
	if quantity < 1 {
		return model.BuyLine{}, makeErr(ErrBadQuantity)
	}
	if availability.StockFor(p.Inventory, size, model.ModeBuy) < quantity {
		return model.BuyLine{}, makeErr(ErrNoStock)
	}

	line := model.BuyLine{
		ID:        m.newID(),
		ProductID: p.ID,
		Name:      p.Name,
		Size:      size,
		UnitPrice: p.PurchasePrice,
		Quantity:  quantity,
		Image:     p.PrimaryImage(),
	}

	merged := false
	for i := range s.Buy {
		if s.Buy[i].ProductID == line.ProductID && s.Buy[i].Size == line.Size {
			s.Buy[i].Quantity += line.Quantity
			line = s.Buy[i]
			merged = true
			break
		}
	}
	if !merged {
		s.Buy = append(s.Buy, line)
	}

	if err := m.store.SaveBuy(ctx, s.ID, s.Buy); err != nil {
		return model.BuyLine{}, err
	}
	return line, nil
}

// RemoveBuy deletes the line with the given id. Removing an absent line
// is a silent no-op.
func (m *Manager) RemoveBuy(ctx context.Context, s *Session, lineID string) error {
	kept := s.Buy[:0]
	for _, l := range s.Buy {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	s.Buy = kept
	return m.store.SaveBuy(ctx, s.ID, s.Buy)
}

// UpdateBuyQuantity sets the quantity of a line; zero or negative behaves
// exactly as RemoveBuy. An absent line id is a no-op.
func (m *Manager) UpdateBuyQuantity(ctx context.Context, s *Session, lineID string, quantity int) error {
	if quantity <= 0 {
		return m.RemoveBuy(ctx, s, lineID)
	}
	for i := range s.Buy {
		if s.Buy[i].ID == lineID {
			s.Buy[i].Quantity = quantity
			break
		}
	}
	return m.store.SaveBuy(ctx, s.ID, s.Buy)
}

// ClearBuy empties the buy ledger.
func (m *Manager) ClearBuy(ctx context.Context, s *Session) error {
	s.Buy = nil
	return m.store.SaveBuy(ctx, s.ID, nil)
}
