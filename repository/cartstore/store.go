package cartstore

import (
	"context"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

// Snapshot is the persisted session state: both cart ledgers plus the
// shopping mode.
type Snapshot struct {
	Buy  []model.BuyLine  `json:"buy_cart"`
	Rent []model.RentLine `json:"rent_cart"`
	Mode string           `json:"shopping_mode"`
}

// Store persists per-session cart state. Writers are called on every
// mutation; Load runs once when a session is first seen. Two writers for
// the same session race last-write-wins.
type Store interface {
	Load(ctx context.Context, sessionID string) (Snapshot, error)
	SaveBuy(ctx context.Context, sessionID string, lines []model.BuyLine) error
	SaveRent(ctx context.Context, sessionID string, lines []model.RentLine) error
	SaveMode(ctx context.Context, sessionID string, mode model.ShoppingMode) error
}
