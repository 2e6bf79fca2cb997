// model/cart.go
package model

import "time"

type ShoppingMode string

const (
	ModeBuy  ShoppingMode = "buy"
	ModeRent ShoppingMode = "rent"
)

// ParseMode falls back to buy for anything that is not a known mode, so a
// corrupt persisted value can never wedge a session.
func ParseMode(s string) ShoppingMode {
	if ShoppingMode(s) == ModeRent {
		return ModeRent
	}
	return ModeBuy
}

type LineKind string

const (
	KindBuy  LineKind = "buy"
	KindRent LineKind = "rent"
)

// Line is the tagged union over the two cart line variants. Consumers
// switch on Kind explicitly rather than probing struct fields.
type Line interface {
	Kind() LineKind
	LineID() string
}

type BuyLine struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Size      Size    `json:"size"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

func (l BuyLine) Kind() LineKind { return KindBuy }
func (l BuyLine) LineID() string { return l.ID }

type RentLine struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Name         string    `json:"name"`
	Size         Size      `json:"size"`
	DailyRate    float64   `json:"daily_rate"`
	Deposit      float64   `json:"deposit"`
	DurationDays int       `json:"duration_days"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	// TotalPrice is the rate*days+deposit snapshot taken at add time.
	// Renderers derive the live charge from DailyRate*DurationDays; the
	// deposit stays separate for refund accounting.
	TotalPrice float64 `json:"total_price"`
	Image      string  `json:"image,omitempty"`
}

func (l RentLine) Kind() LineKind { return KindRent }
func (l RentLine) LineID() string { return l.ID }
