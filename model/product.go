// model/product.go
package model

import (
	"errors"
	"time"
)

type Gender string

const (
	GenderMen    Gender = "Men"
	GenderWomen  Gender = "Women"
	GenderUnisex Gender = "Unisex"
)

type Size string

const (
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// AllSizes is the canonical display order for size selectors.
var AllSizes = []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL}

type Product struct {
	ID               string     `json:"id"`
	SKU              string     `json:"sku"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Gender           Gender     `json:"gender"`
	Category         string     `json:"category"`
	Color            string     `json:"color"`
	Material         string     `json:"material,omitempty"`
	Season           string     `json:"season,omitempty"`
	PurchasePrice    float64    `json:"purchase_price"`
	RentalPriceDaily float64    `json:"rental_price_daily,omitempty"`
	RentalDeposit    float64    `json:"rental_deposit,omitempty"`
	RentalMaxDays    int        `json:"rental_max_days,omitempty"`
	IsPurchasable    bool       `json:"is_purchasable"`
	IsRentable       bool       `json:"is_rentable"`
	Images           []Image    `json:"images,omitempty"`
	Inventory        []Stock    `json:"inventory,omitempty"`
	CreatedAt        time.Time  `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type Image struct {
	URL          string `json:"image_url"`
	Type         string `json:"image_type"`
	DisplayOrder int    `json:"display_order"`
}

// PrimaryImage is the first image by display order, or "" when the product
// has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

var (
	ErrBadProductRow = errors.New("product row violates rental invariant")
)

// Validate enforces the product invariant at the store boundary: a rentable
// product must carry a non-negative daily rate, deposit and a max duration
// of at least one day. Rows from the external store are rejected here and
// never reach the cart core.
func (p *Product) Validate() error {
	if p.PurchasePrice < 0 {
		return ErrBadProductRow
	}
	if !p.IsRentable {
		return nil
	}
	if p.RentalPriceDaily < 0 || p.RentalDeposit < 0 || p.RentalMaxDays < 1 {
		return ErrBadProductRow
	}
	return nil
}
