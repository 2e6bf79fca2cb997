package catalog

import "github.com/vipinrawat0001/closet-carousel-commerce/model"

// ListQuery is bound from query params; comma-separated multi filters
// mirror the storefront's URL scheme (?category=Jeans,Jackets&gender=Men).
type ListQuery struct {
	Category string  `query:"category"`
	Gender   string  `query:"gender"`
	Color    string  `query:"color"`
	MinPrice float64 `query:"min_price" validate:"gte=0"`
	MaxPrice float64 `query:"max_price" validate:"gte=0"`
	Search   string  `query:"search"`
}

type DetailResp struct {
	Product        *model.Product     `json:"product"`
	Mode           model.ShoppingMode `json:"mode"`
	AvailableSizes []model.Size       `json:"available_sizes"`
	ModeSwitched   bool               `json:"mode_switched"`
	Notice         string             `json:"notice,omitempty"`
}
