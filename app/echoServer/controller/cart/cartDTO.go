package cart

import (
	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	cartsvc "github.com/vipinrawat0001/closet-carousel-commerce/service/cart"
)

type AddBuyReq struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required,oneof=S M L XL XXL"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateQuantityReq struct {
	// Zero and negative values remove the line, so no gt=0 here.
	Quantity int `json:"quantity"`
}

type AddRentReq struct {
	ProductID    string `json:"product_id" validate:"required"`
	Size         string `json:"size" validate:"required,oneof=S M L XL XXL"`
	DurationDays int    `json:"duration_days" validate:"required,gt=0"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type UpdateDurationReq struct {
	DurationDays int    `json:"duration_days"`
	StartDate    string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

type SetModeReq struct {
	Mode string `json:"mode" validate:"required,oneof=buy rent"`
}

type BuyCartResp struct {
	Items   []model.BuyLine    `json:"items"`
	Summary cartsvc.BuySummary `json:"summary"`
}

type RentCartResp struct {
	Items   []model.RentLine    `json:"items"`
	Summary cartsvc.RentSummary `json:"summary"`
}
