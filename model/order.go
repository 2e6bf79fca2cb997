// model/order.go
package model

import "time"

type BuyOrderStatus string

const (
	BuyPending   BuyOrderStatus = "Pending"
	BuyPacked    BuyOrderStatus = "Packed"
	BuyShipping  BuyOrderStatus = "Out for Delivery"
	BuyDelivered BuyOrderStatus = "Delivered"
	BuyCancelled BuyOrderStatus = "Cancelled"
)

type RentOrderStatus string

const (
	RentBooked    RentOrderStatus = "Booked"
	RentShipping  RentOrderStatus = "Out for Delivery"
	RentActive    RentOrderStatus = "Active"
	RentReturned  RentOrderStatus = "Returned"
	RentCancelled RentOrderStatus = "Cancelled"
)

var buyNext = map[BuyOrderStatus][]BuyOrderStatus{
	BuyPending:  {BuyPacked, BuyCancelled},
	BuyPacked:   {BuyShipping, BuyCancelled},
	BuyShipping: {BuyDelivered, BuyCancelled},
}

var rentNext = map[RentOrderStatus][]RentOrderStatus{
	RentBooked:   {RentShipping, RentCancelled},
	RentShipping: {RentActive, RentCancelled},
	RentActive:   {RentReturned, RentCancelled},
}

// CanTransitionBuy reports whether a buy order may move from one status to
// the next. Delivered and Cancelled are terminal.
func CanTransitionBuy(from, to BuyOrderStatus) bool {
	for _, s := range buyNext[from] {
		if s == to {
			return true
		}
	}
	return false
}

func CanTransitionRent(from, to RentOrderStatus) bool {
	for _, s := range rentNext[from] {
		if s == to {
			return true
		}
	}
	return false
}

type BuyOrder struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Status      BuyOrderStatus `json:"status"`
	TotalAmount float64        `json:"total_amount"`
	Address     string         `json:"shipping_address"`
	City        string         `json:"shipping_city"`
	State       string         `json:"shipping_state"`
	PostalCode  string         `json:"shipping_postal_code"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type RentOrder struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Status          RentOrderStatus `json:"status"`
	TotalRentAmount float64         `json:"total_rent_amount"`
	TotalDeposit    float64         `json:"total_deposit"`
	RentStartDate   time.Time       `json:"rent_start_date"`
	RentEndDate     time.Time       `json:"rent_end_date"`
	DepositRefunded bool            `json:"deposit_refunded"`
	RefundAmount    *float64        `json:"refund_amount,omitempty"`
	RefundDate      *time.Time      `json:"refund_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
