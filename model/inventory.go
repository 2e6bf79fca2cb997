// model/inventory.go
package model

// Stock is the per-size inventory record of a product. Buy and rent pools
// are counted independently; one record exists per (product, size) pair.
type Stock struct {
	ProductID string `json:"product_id,omitempty"`
	Size      Size   `json:"size"`
	BuyStock  int    `json:"buy_stock"`
	RentStock int    `json:"rent_stock"`
}
