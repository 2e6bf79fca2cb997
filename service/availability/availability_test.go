package availability

import (
	"reflect"
	"testing"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

var inv = []model.Stock{
	{Size: model.SizeS, BuyStock: 0, RentStock: 2},
	{Size: model.SizeM, BuyStock: 4, RentStock: 0},
	{Size: model.SizeXL, BuyStock: 1, RentStock: 1},
}

func TestForMode(t *testing.T) {
	p := &model.Product{IsPurchasable: true, IsRentable: false}
	if !ForMode(p, model.ModeBuy) || ForMode(p, model.ModeRent) {
		t.Fatal("buy-only product must be offered in buy mode only")
	}

	neither := &model.Product{}
	if ForMode(neither, model.ModeBuy) || ForMode(neither, model.ModeRent) {
		t.Fatal("product with neither flag must be offered in no mode")
	}

	if ForMode(nil, model.ModeBuy) {
		t.Fatal("nil product must not be offered")
	}
}

func TestStockForMissingRecordIsZero(t *testing.T) {
	if got := StockFor(inv, model.SizeL, model.ModeBuy); got != 0 {
		t.Fatalf("missing size record: got %d, want 0", got)
	}
	if !OutOfStock(inv, model.SizeL, model.ModeBuy) {
		t.Fatal("missing size record must read as out of stock")
	}
	if !OutOfStock(nil, model.SizeM, model.ModeRent) {
		t.Fatal("nil inventory must read as out of stock")
	}
}

func TestStockForPerMode(t *testing.T) {
	if got := StockFor(inv, model.SizeS, model.ModeBuy); got != 0 {
		t.Fatalf("S buy stock: got %d, want 0", got)
	}
	if got := StockFor(inv, model.SizeS, model.ModeRent); got != 2 {
		t.Fatalf("S rent stock: got %d, want 2", got)
	}
}

func TestSizesKeepsDisplayOrder(t *testing.T) {
	got := Sizes(inv, model.ModeBuy)
	want := []model.Size{model.SizeM, model.SizeXL}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("buy sizes = %v, want %v", got, want)
	}

	got = Sizes(inv, model.ModeRent)
	want = []model.Size{model.SizeS, model.SizeXL}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rent sizes = %v, want %v", got, want)
	}
}

func TestSwitchTarget(t *testing.T) {
	rentOnly := &model.Product{IsRentable: true}
	if mode, switched := SwitchTarget(rentOnly, model.ModeBuy); !switched || mode != model.ModeRent {
		t.Fatalf("rent-only product viewed in buy mode: got (%v, %v)", mode, switched)
	}

	buyOnly := &model.Product{IsPurchasable: true}
	if mode, switched := SwitchTarget(buyOnly, model.ModeRent); !switched || mode != model.ModeBuy {
		t.Fatalf("buy-only product viewed in rent mode: got (%v, %v)", mode, switched)
	}

	both := &model.Product{IsPurchasable: true, IsRentable: true}
	if mode, switched := SwitchTarget(both, model.ModeRent); switched || mode != model.ModeRent {
		t.Fatalf("available product must not switch: got (%v, %v)", mode, switched)
	}

	neither := &model.Product{}
	if mode, switched := SwitchTarget(neither, model.ModeBuy); switched || mode != model.ModeBuy {
		t.Fatalf("dead product must stay put: got (%v, %v)", mode, switched)
	}
}
