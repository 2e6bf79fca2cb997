package model

import "testing"

func TestProductValidate(t *testing.T) {
	good := Product{PurchasePrice: 20, IsRentable: true, RentalPriceDaily: 5, RentalDeposit: 10, RentalMaxDays: 7}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid rentable product rejected: %v", err)
	}

	buyOnly := Product{PurchasePrice: 20, IsPurchasable: true}
	if err := buyOnly.Validate(); err != nil {
		t.Fatalf("buy-only product needs no rental fields: %v", err)
	}

	bad := []Product{
		{PurchasePrice: -1},
		{IsRentable: true, RentalPriceDaily: -1, RentalMaxDays: 7},
		{IsRentable: true, RentalDeposit: -1, RentalMaxDays: 7},
		{IsRentable: true, RentalMaxDays: 0},
	}
	for i, p := range bad {
		if err := p.Validate(); err != ErrBadProductRow {
			t.Errorf("case %d: got %v, want ErrBadProductRow", i, err)
		}
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("rent") != ModeRent {
		t.Fatal("rent must parse as rent")
	}
	for _, s := range []string{"buy", "", "RENT", "garbage"} {
		if ParseMode(s) != ModeBuy {
			t.Errorf("ParseMode(%q) must fall back to buy", s)
		}
	}
}

func TestPrimaryImage(t *testing.T) {
	p := Product{}
	if p.PrimaryImage() != "" {
		t.Fatal("no images must yield empty URL")
	}
	p.Images = []Image{{URL: "a"}, {URL: "b"}}
	if p.PrimaryImage() != "a" {
		t.Fatal("first image wins")
	}
}
