package entity

import "testing"

func TestVegetablePriceSettersRoundToNearestPaisa(t *testing.T) {
	v := &Vegetable{}
	v.SetRetailPriceFromDecimal(18.15)
	v.SetWholesalePriceFromDecimal(4.56)
	v.SetPricePerKgFromDecimal(0.29)

	if v.RetailPrice != 1815 {
		t.Errorf("retail = %d paise, want 1815", v.RetailPrice)
	}
	if v.WholesalePrice != 456 {
		t.Errorf("wholesale = %d paise, want 456", v.WholesalePrice)
	}
	if v.PricePerKg != 29 {
		t.Errorf("price per kg = %d paise, want 29", v.PricePerKg)
	}
}
