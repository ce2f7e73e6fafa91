package entity

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBillMarshalCustomerNameFallback(t *testing.T) {
	bill := Bill{BillNumber: "BILL-20260901120000-ABCD", GrandTotal: 3500}

	data, err := json.Marshal(bill)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"customer_name":"Walking Customer"`) {
		t.Errorf("unnamed bill should display %q, got %s", DefaultCustomerName, data)
	}

	bill.CustomerName = "Mani"
	data, err = json.Marshal(bill)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"customer_name":"Mani"`) {
		t.Errorf("named bill should keep its customer, got %s", data)
	}
}
