package service

import (
	"strings"
	"testing"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/internal/domain/enum"
	"github.com/arunvel/kadai-api/pkg/printer"
)

func receiptBill() *entity.Bill {
	return &entity.Bill{
		BillNumber:  "BILL-20260901120000-ABCD",
		ShopName:    "Kadai",
		BillingMode: enum.BillingModeRetail,
		SubTotal:    2000,
		GrandTotal:  2000,
		Items: []entity.BillItem{
			{VegetableName: "Tomato", QtyKg: 1, UnitPrice: 2000, Total: 2000},
		},
	}
}

func TestReceiptRenderCustomerFallback(t *testing.T) {
	svc := NewReceiptService(printer.NewNullPrinter(), 32)

	out := string(svc.Render(receiptBill()))
	if !strings.Contains(out, "Customer: "+entity.DefaultCustomerName) {
		t.Error("receipt without a customer should show the walk-in fallback")
	}

	bill := receiptBill()
	bill.CustomerName = "Mani"
	out = string(svc.Render(bill))
	if !strings.Contains(out, "Customer: Mani") {
		t.Error("receipt should show the recorded customer name")
	}
	if strings.Contains(out, entity.DefaultCustomerName) {
		t.Error("fallback should not appear on a named bill")
	}
}
