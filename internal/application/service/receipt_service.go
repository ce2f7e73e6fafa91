package service

import (
	"fmt"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/pkg/printer"
)

// ReceiptService renders bills as ESC/POS documents and drives the printer
type ReceiptService struct {
	printer printer.Printer
	width   int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(p printer.Printer, width int) *ReceiptService {
	if width <= 0 {
		width = 32
	}
	return &ReceiptService{printer: p, width: width}
}

// Render builds the ESC/POS byte stream for a bill
func (s *ReceiptService) Render(bill *entity.Bill) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(bill.ShopName).
		SetFontSize(printer.FontNormal).
		LineFeed()

	doc.SetAlign(printer.AlignLeft).
		TextF("Bill: %s", bill.BillNumber).
		TextF("Date: %s", bill.CreatedAt.Format("02-01-2006 15:04")).
		TextF("Mode: %s", bill.BillingMode)

	customerName := bill.CustomerName
	if customerName == "" {
		customerName = entity.DefaultCustomerName
	}
	doc.TextF("Customer: %s", customerName)
	if bill.CustomerMobile != "" {
		doc.TextF("Mobile: %s", bill.CustomerMobile)
	}

	doc.Separator('-')
	for _, item := range bill.Items {
		doc.WeighedItemLine(item.QtyKg, item.VegetableName, rupees(item.Total))
	}
	doc.Separator('-')

	doc.KeyValue("Subtotal", rupees(bill.SubTotal))
	if bill.TaxAmount > 0 {
		doc.KeyValue("Tax", rupees(bill.TaxAmount))
	}
	if bill.DiscountAmount > 0 {
		doc.KeyValue("Discount", "-"+rupees(bill.DiscountAmount))
	}

	doc.SetBold(true).
		KeyValue("TOTAL", rupees(bill.GrandTotal)).
		SetBold(false)

	doc.LineFeed().
		SetAlign(printer.AlignCenter).
		Text("Nandri! Visit again").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// Print renders the bill and sends it to the configured printer
func (s *ReceiptService) Print(bill *entity.Bill) error {
	return s.printer.Print(s.Render(bill))
}

// IsPrinterConnected reports whether receipt hardware is reachable
func (s *ReceiptService) IsPrinterConnected() bool {
	return s.printer.IsConnected()
}

func rupees(paise int64) string {
	return fmt.Sprintf("Rs %.2f", float64(paise)/100)
}
