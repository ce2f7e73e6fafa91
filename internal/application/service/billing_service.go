package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/internal/domain/enum"
	"github.com/arunvel/kadai-api/internal/domain/invoice"
	"github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/arunvel/kadai-api/pkg/apperror"
	"github.com/arunvel/kadai-api/pkg/pagination"
	"github.com/arunvel/kadai-api/pkg/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// BillingService persists finalized bills and serves bill history.
type BillingService struct {
	billRepo      repository.BillRepository
	vegetableRepo repository.VegetableRepository
	customerRepo  repository.CustomerRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	vegetableRepo repository.VegetableRepository,
	customerRepo repository.CustomerRepository,
	analyticsRepo repository.AnalyticsRepository,
) *BillingService {
	return &BillingService{
		billRepo:      billRepo,
		vegetableRepo: vegetableRepo,
		customerRepo:  customerRepo,
		analyticsRepo: analyticsRepo,
	}
}

// CreateBillInput is a frozen draft snapshot ready for persistence.
// Amounts are rupees at full precision; they are converted to paise here.
type CreateBillInput struct {
	UserID         uuid.UUID
	ShopName       string
	CustomerName   string
	CustomerMobile string
	BillingMode    enum.BillingMode
	Lines          []invoice.LineItem
	Totals         invoice.Totals
}

// CreateBill finalizes a sale: assigns a bill number, persists the bill with
// its items, deducts stock atomically and bumps usage counters. Insufficient
// stock on any line fails the whole submission.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Cannot submit an empty bill")
	}

	decrements := make(map[uuid.UUID]float64, len(input.Lines))
	vegetableIDs := make([]uuid.UUID, 0, len(input.Lines))
	for _, line := range input.Lines {
		decrements[line.VegetableID] += line.QtyKg
		vegetableIDs = append(vegetableIDs, line.VegetableID)
	}

	failedIDs, err := s.vegetableRepo.AtomicDecrementStockBatch(ctx, decrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		names, nameErr := s.failedNames(ctx, failedIDs)
		if nameErr != nil {
			names = fmt.Sprintf("%d item(s)", len(failedIDs))
		}
		return nil, apperror.NewConflictError("Insufficient stock for " + names)
	}

	bill := &entity.Bill{
		BillNumber:     utils.GenerateBillNo(time.Now()),
		UserID:         input.UserID,
		ShopName:       input.ShopName,
		CustomerName:   input.CustomerName,
		CustomerMobile: input.CustomerMobile,
		BillingMode:    input.BillingMode,
		SubTotal:       toPaise(input.Totals.SubTotal),
		TaxAmount:      toPaise(input.Totals.TaxAmount),
		DiscountAmount: toPaise(input.Totals.Discount),
		GrandTotal:     toPaise(input.Totals.GrandTotal),
	}
	for _, line := range input.Lines {
		bill.Items = append(bill.Items, entity.BillItem{
			VegetableID:   line.VegetableID,
			VegetableName: line.Name,
			TamilName:     line.TamilName,
			QtyKg:         line.QtyKg,
			UnitPrice:     toPaise(line.UnitPrice),
			Total:         toPaise(line.Total),
		})
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		// Put the stock back, the sale did not happen.
		if incErr := s.vegetableRepo.AtomicIncrementStockBatch(ctx, decrements); incErr != nil {
			log.WithError(incErr).Error("failed to restore stock after bill create failure")
		}
		return nil, err
	}

	// Usage counters and the customer record are best-effort bookkeeping;
	// the bill is already committed.
	if err := s.analyticsRepo.IncrementUsageBatch(ctx, input.UserID, vegetableIDs); err != nil {
		log.WithError(err).Warn("failed to bump vegetable usage counters")
	}
	if input.CustomerMobile != "" {
		customer := &entity.Customer{
			UserID:       input.UserID,
			Name:         input.CustomerName,
			MobileNumber: input.CustomerMobile,
		}
		if err := s.customerRepo.Upsert(ctx, customer); err != nil {
			log.WithError(err).Warn("failed to upsert customer")
		}
	}

	return bill, nil
}

func (s *BillingService) failedNames(ctx context.Context, ids []uuid.UUID) (string, error) {
	vegetables, err := s.vegetableRepo.GetByIDs(ctx, ids)
	if err != nil {
		return "", err
	}
	names := ""
	for i, v := range vegetables {
		if i > 0 {
			names += ", "
		}
		names += v.Name
	}
	if names == "" {
		return "", fmt.Errorf("no names resolved")
	}
	return names, nil
}

// GetBill returns a bill owned by the shop
func (s *BillingService) GetBill(ctx context.Context, userID, billID uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil || bill.UserID != userID {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// History returns paged bill history, newest first
func (s *BillingService) History(ctx context.Context, userID uuid.UUID, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	return s.billRepo.List(ctx, userID, params)
}

// HistoryWithCursor returns cursor-paged bill history for infinite scroll
func (s *BillingService) HistoryWithCursor(ctx context.Context, userID uuid.UUID, params *repository.BillCursorFilterParams) ([]entity.Bill, *pagination.CursorPagination, error) {
	bills, err := s.billRepo.ListWithCursor(ctx, userID, params)
	if err != nil {
		return nil, nil, err
	}

	cursorInfo, bills := pagination.NewCursorPagination(bills, params.Cursor.Limit,
		func(b entity.Bill) string { return b.ID.String() },
		func(b entity.Bill) time.Time { return b.CreatedAt },
	)
	cursorInfo.HasPrev = params.Cursor.Cursor != ""

	return bills, cursorInfo, nil
}

// ExportHistoryXLSX renders the bill history as an Excel workbook
func (s *BillingService) ExportHistoryXLSX(ctx context.Context, userID uuid.UUID, params *repository.BillFilterParams) ([]byte, error) {
	bills, _, err := s.billRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Bills"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Bill Number", "Date", "Customer", "Mobile", "Mode", "Sub Total", "Tax", "Discount", "Grand Total"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, bill := range bills {
		values := []interface{}{
			bill.BillNumber,
			bill.CreatedAt.Format("2006-01-02 15:04"),
			bill.CustomerName,
			bill.CustomerMobile,
			bill.BillingMode.String(),
			bill.GetSubTotalDecimal(),
			bill.GetTaxAmountDecimal(),
			bill.GetDiscountAmountDecimal(),
			bill.GetGrandTotalDecimal(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toPaise converts a rupee amount to paise, rounding to the nearest paisa so
// persisted money matches what the till displayed. Truncation would store
// amounts like 4.56 as 455.
func toPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}
