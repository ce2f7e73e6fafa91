package service

import (
	"context"
	"strings"
	"testing"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/internal/domain/enum"
	"github.com/arunvel/kadai-api/internal/domain/invoice"
	"github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/google/uuid"
)

type fakeBillRepo struct {
	bills []*entity.Bill
	err   error
}

func (f *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	if f.err != nil {
		return f.err
	}
	f.bills = append(f.bills, bill)
	return nil
}

func (f *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	for _, b := range f.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) GetByBillNumber(ctx context.Context, userID uuid.UUID, billNumber string) (*entity.Bill, error) {
	return nil, nil
}

func (f *fakeBillRepo) List(ctx context.Context, userID uuid.UUID, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	return nil, 0, nil
}

func (f *fakeBillRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *repository.BillCursorFilterParams) ([]entity.Bill, error) {
	return nil, nil
}

func (f *fakeBillRepo) ListByMobile(ctx context.Context, userID uuid.UUID, mobile string, limit int) ([]entity.Bill, error) {
	return nil, nil
}

type fakeAnalyticsRepo struct {
	usageBumps [][]uuid.UUID
}

func (f *fakeAnalyticsRepo) GetSalesSummary(ctx context.Context, userID uuid.UUID) (*repository.SalesSummary, error) {
	return &repository.SalesSummary{}, nil
}
func (f *fakeAnalyticsRepo) GetTopVegetables(ctx context.Context, userID uuid.UUID, limit int) ([]repository.TopVegetableResult, error) {
	return nil, nil
}
func (f *fakeAnalyticsRepo) GetDailySales(ctx context.Context, userID uuid.UUID, days int) ([]repository.DailySalesResult, error) {
	return nil, nil
}
func (f *fakeAnalyticsRepo) GetCustomerStats(ctx context.Context, userID uuid.UUID, mobile string) (*entity.CustomerStats, error) {
	return nil, nil
}
func (f *fakeAnalyticsRepo) IncrementUsageBatch(ctx context.Context, userID uuid.UUID, vegetableIDs []uuid.UUID) error {
	f.usageBumps = append(f.usageBumps, vegetableIDs)
	return nil
}

type billingFixture struct {
	svc       *BillingService
	billRepo  *fakeBillRepo
	vegRepo   *fakeVegetableRepo
	customers *fakeCustomerRepo
	analytics *fakeAnalyticsRepo
	userID    uuid.UUID
	tomatoID  uuid.UUID
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()
	userID := uuid.New()

	vegRepo := newFakeVegetableRepo()
	tomato := &entity.Vegetable{UserID: userID, Name: "Tomato", RetailPrice: 2000, StockKg: 50}
	vegRepo.add(tomato)

	billRepo := &fakeBillRepo{}
	customers := newFakeCustomerRepo()
	analytics := &fakeAnalyticsRepo{}

	return &billingFixture{
		svc:       NewBillingService(billRepo, vegRepo, customers, analytics),
		billRepo:  billRepo,
		vegRepo:   vegRepo,
		customers: customers,
		analytics: analytics,
		userID:    userID,
		tomatoID:  tomato.ID,
	}
}

func billInput(fx *billingFixture) *CreateBillInput {
	lines := []invoice.LineItem{
		{VegetableID: fx.tomatoID, Name: "Tomato", QtyKg: 2.5, UnitPrice: 18, Total: 45},
	}
	return &CreateBillInput{
		UserID:         fx.userID,
		ShopName:       "Kadai",
		CustomerName:   "Mani",
		CustomerMobile: "9841234567",
		BillingMode:    enum.BillingModeRetail,
		Lines:          lines,
		Totals:         invoice.Compute(lines, 0, 10),
	}
}

func TestCreateBill(t *testing.T) {
	fx := newBillingFixture(t)

	bill, err := fx.svc.CreateBill(context.Background(), billInput(fx))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(bill.BillNumber, "BILL-") {
		t.Errorf("bill number = %q, want BILL- prefix", bill.BillNumber)
	}
	if bill.SubTotal != 4500 {
		t.Errorf("subtotal = %d paise, want 4500", bill.SubTotal)
	}
	if bill.DiscountAmount != 1000 {
		t.Errorf("discount = %d paise, want 1000", bill.DiscountAmount)
	}
	if bill.GrandTotal != 3500 {
		t.Errorf("grand total = %d paise, want 3500", bill.GrandTotal)
	}
	if len(bill.Items) != 1 || bill.Items[0].QtyKg != 2.5 || bill.Items[0].Total != 4500 {
		t.Errorf("items = %+v", bill.Items)
	}

	if got := fx.vegRepo.decremented[fx.tomatoID]; got != 2.5 {
		t.Errorf("stock decrement = %v kg, want 2.5", got)
	}
	if len(fx.analytics.usageBumps) != 1 {
		t.Errorf("usage bump calls = %d, want 1", len(fx.analytics.usageBumps))
	}
	if fx.customers.customers["9841234567"] == nil {
		t.Error("customer was not upserted")
	}
}

func TestCreateBillEmptyLines(t *testing.T) {
	fx := newBillingFixture(t)
	input := billInput(fx)
	input.Lines = nil

	if _, err := fx.svc.CreateBill(context.Background(), input); err == nil {
		t.Fatal("expected error for empty bill")
	}
	if len(fx.billRepo.bills) != 0 {
		t.Error("empty bill was persisted")
	}
}

func TestCreateBillInsufficientStock(t *testing.T) {
	fx := newBillingFixture(t)
	fx.vegRepo.decrementFails = []uuid.UUID{fx.tomatoID}

	_, err := fx.svc.CreateBill(context.Background(), billInput(fx))
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	if !strings.Contains(err.Error(), "Tomato") {
		t.Errorf("error %q should name the vegetable", err.Error())
	}
	if len(fx.billRepo.bills) != 0 {
		t.Error("bill was persisted despite stock failure")
	}
}

func TestCreateBillPersistFailureRestoresStock(t *testing.T) {
	fx := newBillingFixture(t)
	fx.billRepo.err = context.DeadlineExceeded

	if _, err := fx.svc.CreateBill(context.Background(), billInput(fx)); err == nil {
		t.Fatal("expected persistence error")
	}
	if got := fx.vegRepo.incremented[fx.tomatoID]; got != 2.5 {
		t.Errorf("restored stock = %v kg, want 2.5", got)
	}
}

func TestCreateBillNoMobileSkipsCustomer(t *testing.T) {
	fx := newBillingFixture(t)
	input := billInput(fx)
	input.CustomerName = ""
	input.CustomerMobile = ""

	if _, err := fx.svc.CreateBill(context.Background(), input); err != nil {
		t.Fatal(err)
	}
	if len(fx.customers.customers) != 0 {
		t.Error("customer record created without a mobile number")
	}
}

func TestToPaiseRoundsToNearest(t *testing.T) {
	cases := []struct {
		rupees float64
		want   int64
	}{
		{4.56, 456},
		{18.15, 1815},
		{0.29, 29},
		{45, 4500},
		{0, 0},
	}
	for _, tc := range cases {
		if got := toPaise(tc.rupees); got != tc.want {
			t.Errorf("toPaise(%v) = %d, want %d", tc.rupees, got, tc.want)
		}
	}
}
