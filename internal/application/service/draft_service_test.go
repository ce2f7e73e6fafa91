package service

import (
	"context"
	"errors"
	"testing"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/internal/domain/enum"
	"github.com/arunvel/kadai-api/internal/domain/invoice"
	"github.com/google/uuid"
)

type fakeVegetableRepo struct {
	vegetables     map[uuid.UUID]*entity.Vegetable
	decrementFails []uuid.UUID
	decremented    map[uuid.UUID]float64
	incremented    map[uuid.UUID]float64
}

func newFakeVegetableRepo() *fakeVegetableRepo {
	return &fakeVegetableRepo{vegetables: make(map[uuid.UUID]*entity.Vegetable)}
}

func (f *fakeVegetableRepo) add(v *entity.Vegetable) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	f.vegetables[v.ID] = v
}

func (f *fakeVegetableRepo) Create(ctx context.Context, v *entity.Vegetable) error {
	f.add(v)
	return nil
}

func (f *fakeVegetableRepo) CreateBatch(ctx context.Context, vs []*entity.Vegetable) error {
	for _, v := range vs {
		f.add(v)
	}
	return nil
}

func (f *fakeVegetableRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vegetable, error) {
	return f.vegetables[id], nil
}

func (f *fakeVegetableRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Vegetable, error) {
	var out []entity.Vegetable
	for _, id := range ids {
		if v, ok := f.vegetables[id]; ok {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVegetableRepo) GetByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Vegetable, error) {
	for _, v := range f.vegetables {
		if v.UserID == userID && v.Name == name {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVegetableRepo) List(ctx context.Context, userID uuid.UUID) ([]entity.Vegetable, error) {
	var out []entity.Vegetable
	for _, v := range f.vegetables {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVegetableRepo) Update(ctx context.Context, v *entity.Vegetable) error { return nil }
func (f *fakeVegetableRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.vegetables, id)
	return nil
}
func (f *fakeVegetableRepo) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	return int64(len(f.vegetables)), nil
}
func (f *fakeVegetableRepo) BulkUpsert(ctx context.Context, userID uuid.UUID, vs []*entity.Vegetable) (int, int, error) {
	return 0, 0, nil
}
func (f *fakeVegetableRepo) AtomicDecrementStockBatch(ctx context.Context, decrements map[uuid.UUID]float64) ([]uuid.UUID, error) {
	if len(f.decrementFails) > 0 {
		return f.decrementFails, nil
	}
	if f.decremented == nil {
		f.decremented = make(map[uuid.UUID]float64)
	}
	for id, kg := range decrements {
		f.decremented[id] += kg
	}
	return nil, nil
}
func (f *fakeVegetableRepo) AtomicIncrementStockBatch(ctx context.Context, increments map[uuid.UUID]float64) error {
	if f.incremented == nil {
		f.incremented = make(map[uuid.UUID]float64)
	}
	for id, kg := range increments {
		f.incremented[id] += kg
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) GetByMobile(ctx context.Context, userID uuid.UUID, mobile string) (*entity.Customer, error) {
	return f.customers[mobile], nil
}
func (f *fakeCustomerRepo) Upsert(ctx context.Context, c *entity.Customer) error {
	f.customers[c.MobileNumber] = c
	return nil
}
func (f *fakeCustomerRepo) List(ctx context.Context, userID uuid.UUID, search string, limit int) ([]entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeSubmitter struct {
	err   error
	calls int
	last  *CreateBillInput
}

func (f *fakeSubmitter) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	f.calls++
	f.last = input
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Bill{BillNumber: "BILL-20250101120000-ABCD", UserID: input.UserID}, nil
}

type draftFixture struct {
	svc       *DraftService
	submitter *fakeSubmitter
	userID    uuid.UUID
	tomatoID  uuid.UUID
	onionID   uuid.UUID
	customers *fakeCustomerRepo
}

func newDraftFixture(t *testing.T) *draftFixture {
	t.Helper()
	userID := uuid.New()

	vegRepo := newFakeVegetableRepo()
	tomato := &entity.Vegetable{UserID: userID, Name: "Tomato", TamilName: "தக்காளி", RetailPrice: 2000, WholesalePrice: 1600}
	onion := &entity.Vegetable{UserID: userID, Name: "Onion", TamilName: "வெங்காயம்", RetailPrice: 4000, WholesalePrice: 3200}
	vegRepo.add(tomato)
	vegRepo.add(onion)

	customers := newFakeCustomerRepo()
	submitter := &fakeSubmitter{}
	svc := NewDraftService(vegRepo, customers, submitter, 0, enum.BillingModeRetail)

	return &draftFixture{
		svc:       svc,
		submitter: submitter,
		userID:    userID,
		tomatoID:  tomato.ID,
		onionID:   onion.ID,
		customers: customers,
	}
}

func TestDraftAddItem(t *testing.T) {
	fx := newDraftFixture(t)
	ctx := context.Background()

	fx.svc.SetSearchTerm(fx.userID, "thakkali")
	view, err := fx.svc.AddItem(ctx, fx.userID, fx.tomatoID)
	if err != nil {
		t.Fatal(err)
	}

	if len(view.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(view.Lines))
	}
	line := view.Lines[0]
	if line.QtyKg != 1 || line.UnitPrice != 20 || line.Total != 20 {
		t.Errorf("line = %+v, want 1kg at 20", line)
	}
	if view.SearchTerm != "" {
		t.Errorf("search term = %q, want cleared", view.SearchTerm)
	}
	if view.GrandTotal != 20 {
		t.Errorf("grand total = %v, want 20", view.GrandTotal)
	}
}

func TestDraftAddItemWholesaleMode(t *testing.T) {
	fx := newDraftFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.SetBillingMode(fx.userID, enum.BillingModeWholesale); err != nil {
		t.Fatal(err)
	}
	view, err := fx.svc.AddItem(ctx, fx.userID, fx.tomatoID)
	if err != nil {
		t.Fatal(err)
	}

	if view.Lines[0].UnitPrice != 16 {
		t.Errorf("unit price = %v, want wholesale 16", view.Lines[0].UnitPrice)
	}
}

func TestDraftAddUnknownVegetable(t *testing.T) {
	fx := newDraftFixture(t)
	if _, err := fx.svc.AddItem(context.Background(), fx.userID, uuid.New()); err == nil {
		t.Fatal("expected error for unknown vegetable")
	}
}

func TestDraftEditBelowFloorIsSilent(t *testing.T) {
	fx := newDraftFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.AddItem(ctx, fx.userID, fx.tomatoID); err != nil {
		t.Fatal(err)
	}

	view, err := fx.svc.EditLine(fx.userID, fx.tomatoID, invoice.Edit{Kind: invoice.EditQuantity, Value: 0.001})
	if err != nil {
		t.Fatalf("below-floor edit should not error, got %v", err)
	}
	if view.Lines[0].QtyKg != 1 {
		t.Errorf("qty = %v, want unchanged 1", view.Lines[0].QtyKg)
	}
}

func TestDraftSubmitEmptyRejected(t *testing.T) {
	fx := newDraftFixture(t)

	_, view, err := fx.svc.Submit(context.Background(), fx.userID, &SubmitInput{ShopName: "Kadai"})
	if err == nil {
		t.Fatal("expected error submitting empty draft")
	}
	if fx.submitter.calls != 0 {
		t.Errorf("submitter called %d times, want 0", fx.submitter.calls)
	}
	if view.SubmitState != enum.SubmitStateIdle {
		t.Errorf("submit state = %v, want idle", view.SubmitState)
	}
}

func TestDraftSubmitSuccessClearsDraft(t *testing.T) {
	fx := newDraftFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.AddItem(ctx, fx.userID, fx.tomatoID); err != nil {
		t.Fatal(err)
	}
	fx.svc.SetCustomerName(fx.userID, "Mani")
	fx.svc.SetDiscount(fx.userID, 5)

	bill, view, err := fx.svc.Submit(ctx, fx.userID, &SubmitInput{ShopName: "Kadai"})
	if err != nil {
		t.Fatal(err)
	}
	if bill == nil || bill.BillNumber == "" {
		t.Fatal("expected a bill back")
	}

	if fx.submitter.last.CustomerName != "Mani" {
		t.Errorf("submitted customer = %q, want Mani", fx.submitter.last.CustomerName)
	}
	if fx.submitter.last.Totals.GrandTotal != 15 {
		t.Errorf("submitted grand total = %v, want 15", fx.submitter.last.Totals.GrandTotal)
	}

	if len(view.Lines) != 0 || view.CustomerName != "" || view.Discount != 0 {
		t.Errorf("draft not cleared after success: %+v", view)
	}
	if view.SubmitState != enum.SubmitStateSuccess {
		t.Errorf("submit state = %v, want success", view.SubmitState)
	}
}

func TestDraftSubmitFailureKeepsDraft(t *testing.T) {
	fx := newDraftFixture(t)
	ctx := context.Background()
	fx.submitter.err = errors.New("insufficient stock")

	if _, err := fx.svc.AddItem(ctx, fx.userID, fx.tomatoID); err != nil {
		t.Fatal(err)
	}
	fx.svc.SetCustomerName(fx.userID, "Mani")

	_, view, err := fx.svc.Submit(ctx, fx.userID, &SubmitInput{ShopName: "Kadai"})
	if err == nil {
		t.Fatal("expected submit error")
	}

	if len(view.Lines) != 1 || view.CustomerName != "Mani" {
		t.Errorf("draft was not preserved after failure: %+v", view)
	}
	if view.SubmitState != enum.SubmitStateIdle {
		t.Errorf("submit state = %v, want idle so the operator can retry", view.SubmitState)
	}
	if view.LastError == "" {
		t.Error("expected last error on the view")
	}

	// The next attempt goes through once the submitter recovers.
	fx.submitter.err = nil
	bill, view, err := fx.svc.Submit(ctx, fx.userID, &SubmitInput{ShopName: "Kadai"})
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if bill == nil {
		t.Fatal("expected a bill from the retry")
	}
	if view.SubmitState != enum.SubmitStateSuccess || view.LastError != "" {
		t.Errorf("retry view = state %v, last error %q", view.SubmitState, view.LastError)
	}
}

func TestDraftMobileFiltering(t *testing.T) {
	fx := newDraftFixture(t)

	view, _, trigger := fx.svc.SetCustomerMobile(fx.userID, "98-41 2abc3")
	if view.CustomerMobile != "984123" {
		t.Errorf("mobile = %q, want 984123", view.CustomerMobile)
	}
	if trigger {
		t.Error("lookup should not trigger below ten digits")
	}

	view, _, trigger = fx.svc.SetCustomerMobile(fx.userID, "98412345678999")
	if view.CustomerMobile != "9841234567" {
		t.Errorf("mobile = %q, want capped at ten digits", view.CustomerMobile)
	}
	if !trigger {
		t.Error("lookup should trigger at ten digits")
	}
	if view.LookupStatus != enum.LookupStatusPending {
		t.Errorf("lookup status = %v, want pending", view.LookupStatus)
	}
}

func TestDraftLookupLatestWins(t *testing.T) {
	fx := newDraftFixture(t)
	ctx := context.Background()
	fx.customers.customers["9841234567"] = &entity.Customer{Name: "Mani", MobileNumber: "9841234567"}

	_, staleToken, _ := fx.svc.SetCustomerMobile(fx.userID, "9841234567")

	// Operator keeps typing before the first lookup resolves.
	_, freshToken, _ := fx.svc.SetCustomerMobile(fx.userID, "9841200000")

	view, err := fx.svc.LookupCustomer(ctx, fx.userID, "9841234567", staleToken)
	if err != nil {
		t.Fatal(err)
	}
	if view.CustomerName != "" {
		t.Errorf("stale lookup filled in name %q", view.CustomerName)
	}
	if view.LookupStatus == enum.LookupStatusFound {
		t.Error("stale lookup changed status to found")
	}

	view, err = fx.svc.LookupCustomer(ctx, fx.userID, "9841200000", freshToken)
	if err != nil {
		t.Fatal(err)
	}
	if view.LookupStatus != enum.LookupStatusNotFound {
		t.Errorf("lookup status = %v, want not_found", view.LookupStatus)
	}
}

func TestDraftLookupFound(t *testing.T) {
	fx := newDraftFixture(t)
	ctx := context.Background()
	fx.customers.customers["9841234567"] = &entity.Customer{Name: "Mani", MobileNumber: "9841234567"}

	_, token, trigger := fx.svc.SetCustomerMobile(fx.userID, "9841234567")
	if !trigger {
		t.Fatal("expected lookup trigger")
	}

	view, err := fx.svc.LookupCustomer(ctx, fx.userID, "9841234567", token)
	if err != nil {
		t.Fatal(err)
	}
	if view.LookupStatus != enum.LookupStatusFound {
		t.Errorf("lookup status = %v, want found", view.LookupStatus)
	}
	if view.CustomerName != "Mani" {
		t.Errorf("customer name = %q, want Mani", view.CustomerName)
	}
}

func TestDraftSessionsAreIsolated(t *testing.T) {
	fx := newDraftFixture(t)
	ctx := context.Background()
	otherUser := uuid.New()

	if _, err := fx.svc.AddItem(ctx, fx.userID, fx.tomatoID); err != nil {
		t.Fatal(err)
	}

	view := fx.svc.Get(otherUser)
	if len(view.Lines) != 0 {
		t.Error("another user's draft leaked into a fresh session")
	}
}

func TestDraftDiscountClamp(t *testing.T) {
	fx := newDraftFixture(t)
	view := fx.svc.SetDiscount(fx.userID, -10)
	if view.Discount != 0 {
		t.Errorf("discount = %v, want clamped to 0", view.Discount)
	}
}
