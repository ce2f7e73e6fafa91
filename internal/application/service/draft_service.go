package service

import (
	"context"
	"strings"
	"sync"

	"github.com/arunvel/kadai-api/internal/domain/catalog"
	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/internal/domain/enum"
	"github.com/arunvel/kadai-api/internal/domain/invoice"
	"github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/arunvel/kadai-api/pkg/apperror"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// maxMobileDigits caps the phone field; lookup fires at exactly lookupDigits.
const (
	maxMobileDigits = 10
	lookupDigits    = 10
)

// BillSubmitter finalizes a frozen draft into a persisted bill.
type BillSubmitter interface {
	CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error)
}

// draftSession is one user's open draft invoice. All access goes through the
// session mutex so edits are run-to-completion, like a single till.
type draftSession struct {
	mu sync.Mutex

	ledger         *invoice.Ledger
	billingMode    enum.BillingMode
	discount       float64
	customerName   string
	customerMobile string
	searchTerm     string

	lookupSeq    uint64
	lookupStatus enum.LookupStatus

	submitState enum.SubmitState
	lastError   string
}

func newDraftSession(mode enum.BillingMode) *draftSession {
	return &draftSession{
		ledger:       invoice.NewLedger(),
		billingMode:  mode,
		lookupStatus: enum.LookupStatusIdle,
		submitState:  enum.SubmitStateIdle,
	}
}

// reset starts a fresh invoice, keeping the billing mode.
func (d *draftSession) reset() {
	d.ledger = invoice.NewLedger()
	d.discount = 0
	d.customerName = ""
	d.customerMobile = ""
	d.searchTerm = ""
	d.lookupSeq++
	d.lookupStatus = enum.LookupStatusIdle
	d.submitState = enum.SubmitStateIdle
	d.lastError = ""
}

// DraftView is a read-only snapshot of a draft for the API. Money fields are
// rounded here; the ledger itself keeps full precision.
type DraftView struct {
	Lines          []invoice.LineItem `json:"lines"`
	SubTotal       float64            `json:"sub_total"`
	TaxAmount      float64            `json:"tax_amount"`
	Discount       float64            `json:"discount"`
	GrandTotal     float64            `json:"grand_total"`
	BillingMode    enum.BillingMode   `json:"billing_mode"`
	CustomerName   string             `json:"customer_name"`
	CustomerMobile string             `json:"customer_mobile"`
	SearchTerm     string             `json:"search_term"`
	LookupStatus   enum.LookupStatus  `json:"lookup_status"`
	SubmitState    enum.SubmitState   `json:"submit_state"`
	LastError      string             `json:"last_error,omitempty"`
}

// DraftService keeps one open draft per authenticated user and serializes
// every mutation through the session mutex. Drafts live in memory; an
// unsubmitted draft does not survive a restart.
type DraftService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*draftSession

	vegetableRepo repository.VegetableRepository
	customerRepo  repository.CustomerRepository
	submitter     BillSubmitter
	taxRate       float64
	defaultMode   enum.BillingMode
}

// NewDraftService creates a new draft service
func NewDraftService(
	vegetableRepo repository.VegetableRepository,
	customerRepo repository.CustomerRepository,
	submitter BillSubmitter,
	taxRate float64,
	defaultMode enum.BillingMode,
) *DraftService {
	if !defaultMode.IsValid() {
		defaultMode = enum.BillingModeRetail
	}
	return &DraftService{
		sessions:      make(map[uuid.UUID]*draftSession),
		vegetableRepo: vegetableRepo,
		customerRepo:  customerRepo,
		submitter:     submitter,
		taxRate:       taxRate,
		defaultMode:   defaultMode,
	}
}

func (s *DraftService) session(userID uuid.UUID) *draftSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = newDraftSession(s.defaultMode)
		s.sessions[userID] = sess
	}
	return sess
}

func (d *draftSession) view(taxRate float64) *DraftView {
	lines := d.ledger.Lines()
	for i := range lines {
		lines[i].QtyKg = invoice.Round2(lines[i].QtyKg)
		lines[i].UnitPrice = invoice.Round2(lines[i].UnitPrice)
		lines[i].Total = invoice.Round2(lines[i].Total)
	}
	totals := invoice.Compute(d.ledger.Lines(), taxRate, d.discount)

	return &DraftView{
		Lines:          lines,
		SubTotal:       invoice.Round2(totals.SubTotal),
		TaxAmount:      invoice.Round2(totals.TaxAmount),
		Discount:       invoice.Round2(totals.Discount),
		GrandTotal:     invoice.Round2(totals.GrandTotal),
		BillingMode:    d.billingMode,
		CustomerName:   d.customerName,
		CustomerMobile: d.customerMobile,
		SearchTerm:     d.searchTerm,
		LookupStatus:   d.lookupStatus,
		SubmitState:    d.submitState,
		LastError:      d.lastError,
	}
}

// Get returns the current draft snapshot
func (s *DraftService) Get(userID uuid.UUID) *DraftView {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(s.taxRate)
}

// SetSearchTerm records what the operator typed in the item search box
func (s *DraftService) SetSearchTerm(userID uuid.UUID, term string) *DraftView {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.searchTerm = term
	return sess.view(s.taxRate)
}

// AddItem puts a vegetable on the draft at the mode price and clears the
// search box so the operator can type the next item.
func (s *DraftService) AddItem(ctx context.Context, userID, vegetableID uuid.UUID) (*DraftView, error) {
	vegetable, err := s.vegetableRepo.GetByID(ctx, vegetableID)
	if err != nil {
		return nil, err
	}
	if vegetable == nil || vegetable.UserID != userID {
		return nil, apperror.NewNotFoundError("Vegetable")
	}

	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	price := catalog.CandidatePrice(vegetable, sess.billingMode)
	sess.ledger.Add(vegetable.ID, vegetable.Name, vegetable.TamilName, price)
	sess.searchTerm = ""
	return sess.view(s.taxRate), nil
}

// RemoveItem takes a line off the draft. Removing an absent line is a no-op.
func (s *DraftService) RemoveItem(userID, vegetableID uuid.UUID) *DraftView {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.ledger.Remove(vegetableID)
	return sess.view(s.taxRate)
}

// EditLine applies a quantity, price or total edit to a line. A quantity
// below the floor is silently ignored and the draft returned unchanged.
func (s *DraftService) EditLine(userID, vegetableID uuid.UUID, edit invoice.Edit) (*DraftView, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := sess.ledger.Apply(vegetableID, edit); err != nil {
		if err == invoice.ErrQuantityBelowFloor {
			return sess.view(s.taxRate), nil
		}
		if err == invoice.ErrLineNotFound {
			return nil, apperror.NewNotFoundError("Line item")
		}
		return nil, err
	}
	return sess.view(s.taxRate), nil
}

// StepQuantity nudges a line's weight by delta kg
func (s *DraftService) StepQuantity(userID, vegetableID uuid.UUID, delta float64) (*DraftView, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := sess.ledger.Step(vegetableID, delta); err != nil {
		if err == invoice.ErrQuantityBelowFloor {
			return sess.view(s.taxRate), nil
		}
		if err == invoice.ErrLineNotFound {
			return nil, apperror.NewNotFoundError("Line item")
		}
		return nil, err
	}
	return sess.view(s.taxRate), nil
}

// SetDiscount sets the flat discount in rupees, clamped at zero
func (s *DraftService) SetDiscount(userID uuid.UUID, discount float64) *DraftView {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if discount < 0 {
		discount = 0
	}
	sess.discount = discount
	return sess.view(s.taxRate)
}

// SetBillingMode switches Retail/Wholesale. Lines already on the draft keep
// their prices; the mode only affects items added afterwards.
func (s *DraftService) SetBillingMode(userID uuid.UUID, mode enum.BillingMode) (*DraftView, error) {
	if !mode.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid billing mode")
	}
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.billingMode = mode
	return sess.view(s.taxRate), nil
}

// SetCustomerName sets the customer name on the draft
func (s *DraftService) SetCustomerName(userID uuid.UUID, name string) *DraftView {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.customerName = strings.TrimSpace(name)
	return sess.view(s.taxRate)
}

// SetCustomerMobile updates the phone field. Non-digits are stripped and the
// value is capped at ten digits. When the field reaches exactly ten digits a
// lookup token is returned; every keystroke bumps the token so only the
// latest lookup's result lands (see CompleteLookup).
func (s *DraftService) SetCustomerMobile(userID uuid.UUID, raw string) (*DraftView, uint64, bool) {
	digits := make([]byte, 0, maxMobileDigits)
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, byte(r))
			if len(digits) == maxMobileDigits {
				break
			}
		}
	}

	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.customerMobile = string(digits)
	sess.lookupSeq++

	if len(digits) == lookupDigits {
		sess.lookupStatus = enum.LookupStatusPending
		return sess.view(s.taxRate), sess.lookupSeq, true
	}

	sess.lookupStatus = enum.LookupStatusIdle
	return sess.view(s.taxRate), sess.lookupSeq, false
}

// LookupCustomer resolves the mobile number against the customer book and
// fills in the name on a hit. A miss is not an error; the draft just shows
// not_found. Results carrying a stale token are discarded, so when the
// operator keeps typing only the latest lookup wins.
func (s *DraftService) LookupCustomer(ctx context.Context, userID uuid.UUID, mobile string, token uint64) (*DraftView, error) {
	customer, err := s.customerRepo.GetByMobile(ctx, userID, mobile)

	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if token != sess.lookupSeq {
		// The operator typed again while this lookup was in flight.
		return sess.view(s.taxRate), nil
	}

	if err != nil {
		log.WithError(err).Warn("customer lookup failed")
		sess.lookupStatus = enum.LookupStatusNotFound
		return sess.view(s.taxRate), nil
	}

	if customer == nil {
		sess.lookupStatus = enum.LookupStatusNotFound
		return sess.view(s.taxRate), nil
	}

	sess.lookupStatus = enum.LookupStatusFound
	if sess.customerName == "" {
		sess.customerName = customer.Name
	}
	return sess.view(s.taxRate), nil
}

// Clear abandons the current draft and starts a fresh invoice
func (s *DraftService) Clear(userID uuid.UUID) *DraftView {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.reset()
	return sess.view(s.taxRate)
}

// SubmitInput carries per-submit fields not kept on the draft
type SubmitInput struct {
	ShopName string
}

// Submit freezes the draft and hands it to the billing service. On success
// the draft is cleared for the next customer; on failure it is left fully
// intact so nothing has to be retyped, and the error is surfaced on the view.
func (s *DraftService) Submit(ctx context.Context, userID uuid.UUID, input *SubmitInput) (*entity.Bill, *DraftView, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.ledger.IsEmpty() {
		return nil, sess.view(s.taxRate), apperror.NewBadRequestError("Cannot submit an empty bill")
	}
	if sess.submitState == enum.SubmitStateSubmitting {
		return nil, sess.view(s.taxRate), apperror.NewConflictError("Submission already in progress")
	}

	sess.submitState = enum.SubmitStateSubmitting
	sess.lastError = ""

	lines := sess.ledger.Lines()
	totals := invoice.Compute(lines, s.taxRate, sess.discount)

	bill, err := s.submitter.CreateBill(ctx, &CreateBillInput{
		UserID:         userID,
		ShopName:       input.ShopName,
		CustomerName:   sess.customerName,
		CustomerMobile: sess.customerMobile,
		BillingMode:    sess.billingMode,
		Lines:          lines,
		Totals:         totals,
	})
	if err != nil {
		// Back to idle so the operator can fix the problem and resubmit;
		// the error stays visible on the view.
		sess.submitState = enum.SubmitStateIdle
		sess.lastError = err.Error()
		return nil, sess.view(s.taxRate), err
	}

	sess.reset()
	sess.submitState = enum.SubmitStateSuccess
	return bill, sess.view(s.taxRate), nil
}
