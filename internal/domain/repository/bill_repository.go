package repository

import (
	"context"
	"time"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillFilterParams contains filtering parameters for bill history queries
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches bill number, customer name or mobile
	From       *time.Time
	To         *time.Time
}

// BillCursorFilterParams contains cursor-based filtering for bill history
type BillCursorFilterParams struct {
	Cursor *pagination.CursorParams
	Search string
	From   *time.Time
	To     *time.Time
}

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	// Create persists the bill and its items in one transaction
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByBillNumber(ctx context.Context, userID uuid.UUID, billNumber string) (*entity.Bill, error)
	List(ctx context.Context, userID uuid.UUID, params *BillFilterParams) ([]entity.Bill, int64, error)
	ListWithCursor(ctx context.Context, userID uuid.UUID, params *BillCursorFilterParams) ([]entity.Bill, error)
	// ListByMobile returns a customer's bills, newest first
	ListByMobile(ctx context.Context, userID uuid.UUID, mobile string, limit int) ([]entity.Bill, error)
}
