package repository

import (
	"context"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/google/uuid"
)

// VegetableRepository defines the interface for catalog data operations.
// Search and ranking happen in memory over List snapshots, so List returns
// the full per-shop catalog rather than paging.
type VegetableRepository interface {
	Create(ctx context.Context, vegetable *entity.Vegetable) error
	CreateBatch(ctx context.Context, vegetables []*entity.Vegetable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vegetable, error)
	// GetByIDs retrieves multiple vegetables in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Vegetable, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Vegetable, error)
	List(ctx context.Context, userID uuid.UUID) ([]entity.Vegetable, error)
	Update(ctx context.Context, vegetable *entity.Vegetable) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	// BulkUpsert inserts new rows and updates price/stock on rows matched by
	// name, in one transaction. Returns the number created and updated.
	BulkUpsert(ctx context.Context, userID uuid.UUID, vegetables []*entity.Vegetable) (created int, updated int, err error)
	// AtomicDecrementStockBatch atomically decrements stock for multiple
	// vegetables. Returns the IDs that failed (insufficient stock) and any
	// error. If any vegetable fails, the entire transaction is rolled back.
	AtomicDecrementStockBatch(ctx context.Context, decrements map[uuid.UUID]float64) (failedIDs []uuid.UUID, err error)
	// AtomicIncrementStockBatch atomically increments stock (for returns).
	AtomicIncrementStockBatch(ctx context.Context, increments map[uuid.UUID]float64) error
}
