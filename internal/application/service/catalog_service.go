package service

import (
	"context"

	"github.com/arunvel/kadai-api/internal/domain/catalog"
	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/arunvel/kadai-api/pkg/apperror"
	"github.com/google/uuid"
)

// CatalogService handles the vegetable catalog: inventory CRUD and the
// search used by the till. Search runs in memory over the shop's catalog
// snapshot so Tanglish resolution and priority ranking stay in one place.
type CatalogService struct {
	vegetableRepo repository.VegetableRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(vegetableRepo repository.VegetableRepository) *CatalogService {
	return &CatalogService{vegetableRepo: vegetableRepo}
}

// Search returns the shop's vegetables matching the term, priority-ranked.
// An empty term returns the full ranked catalog.
func (s *CatalogService) Search(ctx context.Context, userID uuid.UUID, term string) ([]entity.Vegetable, error) {
	items, err := s.vegetableRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return catalog.Search(items, term), nil
}

// List returns the full catalog for the shop, ranked for display.
func (s *CatalogService) List(ctx context.Context, userID uuid.UUID) ([]entity.Vegetable, error) {
	items, err := s.vegetableRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog.Rank(items)
	return items, nil
}

// GetByID returns a single vegetable owned by the shop.
func (s *CatalogService) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Vegetable, error) {
	v, err := s.vegetableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil || v.UserID != userID {
		return nil, apperror.NewNotFoundError("Vegetable")
	}
	return v, nil
}

// CreateVegetableInput represents a new catalog item
type CreateVegetableInput struct {
	Name           string
	TamilName      string
	TanglishName   string
	Category       string
	RetailPrice    float64 // rupees
	WholesalePrice float64 // rupees
	StockKg        float64
}

// Create adds a vegetable to the shop's catalog
func (s *CatalogService) Create(ctx context.Context, userID uuid.UUID, input *CreateVegetableInput) (*entity.Vegetable, error) {
	existing, err := s.vegetableRepo.GetByName(ctx, userID, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Vegetable already exists")
	}

	v := &entity.Vegetable{
		UserID:       userID,
		Name:         input.Name,
		TamilName:    input.TamilName,
		TanglishName: input.TanglishName,
		Category:     input.Category,
		StockKg:      input.StockKg,
	}
	v.SetRetailPriceFromDecimal(input.RetailPrice)
	v.SetWholesalePriceFromDecimal(input.WholesalePrice)
	v.SetPricePerKgFromDecimal(input.RetailPrice)

	if err := s.vegetableRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVegetableInput carries the editable catalog fields. Nil means leave
// the field unchanged.
type UpdateVegetableInput struct {
	RetailPrice    *float64 // rupees
	WholesalePrice *float64 // rupees
	StockKg        *float64
	TamilName      *string
	Category       *string
}

// Update changes price or stock on a catalog item
func (s *CatalogService) Update(ctx context.Context, userID, id uuid.UUID, input *UpdateVegetableInput) (*entity.Vegetable, error) {
	v, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.RetailPrice != nil {
		v.SetRetailPriceFromDecimal(*input.RetailPrice)
		v.SetPricePerKgFromDecimal(*input.RetailPrice)
	}
	if input.WholesalePrice != nil {
		v.SetWholesalePriceFromDecimal(*input.WholesalePrice)
	}
	if input.StockKg != nil {
		v.StockKg = *input.StockKg
	}
	if input.TamilName != nil {
		v.TamilName = *input.TamilName
	}
	if input.Category != nil {
		v.Category = *input.Category
	}

	if err := s.vegetableRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete removes a vegetable from the catalog
func (s *CatalogService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	v, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.vegetableRepo.Delete(ctx, v.ID)
}

// BulkSyncInput is one row of a bulk catalog upload
type BulkSyncInput struct {
	Name           string
	TamilName      string
	TanglishName   string
	RetailPrice    float64 // rupees
	WholesalePrice float64 // rupees
	StockKg        float64
}

// BulkSyncResult reports what a bulk sync changed
type BulkSyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// BulkSync upserts catalog rows by name in one transaction
func (s *CatalogService) BulkSync(ctx context.Context, userID uuid.UUID, inputs []BulkSyncInput) (*BulkSyncResult, error) {
	rows := make([]*entity.Vegetable, 0, len(inputs))
	for _, in := range inputs {
		v := &entity.Vegetable{
			Name:         in.Name,
			TamilName:    in.TamilName,
			TanglishName: in.TanglishName,
			Category:     "Vegetables",
			StockKg:      in.StockKg,
		}
		v.SetRetailPriceFromDecimal(in.RetailPrice)
		v.SetWholesalePriceFromDecimal(in.WholesalePrice)
		v.SetPricePerKgFromDecimal(in.RetailPrice)
		rows = append(rows, v)
	}

	created, updated, err := s.vegetableRepo.BulkUpsert(ctx, userID, rows)
	if err != nil {
		return nil, err
	}
	return &BulkSyncResult{Created: created, Updated: updated}, nil
}
