package repository

import (
	"context"
	"errors"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	domainRepo "github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vegetableRepository struct {
	db *gorm.DB
}

// NewVegetableRepository creates a new vegetable repository
func NewVegetableRepository(db *gorm.DB) domainRepo.VegetableRepository {
	return &vegetableRepository{db: db}
}

func (r *vegetableRepository) Create(ctx context.Context, vegetable *entity.Vegetable) error {
	return r.db.WithContext(ctx).Create(vegetable).Error
}

func (r *vegetableRepository) CreateBatch(ctx context.Context, vegetables []*entity.Vegetable) error {
	if len(vegetables) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(vegetables, 100).Error
}

func (r *vegetableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vegetable, error) {
	var vegetable entity.Vegetable
	err := r.db.WithContext(ctx).First(&vegetable, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vegetable, err
}

// GetByIDs retrieves multiple vegetables in a single query
func (r *vegetableRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Vegetable, error) {
	if len(ids) == 0 {
		return []entity.Vegetable{}, nil
	}
	var vegetables []entity.Vegetable
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&vegetables).Error
	return vegetables, err
}

func (r *vegetableRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Vegetable, error) {
	var vegetable entity.Vegetable
	err := r.db.WithContext(ctx).
		First(&vegetable, "user_id = ? AND LOWER(name) = LOWER(?)", userID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vegetable, err
}

func (r *vegetableRepository) List(ctx context.Context, userID uuid.UUID) ([]entity.Vegetable, error) {
	var vegetables []entity.Vegetable
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&vegetables).Error
	return vegetables, err
}

func (r *vegetableRepository) Update(ctx context.Context, vegetable *entity.Vegetable) error {
	return r.db.WithContext(ctx).Save(vegetable).Error
}

func (r *vegetableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Vegetable{}, "id = ?", id).Error
}

func (r *vegetableRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Vegetable{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// BulkUpsert inserts new rows and updates price/stock on rows matched by name.
func (r *vegetableRepository) BulkUpsert(ctx context.Context, userID uuid.UUID, vegetables []*entity.Vegetable) (int, int, error) {
	if len(vegetables) == 0 {
		return 0, 0, nil
	}

	var created, updated int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, v := range vegetables {
			var existing entity.Vegetable
			err := tx.First(&existing, "user_id = ? AND LOWER(name) = LOWER(?)", userID, v.Name).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				v.UserID = userID
				if err := tx.Create(v).Error; err != nil {
					return err
				}
				created++
				continue
			}
			if err != nil {
				return err
			}

			updates := map[string]interface{}{
				"price_per_kg":    v.PricePerKg,
				"retail_price":    v.RetailPrice,
				"wholesale_price": v.WholesalePrice,
				"stock_kg":        v.StockKg,
			}
			if v.TamilName != "" {
				updates["tamil_name"] = v.TamilName
			}
			if v.TanglishName != "" {
				updates["tanglish_name"] = v.TanglishName
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			updated++
		}
		return nil
	})

	if err != nil {
		return 0, 0, err
	}
	return created, updated, nil
}

// AtomicDecrementStockBatch atomically decrements stock for multiple vegetables
// in a single transaction. If any line has insufficient stock, the entire
// transaction is rolled back.
func (r *vegetableRepository) AtomicDecrementStockBatch(ctx context.Context, decrements map[uuid.UUID]float64) ([]uuid.UUID, error) {
	if len(decrements) == 0 {
		return nil, nil
	}

	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, kg := range decrements {
			result := tx.Model(&entity.Vegetable{}).
				Where("id = ? AND stock_kg >= ?", id, kg).
				Update("stock_kg", gorm.Expr("stock_kg - ?", kg))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}

		if len(failedIDs) > 0 {
			return gorm.ErrInvalidTransaction
		}

		return nil
	})

	// Rolled back due to insufficient stock, surface the failed IDs instead
	// of the transaction error.
	if err == gorm.ErrInvalidTransaction && len(failedIDs) > 0 {
		return failedIDs, nil
	}

	return failedIDs, err
}

// AtomicIncrementStockBatch atomically increments stock (for returns).
func (r *vegetableRepository) AtomicIncrementStockBatch(ctx context.Context, increments map[uuid.UUID]float64) error {
	if len(increments) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, kg := range increments {
			if err := tx.Model(&entity.Vegetable{}).
				Where("id = ?", id).
				Update("stock_kg", gorm.Expr("stock_kg + ?", kg)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
