package repository

import (
	"context"
	"errors"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	domainRepo "github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByMobile(ctx context.Context, userID uuid.UUID, mobile string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).
		First(&customer, "user_id = ? AND mobile_number = ?", userID, mobile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

// Upsert creates the customer or refreshes the stored name when the mobile
// number is already known.
func (r *customerRepository) Upsert(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Customer
		err := tx.First(&existing, "user_id = ? AND mobile_number = ?",
			customer.UserID, customer.MobileNumber).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(customer).Error
		}
		if err != nil {
			return err
		}

		customer.ID = existing.ID
		if customer.Name != "" && customer.Name != existing.Name {
			return tx.Model(&existing).Update("name", customer.Name).Error
		}
		return nil
	})
}

func (r *customerRepository) List(ctx context.Context, userID uuid.UUID, search string, limit int) ([]entity.Customer, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if search != "" {
		query = query.Where("name ILIKE ? OR mobile_number ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	var customers []entity.Customer
	err := query.Order("name ASC").Limit(limit).Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}
