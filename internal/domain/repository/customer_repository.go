package repository

import (
	"context"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	GetByMobile(ctx context.Context, userID uuid.UUID, mobile string) (*entity.Customer, error)
	// Upsert creates the customer or refreshes the stored name when the
	// mobile number is already known
	Upsert(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, userID uuid.UUID, search string, limit int) ([]entity.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
