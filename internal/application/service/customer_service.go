package service

import (
	"context"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/arunvel/kadai-api/pkg/apperror"
	"github.com/google/uuid"
)

// CustomerService serves the customer book built up from submitted bills
type CustomerService struct {
	customerRepo  repository.CustomerRepository
	billRepo      repository.BillRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	billRepo repository.BillRepository,
	analyticsRepo repository.AnalyticsRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo:  customerRepo,
		billRepo:      billRepo,
		analyticsRepo: analyticsRepo,
	}
}

// validMobile accepts 10 to 15 digits
func validMobile(mobile string) bool {
	if len(mobile) < 10 || len(mobile) > 15 {
		return false
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Lookup finds a customer by mobile number. Returns nil (not an error) when
// the number is unknown.
func (s *CustomerService) Lookup(ctx context.Context, userID uuid.UUID, mobile string) (*entity.Customer, error) {
	if !validMobile(mobile) {
		return nil, apperror.NewBadRequestError("Mobile number must be 10 to 15 digits")
	}
	return s.customerRepo.GetByMobile(ctx, userID, mobile)
}

// Stats aggregates a customer's purchase history by mobile number
func (s *CustomerService) Stats(ctx context.Context, userID uuid.UUID, mobile string) (*entity.CustomerStats, error) {
	if !validMobile(mobile) {
		return nil, apperror.NewBadRequestError("Mobile number must be 10 to 15 digits")
	}

	stats, err := s.analyticsRepo.GetCustomerStats(ctx, userID, mobile)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return stats, nil
}

// List returns the shop's customers, optionally filtered by name or mobile
func (s *CustomerService) List(ctx context.Context, userID uuid.UUID, search string, limit int) ([]entity.Customer, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return s.customerRepo.List(ctx, userID, search, limit)
}

// Bills returns a customer's recent bills, newest first
func (s *CustomerService) Bills(ctx context.Context, userID uuid.UUID, mobile string, limit int) ([]entity.Bill, error) {
	if !validMobile(mobile) {
		return nil, apperror.NewBadRequestError("Mobile number must be 10 to 15 digits")
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.billRepo.ListByMobile(ctx, userID, mobile, limit)
}
