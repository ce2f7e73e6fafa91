package repository

import (
	"context"
	"time"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/google/uuid"
)

// SalesSummary aggregates billing activity for a shop
type SalesSummary struct {
	TodaySales     float64
	TodayBillCount int64
	TotalSales     float64
	TotalBillCount int64
}

// TopVegetableResult represents a vegetable's billing frequency
type TopVegetableResult struct {
	VegetableID   uuid.UUID
	VegetableName string
	TamilName     string
	UsageCount    int64
}

// DailySalesResult represents sales for a single day
type DailySalesResult struct {
	Date      time.Time
	Revenue   float64
	BillCount int64
}

// AnalyticsRepository defines the interface for aggregation queries
type AnalyticsRepository interface {
	// GetSalesSummary returns today's and all-time sales for a shop
	GetSalesSummary(ctx context.Context, userID uuid.UUID) (*SalesSummary, error)

	// GetTopVegetables returns the most frequently billed vegetables
	GetTopVegetables(ctx context.Context, userID uuid.UUID, limit int) ([]TopVegetableResult, error)

	// GetDailySales returns per-day sales for the last N days
	GetDailySales(ctx context.Context, userID uuid.UUID, days int) ([]DailySalesResult, error)

	// GetCustomerStats aggregates a customer's purchase history by mobile
	GetCustomerStats(ctx context.Context, userID uuid.UUID, mobile string) (*entity.CustomerStats, error)

	// IncrementUsageBatch bumps usage counters for the billed vegetables
	IncrementUsageBatch(ctx context.Context, userID uuid.UUID, vegetableIDs []uuid.UUID) error
}
