package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/arunvel/kadai-api/internal/infrastructure/cache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// dashboardCacheTTL keeps the stats fresh enough for a till-side dashboard
// while sparing the aggregate queries on every poll.
const dashboardCacheTTL = 30 * time.Second

// DashboardStats is the till-side overview
type DashboardStats struct {
	TodaySales     float64                         `json:"today_sales"`
	TodayBillCount int64                           `json:"today_bill_count"`
	TotalSales     float64                         `json:"total_sales"`
	TotalBillCount int64                           `json:"total_bill_count"`
	TopVegetables  []repository.TopVegetableResult `json:"top_vegetables"`
	DailySales     []repository.DailySalesResult   `json:"daily_sales"`
}

// DashboardService aggregates billing activity, cached briefly in Redis
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	cache         cache.Cache
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, c cache.Cache) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo, cache: c}
}

func dashboardCacheKey(userID uuid.UUID) string {
	return "dashboard:stats:" + userID.String()
}

// GetStats returns the dashboard overview for a shop
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	key := dashboardCacheKey(userID)

	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var stats DashboardStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	} else if err != nil {
		log.WithError(err).Warn("dashboard cache read failed")
	}

	summary, err := s.analyticsRepo.GetSalesSummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	topVegetables, err := s.analyticsRepo.GetTopVegetables(ctx, userID, 5)
	if err != nil {
		return nil, err
	}

	dailySales, err := s.analyticsRepo.GetDailySales(ctx, userID, 7)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TodaySales:     summary.TodaySales,
		TodayBillCount: summary.TodayBillCount,
		TotalSales:     summary.TotalSales,
		TotalBillCount: summary.TotalBillCount,
		TopVegetables:  topVegetables,
		DailySales:     dailySales,
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, data, dashboardCacheTTL); err != nil {
			log.WithError(err).Warn("dashboard cache write failed")
		}
	}

	return stats, nil
}

// Invalidate drops the cached stats, called after a bill is created
func (s *DashboardService) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Delete(ctx, dashboardCacheKey(userID)); err != nil {
		log.WithError(err).Warn("dashboard cache invalidation failed")
	}
}
