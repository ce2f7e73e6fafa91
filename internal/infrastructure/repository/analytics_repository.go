package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	domainRepo "github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetSalesSummary(ctx context.Context, userID uuid.UUID) (*domainRepo.SalesSummary, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary := &domainRepo.SalesSummary{}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(grand_total), 0) / 100.0 as total_sales,
			COUNT(id) as total_bill_count
		FROM bills
		WHERE user_id = ? AND deleted_at IS NULL
	`, userID).Scan(summary).Error
	if err != nil {
		return nil, err
	}

	var today struct {
		TodaySales     float64
		TodayBillCount int64
	}
	err = r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(grand_total), 0) / 100.0 as today_sales,
			COUNT(id) as today_bill_count
		FROM bills
		WHERE user_id = ? AND deleted_at IS NULL AND created_at >= ?
	`, userID, startOfDay).Scan(&today).Error
	if err != nil {
		return nil, err
	}

	summary.TodaySales = today.TodaySales
	summary.TodayBillCount = today.TodayBillCount
	return summary, nil
}

func (r *analyticsRepository) GetTopVegetables(ctx context.Context, userID uuid.UUID, limit int) ([]domainRepo.TopVegetableResult, error) {
	var results []domainRepo.TopVegetableResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			v.id as vegetable_id,
			v.name as vegetable_name,
			v.tamil_name as tamil_name,
			u.usage_count as usage_count
		FROM vegetable_usages u
		JOIN vegetables v ON v.id = u.vegetable_id
		WHERE u.user_id = ? AND v.deleted_at IS NULL
		ORDER BY u.usage_count DESC, u.last_used_at DESC
		LIMIT ?
	`, userID, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, userID uuid.UUID, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue   sql.NullFloat64
			BillCount int64
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT
				COALESCE(SUM(grand_total), 0) / 100.0 as revenue,
				COUNT(id) as bill_count
			FROM bills
			WHERE user_id = ? AND deleted_at IS NULL
			AND created_at >= ? AND created_at < ?
		`, userID, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		rev := 0.0
		if row.Revenue.Valid {
			rev = row.Revenue.Float64
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:      startOfDay,
			Revenue:   rev,
			BillCount: row.BillCount,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetCustomerStats(ctx context.Context, userID uuid.UUID, mobile string) (*entity.CustomerStats, error) {
	var row struct {
		CustomerName     string
		TotalPurchases   int64
		TotalSpent       float64
		LastPurchaseDate sql.NullTime
		LastBillNumber   sql.NullString
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(MAX(customer_name), '') as customer_name,
			COUNT(id) as total_purchases,
			COALESCE(SUM(grand_total), 0) / 100.0 as total_spent,
			MAX(created_at) as last_purchase_date
		FROM bills
		WHERE user_id = ? AND customer_mobile = ? AND deleted_at IS NULL
	`, userID, mobile).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	if row.TotalPurchases == 0 {
		return nil, nil
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT bill_number
		FROM bills
		WHERE user_id = ? AND customer_mobile = ? AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`, userID, mobile).Scan(&row.LastBillNumber).Error
	if err != nil {
		return nil, err
	}

	stats := &entity.CustomerStats{
		Name:           row.CustomerName,
		MobileNumber:   mobile,
		TotalPurchases: row.TotalPurchases,
		TotalSpent:     row.TotalSpent,
		LastBillNumber: row.LastBillNumber.String,
	}
	if row.LastPurchaseDate.Valid {
		t := row.LastPurchaseDate.Time
		stats.LastPurchaseDate = &t
	}
	return stats, nil
}

// IncrementUsageBatch bumps usage counters for the billed vegetables,
// creating counter rows on first use.
func (r *analyticsRepository) IncrementUsageBatch(ctx context.Context, userID uuid.UUID, vegetableIDs []uuid.UUID) error {
	if len(vegetableIDs) == 0 {
		return nil
	}

	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, vegID := range vegetableIDs {
			result := tx.Model(&entity.VegetableUsage{}).
				Where("user_id = ? AND vegetable_id = ?", userID, vegID).
				Updates(map[string]interface{}{
					"usage_count":  gorm.Expr("usage_count + 1"),
					"last_used_at": now,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				usage := &entity.VegetableUsage{
					UserID:      userID,
					VegetableID: vegID,
					UsageCount:  1,
					LastUsedAt:  now,
				}
				if err := tx.Create(usage).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
