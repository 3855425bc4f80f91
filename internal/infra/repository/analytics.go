package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

// AnalyticsRepository runs the aggregate queries for the dashboard. Every
// query is owner-scoped; no cross-tenant aggregation exists.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Summary(ctx context.Context, owner string) (domain.Summary, error) {
	var summary domain.Summary
	db := r.db.WithContext(ctx)

	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.Contact{}, &summary.Contacts},
		{&models.Company{}, &summary.Companies},
		{&models.Opportunity{}, &summary.Opportunities},
		{&models.Activity{}, &summary.Activities},
		{&models.Lead{}, &summary.Leads},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Where("owner = ?", owner).Count(c.dest).Error; err != nil {
			return domain.Summary{}, err
		}
	}

	err := db.Model(&models.Opportunity{}).
		Where("owner = ? AND stage NOT IN ?", owner, []string{domain.StageClosedWon, domain.StageClosedLost}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.OpenPipelineValue).Error
	if err != nil {
		return domain.Summary{}, err
	}

	err = db.Model(&models.Opportunity{}).
		Where("owner = ? AND stage = ?", owner, domain.StageClosedWon).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.WonValue).Error
	if err != nil {
		return domain.Summary{}, err
	}

	err = db.Model(&models.Expense{}).
		Where("owner = ?", owner).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.ExpenseTotal).Error
	if err != nil {
		return domain.Summary{}, err
	}

	return summary, nil
}

func (r *AnalyticsRepository) OpportunitiesByStage(ctx context.Context, owner string) ([]domain.StageBucket, error) {
	var buckets []domain.StageBucket
	err := r.db.WithContext(ctx).
		Model(&models.Opportunity{}).
		Where("owner = ?", owner).
		Select("stage, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group("stage").
		Order("stage").
		Scan(&buckets).Error
	return buckets, err
}

func (r *AnalyticsRepository) ExpensesByCategory(ctx context.Context, owner string) ([]domain.CategoryBucket, error) {
	var buckets []domain.CategoryBucket
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("owner = ?", owner).
		Select("category, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group("category").
		Order("total DESC").
		Scan(&buckets).Error
	return buckets, err
}

func (r *AnalyticsRepository) LeadFunnel(ctx context.Context, owner string) ([]domain.FunnelBucket, error) {
	var buckets []domain.FunnelBucket
	err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where("owner = ?", owner).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&buckets).Error
	return buckets, err
}
