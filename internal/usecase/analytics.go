package usecase

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/zeebo/xxh3"

	"github.com/relatahq/relata/internal/domain"
)

// AnalyticsUsecase fronts the aggregate queries with a short-lived in-process
// cache keyed by an xxh3 digest of owner and query name. The aggregates feed
// dashboards, so slightly stale numbers are acceptable.
type AnalyticsUsecase struct {
	repo  AnalyticsRepository
	cache *gocache.Cache
}

func NewAnalyticsUsecase(repo AnalyticsRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		repo:  repo,
		cache: gocache.New(30*time.Second, time.Minute),
	}
}

func analyticsCacheKey(owner, query string) string {
	return strconv.FormatUint(xxh3.HashString(owner+"\x00"+query), 16)
}

func (uc *AnalyticsUsecase) Summary(ctx context.Context, owner string) (domain.Summary, error) {
	key := analyticsCacheKey(owner, "summary")
	if cached, ok := uc.cache.Get(key); ok {
		return cached.(domain.Summary), nil
	}
	summary, err := uc.repo.Summary(ctx, owner)
	if err != nil {
		return domain.Summary{}, err
	}
	uc.cache.SetDefault(key, summary)
	return summary, nil
}

func (uc *AnalyticsUsecase) OpportunitiesByStage(ctx context.Context, owner string) ([]domain.StageBucket, error) {
	key := analyticsCacheKey(owner, "stages")
	if cached, ok := uc.cache.Get(key); ok {
		return cached.([]domain.StageBucket), nil
	}
	buckets, err := uc.repo.OpportunitiesByStage(ctx, owner)
	if err != nil {
		return nil, err
	}
	uc.cache.SetDefault(key, buckets)
	return buckets, nil
}

func (uc *AnalyticsUsecase) ExpensesByCategory(ctx context.Context, owner string) ([]domain.CategoryBucket, error) {
	key := analyticsCacheKey(owner, "categories")
	if cached, ok := uc.cache.Get(key); ok {
		return cached.([]domain.CategoryBucket), nil
	}
	buckets, err := uc.repo.ExpensesByCategory(ctx, owner)
	if err != nil {
		return nil, err
	}
	uc.cache.SetDefault(key, buckets)
	return buckets, nil
}

func (uc *AnalyticsUsecase) LeadFunnel(ctx context.Context, owner string) ([]domain.FunnelBucket, error) {
	key := analyticsCacheKey(owner, "funnel")
	if cached, ok := uc.cache.Get(key); ok {
		return cached.([]domain.FunnelBucket), nil
	}
	buckets, err := uc.repo.LeadFunnel(ctx, owner)
	if err != nil {
		return nil, err
	}
	uc.cache.SetDefault(key, buckets)
	return buckets, nil
}
