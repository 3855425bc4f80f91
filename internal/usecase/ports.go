package usecase

import (
	"context"

	"github.com/relatahq/relata/internal/domain"
)

// ContactRepository defines persistence/lookup for contacts. Every lookup is
// scoped by owner; a miss (including a cross-owner hit) yields
// domain.NotFoundError. Save persists the full document and returns the
// stored value.
type ContactRepository interface {
	Create(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	FindOne(ctx context.Context, id, owner string) (domain.Contact, error)
	FindMany(ctx context.Context, ids []string, owner string) ([]domain.Contact, error)
	List(ctx context.Context, owner string, filter domain.ContactFilter) ([]domain.Contact, int64, error)
	Save(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	Delete(ctx context.Context, id, owner string) error
	// SetCompany bulk-assigns company_id for the given ids under owner.
	SetCompany(ctx context.Context, ids []string, owner, companyID string) (int64, error)
	// ClearCompany bulk-unsets company_id for the given ids under owner.
	ClearCompany(ctx context.Context, ids []string, owner string) (int64, error)
}

// CompanyRepository defines persistence/lookup for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company domain.Company) (domain.Company, error)
	FindOne(ctx context.Context, id, owner string) (domain.Company, error)
	List(ctx context.Context, owner string, filter domain.CompanyFilter) ([]domain.Company, int64, error)
	Save(ctx context.Context, company domain.Company) (domain.Company, error)
	Delete(ctx context.Context, id, owner string) error
}

type OpportunityRepository interface {
	Create(ctx context.Context, opp domain.Opportunity) (domain.Opportunity, error)
	FindOne(ctx context.Context, id, owner string) (domain.Opportunity, error)
	List(ctx context.Context, owner string, filter domain.OpportunityFilter) ([]domain.Opportunity, int64, error)
	Save(ctx context.Context, opp domain.Opportunity) (domain.Opportunity, error)
	Delete(ctx context.Context, id, owner string) error
}

type ActivityRepository interface {
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)
	FindOne(ctx context.Context, id, owner string) (domain.Activity, error)
	List(ctx context.Context, owner string, filter domain.ActivityFilter) ([]domain.Activity, int64, error)
	Save(ctx context.Context, act domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, id, owner string) error
}

type LeadRepository interface {
	Create(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	FindOne(ctx context.Context, id, owner string) (domain.Lead, error)
	List(ctx context.Context, owner string, filter domain.LeadFilter) ([]domain.Lead, int64, error)
	Save(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	Delete(ctx context.Context, id, owner string) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, exp domain.Expense) (domain.Expense, error)
	FindOne(ctx context.Context, id, owner string) (domain.Expense, error)
	List(ctx context.Context, owner string, filter domain.ExpenseFilter) ([]domain.Expense, int64, error)
	Save(ctx context.Context, exp domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id, owner string) error
}

type CompetitorRepository interface {
	Create(ctx context.Context, comp domain.Competitor) (domain.Competitor, error)
	FindOne(ctx context.Context, id, owner string) (domain.Competitor, error)
	List(ctx context.Context, owner string, filter domain.CompetitorFilter) ([]domain.Competitor, int64, error)
	Save(ctx context.Context, comp domain.Competitor) (domain.Competitor, error)
	Delete(ctx context.Context, id, owner string) error
}

// SettingsRepository stores the per-owner settings row. Get returns
// domain.NotFoundError when the owner has no row yet.
type SettingsRepository interface {
	Get(ctx context.Context, owner string) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) (domain.Settings, error)
}

// AnalyticsRepository runs the aggregate queries behind the dashboard
// endpoints. All aggregates are owner-scoped.
type AnalyticsRepository interface {
	Summary(ctx context.Context, owner string) (domain.Summary, error)
	OpportunitiesByStage(ctx context.Context, owner string) ([]domain.StageBucket, error)
	ExpensesByCategory(ctx context.Context, owner string) ([]domain.CategoryBucket, error)
	LeadFunnel(ctx context.Context, owner string) ([]domain.FunnelBucket, error)
}
