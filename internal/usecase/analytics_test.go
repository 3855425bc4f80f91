package usecase

import (
	"context"
	"testing"

	"github.com/relatahq/relata/internal/domain"
)

type mockAnalyticsRepo struct {
	summaryCalls int
	summary      domain.Summary
}

func (m *mockAnalyticsRepo) Summary(ctx context.Context, owner string) (domain.Summary, error) {
	m.summaryCalls++
	return m.summary, nil
}

func (m *mockAnalyticsRepo) OpportunitiesByStage(ctx context.Context, owner string) ([]domain.StageBucket, error) {
	return []domain.StageBucket{{Stage: domain.StageProposal, Count: 2, Total: 1200}}, nil
}

func (m *mockAnalyticsRepo) ExpensesByCategory(ctx context.Context, owner string) ([]domain.CategoryBucket, error) {
	return nil, nil
}

func (m *mockAnalyticsRepo) LeadFunnel(ctx context.Context, owner string) ([]domain.FunnelBucket, error) {
	return nil, nil
}

func TestAnalyticsSummaryIsCached(t *testing.T) {
	repo := &mockAnalyticsRepo{summary: domain.Summary{Contacts: 3, OpenPipelineValue: 500}}
	uc := NewAnalyticsUsecase(repo)

	first, err := uc.Summary(context.Background(), "u1")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	second, err := uc.Summary(context.Background(), "u1")
	if err != nil {
		t.Fatalf("cached summary failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical cached result")
	}
	if repo.summaryCalls != 1 {
		t.Fatalf("expected single repository call, got %d", repo.summaryCalls)
	}
}

func TestAnalyticsCacheIsOwnerScoped(t *testing.T) {
	repo := &mockAnalyticsRepo{}
	uc := NewAnalyticsUsecase(repo)

	if _, err := uc.Summary(context.Background(), "u1"); err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if _, err := uc.Summary(context.Background(), "u2"); err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if repo.summaryCalls != 2 {
		t.Fatalf("expected one call per owner, got %d", repo.summaryCalls)
	}
}

type mockSettingsRepo struct {
	byOwner map[string]domain.Settings
}

func (m *mockSettingsRepo) Get(ctx context.Context, owner string) (domain.Settings, error) {
	s, ok := m.byOwner[owner]
	if !ok {
		return domain.Settings{}, domain.NotFoundError{Kind: domain.KindSettings, ID: owner}
	}
	return s, nil
}

func (m *mockSettingsRepo) Save(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	m.byOwner[s.Owner] = s
	return s, nil
}

func TestSettingsGetCreatesDefaults(t *testing.T) {
	repo := &mockSettingsRepo{byOwner: map[string]domain.Settings{}}
	uc := NewSettingsUsecase(repo, nil)

	settings, err := uc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if settings.Currency != "USD" || settings.Timezone != "UTC" {
		t.Fatalf("expected defaults, got %+v", settings)
	}
	if _, ok := repo.byOwner["u1"]; !ok {
		t.Fatalf("expected defaults persisted")
	}
}

func TestSettingsUpdate(t *testing.T) {
	repo := &mockSettingsRepo{byOwner: map[string]domain.Settings{}}
	uc := NewSettingsUsecase(repo, nil)

	saved, err := uc.Update(context.Background(), domain.Settings{
		Owner:       "u1",
		CompanyName: "Acme",
		Currency:    "EUR",
		Timezone:    "Europe/Zurich",
		Language:    "de",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if saved.Currency != "EUR" || saved.CompanyName != "Acme" {
		t.Fatalf("unexpected settings: %+v", saved)
	}

	stored, err := uc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored != saved {
		t.Fatalf("expected stored settings to match")
	}
}
