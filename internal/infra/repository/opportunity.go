package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func opportunityToModel(o domain.Opportunity) models.Opportunity {
	return models.Opportunity{
		ID:          o.ID,
		Owner:       o.Owner,
		Name:        o.Name,
		Stage:       o.Stage,
		Amount:      o.Amount,
		Probability: o.Probability,
		CloseDate:   o.CloseDate,
		ContactID:   o.ContactID,
		CompanyID:   o.CompanyID,
		Notes:       o.Notes,
	}
}

func opportunityToDomain(m models.Opportunity) domain.Opportunity {
	return domain.Opportunity{
		ID:          m.ID,
		Owner:       m.Owner,
		Name:        m.Name,
		Stage:       m.Stage,
		Amount:      m.Amount,
		Probability: m.Probability,
		CloseDate:   m.CloseDate,
		ContactID:   m.ContactID,
		CompanyID:   m.CompanyID,
		Notes:       m.Notes,
		CDate:       m.CDate,
		MDate:       m.MDate,
	}
}

func (r *OpportunityRepository) Create(ctx context.Context, opp domain.Opportunity) (domain.Opportunity, error) {
	record := opportunityToModel(opp)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Opportunity{}, err
	}
	return opportunityToDomain(record), nil
}

func (r *OpportunityRepository) FindOne(ctx context.Context, id, owner string) (domain.Opportunity, error) {
	var record models.Opportunity
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Opportunity{}, domain.NotFoundError{Kind: domain.KindOpportunity, ID: id}
	}
	if err != nil {
		return domain.Opportunity{}, err
	}
	return opportunityToDomain(record), nil
}

func (r *OpportunityRepository) List(ctx context.Context, owner string, filter domain.OpportunityFilter) ([]domain.Opportunity, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Opportunity{}).Where("owner = ?", owner)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.ContactID != "" {
		query = query.Where("contact_id = ?", filter.ContactID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Opportunity
	err := query.
		Order("m_date DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Opportunity, 0, len(records))
	for _, record := range records {
		out = append(out, opportunityToDomain(record))
	}
	return out, total, nil
}

func (r *OpportunityRepository) Save(ctx context.Context, opp domain.Opportunity) (domain.Opportunity, error) {
	record := opportunityToModel(opp)
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return domain.Opportunity{}, err
	}
	return r.FindOne(ctx, opp.ID, opp.Owner)
}

func (r *OpportunityRepository) Delete(ctx context.Context, id, owner string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Opportunity{}, "id = ? AND owner = ?", id, owner).Error
}
