package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

type CompetitorRepository struct {
	db *gorm.DB
}

func NewCompetitorRepository(db *gorm.DB) *CompetitorRepository {
	return &CompetitorRepository{db: db}
}

func competitorToModel(c domain.Competitor) models.Competitor {
	return models.Competitor{
		ID:         c.ID,
		Owner:      c.Owner,
		Name:       c.Name,
		Website:    c.Website,
		Strengths:  c.Strengths,
		Weaknesses: c.Weaknesses,
		Notes:      c.Notes,
	}
}

func competitorToDomain(m models.Competitor) domain.Competitor {
	return domain.Competitor{
		ID:         m.ID,
		Owner:      m.Owner,
		Name:       m.Name,
		Website:    m.Website,
		Strengths:  m.Strengths,
		Weaknesses: m.Weaknesses,
		Notes:      m.Notes,
		CDate:      m.CDate,
		MDate:      m.MDate,
	}
}

func (r *CompetitorRepository) Create(ctx context.Context, comp domain.Competitor) (domain.Competitor, error) {
	record := competitorToModel(comp)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Competitor{}, err
	}
	return competitorToDomain(record), nil
}

func (r *CompetitorRepository) FindOne(ctx context.Context, id, owner string) (domain.Competitor, error) {
	var record models.Competitor
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Competitor{}, domain.NotFoundError{Kind: domain.KindCompetitor, ID: id}
	}
	if err != nil {
		return domain.Competitor{}, err
	}
	return competitorToDomain(record), nil
}

func (r *CompetitorRepository) List(ctx context.Context, owner string, filter domain.CompetitorFilter) ([]domain.Competitor, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Competitor{}).Where("owner = ?", owner)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Competitor
	err := query.
		Order("name ASC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Competitor, 0, len(records))
	for _, record := range records {
		out = append(out, competitorToDomain(record))
	}
	return out, total, nil
}

func (r *CompetitorRepository) Save(ctx context.Context, comp domain.Competitor) (domain.Competitor, error) {
	record := competitorToModel(comp)
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return domain.Competitor{}, err
	}
	return r.FindOne(ctx, comp.ID, comp.Owner)
}

func (r *CompetitorRepository) Delete(ctx context.Context, id, owner string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Competitor{}, "id = ? AND owner = ?", id, owner).Error
}
