package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func leadToModel(l domain.Lead) models.Lead {
	return models.Lead{
		ID:                 l.ID,
		Owner:              l.Owner,
		Name:               l.Name,
		Email:              l.Email,
		Phone:              l.Phone,
		Source:             l.Source,
		Status:             l.Status,
		Notes:              l.Notes,
		ConvertedContactID: l.ConvertedContactID,
	}
}

func leadToDomain(m models.Lead) domain.Lead {
	return domain.Lead{
		ID:                 m.ID,
		Owner:              m.Owner,
		Name:               m.Name,
		Email:              m.Email,
		Phone:              m.Phone,
		Source:             m.Source,
		Status:             m.Status,
		Notes:              m.Notes,
		ConvertedContactID: m.ConvertedContactID,
		CDate:              m.CDate,
		MDate:              m.MDate,
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	record := leadToModel(lead)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Lead{}, err
	}
	return leadToDomain(record), nil
}

func (r *LeadRepository) FindOne(ctx context.Context, id, owner string) (domain.Lead, error) {
	var record models.Lead
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Lead{}, domain.NotFoundError{Kind: domain.KindLead, ID: id}
	}
	if err != nil {
		return domain.Lead{}, err
	}
	return leadToDomain(record), nil
}

func (r *LeadRepository) List(ctx context.Context, owner string, filter domain.LeadFilter) ([]domain.Lead, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Lead{}).Where("owner = ?", owner)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Lead
	err := query.
		Order("m_date DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Lead, 0, len(records))
	for _, record := range records {
		out = append(out, leadToDomain(record))
	}
	return out, total, nil
}

func (r *LeadRepository) Save(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	record := leadToModel(lead)
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return domain.Lead{}, err
	}
	return r.FindOne(ctx, lead.ID, lead.Owner)
}

func (r *LeadRepository) Delete(ctx context.Context, id, owner string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Lead{}, "id = ? AND owner = ?", id, owner).Error
}
