package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func activityToModel(a domain.Activity) models.Activity {
	return models.Activity{
		ID:            a.ID,
		Owner:         a.Owner,
		Type:          a.Type,
		Subject:       a.Subject,
		Notes:         a.Notes,
		Due:           a.Due,
		Done:          a.Done,
		ContactID:     a.ContactID,
		OpportunityID: a.OpportunityID,
	}
}

func activityToDomain(m models.Activity) domain.Activity {
	return domain.Activity{
		ID:            m.ID,
		Owner:         m.Owner,
		Type:          m.Type,
		Subject:       m.Subject,
		Notes:         m.Notes,
		Due:           m.Due,
		Done:          m.Done,
		ContactID:     m.ContactID,
		OpportunityID: m.OpportunityID,
		CDate:         m.CDate,
		MDate:         m.MDate,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	record := activityToModel(act)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Activity{}, err
	}
	return activityToDomain(record), nil
}

func (r *ActivityRepository) FindOne(ctx context.Context, id, owner string) (domain.Activity, error) {
	var record models.Activity
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Activity{}, domain.NotFoundError{Kind: domain.KindActivity, ID: id}
	}
	if err != nil {
		return domain.Activity{}, err
	}
	return activityToDomain(record), nil
}

func (r *ActivityRepository) List(ctx context.Context, owner string, filter domain.ActivityFilter) ([]domain.Activity, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Activity{}).Where("owner = ?", owner)
	if filter.Search != "" {
		query = query.Where("subject ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Done != nil {
		query = query.Where("done = ?", *filter.Done)
	}
	if filter.ContactID != "" {
		query = query.Where("contact_id = ?", filter.ContactID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Activity
	err := query.
		Order("due ASC NULLS LAST").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Activity, 0, len(records))
	for _, record := range records {
		out = append(out, activityToDomain(record))
	}
	return out, total, nil
}

func (r *ActivityRepository) Save(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	record := activityToModel(act)
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return domain.Activity{}, err
	}
	return r.FindOne(ctx, act.ID, act.Owner)
}

func (r *ActivityRepository) Delete(ctx context.Context, id, owner string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Activity{}, "id = ? AND owner = ?", id, owner).Error
}
