package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func contactToModel(c domain.Contact) models.Contact {
	return models.Contact{
		ID:        c.ID,
		Owner:     c.Owner,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Title:     c.Title,
		Source:    c.Source,
		Notes:     c.Notes,
		CompanyID: c.CompanyID,
	}
}

func contactToDomain(m models.Contact) domain.Contact {
	return domain.Contact{
		ID:        m.ID,
		Owner:     m.Owner,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Title:     m.Title,
		Source:    m.Source,
		Notes:     m.Notes,
		CompanyID: m.CompanyID,
		CDate:     m.CDate,
		MDate:     m.MDate,
	}
}

func (r *ContactRepository) Create(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	record := contactToModel(contact)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Contact{}, err
	}
	return contactToDomain(record), nil
}

func (r *ContactRepository) FindOne(ctx context.Context, id, owner string) (domain.Contact, error) {
	var record models.Contact
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Contact{}, domain.NotFoundError{Kind: domain.KindContact, ID: id}
	}
	if err != nil {
		return domain.Contact{}, err
	}
	return contactToDomain(record), nil
}

func (r *ContactRepository) FindMany(ctx context.Context, ids []string, owner string) ([]domain.Contact, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var records []models.Contact
	err := r.db.WithContext(ctx).
		Where("id IN ? AND owner = ?", ids, owner).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Contact, 0, len(records))
	for _, record := range records {
		out = append(out, contactToDomain(record))
	}
	return out, nil
}

func (r *ContactRepository) List(ctx context.Context, owner string, filter domain.ContactFilter) ([]domain.Contact, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Contact{}).Where("owner = ?", owner)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Contact
	err := query.
		Order("m_date DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Contact, 0, len(records))
	for _, record := range records {
		out = append(out, contactToDomain(record))
	}
	return out, total, nil
}

func (r *ContactRepository) Save(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	record := contactToModel(contact)
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return domain.Contact{}, err
	}
	return r.FindOne(ctx, contact.ID, contact.Owner)
}

func (r *ContactRepository) Delete(ctx context.Context, id, owner string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Contact{}, "id = ? AND owner = ?", id, owner).Error
}

func (r *ContactRepository) SetCompany(ctx context.Context, ids []string, owner, companyID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id IN ? AND owner = ?", ids, owner).
		Update("company_id", companyID)
	return result.RowsAffected, result.Error
}

func (r *ContactRepository) ClearCompany(ctx context.Context, ids []string, owner string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id IN ? AND owner = ?", ids, owner).
		Update("company_id", nil)
	return result.RowsAffected, result.Error
}
