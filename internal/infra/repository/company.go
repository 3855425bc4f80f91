package repository

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// The member set is stored serialized in a json column, mirroring the rest of
// the document-style columns in this schema.

func companyToModel(c domain.Company) (models.Company, error) {
	members := c.Contacts
	if members == nil {
		members = []string{}
	}
	serialized, err := json.Marshal(members)
	if err != nil {
		return models.Company{}, err
	}
	return models.Company{
		ID:       c.ID,
		Owner:    c.Owner,
		Name:     c.Name,
		Website:  c.Website,
		Industry: c.Industry,
		Phone:    c.Phone,
		Address:  c.Address,
		Notes:    c.Notes,
		Contacts: string(serialized),
	}, nil
}

func companyToDomain(m models.Company) (domain.Company, error) {
	members := []string{}
	if m.Contacts != "" {
		if err := json.Unmarshal([]byte(m.Contacts), &members); err != nil {
			return domain.Company{}, err
		}
	}
	return domain.Company{
		ID:       m.ID,
		Owner:    m.Owner,
		Name:     m.Name,
		Website:  m.Website,
		Industry: m.Industry,
		Phone:    m.Phone,
		Address:  m.Address,
		Notes:    m.Notes,
		Contacts: members,
		CDate:    m.CDate,
		MDate:    m.MDate,
	}, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company domain.Company) (domain.Company, error) {
	record, err := companyToModel(company)
	if err != nil {
		return domain.Company{}, err
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Company{}, err
	}
	return companyToDomain(record)
}

func (r *CompanyRepository) FindOne(ctx context.Context, id, owner string) (domain.Company, error) {
	var record models.Company
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Company{}, domain.NotFoundError{Kind: domain.KindCompany, ID: id}
	}
	if err != nil {
		return domain.Company{}, err
	}
	return companyToDomain(record)
}

func (r *CompanyRepository) List(ctx context.Context, owner string, filter domain.CompanyFilter) ([]domain.Company, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Company{}).Where("owner = ?", owner)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR website ILIKE ?", pattern, pattern)
	}
	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Company
	err := query.
		Order("m_date DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Company, 0, len(records))
	for _, record := range records {
		company, err := companyToDomain(record)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, company)
	}
	return out, total, nil
}

func (r *CompanyRepository) Save(ctx context.Context, company domain.Company) (domain.Company, error) {
	record, err := companyToModel(company)
	if err != nil {
		return domain.Company{}, err
	}
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return domain.Company{}, err
	}
	return r.FindOne(ctx, company.ID, company.Owner)
}

func (r *CompanyRepository) Delete(ctx context.Context, id, owner string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Company{}, "id = ? AND owner = ?", id, owner).Error
}
