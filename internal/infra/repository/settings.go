package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func settingsToDomain(m models.Settings) domain.Settings {
	return domain.Settings{
		Owner:       m.Owner,
		CompanyName: m.CompanyName,
		Currency:    m.Currency,
		Timezone:    m.Timezone,
		Language:    m.Language,
		MDate:       m.MDate,
	}
}

func (r *SettingsRepository) Get(ctx context.Context, owner string) (domain.Settings, error) {
	var record models.Settings
	err := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Settings{}, domain.NotFoundError{Kind: domain.KindSettings, ID: owner}
	}
	if err != nil {
		return domain.Settings{}, err
	}
	return settingsToDomain(record), nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	record := models.Settings{
		Owner:       settings.Owner,
		CompanyName: settings.CompanyName,
		Currency:    settings.Currency,
		Timezone:    settings.Timezone,
		Language:    settings.Language,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}},
		DoUpdates: clause.AssignmentColumns([]string{"company_name", "currency", "timezone", "language"}),
	}).Create(&record).Error
	if err != nil {
		return domain.Settings{}, err
	}
	return r.Get(ctx, settings.Owner)
}
