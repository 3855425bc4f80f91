package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/relatahq/relata/internal/domain"
)

// SettingsUsecase serves the per-owner settings row with a read-through
// memcached layer. A nil memcache client disables caching (tests run without
// one). Cache failures degrade to the database, never to an error.
type SettingsUsecase struct {
	repo SettingsRepository
	mc   *memcache.Client
}

func NewSettingsUsecase(repo SettingsRepository, mc *memcache.Client) *SettingsUsecase {
	return &SettingsUsecase{repo: repo, mc: mc}
}

func settingsCacheKey(owner string) string {
	return "settings:" + owner
}

func (uc *SettingsUsecase) Get(ctx context.Context, owner string) (domain.Settings, error) {
	if uc.mc != nil {
		if item, err := uc.mc.Get(settingsCacheKey(owner)); err == nil {
			var settings domain.Settings
			if err := json.Unmarshal(item.Value, &settings); err == nil {
				return settings, nil
			}
		}
	}

	settings, err := uc.repo.Get(ctx, owner)
	if errors.Is(err, domain.ErrNotFound) {
		settings, err = uc.repo.Save(ctx, domain.DefaultSettings(owner))
	}
	if err != nil {
		return domain.Settings{}, err
	}

	uc.cache(settings)
	return settings, nil
}

func (uc *SettingsUsecase) Update(ctx context.Context, input domain.Settings) (domain.Settings, error) {
	current, err := uc.Get(ctx, input.Owner)
	if err != nil {
		return domain.Settings{}, err
	}

	current.CompanyName = input.CompanyName
	current.Currency = input.Currency
	current.Timezone = input.Timezone
	current.Language = input.Language

	saved, err := uc.repo.Save(ctx, current)
	if err != nil {
		return domain.Settings{}, err
	}

	uc.cache(saved)
	return saved, nil
}

func (uc *SettingsUsecase) cache(settings domain.Settings) {
	if uc.mc == nil {
		return
	}
	value, err := json.Marshal(settings)
	if err != nil {
		return
	}
	err = uc.mc.Set(&memcache.Item{
		Key:        settingsCacheKey(settings.Owner),
		Value:      value,
		Expiration: 300,
	})
	if err != nil {
		slog.Debug(
			"settings cache write failed",
			slog.String("error", err.Error()),
			slog.String("module", "settings"),
		)
	}
}
