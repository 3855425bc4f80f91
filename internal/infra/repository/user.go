package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userToDomain(m models.User) domain.User {
	return domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		CDate:        m.CDate,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	record := models.User{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
	}
	err := r.db.WithContext(ctx).Create(&record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.User{}, domain.ConflictError{Kind: domain.KindUser}
	}
	if err != nil {
		return domain.User{}, err
	}
	return userToDomain(record), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var record models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.NotFoundError{Kind: domain.KindUser}
	}
	if err != nil {
		return domain.User{}, err
	}
	return userToDomain(record), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	var record models.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.NotFoundError{Kind: domain.KindUser, ID: id}
	}
	if err != nil {
		return domain.User{}, err
	}
	return userToDomain(record), nil
}
