package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/infra/database/models"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func expenseToModel(e domain.Expense) models.Expense {
	return models.Expense{
		ID:          e.ID,
		Owner:       e.Owner,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date,
		Notes:       e.Notes,
	}
}

func expenseToDomain(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:          m.ID,
		Owner:       m.Owner,
		Description: m.Description,
		Category:    m.Category,
		Amount:      m.Amount,
		Date:        m.Date,
		Notes:       m.Notes,
		CDate:       m.CDate,
		MDate:       m.MDate,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, exp domain.Expense) (domain.Expense, error) {
	record := expenseToModel(exp)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Expense{}, err
	}
	return expenseToDomain(record), nil
}

func (r *ExpenseRepository) FindOne(ctx context.Context, id, owner string) (domain.Expense, error) {
	var record models.Expense
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner = ?", id, owner).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Expense{}, domain.NotFoundError{Kind: domain.KindExpense, ID: id}
	}
	if err != nil {
		return domain.Expense{}, err
	}
	return expenseToDomain(record), nil
}

func (r *ExpenseRepository) List(ctx context.Context, owner string, filter domain.ExpenseFilter) ([]domain.Expense, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Expense{}).Where("owner = ?", owner)
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Expense
	err := query.
		Order("date DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Expense, 0, len(records))
	for _, record := range records {
		out = append(out, expenseToDomain(record))
	}
	return out, total, nil
}

func (r *ExpenseRepository) Save(ctx context.Context, exp domain.Expense) (domain.Expense, error) {
	record := expenseToModel(exp)
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return domain.Expense{}, err
	}
	return r.FindOne(ctx, exp.ID, exp.Owner)
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, owner string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Expense{}, "id = ? AND owner = ?", id, owner).Error
}
