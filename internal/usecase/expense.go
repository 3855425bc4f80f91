package usecase

import (
	"context"
	"time"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
)

type ExpenseUsecase struct {
	repo ExpenseRepository
}

func NewExpenseUsecase(repo ExpenseRepository) *ExpenseUsecase {
	return &ExpenseUsecase{repo: repo}
}

func (uc *ExpenseUsecase) Create(ctx context.Context, exp domain.Expense) (domain.Expense, error) {
	if exp.Date.IsZero() {
		exp.Date = time.Now().UTC()
	}
	exp.ID = relata.NewID()
	return uc.repo.Create(ctx, exp)
}

func (uc *ExpenseUsecase) Get(ctx context.Context, id, owner string) (domain.Expense, error) {
	return uc.repo.FindOne(ctx, id, owner)
}

func (uc *ExpenseUsecase) List(ctx context.Context, owner string, filter domain.ExpenseFilter) ([]domain.Expense, int64, error) {
	return uc.repo.List(ctx, owner, filter)
}

func (uc *ExpenseUsecase) Update(ctx context.Context, input domain.Expense) (domain.Expense, error) {
	current, err := uc.repo.FindOne(ctx, input.ID, input.Owner)
	if err != nil {
		return domain.Expense{}, err
	}

	current.Description = input.Description
	current.Category = input.Category
	current.Amount = input.Amount
	current.Date = input.Date
	current.Notes = input.Notes

	return uc.repo.Save(ctx, current)
}

func (uc *ExpenseUsecase) Delete(ctx context.Context, id, owner string) error {
	if _, err := uc.repo.FindOne(ctx, id, owner); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id, owner)
}
