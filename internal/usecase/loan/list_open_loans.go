package loan

import (
	"context"

	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type ListOpenLoans struct {
	repo domain.Repository
}

func NewListOpenLoans(repo domain.Repository) *ListOpenLoans {
	return &ListOpenLoans{repo: repo}
}

func (uc *ListOpenLoans) Execute(ctx context.Context) ([]models.Loan, error) {
	return uc.repo.ListOpenLoans(ctx)
}
