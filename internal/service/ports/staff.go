package ports

import (
	"context"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
)

type StaffRepo interface {
	LoadAll(ctx context.Context) ([]domain.Staff, error)
	SaveAll(ctx context.Context, staff []domain.Staff) error
}
