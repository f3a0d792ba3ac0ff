package ports

import (
	"context"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
)

type TrainRepo interface {
	LoadAll(ctx context.Context) ([]domain.Train, error)
	SaveAll(ctx context.Context, trains []domain.Train) error
}
