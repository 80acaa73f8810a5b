package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/flicky/go-shop-api/internal/dto"
	"github.com/flicky/go-shop-api/internal/repository"
)

var ErrStatsUnavailable = errors.New("sales stats unavailable")

type StatsService struct {
	salesRepo repository.SalesRepository
}

func NewStatsService(salesRepo repository.SalesRepository) *StatsService {
	return &StatsService{salesRepo: salesRepo}
}

func (s *StatsService) Sales(ctx context.Context) (*dto.SalesResponse, error) {
	if s.salesRepo == nil {
		return nil, ErrStatsUnavailable
	}
	sales, err := s.salesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return &dto.SalesResponse{Products: sales}, nil
}
