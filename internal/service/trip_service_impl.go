package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/repository"
)

type tripService struct {
	trips repository.TripRepo
}

func NewTripService(trips repository.TripRepo) TripService {
	return &tripService{trips: trips}
}

func (s *tripService) Create(ctx context.Context, t *domain.Trip) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TripActive
	}
	return s.trips.Create(ctx, t)
}

func (s *tripService) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

func (s *tripService) List(ctx context.Context, includeArchived bool) ([]*domain.Trip, error) {
	return s.trips.List(ctx, includeArchived)
}

func (s *tripService) Rename(ctx context.Context, id, name string) error {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Name = name
	t.UpdatedAt = time.Now().UTC()
	return s.trips.Update(ctx, t)
}

func (s *tripService) Archive(ctx context.Context, id string) error {
	return s.trips.Archive(ctx, id)
}

func (s *tripService) Delete(ctx context.Context, id string) error {
	return s.trips.Delete(ctx, id)
}
