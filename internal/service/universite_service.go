package service

import (
	"context"

	"housing-backend/internal/model"
	"housing-backend/internal/store"
)

// UniversiteService exposes university persistence to the HTTP layer.
type UniversiteService struct {
	universites store.UniversiteStore
}

// NewUniversiteService creates a university service backed by the given store.
func NewUniversiteService(universites store.UniversiteStore) *UniversiteService {
	return &UniversiteService{universites: universites}
}

// RetrieveAllUniversites returns every stored university.
func (s *UniversiteService) RetrieveAllUniversites(ctx context.Context) ([]model.Universite, error) {
	return s.universites.FindAll(ctx)
}

// AddUniversite inserts u, or replaces the stored university when u carries an ID.
func (s *UniversiteService) AddUniversite(ctx context.Context, u *model.Universite) (*model.Universite, error) {
	if err := s.universites.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// RetrieveUniversite returns nil without an error when no university has the given ID.
func (s *UniversiteService) RetrieveUniversite(ctx context.Context, id int64) (*model.Universite, error) {
	return s.universites.FindByID(ctx, id)
}
