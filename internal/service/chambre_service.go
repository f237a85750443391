package service

import (
	"context"

	"housing-backend/internal/model"
	"housing-backend/internal/store"
)

// ChambreService exposes room persistence to the HTTP layer.
type ChambreService struct {
	chambres store.ChambreStore
}

// NewChambreService creates a room service backed by the given store.
func NewChambreService(chambres store.ChambreStore) *ChambreService {
	return &ChambreService{chambres: chambres}
}

// RetrieveAllChambres returns every stored room, or an empty slice.
func (s *ChambreService) RetrieveAllChambres(ctx context.Context) ([]model.Chambre, error) {
	return s.chambres.FindAll(ctx)
}

// AddChambre inserts c, or replaces the stored room when c carries an ID.
// The returned pointer is c with its ID populated.
func (s *ChambreService) AddChambre(ctx context.Context, c *model.Chambre) (*model.Chambre, error) {
	if err := s.chambres.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RetrieveChambre returns nil without an error when no room has the given ID.
func (s *ChambreService) RetrieveChambre(ctx context.Context, id int64) (*model.Chambre, error) {
	return s.chambres.FindByID(ctx, id)
}
