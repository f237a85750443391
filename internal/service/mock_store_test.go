package service

import (
	"context"

	"housing-backend/internal/model"
)

// mockChambreStore is a mock implementation of the store.ChambreStore interface.
type mockChambreStore struct {
	FindAllFunc  func(ctx context.Context) ([]model.Chambre, error)
	FindByIDFunc func(ctx context.Context, id int64) (*model.Chambre, error)
	SaveFunc     func(ctx context.Context, c *model.Chambre) error

	saved []model.Chambre
}

func (m *mockChambreStore) FindAll(ctx context.Context) ([]model.Chambre, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockChambreStore) FindByID(ctx context.Context, id int64) (*model.Chambre, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockChambreStore) Save(ctx context.Context, c *model.Chambre) error {
	m.saved = append(m.saved, *c)
	return m.SaveFunc(ctx, c)
}

// mockUniversiteStore is a mock implementation of the store.UniversiteStore interface.
type mockUniversiteStore struct {
	FindAllFunc  func(ctx context.Context) ([]model.Universite, error)
	FindByIDFunc func(ctx context.Context, id int64) (*model.Universite, error)
	SaveFunc     func(ctx context.Context, u *model.Universite) error
}

func (m *mockUniversiteStore) FindAll(ctx context.Context) ([]model.Universite, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockUniversiteStore) FindByID(ctx context.Context, id int64) (*model.Universite, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUniversiteStore) Save(ctx context.Context, u *model.Universite) error {
	return m.SaveFunc(ctx, u)
}

// mockBlocStore is a mock implementation of the store.BlocStore interface.
type mockBlocStore struct {
	FindAllFunc  func(ctx context.Context) ([]model.Bloc, error)
	FindByIDFunc func(ctx context.Context, id int64) (*model.Bloc, error)
	SaveFunc     func(ctx context.Context, b *model.Bloc) error

	saveCalls int
}

func (m *mockBlocStore) FindAll(ctx context.Context) ([]model.Bloc, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockBlocStore) FindByID(ctx context.Context, id int64) (*model.Bloc, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockBlocStore) Save(ctx context.Context, b *model.Bloc) error {
	m.saveCalls++
	return m.SaveFunc(ctx, b)
}
