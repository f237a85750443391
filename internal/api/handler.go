package api

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"housing-backend/internal/model"
)

// ChambreService is the subset of service.ChambreService the handlers require.
type ChambreService interface {
	RetrieveAllChambres(ctx context.Context) ([]model.Chambre, error)
	AddChambre(ctx context.Context, c *model.Chambre) (*model.Chambre, error)
	RetrieveChambre(ctx context.Context, id int64) (*model.Chambre, error)
}

// UniversiteService is the subset of service.UniversiteService the handlers require.
type UniversiteService interface {
	RetrieveAllUniversites(ctx context.Context) ([]model.Universite, error)
	AddUniversite(ctx context.Context, u *model.Universite) (*model.Universite, error)
	RetrieveUniversite(ctx context.Context, id int64) (*model.Universite, error)
}

// BlocService is the subset of service.BlocService the handlers require.
type BlocService interface {
	RetrieveAllBlocs(ctx context.Context) ([]model.Bloc, error)
	AddOrUpdate(ctx context.Context, b *model.Bloc) (*model.Bloc, error)
	RetrieveBloc(ctx context.Context, id int64) (*model.Bloc, error)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	chambres    ChambreService
	universites UniversiteService
	blocs       BlocService
	db          *gorm.DB
	log         *logrus.Logger
}

// NewHandler creates a new API handler. db is only used by the health check.
func NewHandler(chambres ChambreService, universites UniversiteService, blocs BlocService, db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{
		chambres:    chambres,
		universites: universites,
		blocs:       blocs,
		db:          db,
		log:         log,
	}
}
