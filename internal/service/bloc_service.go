package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"housing-backend/internal/model"
	"housing-backend/internal/store"
)

// BlocService manages blocs and the rooms linked to them.
type BlocService struct {
	blocs    store.BlocStore
	chambres store.ChambreStore
	log      *logrus.Logger
}

// NewBlocService creates a bloc service. Rooms are written through chambres.
func NewBlocService(blocs store.BlocStore, chambres store.ChambreStore, log *logrus.Logger) *BlocService {
	return &BlocService{
		blocs:    blocs,
		chambres: chambres,
		log:      log,
	}
}

// RetrieveAllBlocs returns every bloc with its linked rooms.
func (s *BlocService) RetrieveAllBlocs(ctx context.Context) ([]model.Bloc, error) {
	return s.blocs.FindAll(ctx)
}

// RetrieveBloc returns nil without an error when no bloc has the given ID.
func (s *BlocService) RetrieveBloc(ctx context.Context, id int64) (*model.Bloc, error) {
	return s.blocs.FindByID(ctx, id)
}

// AddOrUpdate saves the bloc, then links and saves each of its rooms in order.
//
// The writes are not atomic. If a room fails to save, the bloc and the rooms
// before it stay persisted and the error names the bloc and the failing index.
func (s *BlocService) AddOrUpdate(ctx context.Context, b *model.Bloc) (*model.Bloc, error) {
	if err := s.blocs.Save(ctx, b); err != nil {
		return nil, err
	}

	for i := range b.Chambres {
		c := &b.Chambres[i]
		c.BlocID = &b.ID
		if err := s.chambres.Save(ctx, c); err != nil {
			s.log.WithFields(logrus.Fields{
				"bloc_id": b.ID,
				"index":   i,
				"total":   len(b.Chambres),
			}).WithError(err).Error("bloc saved but chambre failed; bloc is partially linked")
			return nil, fmt.Errorf("bloc %d: chambre %d of %d: %w", b.ID, i+1, len(b.Chambres), err)
		}
	}

	s.log.WithFields(logrus.Fields{
		"bloc_id":  b.ID,
		"chambres": len(b.Chambres),
	}).Debug("bloc saved")
	return b, nil
}
