package services

import (
	"context"

	"github.com/Dosada05/cup-organizer/models"
)

type SnapshotService interface {
	// Snapshot возвращает все данные турнира и текущий этап.
	Snapshot(ctx context.Context, tournamentID string) (*models.Snapshot, error)
}

type snapshotService struct {
	engine
}

func NewSnapshotService(d Deps) SnapshotService {
	return &snapshotService{engine: newEngine(d)}
}

func (s *snapshotService) Snapshot(ctx context.Context, tournamentID string) (*models.Snapshot, error) {
	var snap *models.Snapshot
	err := s.locked(tournamentID, func() error {
		var err error
		snap, err = s.repo.Snapshot(ctx, tournamentID)
		return err
	})
	return snap, err
}
