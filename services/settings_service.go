package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/cup-organizer/models"
)

type SettingsService interface {
	Settings(ctx context.Context, tournamentID string) (models.TournamentSettings, error)
	// UpdateSettings сохраняет настройки целиком. Размеры групп нельзя менять после жеребьёвки.
	UpdateSettings(ctx context.Context, tournamentID string, settings models.TournamentSettings) (models.TournamentSettings, error)
}

type settingsService struct {
	engine
}

func NewSettingsService(d Deps) SettingsService {
	return &settingsService{engine: newEngine(d)}
}

func (s *settingsService) Settings(ctx context.Context, tournamentID string) (models.TournamentSettings, error) {
	return s.repo.Settings(ctx, tournamentID)
}

func (s *settingsService) UpdateSettings(ctx context.Context, tournamentID string, settings models.TournamentSettings) (models.TournamentSettings, error) {
	err := s.mutate(ctx, tournamentID, "settings.update", func() error {
		if settings.GroupCount < 1 || settings.GroupSize < 1 {
			return ErrInvalidSettings
		}

		current, err := s.repo.Settings(ctx, tournamentID)
		if err != nil {
			return err
		}
		resized := current.GroupCount != settings.GroupCount || current.GroupSize != settings.GroupSize
		if resized {
			groups, err := s.repo.Groups(ctx, tournamentID)
			if err != nil {
				return err
			}
			if len(groups) > 0 {
				return ErrAlreadyDrawn
			}
			names, err := s.repo.ParticipantNames(ctx, tournamentID)
			if err != nil {
				return err
			}
			if len(names) > settings.Capacity() {
				return fmt.Errorf("%w: %d participants registered, capacity %d", ErrRosterFull, len(names), settings.Capacity())
			}
		}
		return s.repo.SetSettings(ctx, tournamentID, settings)
	})
	if err != nil {
		return models.TournamentSettings{}, err
	}
	return settings, nil
}
