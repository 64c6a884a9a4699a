package services

import (
	"context"
	"log/slog"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/repositories"
)

type DrawService interface {
	// DrawGroups распределяет участников по группам и создаёт пустые таблицы.
	DrawGroups(ctx context.Context, tournamentID string) (*brackets.GroupDraw, error)
	Groups(ctx context.Context, tournamentID string) ([]models.Group, error)
	// ResetDraw удаляет группы, таблицы, историю и сетку.
	ResetDraw(ctx context.Context, tournamentID string) error
}

type drawService struct {
	engine
}

func NewDrawService(d Deps) DrawService {
	return &drawService{engine: newEngine(d)}
}

func (s *drawService) DrawGroups(ctx context.Context, tournamentID string) (*brackets.GroupDraw, error) {
	var draw *brackets.GroupDraw
	err := s.mutate(ctx, tournamentID, "draw.groups", func() error {
		participants, err := s.repo.Participants(ctx, tournamentID)
		if err != nil {
			return err
		}
		if len(participants) == 0 {
			return ErrOrderingRequired
		}
		groups, err := s.repo.Groups(ctx, tournamentID)
		if err != nil {
			return err
		}
		if len(groups) > 0 {
			return ErrAlreadyDrawn
		}
		settings, err := s.repo.Settings(ctx, tournamentID)
		if err != nil {
			return err
		}

		draw, err = brackets.DrawGroups(participants, brackets.DrawConfigFrom(settings), s.rnd)
		if err != nil {
			return err
		}
		if err := s.repo.SetGroups(ctx, tournamentID, draw.Groups); err != nil {
			return err
		}
		if err := s.repo.SetGroupStandings(ctx, tournamentID, brackets.InitializeStandings(draw.Groups)); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "Groups drawn",
			slog.String("tournament_id", tournamentID),
			slog.Int("groups", len(draw.Groups)),
			slog.Int("participants", len(participants)))
		return s.repo.Delete(ctx, tournamentID, repositories.FieldMatchHistory, repositories.FieldKnockoutMatches)
	})
	if err != nil {
		return nil, err
	}
	return draw, nil
}

func (s *drawService) Groups(ctx context.Context, tournamentID string) ([]models.Group, error) {
	return s.repo.Groups(ctx, tournamentID)
}

func (s *drawService) ResetDraw(ctx context.Context, tournamentID string) error {
	return s.mutate(ctx, tournamentID, "draw.reset", func() error {
		return s.repo.Delete(ctx, tournamentID,
			repositories.FieldGroups, repositories.FieldGroupStandings,
			repositories.FieldMatchHistory, repositories.FieldKnockoutMatches)
	})
}
