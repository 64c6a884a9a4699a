package services

import (
	"context"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/repositories"
)

type OrderingService interface {
	// AssignOrder перемешивает участников и присваивает порядок 1..N. Выполняется один раз.
	AssignOrder(ctx context.Context, tournamentID string) ([]models.Participant, error)
	// ResetOrdering возвращает турнир к приёму участников. Список имён сохраняется.
	ResetOrdering(ctx context.Context, tournamentID string) error
}

type orderingService struct {
	engine
}

func NewOrderingService(d Deps) OrderingService {
	return &orderingService{engine: newEngine(d)}
}

func (s *orderingService) AssignOrder(ctx context.Context, tournamentID string) ([]models.Participant, error) {
	var ordered []models.Participant
	err := s.mutate(ctx, tournamentID, "ordering.assign", func() error {
		names, participants, err := s.repo.Roster(ctx, tournamentID)
		if err != nil {
			return err
		}
		if len(participants) > 0 {
			return ErrAlreadyOrdered
		}
		if len(names) < 2 {
			return ErrNotEnoughParticipants
		}

		ordered = brackets.Shuffled(names, s.rnd)
		for i := range ordered {
			order := i + 1
			ordered[i].Order = &order
			ordered[i].Club = nil
		}
		return s.repo.SetParticipants(ctx, tournamentID, ordered)
	})
	if err != nil {
		return nil, err
	}
	return ordered, nil
}

func (s *orderingService) ResetOrdering(ctx context.Context, tournamentID string) error {
	return s.mutate(ctx, tournamentID, "ordering.reset", func() error {
		return s.repo.Delete(ctx, tournamentID,
			repositories.FieldParticipants, repositories.FieldAvailableClubs,
			repositories.FieldGroups, repositories.FieldGroupStandings,
			repositories.FieldMatchHistory, repositories.FieldKnockoutMatches)
	})
}
