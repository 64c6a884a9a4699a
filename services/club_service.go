package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/repositories"
	"github.com/google/uuid"
)

type ClubService interface {
	AvailableClubs(ctx context.Context, tournamentID string) ([]models.Club, error)
	// AssignClub выбирает случайный клуб из пула и навсегда закрепляет его за участником.
	AssignClub(ctx context.Context, tournamentID string, participantID uuid.UUID) (*models.Participant, error)
	// AssignRemainingClubs раздаёт клубы всем участникам без клуба в порядке жеребьёвки.
	AssignRemainingClubs(ctx context.Context, tournamentID string) ([]models.Participant, error)
	ResetClubs(ctx context.Context, tournamentID string) error
}

type clubService struct {
	engine
}

func NewClubService(d Deps) ClubService {
	return &clubService{engine: newEngine(d)}
}

func (s *clubService) AvailableClubs(ctx context.Context, tournamentID string) ([]models.Club, error) {
	return s.repo.AvailableClubs(ctx, tournamentID)
}

func (s *clubService) AssignClub(ctx context.Context, tournamentID string, participantID uuid.UUID) (*models.Participant, error) {
	var assigned *models.Participant
	err := s.mutate(ctx, tournamentID, "club.assign", func() error {
		participants, pool, err := s.loadForAssignment(ctx, tournamentID)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(participants, func(p models.Participant) bool { return p.ID == participantID })
		if idx < 0 {
			return ErrParticipantNotFound
		}
		if participants[idx].HasClub() {
			return fmt.Errorf("%w: %s", ErrClubAlreadyAssigned, participants[idx].Name)
		}

		pool, err = s.pick(&participants[idx], pool)
		if err != nil {
			return err
		}
		if err := s.save(ctx, tournamentID, participants, pool); err != nil {
			return err
		}
		p := participants[idx]
		assigned = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

func (s *clubService) AssignRemainingClubs(ctx context.Context, tournamentID string) ([]models.Participant, error) {
	var out []models.Participant
	err := s.mutate(ctx, tournamentID, "club.assign_remaining", func() error {
		participants, pool, err := s.loadForAssignment(ctx, tournamentID)
		if err != nil {
			return err
		}

		waiting := make([]int, 0, len(participants))
		for i, p := range participants {
			if !p.HasClub() {
				waiting = append(waiting, i)
			}
		}
		if len(waiting) > len(pool) {
			return fmt.Errorf("%w: %d participants wait, %d clubs left", ErrNoClubsAvailable, len(waiting), len(pool))
		}
		slices.SortStableFunc(waiting, func(a, b int) int {
			return cmp.Compare(orderOf(participants[a]), orderOf(participants[b]))
		})
		for _, i := range waiting {
			if pool, err = s.pick(&participants[i], pool); err != nil {
				return err
			}
		}
		if err := s.save(ctx, tournamentID, participants, pool); err != nil {
			return err
		}
		out = participants
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *clubService) loadForAssignment(ctx context.Context, tournamentID string) ([]models.Participant, []models.Club, error) {
	participants, err := s.repo.Participants(ctx, tournamentID)
	if err != nil {
		return nil, nil, err
	}
	if len(participants) == 0 {
		return nil, nil, ErrOrderingRequired
	}
	pool, err := s.repo.AvailableClubs(ctx, tournamentID)
	if err != nil {
		return nil, nil, err
	}
	return participants, pool, nil
}

// pick закрепляет случайный клуб за участником и возвращает пул без него.
func (s *clubService) pick(p *models.Participant, pool []models.Club) ([]models.Club, error) {
	if len(pool) == 0 {
		return nil, ErrNoClubsAvailable
	}
	idx, err := brackets.PickIndex(len(pool), s.rnd)
	if err != nil {
		return nil, err
	}
	club := pool[idx]
	p.Club = &club
	return slices.Delete(pool, idx, idx+1), nil
}

func (s *clubService) save(ctx context.Context, tournamentID string, participants []models.Participant, pool []models.Club) error {
	if err := s.repo.SetParticipants(ctx, tournamentID, participants); err != nil {
		return err
	}
	return s.repo.SetAvailableClubs(ctx, tournamentID, pool)
}

// ResetClubs снимает клубы со всех участников и возвращает полный пул.
// Жеребьёвка групп и всё после неё удаляются.
func (s *clubService) ResetClubs(ctx context.Context, tournamentID string) error {
	return s.mutate(ctx, tournamentID, "club.reset", func() error {
		participants, err := s.repo.Participants(ctx, tournamentID)
		if err != nil {
			return err
		}
		for i := range participants {
			participants[i].Club = nil
		}
		if len(participants) > 0 {
			if err := s.repo.SetParticipants(ctx, tournamentID, participants); err != nil {
				return err
			}
		}
		s.logger.InfoContext(ctx, "Club pool restored", slog.String("tournament_id", tournamentID))
		return s.repo.Delete(ctx, tournamentID,
			repositories.FieldAvailableClubs, repositories.FieldGroups,
			repositories.FieldGroupStandings, repositories.FieldMatchHistory,
			repositories.FieldKnockoutMatches)
	})
}
