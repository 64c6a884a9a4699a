package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/cup-organizer/brackets"
)

type RevealService interface {
	// Frames строит кадры поэтапного показа из уже сохранённого результата.
	Frames(ctx context.Context, tournamentID string, kind brackets.RevealKind) ([]brackets.RevealFrame, error)
}

type revealService struct {
	engine
}

func NewRevealService(d Deps) RevealService {
	return &revealService{engine: newEngine(d)}
}

func (s *revealService) Frames(ctx context.Context, tournamentID string, kind brackets.RevealKind) ([]brackets.RevealFrame, error) {
	switch kind {
	case brackets.RevealOrdering:
		participants, err := s.repo.Participants(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		if len(participants) == 0 {
			return nil, ErrOrderingRequired
		}
		return brackets.RevealOrderingFrames(participants, s.rnd), nil
	case brackets.RevealClubs:
		participants, err := s.repo.Participants(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		if len(participants) == 0 {
			return nil, ErrOrderingRequired
		}
		pool, err := s.repo.AvailableClubs(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return brackets.RevealClubFrames(participants, pool), nil
	case brackets.RevealGroups:
		groups, err := s.repo.Groups(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		if len(groups) == 0 {
			return nil, ErrDrawRequired
		}
		return brackets.RevealGroupFrames(groups, s.rnd), nil
	default:
		return nil, fmt.Errorf("%w: unknown reveal %q", ErrValidationFailed, kind)
	}
}
