package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/models"
)

// KnockoutSize - число участников сетки плей-офф.
const KnockoutSize = 2 * brackets.QuarterfinalCount

// KnockoutResult - сетка после записи результата и список матчей, чьи результаты сброшены.
type KnockoutResult struct {
	Bracket *models.Bracket `json:"bracket"`
	Reset   []string        `json:"reset"`
}

type BracketService interface {
	Qualifiers(ctx context.Context, tournamentID string) (*brackets.Qualification, error)
	// Bracket возвращает сохранённую сетку. Если её нет, а участников плей-офф хватает,
	// сетка строится и сохраняется.
	Bracket(ctx context.Context, tournamentID string) (*models.Bracket, error)
	SeedBracket(ctx context.Context, tournamentID string) (*models.Bracket, error)
	RecordKnockoutResult(ctx context.Context, tournamentID, matchID string, score brackets.KnockoutScore) (*KnockoutResult, error)
	// ResetBracket строит сетку заново по текущим таблицам.
	ResetBracket(ctx context.Context, tournamentID string) (*models.Bracket, error)
}

type bracketService struct {
	engine
}

func NewBracketService(d Deps) BracketService {
	return &bracketService{engine: newEngine(d)}
}

func (s *bracketService) Qualifiers(ctx context.Context, tournamentID string) (*brackets.Qualification, error) {
	var q *brackets.Qualification
	err := s.locked(tournamentID, func() error {
		var err error
		q, err = s.qualify(ctx, tournamentID)
		return err
	})
	return q, err
}

func (s *bracketService) qualify(ctx context.Context, tournamentID string) (*brackets.Qualification, error) {
	ledger, err := s.loadLedger(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return brackets.SelectQualifiers(ledger.Standings)
}

// seed строит сетку по текущей квалификации. Вызывается под блокировкой.
func (s *bracketService) seed(ctx context.Context, tournamentID string) (*models.Bracket, error) {
	q, err := s.qualify(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(q.Teams) != KnockoutSize {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedBracket, len(q.Teams))
	}
	pairings, err := brackets.PairQuarterfinals(q.Pot1, q.Pot2, s.rnd)
	if err != nil {
		return nil, err
	}
	bracket, err := brackets.NewBracket(pairings)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetBracket(ctx, tournamentID, bracket); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "Bracket seeded", slog.String("tournament_id", tournamentID))
	return bracket, nil
}

func (s *bracketService) Bracket(ctx context.Context, tournamentID string) (*models.Bracket, error) {
	var bracket *models.Bracket
	err := s.locked(tournamentID, func() error {
		var err error
		bracket, err = s.repo.Bracket(ctx, tournamentID)
		return err
	})
	if err != nil || bracket != nil {
		return bracket, err
	}

	// сетки ещё нет - первое чтение её засевает, это такая же запись, как SeedBracket
	err = s.mutate(ctx, tournamentID, "bracket.seed", func() error {
		existing, err := s.repo.Bracket(ctx, tournamentID)
		if err != nil || existing != nil {
			bracket = existing
			return err
		}
		bracket, err = s.seed(ctx, tournamentID)
		if errors.Is(err, ErrPreconditionFailed) {
			return fmt.Errorf("%w: %w", ErrBracketRequired, err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return bracket, nil
}

func (s *bracketService) SeedBracket(ctx context.Context, tournamentID string) (*models.Bracket, error) {
	var bracket *models.Bracket
	err := s.mutate(ctx, tournamentID, "bracket.seed", func() error {
		existing, err := s.repo.Bracket(ctx, tournamentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrBracketExists
		}
		bracket, err = s.seed(ctx, tournamentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bracket, nil
}

func (s *bracketService) RecordKnockoutResult(ctx context.Context, tournamentID, matchID string, score brackets.KnockoutScore) (*KnockoutResult, error) {
	var result *KnockoutResult
	err := s.mutate(ctx, tournamentID, "bracket.record", func() error {
		bracket, err := s.repo.Bracket(ctx, tournamentID)
		if err != nil {
			return err
		}
		if bracket == nil {
			return ErrBracketRequired
		}
		reset, err := brackets.RecordResult(bracket, matchID, score)
		if err != nil {
			return err
		}
		if len(reset) > 0 {
			s.logger.InfoContext(ctx, "Downstream knockout results cleared",
				slog.String("tournament_id", tournamentID),
				slog.String("match_id", matchID),
				slog.Any("reset", reset))
		}
		if err := s.repo.SetBracket(ctx, tournamentID, bracket); err != nil {
			return err
		}
		if reset == nil {
			reset = []string{}
		}
		result = &KnockoutResult{Bracket: bracket, Reset: reset}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *bracketService) ResetBracket(ctx context.Context, tournamentID string) (*models.Bracket, error) {
	var bracket *models.Bracket
	err := s.mutate(ctx, tournamentID, "bracket.reset", func() error {
		if err := s.repo.SetBracket(ctx, tournamentID, nil); err != nil {
			return err
		}
		var err error
		bracket, err = s.seed(ctx, tournamentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bracket, nil
}
