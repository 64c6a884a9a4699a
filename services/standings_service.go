package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/repositories"
	"github.com/google/uuid"
)

// GroupProgress - сколько матчей группы сыграно из кругового минимума.
type GroupProgress struct {
	GroupID   int    `json:"group_id"`
	GroupName string `json:"group_name"`
	Played    int    `json:"played"`
	Total     int    `json:"total"`
	Complete  bool   `json:"complete"`
}

type StandingsService interface {
	// Standings возвращает таблицы групп, сверив их с текущими группами.
	Standings(ctx context.Context, tournamentID string) ([]models.GroupStanding, error)
	RecordMatch(ctx context.Context, tournamentID string, input brackets.MatchInput) (*models.MatchRecord, error)
	RetractMatch(ctx context.Context, tournamentID string, matchID uuid.UUID) (*models.MatchRecord, error)
	History(ctx context.Context, tournamentID string) ([]models.MatchRecord, error)
	Progress(ctx context.Context, tournamentID string) ([]GroupProgress, error)
	// ResetStandings обнуляет таблицы и удаляет историю и сетку плей-офф.
	ResetStandings(ctx context.Context, tournamentID string) error
}

type standingsService struct {
	engine
}

func NewStandingsService(d Deps) StandingsService {
	return &standingsService{engine: newEngine(d)}
}

func (s *standingsService) Standings(ctx context.Context, tournamentID string) ([]models.GroupStanding, error) {
	var standings []models.GroupStanding
	err := s.locked(tournamentID, func() error {
		ledger, err := s.loadLedger(ctx, tournamentID)
		if errors.Is(err, ErrDrawRequired) {
			standings = []models.GroupStanding{}
			return nil
		}
		if err != nil {
			return err
		}
		standings = ledger.Standings
		return nil
	})
	return standings, err
}

func (s *standingsService) RecordMatch(ctx context.Context, tournamentID string, input brackets.MatchInput) (*models.MatchRecord, error) {
	var record models.MatchRecord
	err := s.mutate(ctx, tournamentID, "match.record", func() error {
		ledger, err := s.loadLedger(ctx, tournamentID)
		if err != nil {
			return err
		}
		record, err = ledger.RecordMatch(input, s.now().UTC(), uuid.New())
		if err != nil {
			return err
		}
		if err := s.releaseBracket(ctx, tournamentID); err != nil {
			return err
		}
		return s.saveLedger(ctx, tournamentID, ledger)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *standingsService) RetractMatch(ctx context.Context, tournamentID string, matchID uuid.UUID) (*models.MatchRecord, error) {
	var record models.MatchRecord
	err := s.mutate(ctx, tournamentID, "match.retract", func() error {
		ledger, err := s.loadLedger(ctx, tournamentID)
		if err != nil {
			return err
		}
		record, err = ledger.RetractMatch(matchID)
		if errors.Is(err, brackets.ErrMatchRecordNotFound) {
			return ErrMatchNotFound
		}
		if err != nil {
			return err
		}
		if err := s.releaseBracket(ctx, tournamentID); err != nil {
			return err
		}
		return s.saveLedger(ctx, tournamentID, ledger)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *standingsService) History(ctx context.Context, tournamentID string) ([]models.MatchRecord, error) {
	history, err := s.repo.MatchHistory(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.MatchRecord{}
	}
	return history, nil
}

func (s *standingsService) Progress(ctx context.Context, tournamentID string) ([]GroupProgress, error) {
	var out []GroupProgress
	err := s.locked(tournamentID, func() error {
		ledger, err := s.loadLedger(ctx, tournamentID)
		if err != nil {
			return err
		}
		out = make([]GroupProgress, 0, len(ledger.Standings))
		for _, gs := range ledger.Standings {
			n := len(gs.Teams)
			p := GroupProgress{
				GroupID:   gs.GroupID,
				GroupName: gs.GroupName,
				Total:     n * (n - 1) / 2,
				Complete:  brackets.GroupComplete(gs, ledger.History),
			}
			for _, m := range ledger.History {
				if m.GroupID == gs.GroupID {
					p.Played++
				}
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *standingsService) ResetStandings(ctx context.Context, tournamentID string) error {
	return s.mutate(ctx, tournamentID, "standings.reset", func() error {
		ledger, err := s.loadLedger(ctx, tournamentID)
		if err != nil {
			return err
		}
		ledger.Reset()
		if err := s.saveLedger(ctx, tournamentID, ledger); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "Standings reset", slog.String("tournament_id", tournamentID))
		return s.repo.Delete(ctx, tournamentID, repositories.FieldKnockoutMatches)
	})
}
