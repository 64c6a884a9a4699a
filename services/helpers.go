package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/metrics"
	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/repositories"
)

// engine - общие зависимости сервисов турнира.
type engine struct {
	repo    repositories.TournamentRepository
	locks   *TournamentLocks
	rnd     brackets.Randomizer
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// Deps собирает зависимости, общие для всех сервисов.
type Deps struct {
	Repo       repositories.TournamentRepository
	Locks      *TournamentLocks
	Randomizer brackets.Randomizer
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
	Clock      func() time.Time
}

func newEngine(d Deps) engine {
	e := engine{
		repo:    d.Repo,
		locks:   d.Locks,
		rnd:     d.Randomizer,
		metrics: d.Metrics,
		logger:  d.Logger,
		now:     d.Clock,
	}
	if e.locks == nil {
		e.locks = NewTournamentLocks()
	}
	if e.rnd == nil {
		e.rnd = brackets.DefaultRandomizer()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// mutate выполняет операцию под блокировкой турнира, пишет метрику и лог.
// Ошибки ввода и этапов логируются на уровне Info, остальные - Error.
func (e *engine) mutate(ctx context.Context, tournamentID, operation string, fn func() error) error {
	unlock := e.locks.Lock(tournamentID)
	defer unlock()

	start := time.Now()
	err := fn()
	e.metrics.ObserveOperation(operation, start, err)

	attrs := []any{slog.String("tournament_id", tournamentID), slog.String("operation", operation)}
	switch {
	case err == nil:
		e.logger.InfoContext(ctx, "Operation completed", attrs...)
	case isClientError(err):
		e.logger.InfoContext(ctx, "Operation rejected", append(attrs, slog.String("reason", err.Error()))...)
	default:
		e.logger.ErrorContext(ctx, "Operation failed", append(attrs, slog.Any("error", err))...)
	}
	return err
}

func isClientError(err error) bool {
	return errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrPreconditionFailed) || errors.Is(err, ErrNotFound)
}

// consistencyReset фиксирует самовосстановление структуры.
func (e *engine) consistencyReset(ctx context.Context, tournamentID, structure string) {
	e.metrics.ConsistencyReset(structure)
	e.logger.WarnContext(ctx, "Stored structure no longer matches, reinitialized",
		slog.String("tournament_id", tournamentID), slog.String("structure", structure))
}

// locked выполняет чтение под блокировкой турнира: чтение таблиц может их пересоздать.
func (e *engine) locked(tournamentID string, fn func() error) error {
	unlock := e.locks.Lock(tournamentID)
	defer unlock()
	return fn()
}

// loadLedger читает группы, таблицы и историю. Таблицы сверяются с группами, при
// несовпадении пересоздаются и сохраняются, история и сетка при этом удаляются.
// Вызывается под блокировкой турнира.
func (e *engine) loadLedger(ctx context.Context, tournamentID string) (*brackets.Ledger, error) {
	groups, err := e.repo.Groups(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, ErrDrawRequired
	}
	stored, err := e.repo.GroupStandings(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	standings, reinit := brackets.ReconcileStandings(groups, stored)
	if reinit {
		e.consistencyReset(ctx, tournamentID, string(repositories.FieldGroupStandings))
		if err := e.repo.SetGroupStandings(ctx, tournamentID, standings); err != nil {
			return nil, err
		}
		if err := e.repo.Delete(ctx, tournamentID, repositories.FieldMatchHistory, repositories.FieldKnockoutMatches); err != nil {
			return nil, err
		}
		return &brackets.Ledger{Standings: standings}, nil
	}

	history, err := e.repo.MatchHistory(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return &brackets.Ledger{Standings: standings, History: history}, nil
}

func (e *engine) saveLedger(ctx context.Context, tournamentID string, ledger *brackets.Ledger) error {
	if err := e.repo.SetGroupStandings(ctx, tournamentID, ledger.Standings); err != nil {
		return err
	}
	return e.repo.SetMatchHistory(ctx, tournamentID, ledger.History)
}

// releaseBracket снимает только что посеянную сетку перед изменением групповой стадии.
// Сетку с сыгранными матчами трогать нельзя.
func (e *engine) releaseBracket(ctx context.Context, tournamentID string) error {
	bracket, err := e.repo.Bracket(ctx, tournamentID)
	if err != nil {
		return err
	}
	if bracket == nil {
		return nil
	}
	if bracket.State() != models.BracketSeeded {
		return ErrKnockoutInProgress
	}
	e.logger.InfoContext(ctx, "Discarding seeded bracket, group results changed",
		slog.String("tournament_id", tournamentID))
	return e.repo.SetBracket(ctx, tournamentID, nil)
}
