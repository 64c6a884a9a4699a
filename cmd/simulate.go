package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/config"
	"github.com/Dosada05/cup-organizer/export"
	"github.com/Dosada05/cup-organizer/metrics"
	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/repositories"
	"github.com/Dosada05/cup-organizer/services"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/urfave/cli/v2"
)

// knockoutOrder - порядок, в котором матчи плей-офф становятся готовыми.
var knockoutOrder = []string{"qf1", "qf2", "qf3", "qf4", "sf1", "sf2", "thirdPlace", "final"}

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "play a whole tournament with generated participants in memory",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "participants", Aliases: []string{"n"}, Value: 18},
			&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "seed for names, scores and draws"},
			&cli.StringFlag{Name: "tournament", Value: "simulation"},
			&cli.StringFlag{Name: "export", Usage: "write the result to this .xlsx file"},
		},
		Action: func(c *cli.Context) error {
			logger, err := newLogger(c)
			if err != nil {
				return err
			}
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			repo := repositories.NewTournamentRepositoryWithDefaults(repositories.NewMemoryStore(), logger, cfg.TournamentDefaults())
			opts := simulationOptions{
				TournamentID: c.String("tournament"),
				Participants: c.Int("participants"),
				Seed:         c.Uint64("seed"),
			}
			snap, err := runSimulation(c.Context, repo, logger, opts)
			if err != nil {
				return err
			}

			if path := c.String("export"); path != "" {
				if err := writeExport(path, snap); err != nil {
					return err
				}
				logger.Info("Workbook written", slog.String("path", path))
			}
			return nil
		},
	}
}

type simulationOptions struct {
	TournamentID string
	Participants int
	Seed         uint64
}

// runSimulation проводит турнир от приёма участников до финала через сервисы движка.
func runSimulation(ctx context.Context, repo repositories.TournamentRepository, logger *slog.Logger, opts simulationOptions) (*models.Snapshot, error) {
	tid := opts.TournamentID
	faker := gofakeit.New(opts.Seed)
	svc := services.New(services.Deps{
		Repo:       repo,
		Randomizer: brackets.NewSeededRandomizer(opts.Seed),
		Metrics:    metrics.New(),
		Logger:     logger,
	})

	var changes atomic.Int64
	unsubscribe, err := repo.Subscribe(ctx, tid, func(ch repositories.Change) {
		changes.Add(1)
		logger.Debug("Field changed", slog.String("tournament_id", ch.TournamentID), slog.String("field", string(ch.Field)))
	})
	if err != nil && !errors.Is(err, repositories.ErrSubscribeNotSupported) {
		return nil, err
	}
	if unsubscribe != nil {
		defer unsubscribe()
	}

	if err := svc.Participants.ClearAll(ctx, tid); err != nil {
		return nil, err
	}
	for added := 0; added < opts.Participants; {
		_, err := svc.Participants.AddParticipant(ctx, tid, services.ParticipantInput{Name: faker.FirstName()})
		if errors.Is(err, services.ErrParticipantExists) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("add participant: %w", err)
		}
		added++
	}

	if _, err := svc.Ordering.AssignOrder(ctx, tid); err != nil {
		return nil, fmt.Errorf("ordering: %w", err)
	}
	if _, err := svc.Clubs.AssignRemainingClubs(ctx, tid); err != nil {
		return nil, fmt.Errorf("clubs: %w", err)
	}
	draw, err := svc.Draw.DrawGroups(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("group draw: %w", err)
	}

	for _, g := range draw.Groups {
		for i, home := range g.Teams {
			for _, away := range g.Teams[i+1:] {
				_, err := svc.Standings.RecordMatch(ctx, tid, brackets.MatchInput{
					GroupID:   g.ID,
					HomeID:    home.ID,
					AwayID:    away.ID,
					HomeGoals: faker.IntRange(0, 4),
					AwayGoals: faker.IntRange(0, 4),
				})
				if err != nil {
					return nil, fmt.Errorf("group match: %w", err)
				}
			}
		}
	}

	if _, err := svc.Bracket.SeedBracket(ctx, tid); err != nil {
		return nil, fmt.Errorf("seed bracket: %w", err)
	}
	for _, id := range knockoutOrder {
		if _, err := svc.Bracket.RecordKnockoutResult(ctx, tid, id, randomKnockoutScore(faker)); err != nil {
			return nil, fmt.Errorf("knockout %s: %w", id, err)
		}
	}

	snap, err := svc.Snapshot.Snapshot(ctx, tid)
	if err != nil {
		return nil, err
	}
	b := snap.KnockoutMatches
	logger.Info("Simulation finished",
		slog.String("tournament_id", tid),
		slog.String("stage", string(snap.Stage)),
		slog.Int("group_matches", len(snap.MatchHistory)),
		slog.String("champion", b.Champion.ParticipantName),
		slog.String("runner_up", b.RunnerUp.ParticipantName),
		slog.String("third_place", b.ThirdPlaceWinner.ParticipantName),
		slog.Int64("store_changes", changes.Load()))
	return snap, nil
}

// randomKnockoutScore доходит до дополнительного времени и пенальти при ничьих.
func randomKnockoutScore(faker *gofakeit.Faker) brackets.KnockoutScore {
	score := brackets.KnockoutScore{HomeGoals: faker.IntRange(0, 3), AwayGoals: faker.IntRange(0, 3)}
	if score.HomeGoals != score.AwayGoals {
		return score
	}
	homeET, awayET := faker.IntRange(0, 2), faker.IntRange(0, 2)
	score.HomeExtraTimeGoals, score.AwayExtraTimeGoals = &homeET, &awayET
	if homeET != awayET {
		return score
	}
	homePens := faker.IntRange(3, 5)
	awayPens := homePens - 1
	if faker.Bool() {
		awayPens = homePens + 1
	}
	score.HomePenalties, score.AwayPenalties = &homePens, &awayPens
	return score
}

func writeExport(path string, snap *models.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.WriteWorkbook(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
