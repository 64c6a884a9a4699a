package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/metrics"
	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/repositories"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

const tid = "cup-2024"

var fixedNow = time.Date(2024, 6, 14, 19, 0, 0, 0, time.UTC)

type testEnv struct {
	*Services
	repo    repositories.TournamentRepository
	store   repositories.TournamentStore
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repositories.NewMemoryStore()
	repo := repositories.NewTournamentRepository(store, logger)
	m := metrics.New()
	svc := New(Deps{
		Repo:       repo,
		Randomizer: brackets.NewSeededRandomizer(42),
		Metrics:    m,
		Logger:     logger,
		Clock:      func() time.Time { return fixedNow },
	})
	return &testEnv{Services: svc, repo: repo, store: store, metrics: m}
}

// fakeNames возвращает n разных имён.
func fakeNames(n int) []string {
	faker := gofakeit.New(7)
	seen := make(map[string]bool, n)
	out := make([]string, 0, n)
	for len(out) < n {
		name := faker.FirstName()
		if seen[name] {
			name = fmt.Sprintf("%s %d", name, len(out))
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func (e *testEnv) addParticipants(t *testing.T, n int) []models.Participant {
	t.Helper()
	out := make([]models.Participant, 0, n)
	for _, name := range fakeNames(n) {
		p, err := e.Participants.AddParticipant(context.Background(), tid, ParticipantInput{Name: name})
		require.NoError(t, err)
		out = append(out, *p)
	}
	return out
}

// drawn доводит турнир до групповой стадии: n участников, порядок, клубы, жеребьёвка.
func (e *testEnv) drawn(t *testing.T, n int) []models.Group {
	t.Helper()
	ctx := context.Background()
	e.addParticipants(t, n)
	_, err := e.Ordering.AssignOrder(ctx, tid)
	require.NoError(t, err)
	_, err = e.Clubs.AssignRemainingClubs(ctx, tid)
	require.NoError(t, err)
	draw, err := e.Draw.DrawGroups(ctx, tid)
	require.NoError(t, err)
	return draw.Groups
}

// playGroups играет полный круг в каждой группе. Участник, стоящий в группе раньше,
// выигрывает 2:0, так что итоговые места совпадают с порядком в группе.
func (e *testEnv) playGroups(t *testing.T, groups []models.Group) {
	t.Helper()
	ctx := context.Background()
	for _, g := range groups {
		for i, home := range g.Teams {
			for _, away := range g.Teams[i+1:] {
				_, err := e.Standings.RecordMatch(ctx, tid, brackets.MatchInput{
					GroupID:   g.ID,
					HomeID:    home.ID,
					AwayID:    away.ID,
					HomeGoals: 2 + i,
					AwayGoals: 0,
				})
				require.NoError(t, err)
			}
		}
	}
}

func intp(v int) *int { return &v }

// metricValue достаёт значение счётчика из реестра по имени и меткам.
func (e *testEnv) metricValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := e.metrics.Registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}
