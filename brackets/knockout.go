package brackets

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/dominikbraun/graph"
)

const (
	MatchQF1        = "qf1"
	MatchQF2        = "qf2"
	MatchQF3        = "qf3"
	MatchQF4        = "qf4"
	MatchSF1        = "sf1"
	MatchSF2        = "sf2"
	MatchFinal      = "final"
	MatchThirdPlace = "thirdPlace"

	// титулы - конечные вершины графа, у них нет исходящих рёбер
	TitleChampion   = "champion"
	TitleRunnerUp   = "runnerUp"
	TitleThirdPlace = "thirdPlaceWinner"
)

// QuarterfinalCount - размер сетки фиксирован: 8 команд, 4 четвертьфинала.
const QuarterfinalCount = 4

var quarterfinalIDs = []string{MatchQF1, MatchQF2, MatchQF3, MatchQF4}

const (
	attrOutcome = "outcome"
	attrSlot    = "slot"

	outcomeWinner = "winner"
	outcomeLoser  = "loser"

	slotHome  = "home"
	slotAway  = "away"
	slotTitle = "title"
)

type route struct {
	target string
	loser  bool
	slot   string
}

// Topology - граф продвижения по сетке. Вершины - матчи и титулы,
// ребро source→target несёт исход (победитель или проигравший) и слот в целевом матче.
type Topology struct {
	g      graph.Graph[string, string]
	routes map[string][]route
}

var defaultTopology = sync.OnceValue(func() *Topology {
	t, err := NewTopology()
	if err != nil {
		panic(fmt.Sprintf("knockout topology: %v", err))
	}
	return t
})

// KnockoutTopology returns the shared bracket topology.
func KnockoutTopology() *Topology {
	return defaultTopology()
}

func NewTopology() (*Topology, error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	vertices := append(slices.Clone(quarterfinalIDs),
		MatchSF1, MatchSF2, MatchFinal, MatchThirdPlace,
		TitleChampion, TitleRunnerUp, TitleThirdPlace)
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("add vertex %s: %w", v, err)
		}
	}

	edges := []struct {
		source, target, outcome, slot string
	}{
		// четвертьфинал i (с нуля) -> полуфинал i/2, хозяин при чётном i
		{MatchQF1, MatchSF1, outcomeWinner, slotHome},
		{MatchQF2, MatchSF1, outcomeWinner, slotAway},
		{MatchQF3, MatchSF2, outcomeWinner, slotHome},
		{MatchQF4, MatchSF2, outcomeWinner, slotAway},
		{MatchSF1, MatchFinal, outcomeWinner, slotHome},
		{MatchSF1, MatchThirdPlace, outcomeLoser, slotHome},
		{MatchSF2, MatchFinal, outcomeWinner, slotAway},
		{MatchSF2, MatchThirdPlace, outcomeLoser, slotAway},
		{MatchFinal, TitleChampion, outcomeWinner, slotTitle},
		{MatchFinal, TitleRunnerUp, outcomeLoser, slotTitle},
		{MatchThirdPlace, TitleThirdPlace, outcomeWinner, slotTitle},
	}
	for _, e := range edges {
		err := g.AddEdge(e.source, e.target,
			graph.EdgeAttribute(attrOutcome, e.outcome),
			graph.EdgeAttribute(attrSlot, e.slot))
		if err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", e.source, e.target, err)
		}
	}

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("adjacency map: %w", err)
	}
	routes := make(map[string][]route, len(adjacency))
	for source, out := range adjacency {
		for target, edge := range out {
			routes[source] = append(routes[source], route{
				target: target,
				loser:  edge.Properties.Attributes[attrOutcome] == outcomeLoser,
				slot:   edge.Properties.Attributes[attrSlot],
			})
		}
		slices.SortFunc(routes[source], func(a, b route) int {
			return slices.Index(vertices, a.target) - slices.Index(vertices, b.target)
		})
	}

	return &Topology{g: g, routes: routes}, nil
}

// downstream возвращает всё, что зависит от результата матча, в порядке обхода в ширину.
func (t *Topology) downstream(matchID string) ([]string, error) {
	var out []string
	err := graph.BFS(t.g, matchID, func(v string) bool {
		if v != matchID {
			out = append(out, v)
		}
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKnockoutMatch, matchID)
	}
	return out, nil
}

// order returns match and title ids in topological order.
func (t *Topology) order() ([]string, error) {
	return graph.StableTopologicalSort(t.g, func(a, b string) bool { return a < b })
}

// NewBracket строит сетку из пар четвертьфинала. Хозяин - команда корзины 1.
func NewBracket(pairings []Pairing) (*models.Bracket, error) {
	if len(pairings) != QuarterfinalCount {
		return nil, fmt.Errorf("%w: bracket needs %d quarterfinal pairings, got %d",
			ErrNotEnoughQualifiers, QuarterfinalCount, len(pairings))
	}

	b := &models.Bracket{
		Quarterfinals: make([]models.KnockoutMatch, 0, QuarterfinalCount),
		Semifinals: []models.KnockoutMatch{
			{ID: MatchSF1, Stage: models.StageSemifinal},
			{ID: MatchSF2, Stage: models.StageSemifinal},
		},
		Final:      models.KnockoutMatch{ID: MatchFinal, Stage: models.StageFinal},
		ThirdPlace: models.KnockoutMatch{ID: MatchThirdPlace, Stage: models.StageThirdPlace},
	}
	for i, p := range pairings {
		b.Quarterfinals = append(b.Quarterfinals, models.KnockoutMatch{
			ID:       quarterfinalIDs[i],
			Stage:    models.StageQuarterfinal,
			HomeTeam: cloneTeam(&p.Home),
			AwayTeam: cloneTeam(&p.Away),
		})
	}
	return b, nil
}

// KnockoutScore - введённый счёт матча плей-офф.
// Дополнительное время учитывается только при ничьей в основное время,
// пенальти - только при ничьей в дополнительное.
type KnockoutScore struct {
	HomeGoals          int  `json:"home_goals"`
	AwayGoals          int  `json:"away_goals"`
	HomeExtraTimeGoals *int `json:"home_extra_time_goals,omitempty"`
	AwayExtraTimeGoals *int `json:"away_extra_time_goals,omitempty"`
	HomePenalties      *int `json:"home_penalties,omitempty"`
	AwayPenalties      *int `json:"away_penalties,omitempty"`
}

type decision struct {
	homeWins  bool
	extraTime bool
	penalties bool
}

func (s KnockoutScore) decide() (decision, error) {
	if s.HomeGoals < 0 || s.AwayGoals < 0 {
		return decision{}, ErrNegativeGoals
	}
	if s.HomeGoals != s.AwayGoals {
		return decision{homeWins: s.HomeGoals > s.AwayGoals}, nil
	}

	if s.HomeExtraTimeGoals == nil || s.AwayExtraTimeGoals == nil {
		return decision{}, ErrExtraTimeRequired
	}
	homeET, awayET := *s.HomeExtraTimeGoals, *s.AwayExtraTimeGoals
	if homeET < 0 || awayET < 0 {
		return decision{}, ErrNegativeGoals
	}
	if homeET != awayET {
		return decision{homeWins: homeET > awayET, extraTime: true}, nil
	}

	if s.HomePenalties == nil || s.AwayPenalties == nil {
		return decision{}, ErrPenaltiesRequired
	}
	homePen, awayPen := *s.HomePenalties, *s.AwayPenalties
	if homePen < 0 || awayPen < 0 {
		return decision{}, ErrNegativeGoals
	}
	if homePen == awayPen {
		return decision{}, ErrPenaltiesEqual
	}
	return decision{homeWins: homePen > awayPen, extraTime: true, penalties: true}, nil
}

// RecordResult записывает результат матча и продвигает победителя и проигравшего по сетке.
// Повторная запись перезаписывает результат. Если из-за этого меняется участник
// следующего матча, его результат стирается, и сброс идёт дальше по графу.
// Возвращает id матчей, чьи результаты были стёрты.
func RecordResult(b *models.Bracket, matchID string, score KnockoutScore) ([]string, error) {
	return KnockoutTopology().RecordResult(b, matchID, score)
}

func (t *Topology) RecordResult(b *models.Bracket, matchID string, score KnockoutScore) ([]string, error) {
	m := b.Match(matchID)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKnockoutMatch, matchID)
	}
	if m.Status() == models.MatchPending {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotReady, matchID)
	}
	d, err := score.decide()
	if err != nil {
		return nil, err
	}

	m.ClearResult()
	m.HomeGoals, m.AwayGoals = intPtr(score.HomeGoals), intPtr(score.AwayGoals)
	if d.extraTime {
		m.HomeExtraTimeGoals = intPtr(*score.HomeExtraTimeGoals)
		m.AwayExtraTimeGoals = intPtr(*score.AwayExtraTimeGoals)
	}
	if d.penalties {
		m.HomePenalties = intPtr(*score.HomePenalties)
		m.AwayPenalties = intPtr(*score.AwayPenalties)
	}
	if d.homeWins {
		m.Winner = cloneTeam(m.HomeTeam)
	} else {
		m.Winner = cloneTeam(m.AwayTeam)
	}

	var reset []string
	t.propagate(b, matchID, &reset)
	return reset, nil
}

func (t *Topology) propagate(b *models.Bracket, source string, reset *[]string) {
	m := b.Match(source)
	if m == nil {
		return
	}
	winner, loser := m.Winner, m.Loser()

	for _, r := range t.routes[source] {
		team := winner
		if r.loser {
			team = loser
		}

		if r.slot == slotTitle {
			setTitle(b, r.target, team)
			continue
		}

		target := b.Match(r.target)
		if target == nil {
			continue
		}
		slot := &target.HomeTeam
		if r.slot == slotAway {
			slot = &target.AwayTeam
		}
		changed := !sameTeam(*slot, team)
		*slot = cloneTeam(team)
		if !changed {
			continue
		}
		if target.Status() == models.MatchDecided {
			target.ClearResult()
			*reset = append(*reset, target.ID)
		}
		t.propagate(b, target.ID, reset)
	}
}

func setTitle(b *models.Bracket, title string, team *models.QualifiedTeam) {
	switch title {
	case TitleChampion:
		b.Champion = cloneTeam(team)
	case TitleRunnerUp:
		b.RunnerUp = cloneTeam(team)
	case TitleThirdPlace:
		b.ThirdPlaceWinner = cloneTeam(team)
	}
}

func sameTeam(a, b *models.QualifiedTeam) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ParticipantID == b.ParticipantID
}

func cloneTeam(t *models.QualifiedTeam) *models.QualifiedTeam {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func intPtr(v int) *int { return &v }
