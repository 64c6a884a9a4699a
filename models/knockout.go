package models

type KnockoutStage string

const (
	StageQuarterfinal KnockoutStage = "quarterfinal"
	StageSemifinal    KnockoutStage = "semifinal"
	StageFinal        KnockoutStage = "final"
	StageThirdPlace   KnockoutStage = "third_place"
)

type MatchStatus string

const (
	MatchPending MatchStatus = "pending" // хотя бы одна сторона неизвестна
	MatchReady   MatchStatus = "ready"   // обе стороны известны, результата нет
	MatchDecided MatchStatus = "decided" // победитель записан
)

type BracketState string

const (
	BracketSeeded     BracketState = "seeded"
	BracketInProgress BracketState = "in_progress"
	BracketComplete   BracketState = "complete"
)

// KnockoutMatch - матч плей-офф. Поля дополнительного времени и пенальти заполняются,
// только если до них дошло дело.
type KnockoutMatch struct {
	ID                 string         `json:"id"`
	Stage              KnockoutStage  `json:"stage"`
	HomeTeam           *QualifiedTeam `json:"home_team"`
	AwayTeam           *QualifiedTeam `json:"away_team"`
	HomeGoals          *int           `json:"home_goals"`
	AwayGoals          *int           `json:"away_goals"`
	HomeExtraTimeGoals *int           `json:"home_extra_time_goals"`
	AwayExtraTimeGoals *int           `json:"away_extra_time_goals"`
	HomePenalties      *int           `json:"home_penalties"`
	AwayPenalties      *int           `json:"away_penalties"`
	Winner             *QualifiedTeam `json:"winner"`
}

func (m *KnockoutMatch) Status() MatchStatus {
	switch {
	case m.Winner != nil:
		return MatchDecided
	case m.HomeTeam != nil && m.AwayTeam != nil:
		return MatchReady
	default:
		return MatchPending
	}
}

// Loser returns nil until the match is decided.
func (m *KnockoutMatch) Loser() *QualifiedTeam {
	if m.Winner == nil || m.HomeTeam == nil || m.AwayTeam == nil {
		return nil
	}
	if m.Winner.ParticipantID == m.HomeTeam.ParticipantID {
		return m.AwayTeam
	}
	return m.HomeTeam
}

// ClearResult стирает счёт и победителя, оставляя участников.
func (m *KnockoutMatch) ClearResult() {
	m.HomeGoals, m.AwayGoals = nil, nil
	m.HomeExtraTimeGoals, m.AwayExtraTimeGoals = nil, nil
	m.HomePenalties, m.AwayPenalties = nil, nil
	m.Winner = nil
}

// Bracket - вся сетка плей-офф: 4 четвертьфинала, 2 полуфинала, финал и матч за третье место.
type Bracket struct {
	Quarterfinals    []KnockoutMatch `json:"quarterfinals"`
	Semifinals       []KnockoutMatch `json:"semifinals"`
	Final            KnockoutMatch   `json:"final"`
	ThirdPlace       KnockoutMatch   `json:"third_place"`
	Champion         *QualifiedTeam  `json:"champion"`
	RunnerUp         *QualifiedTeam  `json:"runner_up"`
	ThirdPlaceWinner *QualifiedTeam  `json:"third_place_winner"`
}

// Matches returns pointers to every match in bracket order.
func (b *Bracket) Matches() []*KnockoutMatch {
	out := make([]*KnockoutMatch, 0, len(b.Quarterfinals)+len(b.Semifinals)+2)
	for i := range b.Quarterfinals {
		out = append(out, &b.Quarterfinals[i])
	}
	for i := range b.Semifinals {
		out = append(out, &b.Semifinals[i])
	}
	return append(out, &b.Final, &b.ThirdPlace)
}

func (b *Bracket) Match(id string) *KnockoutMatch {
	for _, m := range b.Matches() {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (b *Bracket) State() BracketState {
	if b.Champion != nil && b.RunnerUp != nil && b.ThirdPlaceWinner != nil {
		return BracketComplete
	}
	for _, m := range b.Matches() {
		if m.Status() == MatchDecided {
			return BracketInProgress
		}
	}
	return BracketSeeded
}
