package models

// TournamentStage - текущий этап турнира, вычисляется из сохранённых полей.
type TournamentStage string

const (
	StageIntake    TournamentStage = "intake"
	StageOrdering  TournamentStage = "ordering"
	StageClubs     TournamentStage = "club_selection"
	StageGroupDraw TournamentStage = "group_draw"
	StageGroupPlay TournamentStage = "group_play"
	StageKnockout  TournamentStage = "knockout"
	StageCompleted TournamentStage = "completed"
)

// Snapshot - все данные одного турнира.
type Snapshot struct {
	TournamentID     string             `json:"tournament_id"`
	Stage            TournamentStage    `json:"stage"`
	ParticipantNames []Participant      `json:"participant_names"`
	Participants     []Participant      `json:"participants"`
	AvailableClubs   []Club             `json:"available_clubs"`
	Groups           []Group            `json:"groups"`
	GroupStandings   []GroupStanding    `json:"group_standings"`
	MatchHistory     []MatchRecord      `json:"match_history"`
	KnockoutMatches  *Bracket           `json:"knockout_matches,omitempty"`
	Settings         TournamentSettings `json:"settings"`
}

// DeriveStage определяет этап по наличию данных.
func (s *Snapshot) DeriveStage() TournamentStage {
	switch {
	case s.KnockoutMatches != nil && s.KnockoutMatches.State() == BracketComplete:
		return StageCompleted
	case s.KnockoutMatches != nil:
		return StageKnockout
	case len(s.Groups) > 0:
		return StageGroupPlay
	case len(s.Participants) > 0 && allHaveClubs(s.Participants):
		return StageGroupDraw
	case len(s.Participants) > 0:
		return StageClubs
	case len(s.ParticipantNames) >= 2:
		return StageOrdering
	default:
		return StageIntake
	}
}

func allHaveClubs(ps []Participant) bool {
	for _, p := range ps {
		if p.Club == nil {
			return false
		}
	}
	return true
}
