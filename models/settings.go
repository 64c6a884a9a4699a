package models

const (
	DefaultGroupCount = 3
	DefaultGroupSize  = 6
)

// TournamentSettings - переключатели разделов для слоя представления плюс параметры жеребьёвки.
// Движок читает только GroupCount и GroupSize.
type TournamentSettings struct {
	ParticipantManagementEnabled bool `json:"participant_management_enabled" yaml:"participant_management_enabled"`
	RandomOrderingEnabled        bool `json:"random_ordering_enabled" yaml:"random_ordering_enabled"`
	ClubSelectionEnabled         bool `json:"club_selection_enabled" yaml:"club_selection_enabled"`
	GroupDrawEnabled             bool `json:"group_draw_enabled" yaml:"group_draw_enabled"`
	TournamentTableEnabled       bool `json:"tournament_table_enabled" yaml:"tournament_table_enabled"`
	QualifiedTeamsEnabled        bool `json:"qualified_teams_enabled" yaml:"qualified_teams_enabled"`
	KnockoutStageEnabled         bool `json:"knockout_stage_enabled" yaml:"knockout_stage_enabled"`

	GroupCount int `json:"group_count" yaml:"group_count"`
	GroupSize  int `json:"group_size" yaml:"group_size"`
}

func DefaultSettings() TournamentSettings {
	return TournamentSettings{
		ParticipantManagementEnabled: true,
		RandomOrderingEnabled:        true,
		ClubSelectionEnabled:         true,
		GroupDrawEnabled:             true,
		TournamentTableEnabled:       true,
		QualifiedTeamsEnabled:        true,
		KnockoutStageEnabled:         true,
		GroupCount:                   DefaultGroupCount,
		GroupSize:                    DefaultGroupSize,
	}
}

// Capacity is the number of participants the configured groups can hold.
func (s TournamentSettings) Capacity() int {
	return s.GroupCount * s.GroupSize
}
