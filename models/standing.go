package models

import "github.com/google/uuid"

// StandingRow - статистика одной команды в группе.
// Инварианты: Played = Won+Drawn+Lost, GoalDifference = GoalsFor-GoalsAgainst, Points = 3*Won+Drawn.
type StandingRow struct {
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	Club            string    `json:"club,omitempty"`
	Played          int       `json:"played"`
	Won             int       `json:"won"`
	Drawn           int       `json:"drawn"`
	Lost            int       `json:"lost"`
	GoalsFor        int       `json:"goals_for"`
	GoalsAgainst    int       `json:"goals_against"`
	GoalDifference  int       `json:"goal_difference"`
	Points          int       `json:"points"`
}

// GroupStanding - таблица одной группы, строки отсортированы по правилам ранжирования.
type GroupStanding struct {
	GroupID   int           `json:"group_id"`
	GroupName string        `json:"group_name"`
	Teams     []StandingRow `json:"teams"`
}

func (g *GroupStanding) Row(id uuid.UUID) *StandingRow {
	for i := range g.Teams {
		if g.Teams[i].ParticipantID == id {
			return &g.Teams[i]
		}
	}
	return nil
}

// QualifiedTeam - снимок строки таблицы с отметками о группе, месте и корзине.
type QualifiedTeam struct {
	StandingRow
	GroupID   int    `json:"group_id"`
	GroupName string `json:"group_name"`
	Position  int    `json:"position"`
	Pot       int    `json:"pot,omitempty"`
}
