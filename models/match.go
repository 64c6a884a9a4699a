package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchResult string

const (
	ResultHome MatchResult = "home"
	ResultAway MatchResult = "away"
	ResultDraw MatchResult = "draw"
)

// ResultOf определяет исход по голам.
func ResultOf(homeGoals, awayGoals int) MatchResult {
	switch {
	case homeGoals > awayGoals:
		return ResultHome
	case awayGoals > homeGoals:
		return ResultAway
	default:
		return ResultDraw
	}
}

type MatchSide struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Club string    `json:"club,omitempty"`
}

// MatchRecord - запись матча группового этапа.
type MatchRecord struct {
	ID        uuid.UUID   `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	GroupID   int         `json:"group_id"`
	GroupName string      `json:"group_name"`
	HomeTeam  MatchSide   `json:"home_team"`
	AwayTeam  MatchSide   `json:"away_team"`
	HomeGoals int         `json:"home_goals"`
	AwayGoals int         `json:"away_goals"`
	Result    MatchResult `json:"result"`
}

func (m MatchRecord) Involves(id uuid.UUID) bool {
	return m.HomeTeam.ID == id || m.AwayTeam.ID == id
}
