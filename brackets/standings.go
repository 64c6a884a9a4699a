package brackets

import (
	"fmt"
	"slices"
	"time"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/google/uuid"
)

func newStandingRow(p models.Participant) models.StandingRow {
	return models.StandingRow{
		ParticipantID:   p.ID,
		ParticipantName: p.Name,
		Club:            p.ClubName(),
	}
}

// InitializeStandings создаёт нулевые таблицы для каждой группы.
func InitializeStandings(groups []models.Group) []models.GroupStanding {
	out := make([]models.GroupStanding, 0, len(groups))
	for _, g := range groups {
		gs := models.GroupStanding{
			GroupID:   g.ID,
			GroupName: g.Name,
			Teams:     make([]models.StandingRow, 0, len(g.Teams)),
		}
		for _, p := range g.Teams {
			gs.Teams = append(gs.Teams, newStandingRow(p))
		}
		SortStandings(gs.Teams)
		out = append(out, gs)
	}
	return out
}

// ReconcileStandings сверяет сохранённые таблицы с текущими группами.
// Если структура не совпадает (число групп, id групп, состав), таблицы пересоздаются
// и второй результат равен true. Иначе обновляются имена и клубы.
func ReconcileStandings(groups []models.Group, stored []models.GroupStanding) ([]models.GroupStanding, bool) {
	if !standingsMatchGroups(groups, stored) {
		return InitializeStandings(groups), true
	}

	out := make([]models.GroupStanding, len(stored))
	for i, g := range groups {
		gs := stored[i]
		gs.GroupName = g.Name
		gs.Teams = slices.Clone(gs.Teams)
		for _, p := range g.Teams {
			if row := gs.Row(p.ID); row != nil {
				row.ParticipantName = p.Name
				row.Club = p.ClubName()
			}
		}
		SortStandings(gs.Teams)
		out[i] = gs
	}
	return out, false
}

func standingsMatchGroups(groups []models.Group, stored []models.GroupStanding) bool {
	if len(groups) != len(stored) {
		return false
	}
	for i, g := range groups {
		gs := stored[i]
		if gs.GroupID != g.ID || len(gs.Teams) != len(g.Teams) {
			return false
		}
		for _, p := range g.Teams {
			if gs.Row(p.ID) == nil {
				return false
			}
		}
	}
	return true
}

// MatchInput - результат матча группового этапа, введённый организатором.
type MatchInput struct {
	GroupID   int       `json:"group_id"`
	HomeID    uuid.UUID `json:"home_team_id"`
	AwayID    uuid.UUID `json:"away_team_id"`
	HomeGoals int       `json:"home_goals"`
	AwayGoals int       `json:"away_goals"`
}

func (in MatchInput) Validate() error {
	if in.HomeID == in.AwayID {
		return ErrSameTeam
	}
	if in.HomeGoals < 0 || in.AwayGoals < 0 {
		return ErrNegativeGoals
	}
	return nil
}

// Ledger - таблицы групп и история матчей. Каждая запись в истории
// учтена в таблицах ровно один раз, удаление записи полностью откатывает её вклад.
type Ledger struct {
	Standings []models.GroupStanding
	History   []models.MatchRecord
}

func (l *Ledger) group(id int) *models.GroupStanding {
	for i := range l.Standings {
		if l.Standings[i].GroupID == id {
			return &l.Standings[i]
		}
	}
	return nil
}

// RecordMatch проверяет ввод, обновляет обе строки таблицы и добавляет запись в историю.
func (l *Ledger) RecordMatch(in MatchInput, now time.Time, id uuid.UUID) (models.MatchRecord, error) {
	if err := in.Validate(); err != nil {
		return models.MatchRecord{}, err
	}
	gs := l.group(in.GroupID)
	if gs == nil {
		return models.MatchRecord{}, fmt.Errorf("%w: %d", ErrGroupNotFound, in.GroupID)
	}
	home, away := gs.Row(in.HomeID), gs.Row(in.AwayID)
	if home == nil || away == nil {
		return models.MatchRecord{}, fmt.Errorf("%w: %s", ErrTeamNotInGroup, gs.GroupName)
	}

	record := models.MatchRecord{
		ID:        id,
		Timestamp: now,
		GroupID:   gs.GroupID,
		GroupName: gs.GroupName,
		HomeTeam:  models.MatchSide{ID: home.ParticipantID, Name: home.ParticipantName, Club: home.Club},
		AwayTeam:  models.MatchSide{ID: away.ParticipantID, Name: away.ParticipantName, Club: away.Club},
		HomeGoals: in.HomeGoals,
		AwayGoals: in.AwayGoals,
		Result:    models.ResultOf(in.HomeGoals, in.AwayGoals),
	}

	applyResult(home, away, in.HomeGoals, in.AwayGoals, 1)
	SortStandings(gs.Teams)
	l.History = append(l.History, record)
	return record, nil
}

// RetractMatch удаляет запись и вычитает её вклад из таблицы.
func (l *Ledger) RetractMatch(matchID uuid.UUID) (models.MatchRecord, error) {
	idx := slices.IndexFunc(l.History, func(m models.MatchRecord) bool { return m.ID == matchID })
	if idx < 0 {
		return models.MatchRecord{}, fmt.Errorf("%w: %s", ErrMatchRecordNotFound, matchID)
	}
	record := l.History[idx]
	l.History = slices.Delete(l.History, idx, idx+1)

	// группа или команда могли исчезнуть после удаления участника, тогда откатывать нечего
	if gs := l.group(record.GroupID); gs != nil {
		home, away := gs.Row(record.HomeTeam.ID), gs.Row(record.AwayTeam.ID)
		if home != nil && away != nil {
			applyResult(home, away, record.HomeGoals, record.AwayGoals, -1)
			SortStandings(gs.Teams)
		}
	}
	return record, nil
}

// RemoveParticipant откатывает все матчи участника и убирает его строку из таблицы.
func (l *Ledger) RemoveParticipant(id uuid.UUID) []models.MatchRecord {
	var removed []models.MatchRecord
	for _, m := range slices.Clone(l.History) {
		if m.Involves(id) {
			if r, err := l.RetractMatch(m.ID); err == nil {
				removed = append(removed, r)
			}
		}
	}
	for i := range l.Standings {
		l.Standings[i].Teams = slices.DeleteFunc(l.Standings[i].Teams, func(r models.StandingRow) bool {
			return r.ParticipantID == id
		})
	}
	return removed
}

// Reset обнуляет все строки и очищает историю, состав групп не меняется.
func (l *Ledger) Reset() {
	for i := range l.Standings {
		teams := l.Standings[i].Teams
		for j := range teams {
			teams[j] = models.StandingRow{
				ParticipantID:   teams[j].ParticipantID,
				ParticipantName: teams[j].ParticipantName,
				Club:            teams[j].Club,
			}
		}
		SortStandings(teams)
	}
	l.History = nil
}

// applyResult добавляет (sign=1) или вычитает (sign=-1) результат матча.
func applyResult(home, away *models.StandingRow, homeGoals, awayGoals, sign int) {
	home.Played += sign
	away.Played += sign
	home.GoalsFor += sign * homeGoals
	home.GoalsAgainst += sign * awayGoals
	away.GoalsFor += sign * awayGoals
	away.GoalsAgainst += sign * homeGoals

	switch models.ResultOf(homeGoals, awayGoals) {
	case models.ResultHome:
		home.Won += sign
		away.Lost += sign
	case models.ResultAway:
		away.Won += sign
		home.Lost += sign
	default:
		home.Drawn += sign
		away.Drawn += sign
	}

	for _, r := range []*models.StandingRow{home, away} {
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
		r.Points = 3*r.Won + r.Drawn
	}
}

// GroupComplete сообщает, сыграл ли каждый участник группы с каждым хотя бы раз.
func GroupComplete(gs models.GroupStanding, history []models.MatchRecord) bool {
	played := make(map[[2]uuid.UUID]bool)
	for _, m := range history {
		if m.GroupID != gs.GroupID {
			continue
		}
		played[[2]uuid.UUID{m.HomeTeam.ID, m.AwayTeam.ID}] = true
		played[[2]uuid.UUID{m.AwayTeam.ID, m.HomeTeam.ID}] = true
	}
	for i, a := range gs.Teams {
		for _, b := range gs.Teams[i+1:] {
			if !played[[2]uuid.UUID{a.ParticipantID, b.ParticipantID}] {
				return false
			}
		}
	}
	return true
}
