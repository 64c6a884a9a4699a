package brackets

import (
	"fmt"
	"slices"

	"github.com/Dosada05/cup-organizer/models"
)

const (
	Pot1 = 1
	Pot2 = 2

	// BestThirdsQualify - сколько команд с третьих мест выходят в плей-офф.
	BestThirdsQualify = 2
)

// Qualification - вышедшие из групп команды и корзины посева.
type Qualification struct {
	Teams []models.QualifiedTeam `json:"teams"`
	Pot1  []models.QualifiedTeam `json:"pot1"`
	Pot2  []models.QualifiedTeam `json:"pot2"`
}

// QualifierCount - сколько команд выходит из groupCount групп.
func QualifierCount(groupCount int) int {
	return 2*groupCount + BestThirdsQualify
}

// SelectQualifiers отбирает первые и вторые места всех групп и две лучшие третьи.
// Корзина 1: все первые места и лучшая вторая. Корзина 2: остальные вторые и обе третьи.
func SelectQualifiers(standings []models.GroupStanding) (*Qualification, error) {
	var firsts, seconds, thirds []models.QualifiedTeam
	for _, gs := range standings {
		rows := slices.Clone(gs.Teams)
		SortStandings(rows)
		for pos, row := range rows {
			if pos > 2 {
				break
			}
			team := models.QualifiedTeam{
				StandingRow: row,
				GroupID:     gs.GroupID,
				GroupName:   gs.GroupName,
				Position:    pos + 1,
			}
			switch pos {
			case 0:
				firsts = append(firsts, team)
			case 1:
				seconds = append(seconds, team)
			default:
				thirds = append(thirds, team)
			}
		}
	}

	need := QualifierCount(len(standings))
	if len(standings) == 0 || len(firsts)+len(seconds)+min(len(thirds), BestThirdsQualify) < need {
		return nil, fmt.Errorf("%w: need %d", ErrNotEnoughQualifiers, need)
	}

	slices.SortStableFunc(seconds, func(a, b models.QualifiedTeam) int {
		return CompareForGroupRanking(a.StandingRow, b.StandingRow)
	})
	// третьи места идут в порядке групп, поэтому равенство решается порядком групп
	rankThirds(thirds)
	thirds = thirds[:BestThirdsQualify]

	q := &Qualification{}
	for _, t := range firsts {
		t.Pot = Pot1
		q.Pot1 = append(q.Pot1, t)
	}
	best := seconds[0]
	best.Pot = Pot1
	q.Pot1 = append(q.Pot1, best)
	for _, t := range append(slices.Clone(seconds[1:]), thirds...) {
		t.Pot = Pot2
		q.Pot2 = append(q.Pot2, t)
	}

	q.Teams = make([]models.QualifiedTeam, 0, need)
	q.Teams = append(q.Teams, q.Pot1[:len(firsts)]...)
	q.Teams = append(q.Teams, best)
	q.Teams = append(q.Teams, q.Pot2...)
	return q, nil
}
