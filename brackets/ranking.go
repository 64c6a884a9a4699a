package brackets

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Dosada05/cup-organizer/models"
)

// CompareForGroupRanking упорядочивает строки таблицы группы:
// очки, разница мячей, забитые (всё по убыванию), затем имя по возрастанию.
// Отрицательный результат означает, что a стоит выше b.
func CompareForGroupRanking(a, b models.StandingRow) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalsFor, a.GoalsFor); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.ParticipantName), strings.ToLower(b.ParticipantName)); c != 0 {
		return c
	}
	if c := strings.Compare(a.ParticipantName, b.ParticipantName); c != 0 {
		return c
	}
	// имена уникальны после приёма заявок, id нужен только чтобы порядок был полным
	return strings.Compare(a.ParticipantID.String(), b.ParticipantID.String())
}

// CompareForThirdPlaceRanking сравнивает команды с третьих мест разных групп
// только по очкам и разнице мячей. Оставшиеся ничьи сохраняют входной порядок.
func CompareForThirdPlaceRanking(a, b models.StandingRow) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	return cmp.Compare(b.GoalDifference, a.GoalDifference)
}

// SortStandings sorts rows in place by group ranking.
func SortStandings(rows []models.StandingRow) {
	slices.SortStableFunc(rows, CompareForGroupRanking)
}

func rankThirds(teams []models.QualifiedTeam) {
	slices.SortStableFunc(teams, func(a, b models.QualifiedTeam) int {
		return CompareForThirdPlaceRanking(a.StandingRow, b.StandingRow)
	})
}
