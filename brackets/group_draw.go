package brackets

import (
	"fmt"

	"github.com/Dosada05/cup-organizer/models"
)

type DrawConfig struct {
	GroupCount int
	GroupSize  int
}

func DrawConfigFrom(s models.TournamentSettings) DrawConfig {
	return DrawConfig{GroupCount: s.GroupCount, GroupSize: s.GroupSize}
}

// DrawAssignment - один шаг жеребьёвки: участник и группа, в которую он попал.
type DrawAssignment struct {
	Participant models.Participant `json:"participant"`
	GroupID     int                `json:"group_id"`
	GroupName   string             `json:"group_name"`
}

type GroupDraw struct {
	Groups      []models.Group
	Assignments []DrawAssignment
}

// GroupName возвращает "Group A", "Group B", ... для индекса с нуля.
func GroupName(index int) string {
	if index < 26 {
		return fmt.Sprintf("Group %c", 'A'+rune(index))
	}
	return fmt.Sprintf("Group %d", index+1)
}

// DrawGroups перемешивает участников один раз и раскладывает их по кругу:
// i-й участник попадает в группу (i mod GroupCount)+1. Размеры групп отличаются не больше чем на 1.
func DrawGroups(participants []models.Participant, cfg DrawConfig, rnd Randomizer) (*GroupDraw, error) {
	if cfg.GroupCount <= 0 || cfg.GroupSize <= 0 {
		return nil, ErrInvalidDrawConfig
	}
	for _, p := range participants {
		if !p.HasClub() {
			return nil, fmt.Errorf("%w: %s", ErrParticipantWithoutClub, p.Name)
		}
	}
	if len(participants) < cfg.GroupCount {
		return nil, fmt.Errorf("%w: need at least %d, have %d", ErrNotEnoughParticipants, cfg.GroupCount, len(participants))
	}
	if capacity := cfg.GroupCount * cfg.GroupSize; len(participants) > capacity {
		return nil, fmt.Errorf("%w: capacity %d, have %d", ErrTooManyParticipants, capacity, len(participants))
	}

	groups := make([]models.Group, cfg.GroupCount)
	for i := range groups {
		groups[i] = models.Group{
			ID:    i + 1,
			Name:  GroupName(i),
			Teams: make([]models.Participant, 0, cfg.GroupSize),
		}
	}

	shuffled := Shuffled(participants, rnd)
	assignments := make([]DrawAssignment, 0, len(shuffled))
	for i, p := range shuffled {
		g := &groups[i%cfg.GroupCount]
		g.Teams = append(g.Teams, p)
		assignments = append(assignments, DrawAssignment{Participant: p, GroupID: g.ID, GroupName: g.Name})
	}

	return &GroupDraw{Groups: groups, Assignments: assignments}, nil
}

// DrawOrder восстанавливает порядок жеребьёвки из сохранённых групп.
// Работает потому что раскладка идёт по кругу: шаг i = groups[i%n].Teams[i/n].
func DrawOrder(groups []models.Group) []DrawAssignment {
	total := 0
	for _, g := range groups {
		total += len(g.Teams)
	}
	out := make([]DrawAssignment, 0, total)
	for row := 0; len(out) < total; row++ {
		for _, g := range groups {
			if row < len(g.Teams) {
				out = append(out, DrawAssignment{Participant: g.Teams[row], GroupID: g.ID, GroupName: g.Name})
			}
		}
	}
	return out
}
