package brackets

import (
	"slices"

	"github.com/Dosada05/cup-organizer/models"
)

type RevealKind string

const (
	RevealOrdering RevealKind = "ordering"
	RevealClubs    RevealKind = "clubs"
	RevealGroups   RevealKind = "groups"
)

func (k RevealKind) Valid() bool {
	switch k {
	case RevealOrdering, RevealClubs, RevealGroups:
		return true
	}
	return false
}

// Число промежуточных кадров анимации на каждый шаг.
const (
	OrderingShuffleFrames  = 20
	ClubSpinFrames         = 30
	GroupDrawShuffleFrames = 8
)

// RevealFrame - один кадр поэтапного показа. Промежуточные кадры несут только
// Display для анимации, итоговый кадр шага (Final) несёт результат.
// Кадры строятся из уже сохранённого результата и ничего не меняют.
type RevealFrame struct {
	Kind        RevealKind          `json:"kind"`
	Step        int                 `json:"step"`
	Final       bool                `json:"final"`
	Display     []string            `json:"display,omitempty"`
	Participant *models.Participant `json:"participant,omitempty"`
	Club        *models.Club        `json:"club,omitempty"`
	Order       int                 `json:"order,omitempty"`
	GroupID     int                 `json:"group_id,omitempty"`
	GroupName   string              `json:"group_name,omitempty"`
}

// RevealOrderingFrames показывает перемешивание списка, затем участников по порядку.
// Участники без порядка пропускаются.
func RevealOrderingFrames(participants []models.Participant, rnd Randomizer) []RevealFrame {
	ordered := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if p.HasOrder() {
			ordered = append(ordered, p)
		}
	}
	slices.SortFunc(ordered, func(a, b models.Participant) int { return *a.Order - *b.Order })

	names := make([]string, len(ordered))
	for i, p := range ordered {
		names[i] = p.Name
	}

	frames := make([]RevealFrame, 0, OrderingShuffleFrames+len(ordered))
	for range OrderingShuffleFrames {
		frames = append(frames, RevealFrame{Kind: RevealOrdering, Display: Shuffled(names, rnd)})
	}
	for i, p := range ordered {
		frames = append(frames, RevealFrame{
			Kind:        RevealOrdering,
			Step:        i + 1,
			Final:       true,
			Participant: &p,
			Order:       *p.Order,
		})
	}
	return frames
}

// RevealClubFrames прокручивает пул клубов для каждого участника с клубом
// (в порядке очереди) и останавливается на назначенном клубе.
// Пул на каждом шаге восстанавливается: свободные клубы плюс клубы ещё не показанных участников.
func RevealClubFrames(participants []models.Participant, available []models.Club) []RevealFrame {
	queue := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if p.HasClub() {
			queue = append(queue, p)
		}
	}
	slices.SortStableFunc(queue, func(a, b models.Participant) int { return orderOf(a) - orderOf(b) })

	pool := make([]string, 0, len(available)+len(queue))
	for _, c := range available {
		pool = append(pool, c.Name)
	}
	for _, p := range queue {
		pool = append(pool, p.Club.Name)
	}

	var frames []RevealFrame
	for i, p := range queue {
		for k := range ClubSpinFrames {
			frames = append(frames, RevealFrame{
				Kind:    RevealClubs,
				Step:    i + 1,
				Display: []string{pool[k%len(pool)]},
			})
		}
		frames = append(frames, RevealFrame{
			Kind:        RevealClubs,
			Step:        i + 1,
			Final:       true,
			Participant: &p,
			Club:        p.Club,
			Order:       orderOf(p),
		})
		pool = slices.DeleteFunc(pool, func(name string) bool { return name == p.Club.Name })
	}
	return frames
}

// RevealGroupFrames проигрывает жеребьёвку в исходном порядке. Перед каждым шагом
// показывается перемешанный список клубов ещё не распределённых участников.
func RevealGroupFrames(groups []models.Group, rnd Randomizer) []RevealFrame {
	order := DrawOrder(groups)
	frames := make([]RevealFrame, 0, len(order)*(GroupDrawShuffleFrames+1))
	for i, a := range order {
		remaining := make([]string, 0, len(order)-i)
		for _, rest := range order[i:] {
			remaining = append(remaining, displayName(rest.Participant))
		}
		for range GroupDrawShuffleFrames {
			frames = append(frames, RevealFrame{Kind: RevealGroups, Step: i + 1, Display: Shuffled(remaining, rnd)})
		}
		p := a.Participant
		frames = append(frames, RevealFrame{
			Kind:        RevealGroups,
			Step:        i + 1,
			Final:       true,
			Participant: &p,
			Club:        p.Club,
			GroupID:     a.GroupID,
			GroupName:   a.GroupName,
		})
	}
	return frames
}

func orderOf(p models.Participant) int {
	if p.Order == nil {
		return 0
	}
	return *p.Order
}

func displayName(p models.Participant) string {
	if p.Club != nil {
		return p.Club.Name
	}
	return p.Name
}
