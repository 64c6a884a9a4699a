package brackets

import (
	"fmt"

	"github.com/Dosada05/cup-organizer/models"
)

// Pairing - пара четвертьфинала: хозяин из корзины 1, гость из корзины 2.
type Pairing struct {
	Home models.QualifiedTeam `json:"home"`
	Away models.QualifiedTeam `json:"away"`
}

// PairQuarterfinals перемешивает обе корзины и для каждой команды корзины 1 берёт
// первую свободную команду корзины 2 из другой группы. Если такой нет, берётся любая свободная.
func PairQuarterfinals(pot1, pot2 []models.QualifiedTeam, rnd Randomizer) ([]Pairing, error) {
	if len(pot1) == 0 || len(pot1) != len(pot2) {
		return nil, fmt.Errorf("%w: pots must be non-empty and equal in size (%d vs %d)", ErrValidation, len(pot1), len(pot2))
	}

	home := Shuffled(pot1, rnd)
	away := Shuffled(pot2, rnd)
	used := make([]bool, len(away))

	pairings := make([]Pairing, 0, len(home))
	for _, h := range home {
		pick := -1
		for i, a := range away {
			if !used[i] && a.GroupID != h.GroupID {
				pick = i
				break
			}
		}
		if pick < 0 {
			for i := range away {
				if !used[i] {
					pick = i
					break
				}
			}
		}
		used[pick] = true
		pairings = append(pairings, Pairing{Home: h, Away: away[pick]})
	}
	return pairings, nil
}
