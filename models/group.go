package models

import "github.com/google/uuid"

// Group - результат жеребьёвки. Состав не меняется до сброса жеребьёвки.
type Group struct {
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Teams []Participant `json:"teams"`
}

func (g Group) HasTeam(id uuid.UUID) bool {
	for _, t := range g.Teams {
		if t.ID == id {
			return true
		}
	}
	return false
}
