package brackets

import (
	"fmt"
	"testing"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func makeParticipants(t *testing.T, n int) []models.Participant {
	t.Helper()
	clubs := models.FullClubPool()
	require.GreaterOrEqual(t, len(clubs), n)

	out := make([]models.Participant, n)
	for i := range out {
		order := i + 1
		club := clubs[i]
		out[i] = models.Participant{
			ID:    uuid.New(),
			Name:  fmt.Sprintf("Player %02d", i+1),
			Order: &order,
			Club:  &club,
		}
	}
	return out
}

func row(name string, pts, gd, gf int) models.StandingRow {
	return models.StandingRow{
		ParticipantID:   uuid.New(),
		ParticipantName: name,
		Points:          pts,
		GoalDifference:  gd,
		GoalsFor:        gf,
	}
}

func qualified(name string, groupID, position int) models.QualifiedTeam {
	return models.QualifiedTeam{
		StandingRow: row(name, 0, 0, 0),
		GroupID:     groupID,
		GroupName:   GroupName(groupID - 1),
		Position:    position,
	}
}

func ptr(v int) *int { return &v }
