package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Field - имя поля документа турнира в хранилище.
type Field string

const (
	FieldParticipantNames   Field = "participantNames"
	FieldParticipants       Field = "participants"
	FieldAvailableClubs     Field = "availableClubs"
	FieldGroups             Field = "groups"
	FieldGroupStandings     Field = "groupStandings"
	FieldMatchHistory       Field = "matchHistory"
	FieldKnockoutMatches    Field = "knockoutMatches"
	FieldTournamentSettings Field = "tournamentSettings"
)

var AllFields = []Field{
	FieldParticipantNames,
	FieldParticipants,
	FieldAvailableClubs,
	FieldGroups,
	FieldGroupStandings,
	FieldMatchHistory,
	FieldKnockoutMatches,
	FieldTournamentSettings,
}

func (f Field) Valid() bool {
	for _, known := range AllFields {
		if f == known {
			return true
		}
	}
	return false
}

var (
	ErrUnknownField          = errors.New("unknown tournament field")
	ErrEmptyTournamentID     = errors.New("tournament id is required")
	ErrSubscribeNotSupported = errors.New("store does not support subscriptions")
)

// Change - уведомление об изменении поля. Value == nil, если поле удалено.
// Field пустой, если турнир очищен целиком.
type Change struct {
	TournamentID string          `json:"tournament_id"`
	Field        Field           `json:"field,omitempty"`
	Value        json.RawMessage `json:"value,omitempty"`
}

// TournamentStore - документное хранилище: один JSON-документ на пару (турнир, поле).
// Get возвращает nil без ошибки, если поля нет.
type TournamentStore interface {
	Get(ctx context.Context, tournamentID string, field Field) (json.RawMessage, error)
	Set(ctx context.Context, tournamentID string, field Field, value json.RawMessage) error
	Delete(ctx context.Context, tournamentID string, fields ...Field) error
	Clear(ctx context.Context, tournamentID string) error
	Subscribe(ctx context.Context, tournamentID string, fn func(Change)) (unsubscribe func(), err error)
}

func checkKey(tournamentID string, fields ...Field) error {
	if tournamentID == "" {
		return ErrEmptyTournamentID
	}
	for _, f := range fields {
		if !f.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}
	return nil
}
