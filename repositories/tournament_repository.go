package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Dosada05/cup-organizer/models"
	"golang.org/x/sync/errgroup"
)

// TournamentRepository - типизированный доступ к полям турнира поверх TournamentStore.
type TournamentRepository interface {
	// Roster читает participantNames и participants с общим LegacyIDMap.
	Roster(ctx context.Context, tournamentID string) (names, participants []models.Participant, err error)
	ParticipantNames(ctx context.Context, tournamentID string) ([]models.Participant, error)
	SetParticipantNames(ctx context.Context, tournamentID string, names []models.Participant) error
	Participants(ctx context.Context, tournamentID string) ([]models.Participant, error)
	SetParticipants(ctx context.Context, tournamentID string, participants []models.Participant) error
	// AvailableClubs возвращает полный каталог, если пул ещё не сохранялся.
	AvailableClubs(ctx context.Context, tournamentID string) ([]models.Club, error)
	SetAvailableClubs(ctx context.Context, tournamentID string, clubs []models.Club) error
	Groups(ctx context.Context, tournamentID string) ([]models.Group, error)
	SetGroups(ctx context.Context, tournamentID string, groups []models.Group) error
	GroupStandings(ctx context.Context, tournamentID string) ([]models.GroupStanding, error)
	SetGroupStandings(ctx context.Context, tournamentID string, standings []models.GroupStanding) error
	MatchHistory(ctx context.Context, tournamentID string) ([]models.MatchRecord, error)
	SetMatchHistory(ctx context.Context, tournamentID string, history []models.MatchRecord) error
	// Bracket возвращает nil, если сетка ещё не построена.
	Bracket(ctx context.Context, tournamentID string) (*models.Bracket, error)
	SetBracket(ctx context.Context, tournamentID string, bracket *models.Bracket) error
	// Settings возвращает значения по умолчанию, если настройки не сохранялись.
	Settings(ctx context.Context, tournamentID string) (models.TournamentSettings, error)
	SetSettings(ctx context.Context, tournamentID string, settings models.TournamentSettings) error

	Delete(ctx context.Context, tournamentID string, fields ...Field) error
	Clear(ctx context.Context, tournamentID string) error
	Snapshot(ctx context.Context, tournamentID string) (*models.Snapshot, error)
	Subscribe(ctx context.Context, tournamentID string, fn func(Change)) (func(), error)
}

type tournamentRepository struct {
	store    TournamentStore
	logger   *slog.Logger
	defaults models.TournamentSettings
}

func NewTournamentRepository(store TournamentStore, logger *slog.Logger) TournamentRepository {
	return NewTournamentRepositoryWithDefaults(store, logger, models.DefaultSettings())
}

// NewTournamentRepositoryWithDefaults задаёт настройки для турниров, у которых они не сохранены.
func NewTournamentRepositoryWithDefaults(store TournamentStore, logger *slog.Logger, defaults models.TournamentSettings) TournamentRepository {
	if defaults.GroupCount <= 0 || defaults.GroupSize <= 0 {
		defaults.GroupCount, defaults.GroupSize = models.DefaultGroupCount, models.DefaultGroupSize
	}
	return &tournamentRepository{store: store, logger: logger, defaults: defaults}
}

func (r *tournamentRepository) setJSON(ctx context.Context, tournamentID string, field Field, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", field, err)
	}
	return r.store.Set(ctx, tournamentID, field, raw)
}

// getJSON декодирует поле. Повреждённые данные считаются отсутствующими:
// вызывающий код пересоздаст структуру, ошибка только логируется.
func getJSON[T any](ctx context.Context, r *tournamentRepository, tournamentID string, field Field) (T, bool, error) {
	var v T
	raw, err := r.store.Get(ctx, tournamentID, field)
	if err != nil {
		return v, false, err
	}
	return decodeField[T](r, tournamentID, field, raw)
}

func decodeField[T any](r *tournamentRepository, tournamentID string, field Field, raw json.RawMessage) (T, bool, error) {
	var v T
	if raw == nil {
		return v, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		r.logger.Warn("Stored field is corrupt, treating as absent",
			slog.String("tournament_id", tournamentID),
			slog.String("field", string(field)),
			slog.String("error", err.Error()))
		var zero T
		return zero, false, nil
	}
	return v, true, nil
}

func (r *tournamentRepository) participants(ctx context.Context, tournamentID string, field Field, ids LegacyIDMap) ([]models.Participant, error) {
	raw, err := r.store.Get(ctx, tournamentID, field)
	if err != nil {
		return nil, err
	}
	return r.normalizeParticipants(ctx, tournamentID, field, raw, ids)
}

func (r *tournamentRepository) normalizeParticipants(ctx context.Context, tournamentID string, field Field, raw json.RawMessage, ids LegacyIDMap) ([]models.Participant, error) {
	list, migrated, err := NormalizeParticipants(raw, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	if migrated {
		r.logger.Info("Migrated legacy participant records",
			slog.String("tournament_id", tournamentID),
			slog.String("field", string(field)),
			slog.Int("count", len(list)))
		if err := r.setJSON(ctx, tournamentID, field, list); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *tournamentRepository) Roster(ctx context.Context, tournamentID string) ([]models.Participant, []models.Participant, error) {
	ids := NewLegacyIDMap()
	names, err := r.participants(ctx, tournamentID, FieldParticipantNames, ids)
	if err != nil {
		return nil, nil, err
	}
	participants, err := r.participants(ctx, tournamentID, FieldParticipants, ids)
	if err != nil {
		return nil, nil, err
	}
	return names, participants, nil
}

func (r *tournamentRepository) ParticipantNames(ctx context.Context, tournamentID string) ([]models.Participant, error) {
	return r.participants(ctx, tournamentID, FieldParticipantNames, NewLegacyIDMap())
}

func (r *tournamentRepository) SetParticipantNames(ctx context.Context, tournamentID string, names []models.Participant) error {
	return r.setJSON(ctx, tournamentID, FieldParticipantNames, nonNil(names))
}

func (r *tournamentRepository) Participants(ctx context.Context, tournamentID string) ([]models.Participant, error) {
	return r.participants(ctx, tournamentID, FieldParticipants, NewLegacyIDMap())
}

func (r *tournamentRepository) SetParticipants(ctx context.Context, tournamentID string, participants []models.Participant) error {
	return r.setJSON(ctx, tournamentID, FieldParticipants, nonNil(participants))
}

func (r *tournamentRepository) AvailableClubs(ctx context.Context, tournamentID string) ([]models.Club, error) {
	clubs, ok, err := getJSON[[]models.Club](ctx, r, tournamentID, FieldAvailableClubs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.FullClubPool(), nil
	}
	return nonNil(clubs), nil
}

func (r *tournamentRepository) SetAvailableClubs(ctx context.Context, tournamentID string, clubs []models.Club) error {
	return r.setJSON(ctx, tournamentID, FieldAvailableClubs, nonNil(clubs))
}

func (r *tournamentRepository) Groups(ctx context.Context, tournamentID string) ([]models.Group, error) {
	raw, err := r.store.Get(ctx, tournamentID, FieldGroups)
	if err != nil {
		return nil, err
	}
	return r.normalizeGroups(ctx, tournamentID, raw, NewLegacyIDMap())
}

func (r *tournamentRepository) normalizeGroups(ctx context.Context, tournamentID string, raw json.RawMessage, ids LegacyIDMap) ([]models.Group, error) {
	groups, migrated, err := NormalizeGroups(raw, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FieldGroups, err)
	}
	if migrated {
		r.logger.Info("Migrated legacy group records", slog.String("tournament_id", tournamentID))
		if err := r.setJSON(ctx, tournamentID, FieldGroups, groups); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

func (r *tournamentRepository) SetGroups(ctx context.Context, tournamentID string, groups []models.Group) error {
	return r.setJSON(ctx, tournamentID, FieldGroups, nonNil(groups))
}

func (r *tournamentRepository) GroupStandings(ctx context.Context, tournamentID string) ([]models.GroupStanding, error) {
	standings, _, err := getJSON[[]models.GroupStanding](ctx, r, tournamentID, FieldGroupStandings)
	return standings, err
}

func (r *tournamentRepository) SetGroupStandings(ctx context.Context, tournamentID string, standings []models.GroupStanding) error {
	return r.setJSON(ctx, tournamentID, FieldGroupStandings, nonNil(standings))
}

func (r *tournamentRepository) MatchHistory(ctx context.Context, tournamentID string) ([]models.MatchRecord, error) {
	history, _, err := getJSON[[]models.MatchRecord](ctx, r, tournamentID, FieldMatchHistory)
	return history, err
}

func (r *tournamentRepository) SetMatchHistory(ctx context.Context, tournamentID string, history []models.MatchRecord) error {
	return r.setJSON(ctx, tournamentID, FieldMatchHistory, nonNil(history))
}

func (r *tournamentRepository) Bracket(ctx context.Context, tournamentID string) (*models.Bracket, error) {
	bracket, _, err := getJSON[*models.Bracket](ctx, r, tournamentID, FieldKnockoutMatches)
	return bracket, err
}

func (r *tournamentRepository) SetBracket(ctx context.Context, tournamentID string, bracket *models.Bracket) error {
	if bracket == nil {
		return r.store.Delete(ctx, tournamentID, FieldKnockoutMatches)
	}
	return r.setJSON(ctx, tournamentID, FieldKnockoutMatches, bracket)
}

func (r *tournamentRepository) Settings(ctx context.Context, tournamentID string) (models.TournamentSettings, error) {
	raw, err := r.store.Get(ctx, tournamentID, FieldTournamentSettings)
	if err != nil {
		return models.TournamentSettings{}, err
	}
	return r.decodeSettings(tournamentID, raw), nil
}

// decodeSettings накладывает сохранённые значения на значения по умолчанию,
// поэтому отсутствующие в старых документах ключи остаются включёнными.
func (r *tournamentRepository) decodeSettings(tournamentID string, raw json.RawMessage) models.TournamentSettings {
	settings := r.defaults
	if raw == nil {
		return settings
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		r.logger.Warn("Stored settings are corrupt, using defaults",
			slog.String("tournament_id", tournamentID), slog.String("error", err.Error()))
		return r.defaults
	}
	if settings.GroupCount <= 0 || settings.GroupSize <= 0 {
		settings.GroupCount, settings.GroupSize = r.defaults.GroupCount, r.defaults.GroupSize
	}
	return settings
}

func (r *tournamentRepository) SetSettings(ctx context.Context, tournamentID string, settings models.TournamentSettings) error {
	return r.setJSON(ctx, tournamentID, FieldTournamentSettings, settings)
}

func (r *tournamentRepository) Delete(ctx context.Context, tournamentID string, fields ...Field) error {
	return r.store.Delete(ctx, tournamentID, fields...)
}

func (r *tournamentRepository) Clear(ctx context.Context, tournamentID string) error {
	return r.store.Clear(ctx, tournamentID)
}

func (r *tournamentRepository) Subscribe(ctx context.Context, tournamentID string, fn func(Change)) (func(), error) {
	return r.store.Subscribe(ctx, tournamentID, fn)
}

// Snapshot читает все поля параллельно и собирает их в один документ.
func (r *tournamentRepository) Snapshot(ctx context.Context, tournamentID string) (*models.Snapshot, error) {
	raw := make([]json.RawMessage, len(AllFields))
	g, gctx := errgroup.WithContext(ctx)
	for i, field := range AllFields {
		g.Go(func() error {
			value, err := r.store.Get(gctx, tournamentID, field)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", field, err)
			}
			raw[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	byField := make(map[Field]json.RawMessage, len(AllFields))
	for i, field := range AllFields {
		byField[field] = raw[i]
	}

	ids := NewLegacyIDMap()
	snap := &models.Snapshot{TournamentID: tournamentID}
	var err error
	if snap.ParticipantNames, err = r.normalizeParticipants(ctx, tournamentID, FieldParticipantNames, byField[FieldParticipantNames], ids); err != nil {
		return nil, err
	}
	if snap.Participants, err = r.normalizeParticipants(ctx, tournamentID, FieldParticipants, byField[FieldParticipants], ids); err != nil {
		return nil, err
	}
	if snap.Groups, err = r.normalizeGroups(ctx, tournamentID, byField[FieldGroups], ids); err != nil {
		return nil, err
	}

	clubs, ok, _ := decodeField[[]models.Club](r, tournamentID, FieldAvailableClubs, byField[FieldAvailableClubs])
	if !ok {
		clubs = models.FullClubPool()
	}
	snap.AvailableClubs = nonNil(clubs)
	snap.GroupStandings, _, _ = decodeField[[]models.GroupStanding](r, tournamentID, FieldGroupStandings, byField[FieldGroupStandings])
	snap.MatchHistory, _, _ = decodeField[[]models.MatchRecord](r, tournamentID, FieldMatchHistory, byField[FieldMatchHistory])
	snap.KnockoutMatches, _, _ = decodeField[*models.Bracket](r, tournamentID, FieldKnockoutMatches, byField[FieldKnockoutMatches])
	snap.Settings = r.decodeSettings(tournamentID, byField[FieldTournamentSettings])
	snap.Stage = snap.DeriveStage()
	return snap, nil
}

// nonNil сохраняет пустые списки как [], а не null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
