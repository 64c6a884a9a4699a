package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/repositories"
	"github.com/google/uuid"
)

const MaxNameLength = 50

// ParticipantInput - данные нового участника. Если AvatarID не задан,
// аватар назначается по кругу из каталога.
type ParticipantInput struct {
	Name        string  `json:"name"`
	AvatarID    *int    `json:"avatar_id,omitempty"`
	CustomImage *string `json:"custom_image,omitempty"`
}

// Roster - участники до и после жеребьёвки порядка.
type Roster struct {
	Names        []models.Participant `json:"participant_names"`
	Participants []models.Participant `json:"participants"`
}

type ParticipantService interface {
	AddParticipant(ctx context.Context, tournamentID string, input ParticipantInput) (*models.Participant, error)
	// RemoveParticipant удаляет участника отовсюду: из списков, групп, таблиц и истории.
	// Клуб возвращается в пул.
	RemoveParticipant(ctx context.Context, tournamentID string, participantID uuid.UUID) error
	ListParticipants(ctx context.Context, tournamentID string) (*Roster, error)
	ClearAll(ctx context.Context, tournamentID string) error
}

type participantService struct {
	engine
}

func NewParticipantService(d Deps) ParticipantService {
	return &participantService{engine: newEngine(d)}
}

func (s *participantService) AddParticipant(ctx context.Context, tournamentID string, input ParticipantInput) (*models.Participant, error) {
	var created *models.Participant
	err := s.mutate(ctx, tournamentID, "participant.add", func() error {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return ErrNameRequired
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return ErrNameTooLong
		}
		image, err := normalizeImageURL(input.CustomImage)
		if err != nil {
			return err
		}

		names, participants, err := s.repo.Roster(ctx, tournamentID)
		if err != nil {
			return err
		}
		if len(participants) > 0 {
			return ErrIntakeClosed
		}
		if slices.ContainsFunc(names, func(p models.Participant) bool { return strings.EqualFold(p.Name, name) }) {
			return fmt.Errorf("%w: %q", ErrParticipantExists, name)
		}
		settings, err := s.repo.Settings(ctx, tournamentID)
		if err != nil {
			return err
		}
		if len(names) >= settings.Capacity() {
			return ErrRosterFull
		}

		avatar := models.AvatarFor(len(names))
		if input.AvatarID != nil {
			idx := slices.IndexFunc(models.AvatarCatalog, func(a models.Avatar) bool { return a.ID == *input.AvatarID })
			if idx < 0 {
				return ErrInvalidAvatar
			}
			avatar = models.AvatarCatalog[idx]
		}

		p := models.Participant{
			ID:          uuid.New(),
			Name:        name,
			Avatar:      &avatar,
			CustomImage: image,
		}
		if err := s.repo.SetParticipantNames(ctx, tournamentID, append(names, p)); err != nil {
			return err
		}
		created = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// normalizeImageURL принимает только абсолютные http(s) адреса. Пустая строка означает "без картинки".
func normalizeImageURL(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, nil
	}
	u, err := url.Parse(trimmed)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidImageURL
	}
	return &trimmed, nil
}

func (s *participantService) RemoveParticipant(ctx context.Context, tournamentID string, participantID uuid.UUID) error {
	return s.mutate(ctx, tournamentID, "participant.remove", func() error {
		names, participants, err := s.repo.Roster(ctx, tournamentID)
		if err != nil {
			return err
		}
		isTarget := func(p models.Participant) bool { return p.ID == participantID }
		nameIdx := slices.IndexFunc(names, isTarget)
		partIdx := slices.IndexFunc(participants, isTarget)
		if nameIdx < 0 && partIdx < 0 {
			return ErrParticipantNotFound
		}

		if nameIdx >= 0 {
			if err := s.repo.SetParticipantNames(ctx, tournamentID, slices.Delete(names, nameIdx, nameIdx+1)); err != nil {
				return err
			}
		}
		if partIdx >= 0 {
			removed := participants[partIdx]
			if err := s.repo.SetParticipants(ctx, tournamentID, slices.Delete(participants, partIdx, partIdx+1)); err != nil {
				return err
			}
			if removed.Club != nil {
				if err := s.returnClub(ctx, tournamentID, *removed.Club); err != nil {
					return err
				}
			}
		}
		return s.removeFromGroups(ctx, tournamentID, participantID)
	})
}

func (s *participantService) returnClub(ctx context.Context, tournamentID string, club models.Club) error {
	pool, err := s.repo.AvailableClubs(ctx, tournamentID)
	if err != nil {
		return err
	}
	if slices.ContainsFunc(pool, func(c models.Club) bool { return c.ID == club.ID }) {
		return nil
	}
	return s.repo.SetAvailableClubs(ctx, tournamentID, append(pool, club))
}

// removeFromGroups убирает участника из групп и откатывает его матчи.
// Опустевшие группы удаляются, сетка плей-офф сбрасывается.
func (s *participantService) removeFromGroups(ctx context.Context, tournamentID string, participantID uuid.UUID) error {
	groups, err := s.repo.Groups(ctx, tournamentID)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(groups, func(g models.Group) bool { return g.HasTeam(participantID) }) {
		return nil
	}

	ledger, err := s.loadLedger(ctx, tournamentID)
	if err != nil {
		return err
	}
	retracted := ledger.RemoveParticipant(participantID)

	kept := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		g.Teams = slices.DeleteFunc(slices.Clone(g.Teams), func(p models.Participant) bool { return p.ID == participantID })
		if len(g.Teams) > 0 {
			kept = append(kept, g)
		}
	}
	ledger.Standings = slices.DeleteFunc(ledger.Standings, func(gs models.GroupStanding) bool {
		return !slices.ContainsFunc(kept, func(g models.Group) bool { return g.ID == gs.GroupID })
	})

	s.logger.InfoContext(ctx, "Participant removed from group stage",
		slog.String("tournament_id", tournamentID),
		slog.String("participant_id", participantID.String()),
		slog.Int("retracted_matches", len(retracted)),
		slog.Int("groups_left", len(kept)))

	if len(kept) == 0 {
		return s.repo.Delete(ctx, tournamentID,
			repositories.FieldGroups, repositories.FieldGroupStandings,
			repositories.FieldMatchHistory, repositories.FieldKnockoutMatches)
	}
	if err := s.repo.SetGroups(ctx, tournamentID, kept); err != nil {
		return err
	}
	if err := s.saveLedger(ctx, tournamentID, ledger); err != nil {
		return err
	}
	return s.repo.SetBracket(ctx, tournamentID, nil)
}

func (s *participantService) ListParticipants(ctx context.Context, tournamentID string) (*Roster, error) {
	names, participants, err := s.repo.Roster(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(participants, func(a, b models.Participant) int {
		return cmp.Compare(orderOf(a), orderOf(b))
	})
	return &Roster{Names: names, Participants: participants}, nil
}

func orderOf(p models.Participant) int {
	if p.Order == nil {
		return math.MaxInt
	}
	return *p.Order
}

// ClearAll удаляет все данные турнира, кроме настроек.
func (s *participantService) ClearAll(ctx context.Context, tournamentID string) error {
	return s.mutate(ctx, tournamentID, "tournament.clear", func() error {
		return s.repo.Delete(ctx, tournamentID,
			repositories.FieldParticipantNames, repositories.FieldParticipants,
			repositories.FieldAvailableClubs, repositories.FieldGroups,
			repositories.FieldGroupStandings, repositories.FieldMatchHistory,
			repositories.FieldKnockoutMatches)
	})
}
