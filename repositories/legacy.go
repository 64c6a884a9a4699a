package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/google/uuid"
)

// legacyNamespace - пространство имён UUIDv5 для старых идентификаторов участников.
var legacyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("cup-organizer/legacy-participant"))

// LegacyIDMap сопоставляет старые идентификаторы участников (не UUID) новым UUID.
// UUID выводится из старого id (или имени) детерминированно, поэтому поля,
// прочитанные разными вызовами, получают одинаковые id. Map - только кэш.
type LegacyIDMap map[string]uuid.UUID

func NewLegacyIDMap() LegacyIDMap {
	return make(LegacyIDMap)
}

// Resolve возвращает UUID для старого id. Пустой id сопоставляется по имени.
func (m LegacyIDMap) Resolve(oldID, name string) uuid.UUID {
	if id, err := uuid.Parse(oldID); err == nil {
		return id
	}
	key := "id:" + oldID
	if oldID == "" {
		key = "name:" + strings.ToLower(strings.TrimSpace(name))
	}
	if id, ok := m[key]; ok {
		return id
	}
	id := uuid.NewSHA1(legacyNamespace, []byte(key))
	m[key] = id
	return id
}

type legacyParticipant struct {
	ID                json.RawMessage `json:"id"`
	UserID            json.RawMessage `json:"userId"`
	Name              string          `json:"name"`
	Avatar            *models.Avatar  `json:"avatar"`
	CustomImage       *string         `json:"custom_image"`
	LegacyCustomImage *string         `json:"customImage"`
	Order             *int            `json:"order"`
	Club              *models.Club    `json:"club"`
}

// rawID достаёт id как строку: строковые и числовые id старых версий приводятся к тексту.
func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// NormalizeParticipants разбирает список участников в любом из исторических форматов:
// строки с именами, записи без id, записи с userId или id не в формате UUID.
// Второй результат равен true, если запись пришлось переписать.
func NormalizeParticipants(raw json.RawMessage, ids LegacyIDMap) ([]models.Participant, bool, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("participants are not a JSON array: %w", err)
	}

	out := make([]models.Participant, 0, len(items))
	migrated := false
	for i, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			out = append(out, models.Participant{
				ID:     ids.Resolve("", name),
				Name:   name,
				Avatar: avatarPtr(models.AvatarFor(i)),
			})
			migrated = true
			continue
		}

		var lp legacyParticipant
		if err := json.Unmarshal(item, &lp); err != nil {
			return nil, false, fmt.Errorf("participant %d: %w", i, err)
		}
		oldID := rawID(lp.ID)
		if userID := rawID(lp.UserID); userID != "" {
			oldID = userID
			migrated = true
		}
		if _, err := uuid.Parse(oldID); err != nil {
			migrated = true
		}

		p := models.Participant{
			ID:          ids.Resolve(oldID, lp.Name),
			Name:        lp.Name,
			Avatar:      lp.Avatar,
			CustomImage: lp.CustomImage,
			Order:       lp.Order,
			Club:        lp.Club,
		}
		if p.CustomImage == nil && lp.LegacyCustomImage != nil {
			p.CustomImage = lp.LegacyCustomImage
			migrated = true
		}
		if p.Avatar == nil {
			p.Avatar = avatarPtr(models.AvatarFor(i))
			migrated = true
		}
		out = append(out, p)
	}
	return out, migrated, nil
}

type legacyGroup struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Teams json.RawMessage `json:"teams"`
}

// NormalizeGroups нормализует участников внутри групп тем же отображением id.
func NormalizeGroups(raw json.RawMessage, ids LegacyIDMap) ([]models.Group, bool, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false, nil
	}
	var groups []legacyGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, false, fmt.Errorf("groups are not a JSON array: %w", err)
	}

	out := make([]models.Group, 0, len(groups))
	migrated := false
	for _, g := range groups {
		teams, m, err := NormalizeParticipants(g.Teams, ids)
		if err != nil {
			return nil, false, fmt.Errorf("group %d: %w", g.ID, err)
		}
		migrated = migrated || m
		if teams == nil {
			teams = []models.Participant{}
		}
		out = append(out, models.Group{ID: g.ID, Name: g.Name, Teams: teams})
	}
	return out, migrated, nil
}

func avatarPtr(a models.Avatar) *models.Avatar {
	return &a
}
