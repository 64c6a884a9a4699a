package models

import "github.com/google/uuid"

// Avatar - ссылка на аватар из фиксированного каталога. Само изображение движок не трогает.
type Avatar struct {
	ID    int    `json:"id"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// Club - клуб из каталога. Один клуб принадлежит максимум одному участнику.
type Club struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	League string `json:"league"`
	Logo   string `json:"logo"`
}

// Participant - каноническая запись участника. ID не меняется после создания.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Avatar      *Avatar   `json:"avatar,omitempty"`
	CustomImage *string   `json:"custom_image,omitempty"`
	Order       *int      `json:"order,omitempty"`
	Club        *Club     `json:"club,omitempty"`
}

func (p Participant) HasOrder() bool {
	return p.Order != nil
}

func (p Participant) HasClub() bool {
	return p.Club != nil
}

// ClubName returns an empty string for participants without a club.
func (p Participant) ClubName() string {
	if p.Club == nil {
		return ""
	}
	return p.Club.Name
}

// WithoutProgress возвращает копию участника без порядка и клуба (используется при сбросе).
func (p Participant) WithoutProgress() Participant {
	p.Order = nil
	p.Club = nil
	return p
}
