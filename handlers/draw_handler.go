package handlers

import (
	"net/http"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/services"
)

type DrawHandler struct {
	drawService services.DrawService
}

func NewDrawHandler(ds services.DrawService) *DrawHandler {
	return &DrawHandler{drawService: ds}
}

// Groups godoc
// @Summary Группы
// @Tags groups
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/tournaments/{tournamentID}/groups [get]
func (h *DrawHandler) Groups(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	groups, err := h.drawService.Groups(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if groups == nil {
		groups = []models.Group{}
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Draw godoc
// @Summary Жеребьёвка групп
// @Tags groups
// @Description Распределяет участников по группам и создаёт пустые таблицы. Ответ содержит порядок жеребьёвки.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 201 {object} brackets.GroupDraw
// @Failure 409 {object} map[string]string "Не у всех есть клубы, группы уже есть или участников мало"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/groups/draw [post]
func (h *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	draw, err := h.drawService.DrawGroups(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, draw, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset godoc
// @Summary Сбросить жеребьёвку
// @Tags groups
// @Param tournamentID path string true "Tournament ID"
// @Success 204
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/groups [delete]
func (h *DrawHandler) Reset(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.drawService.ResetDraw(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
