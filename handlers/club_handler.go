package handlers

import (
	"net/http"

	"github.com/Dosada05/cup-organizer/services"
)

type ClubHandler struct {
	clubService services.ClubService
}

func NewClubHandler(cs services.ClubService) *ClubHandler {
	return &ClubHandler{clubService: cs}
}

// Available godoc
// @Summary Свободные клубы
// @Tags clubs
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/tournaments/{tournamentID}/clubs [get]
func (h *ClubHandler) Available(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	clubs, err := h.clubService.AvailableClubs(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"clubs": clubs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Assign godoc
// @Summary Выбрать клуб участнику
// @Tags clubs
// @Description Случайный клуб из пула закрепляется за участником.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param participantID path string true "Participant ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Клуб уже назначен"
// @Failure 404 {object} map[string]string "Участник не найден"
// @Failure 409 {object} map[string]string "Нет порядка или пул пуст"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/clubs/assign/{participantID} [post]
func (h *ClubHandler) Assign(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	participantID, err := getUUIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.clubService.AssignClub(r.Context(), tournamentID, participantID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participant": participant}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AssignRemaining godoc
// @Summary Раздать клубы всем оставшимся
// @Tags clubs
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "Нет порядка или клубов не хватает"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/clubs/assign-remaining [post]
func (h *ClubHandler) AssignRemaining(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participants, err := h.clubService.AssignRemainingClubs(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participants": participants}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset godoc
// @Summary Сбросить клубы
// @Tags clubs
// @Param tournamentID path string true "Tournament ID"
// @Success 204
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/clubs [delete]
func (h *ClubHandler) Reset(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.clubService.ResetClubs(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
