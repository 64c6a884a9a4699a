package handlers

import (
	"net/http"

	"github.com/Dosada05/cup-organizer/services"
)

type ParticipantHandler struct {
	participantService services.ParticipantService
}

func NewParticipantHandler(ps services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: ps,
	}
}

// List godoc
// @Summary Список участников
// @Tags participants
// @Description Участники до жеребьёвки порядка (participant_names) и после неё (participants, по порядку).
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} services.Roster
// @Router /api/tournaments/{tournamentID}/participants [get]
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	roster, err := h.participantService.ListParticipants(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, roster, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Add godoc
// @Summary Добавить участника
// @Tags participants
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param input body services.ParticipantInput true "Имя, аватар, ссылка на картинку"
// @Success 201 {object} map[string]interface{} "Участник создан"
// @Failure 400 {object} map[string]string "Ошибка валидации"
// @Failure 409 {object} map[string]string "Приём участников закрыт или список полон"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/participants [post]
func (h *ParticipantHandler) Add(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ParticipantInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.participantService.AddParticipant(r.Context(), tournamentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"participant": participant}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Remove godoc
// @Summary Удалить участника
// @Tags participants
// @Description Удаляет участника из списков, групп, таблиц и истории матчей. Клуб возвращается в пул, сетка плей-офф сбрасывается.
// @Param tournamentID path string true "Tournament ID"
// @Param participantID path string true "Participant ID (UUID)"
// @Success 204
// @Failure 404 {object} map[string]string "Участник не найден"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/participants/{participantID} [delete]
func (h *ParticipantHandler) Remove(w http.ResponseWriter, r *http.Request) {
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

	if err := h.participantService.RemoveParticipant(r.Context(), tournamentID, participantID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearAll godoc
// @Summary Очистить турнир
// @Tags tournaments
// @Description Удаляет все данные турнира, кроме настроек.
// @Param tournamentID path string true "Tournament ID"
// @Success 204
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID} [delete]
func (h *ParticipantHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.participantService.ClearAll(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
