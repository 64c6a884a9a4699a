package handlers

import (
	"net/http"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(ss services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: ss}
}

// Standings godoc
// @Summary Таблицы групп
// @Tags standings
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/tournaments/{tournamentID}/standings [get]
func (h *StandingsHandler) Standings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.standingsService.Standings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Progress godoc
// @Summary Сыгранные матчи по группам
// @Tags standings
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "Группы ещё не разыграны"
// @Router /api/tournaments/{tournamentID}/standings/progress [get]
func (h *StandingsHandler) Progress(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	progress, err := h.standingsService.Progress(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"progress": progress}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// History godoc
// @Summary История матчей группового этапа
// @Tags matches
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/tournaments/{tournamentID}/matches [get]
func (h *StandingsHandler) History(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	history, err := h.standingsService.History(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": history}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordMatch godoc
// @Summary Записать матч группы
// @Tags matches
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param input body brackets.MatchInput true "Группа, команды и счёт"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Ошибка валидации"
// @Failure 409 {object} map[string]string "Нет групп или плей-офф уже идёт"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/matches [post]
func (h *StandingsHandler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input brackets.MatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	record, err := h.standingsService.RecordMatch(r.Context(), tournamentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": record}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RetractMatch godoc
// @Summary Удалить матч группы
// @Tags matches
// @Description Удаляет запись и полностью откатывает её вклад в таблицу.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param matchID path string true "Match ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Матч не найден"
// @Failure 409 {object} map[string]string "Плей-офф уже идёт"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/matches/{matchID} [delete]
func (h *StandingsHandler) RetractMatch(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID, err := getUUIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	record, err := h.standingsService.RetractMatch(r.Context(), tournamentID, matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": record}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset godoc
// @Summary Обнулить таблицы
// @Tags standings
// @Description Обнуляет таблицы, удаляет историю матчей и сетку плей-офф. Группы сохраняются.
// @Param tournamentID path string true "Tournament ID"
// @Success 204
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/standings [delete]
func (h *StandingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.standingsService.ResetStandings(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
