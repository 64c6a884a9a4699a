package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/services"
	"github.com/go-chi/chi/v5"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bs services.BracketService) *BracketHandler {
	return &BracketHandler{bracketService: bs}
}

// Qualifiers godoc
// @Summary Вышедшие из групп и корзины посева
// @Tags knockout
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} brackets.Qualification
// @Failure 409 {object} map[string]string "Групп нет или команд не хватает"
// @Router /api/tournaments/{tournamentID}/qualifiers [get]
func (h *BracketHandler) Qualifiers(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	q, err := h.bracketService.Qualifiers(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, q, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Bracket godoc
// @Summary Сетка плей-офф
// @Tags knockout
// @Description Возвращает сохранённую сетку. Если её нет, а команд хватает, сетка строится.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "Сетку ещё нельзя построить"
// @Router /api/tournaments/{tournamentID}/bracket [get]
func (h *BracketHandler) Bracket(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.bracketService.Bracket(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": bracket, "state": bracket.State()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Seed godoc
// @Summary Построить сетку
// @Tags knockout
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "Сетка уже есть или команд не хватает"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/bracket [post]
func (h *BracketHandler) Seed(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.bracketService.SeedBracket(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordResult godoc
// @Summary Записать результат матча плей-офф
// @Tags knockout
// @Description Ничья в основное время требует дополнительного, ничья в дополнительное требует пенальти. Изменение результата сбрасывает зависимые матчи.
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param matchID path string true "qf1..qf4, sf1, sf2, final, thirdPlace"
// @Param input body brackets.KnockoutScore true "Счёт"
// @Success 200 {object} services.KnockoutResult
// @Failure 400 {object} map[string]string "Ошибка валидации"
// @Failure 409 {object} map[string]string "Соперники ещё не известны"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/bracket/matches/{matchID} [put]
func (h *BracketHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		badRequestResponse(w, r, errors.New("missing matchID in URL path"))
		return
	}

	var score brackets.KnockoutScore
	if err := readJSON(w, r, &score); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.bracketService.RecordKnockoutResult(r.Context(), tournamentID, matchID, score)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset godoc
// @Summary Пересобрать сетку
// @Tags knockout
// @Description Удаляет все результаты плей-офф и заново строит сетку по текущим таблицам.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/bracket/reset [post]
func (h *BracketHandler) Reset(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.bracketService.ResetBracket(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
