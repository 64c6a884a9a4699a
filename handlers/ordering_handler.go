package handlers

import (
	"net/http"

	"github.com/Dosada05/cup-organizer/services"
)

type OrderingHandler struct {
	orderingService services.OrderingService
}

func NewOrderingHandler(ords services.OrderingService) *OrderingHandler {
	return &OrderingHandler{orderingService: ords}
}

// Assign godoc
// @Summary Случайный порядок участников
// @Tags ordering
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Участники с порядковыми номерами"
// @Failure 409 {object} map[string]string "Порядок уже назначен или участников меньше двух"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/ordering [post]
func (h *OrderingHandler) Assign(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participants, err := h.orderingService.AssignOrder(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participants": participants}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset godoc
// @Summary Сбросить порядок
// @Tags ordering
// @Description Удаляет порядок, клубы, группы, таблицы, историю и сетку. Список имён сохраняется.
// @Param tournamentID path string true "Tournament ID"
// @Success 204
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/ordering [delete]
func (h *OrderingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.orderingService.ResetOrdering(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
