package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dosada05/cup-organizer/export"
	"github.com/Dosada05/cup-organizer/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TournamentHandler struct {
	snapshotService services.SnapshotService
}

func NewTournamentHandler(ss services.SnapshotService) *TournamentHandler {
	return &TournamentHandler{snapshotService: ss}
}

// Snapshot godoc
// @Summary Все данные турнира
// @Tags tournaments
// @Description Участники, клубы, группы, таблицы, история матчей, сетка, настройки и текущий этап.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} models.Snapshot
// @Router /api/tournaments/{tournamentID} [get]
func (h *TournamentHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snap, err := h.snapshotService.Snapshot(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, snap, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Export godoc
// @Summary Выгрузка в Excel
// @Tags tournaments
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {file} file
// @Router /api/tournaments/{tournamentID}/export.xlsx [get]
func (h *TournamentHandler) Export(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snap, err := h.snapshotService.Snapshot(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	// сначала в буфер: ошибка посреди записи не должна оставить полфайла с кодом 200
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, snap); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", tournamentID+".xlsx"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
