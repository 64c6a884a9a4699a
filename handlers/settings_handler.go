package handlers

import (
	"net/http"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/services"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(ss services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: ss}
}

// Get godoc
// @Summary Настройки турнира
// @Tags settings
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} models.TournamentSettings
// @Router /api/tournaments/{tournamentID}/settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	settings, err := h.settingsService.Settings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, settings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Update godoc
// @Summary Изменить настройки
// @Tags settings
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param input body models.TournamentSettings true "Настройки целиком"
// @Success 200 {object} models.TournamentSettings
// @Failure 400 {object} map[string]string "Неверные размеры групп"
// @Failure 409 {object} map[string]string "Группы уже разыграны"
// @Security BearerAuth
// @Router /api/tournaments/{tournamentID}/settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input models.TournamentSettings
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(r.Context(), tournamentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, settings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
