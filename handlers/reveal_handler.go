package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/metrics"
	"github.com/Dosada05/cup-organizer/services"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	maxPace    = 5 * time.Second
	closeGrace = time.Second
)

// RevealHandler проигрывает поэтапный показ уже сохранённого результата по websocket.
// Отключение клиента на середине ничего не меняет в данных.
type RevealHandler struct {
	revealService services.RevealService
	metrics       *metrics.Metrics
	logger        *slog.Logger
	pace          time.Duration
	upgrader      websocket.Upgrader
}

// NewRevealHandler: pace - пауза между кадрами по умолчанию. Пустой allowedOrigins разрешает любой Origin.
func NewRevealHandler(rs services.RevealService, m *metrics.Metrics, logger *slog.Logger, pace time.Duration, allowedOrigins []string) *RevealHandler {
	return &RevealHandler{
		revealService: rs,
		metrics:       m,
		logger:        logger,
		pace:          pace,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowedOrigins) == 0 {
					return true
				}
				return slices.Contains(allowedOrigins, r.Header.Get("Origin"))
			},
		},
	}
}

// parsePace понимает "250ms", "1s" и число миллисекунд. "0" отключает паузы.
func parsePace(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		ms, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return 0, fmt.Errorf("invalid pace %q", raw)
		}
		d = time.Duration(ms) * time.Millisecond
	}
	if d < 0 || d > maxPace {
		return 0, fmt.Errorf("pace must be between 0 and %s", maxPace)
	}
	return d, nil
}

// Serve godoc
// @Summary Поэтапный показ (websocket)
// @Tags reveal
// @Description Кадры анимации порядка, выбора клубов или жеребьёвки групп. Результат уже сохранён, поток только показывает его.
// @Param tournamentID path string true "Tournament ID"
// @Param kind path string true "ordering | clubs | groups"
// @Param pace query string false "Пауза между кадрами (250ms, 0 - без пауз)"
// @Success 101
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "Этап ещё не пройден"
// @Router /ws/tournaments/{tournamentID}/reveal/{kind} [get]
func (h *RevealHandler) Serve(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	kind := brackets.RevealKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		badRequestResponse(w, r, fmt.Errorf("unknown reveal kind %q", kind))
		return
	}
	pace, err := parsePace(r.URL.Query().Get("pace"), h.pace)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// кадры строятся до апгрейда, чтобы ошибки этапа ушли обычным HTTP-ответом
	frames, err := h.revealService.Frames(r.Context(), tournamentID, kind)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade reveal connection",
			slog.String("tournament_id", tournamentID), slog.Any("error", err))
		return
	}
	defer conn.Close()

	h.metrics.RevealStarted()
	defer h.metrics.RevealFinished()

	// читаем входящие только ради управляющих кадров и обнаружения закрытия
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sent, err := h.stream(conn, frames, pace, gone)
	attrs := []any{
		slog.String("tournament_id", tournamentID),
		slog.String("kind", string(kind)),
		slog.Int("frames_sent", sent),
		slog.Int("frames_total", len(frames)),
	}
	if err != nil {
		h.logger.Info("Reveal stream interrupted", append(attrs, slog.String("reason", err.Error()))...)
		return
	}
	h.logger.Info("Reveal stream finished", attrs...)

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "reveal complete")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	select {
	case <-gone:
	case <-time.After(closeGrace):
	}
}

var errClientGone = errors.New("client disconnected")

func (h *RevealHandler) stream(conn *websocket.Conn, frames []brackets.RevealFrame, pace time.Duration, gone <-chan struct{}) (int, error) {
	var tick <-chan time.Time
	if pace > 0 {
		ticker := time.NewTicker(pace)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i, frame := range frames {
		if i > 0 && tick != nil {
			select {
			case <-tick:
			case <-gone:
				return i, errClientGone
			}
		}
		select {
		case <-gone:
			return i, errClientGone
		default:
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(frame); err != nil {
			return i, err
		}
	}
	return len(frames), nil
}
