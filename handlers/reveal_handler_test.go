package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/metrics"
	"github.com/Dosada05/cup-organizer/repositories"
	"github.com/Dosada05/cup-organizer/services"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tid = "cup-2024"

func TestParsePace(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{"", 300 * time.Millisecond, false},
		{"0", 0, false},
		{"250ms", 250 * time.Millisecond, false},
		{"120", 120 * time.Millisecond, false},
		{"1s", time.Second, false},
		{"-1s", 0, true},
		{"10s", 0, true},
		{"fast", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parsePace(tt.raw, 300*time.Millisecond)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type revealEnv struct {
	svc    *services.Services
	server *httptest.Server
}

func newRevealEnv(t *testing.T) *revealEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repositories.NewTournamentRepository(repositories.NewMemoryStore(), logger)
	svc := services.New(services.Deps{Repo: repo, Randomizer: brackets.NewSeededRandomizer(3), Logger: logger})

	h := NewRevealHandler(svc.Reveal, metrics.New(), logger, time.Second, nil)
	router := chi.NewRouter()
	router.Get("/ws/tournaments/{tournamentID}/reveal/{kind}", h.Serve)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &revealEnv{svc: svc, server: server}
}

func (e *revealEnv) url(kind, query string) string {
	u := "ws" + strings.TrimPrefix(e.server.URL, "http") + "/ws/tournaments/" + tid + "/reveal/" + kind
	if query != "" {
		u += "?" + query
	}
	return u
}

func TestRevealStreamsOrdering(t *testing.T) {
	env := newRevealEnv(t)
	ctx := context.Background()
	for i := range 4 {
		_, err := env.svc.Participants.AddParticipant(ctx, tid, services.ParticipantInput{Name: fmt.Sprintf("Player %d", i)})
		require.NoError(t, err)
	}
	ordered, err := env.svc.Ordering.AssignOrder(ctx, tid)
	require.NoError(t, err)

	conn, resp, err := websocket.DefaultDialer.Dial(env.url("ordering", "pace=0"), nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	var frames []brackets.RevealFrame
	for {
		var f brackets.RevealFrame
		if err := conn.ReadJSON(&f); err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
			break
		}
		frames = append(frames, f)
	}

	require.Len(t, frames, brackets.OrderingShuffleFrames+len(ordered))
	finals := frames[brackets.OrderingShuffleFrames:]
	for i, f := range finals {
		assert.True(t, f.Final)
		require.NotNil(t, f.Participant)
		assert.Equal(t, i+1, f.Order)
		assert.Equal(t, ordered[i].ID, f.Participant.ID)
	}
}

func TestRevealRejectsBeforeUpgrade(t *testing.T) {
	env := newRevealEnv(t)

	tests := []struct {
		name       string
		kind       string
		query      string
		wantStatus int
	}{
		{"unknown kind", "bracket", "", http.StatusBadRequest},
		{"bad pace", "ordering", "pace=slow", http.StatusBadRequest},
		{"stage not reached", "groups", "", http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(env.url(tt.kind, tt.query), nil)
			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRevealClientDisconnect(t *testing.T) {
	env := newRevealEnv(t)
	ctx := context.Background()
	for i := range 3 {
		_, err := env.svc.Participants.AddParticipant(ctx, tid, services.ParticipantInput{Name: fmt.Sprintf("Player %d", i)})
		require.NoError(t, err)
	}
	_, err := env.svc.Ordering.AssignOrder(ctx, tid)
	require.NoError(t, err)

	// темп 1s: после первого кадра уходим, сервер не должен ждать остальные 22 секунды
	conn, _, err := websocket.DefaultDialer.Dial(env.url("ordering", ""), nil)
	require.NoError(t, err)
	var f brackets.RevealFrame
	require.NoError(t, conn.ReadJSON(&f))
	require.NoError(t, conn.Close())

	roster, err := env.svc.Participants.ListParticipants(ctx, tid)
	require.NoError(t, err)
	assert.Len(t, roster.Participants, 3)
	for _, p := range roster.Participants {
		assert.True(t, p.HasOrder())
	}
}
