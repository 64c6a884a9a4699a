package routes

import (
	"net/http"

	_ "github.com/Dosada05/cup-organizer/docs" // регистрирует swagger-спецификацию
	"github.com/Dosada05/cup-organizer/handlers"
	"github.com/Dosada05/cup-organizer/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers - всё, что монтируется на роутер.
type Handlers struct {
	Tournament  *handlers.TournamentHandler
	Participant *handlers.ParticipantHandler
	Ordering    *handlers.OrderingHandler
	Club        *handlers.ClubHandler
	Draw        *handlers.DrawHandler
	Standings   *handlers.StandingsHandler
	Bracket     *handlers.BracketHandler
	Settings    *handlers.SettingsHandler
	Reveal      *handlers.RevealHandler
	Metrics     http.Handler
}

type Options struct {
	Auth           *middleware.Authenticator
	Limiter        *middleware.IPRateLimiter
	AllowedOrigins []string
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", handlers.Healthz)
	if h.Metrics != nil {
		router.Handle("/metrics", h.Metrics)
	}
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Get("/ws/tournaments/{tournamentID}/reveal/{kind}", h.Reveal.Serve)

	router.Route("/api/tournaments/{tournamentID}", func(r chi.Router) {
		// Публичные маршруты: просмотр
		r.Get("/", h.Tournament.Snapshot)
		r.Get("/export.xlsx", h.Tournament.Export)
		r.Get("/participants", h.Participant.List)
		r.Get("/clubs", h.Club.Available)
		r.Get("/groups", h.Draw.Groups)
		r.Get("/standings", h.Standings.Standings)
		r.Get("/standings/progress", h.Standings.Progress)
		r.Get("/matches", h.Standings.History)
		r.Get("/qualifiers", h.Bracket.Qualifiers)
		r.Get("/bracket", h.Bracket.Bracket)
		r.Get("/settings", h.Settings.Get)

		// Изменения только для администратора
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(opts.Limiter))
			r.Use(opts.Auth.RequireAdmin)

			r.Delete("/", h.Participant.ClearAll)

			r.Post("/participants", h.Participant.Add)
			r.Delete("/participants/{participantID}", h.Participant.Remove)

			r.Post("/ordering", h.Ordering.Assign)
			r.Delete("/ordering", h.Ordering.Reset)

			r.Post("/clubs/assign/{participantID}", h.Club.Assign)
			r.Post("/clubs/assign-remaining", h.Club.AssignRemaining)
			r.Delete("/clubs", h.Club.Reset)

			r.Post("/groups/draw", h.Draw.Draw)
			r.Delete("/groups", h.Draw.Reset)

			r.Post("/matches", h.Standings.RecordMatch)
			r.Delete("/matches/{matchID}", h.Standings.RetractMatch)
			r.Delete("/standings", h.Standings.Reset)

			r.Post("/bracket", h.Bracket.Seed)
			r.Put("/bracket/matches/{matchID}", h.Bracket.RecordResult)
			r.Post("/bracket/reset", h.Bracket.Reset)

			r.Put("/settings", h.Settings.Update)
		})
	})
}
