// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"time"

	"go_4_trade_practice/internal/config"
	"go_4_trade_practice/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers はルーターに登録するハンドラ一式
type Handlers struct {
	Quiz     *QuizHandler
	Practice *PracticeHandler
	Drill    *DrillHandler
	Health   *HealthHandler
}

// NewRouter はミドルウェアとルーティングを設定した chi ルーターを返します。
// cfg.Auth.Enabled が false の場合は X-User-ID ヘッダーでユーザーを識別する。
func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	if h.Health != nil {
		r.Get("/health", h.Health.Check)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				logger.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				logger.Warn("Authentication disabled, using X-User-ID header")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Route("/lessons/{lesson_id}", func(r chi.Router) {
				r.Get("/questions", h.Quiz.GetQuestions)
				r.Post("/quiz", h.Quiz.SubmitQuiz)
				r.Get("/quiz/history", h.Quiz.GetHistory)
			})

			r.Route("/practice", func(r chi.Router) {
				r.Get("/daily", h.Practice.GetDailySession)
				r.Post("/daily/submit", h.Practice.SubmitDailySession)
				r.Get("/reviews/summary", h.Practice.GetReviewSummary)
			})

			r.Route("/drills", func(r chi.Router) {
				r.Get("/", h.Drill.ListDrills)
				r.Get("/{drill_id}", h.Drill.GetDrill)
				r.Post("/{drill_id}/submit", h.Drill.SubmitDrill)
			})
		})
	})

	return r
}
