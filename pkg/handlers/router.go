package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"mindwell/pkg/middleware"
)

// NewRouter wires every route
func NewRouter(authHandlers *AuthHandlers, api *APIHandlers, authenticator middleware.Authenticator, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/auth/login", authHandlers.LoginHandler)
	r.Get("/api/auth/consent", authHandlers.ConsentNoticeHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuthAPI(authenticator))

		r.Post("/auth/consent", authHandlers.ConsentHandler)
		r.Post("/auth/logout", authHandlers.LogoutHandler)
		r.Get("/me", authHandlers.MeHandler)

		r.Get("/state", api.StateHandler)
		r.Get("/dashboard", api.DashboardHandler)
		r.Put("/ui/loading", api.SetLoadingHandler)
		r.Get("/search", api.SearchHandler)
		r.Delete("/search", api.ClearSearchHandler)

		r.Get("/moods", api.MoodHistoryHandler)
		r.Post("/moods", api.CheckInHandler)
		r.Get("/moods/options", api.MoodOptionsHandler)
		r.Get("/moods/summary", api.MoodSummaryHandler)
		r.Get("/moods/trend", api.MoodTrendHandler)

		r.Get("/journal", api.ListJournalHandler)
		r.Post("/journal", api.CreateJournalHandler)
		r.Get("/journal/{id}", api.GetJournalHandler)
		r.Put("/journal/{id}", api.UpdateJournalHandler)
		r.Delete("/journal/{id}", api.DeleteJournalHandler)

		r.Get("/assessment/questions", api.QuestionsHandler)
		r.Post("/assessment", api.SubmitAssessmentHandler)
		r.Get("/assessment/latest", api.LatestAssessmentHandler)
		r.Delete("/assessment", api.ResetAssessmentHandler)

		r.Get("/chat/prompts", api.QuickPromptsHandler)
		r.Post("/chat/sessions", api.StartChatHandler)
		r.Get("/chat/sessions/{id}", api.GetChatHandler)
		r.Post("/chat/sessions/{id}/messages", api.SendChatHandler)
		r.Delete("/chat/sessions/{id}", api.CloseChatHandler)

		r.Get("/videos", api.VideosHandler)
		r.Get("/videos/{id}", api.VideoHandler)
		r.Get("/sounds", api.SoundsHandler)
	})

	return r
}
