package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"mindwell/pkg/catalog"
	"mindwell/pkg/errors"
	"mindwell/pkg/models"
	"mindwell/pkg/services"
	"mindwell/pkg/types"
)

// Services bundles what the API handlers need
type Services struct {
	Moods      *services.MoodService
	Journal    *services.JournalService
	Assessment *services.AssessmentService
	Chat       *services.ChatService
	Dashboard  *services.DashboardService
	Search     *services.SearchService
	UI         *services.UIService
}

// APIHandlers contains API endpoint handlers
type APIHandlers struct {
	svc    Services
	logger zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(svc Services, logger zerolog.Logger) *APIHandlers {
	return &APIHandlers{svc: svc, logger: logger}
}

// StateHandler returns the full state snapshot
func (h *APIHandlers) StateHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.UI.Snapshot())
}

// DashboardHandler returns the home screen summary
func (h *APIHandlers) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dashboard.Dashboard())
}

// SetLoadingHandler toggles the loading indicator
func (h *APIHandlers) SetLoadingHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Loading bool `json:"loading"`
	}
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	next := h.svc.UI.SetLoading(req.Loading)
	writeJSON(w, http.StatusOK, map[string]bool{"loading": next.IsLoading})
}

// MoodOptionsHandler lists the selectable moods
func (h *APIHandlers) MoodOptionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.ConvertMoodOptions())
}

// CheckInHandler records a mood check-in
func (h *APIHandlers) CheckInHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood  string `json:"mood"`
		Notes string `json:"notes"`
	}
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	mood, _ := models.ParseMood(req.Mood)
	result, err := h.svc.Moods.CheckIn(mood, req.Notes)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// MoodHistoryHandler lists check-ins, newest first. ?limit=N caps the list.
func (h *APIHandlers) MoodHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.limitParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Moods.History(limit))
}

// limitParam reads ?limit=, which is 0 when absent
func (h *APIHandlers) limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		writeError(w, h.logger, errors.New(errors.ErrTypeValidation, "INVALID_LIMIT", "limit must be a non-negative integer").
			WithUserMessage("Invalid limit"))
		return 0, false
	}
	return n, true
}

// MoodTrendHandler returns recent check-ins oldest first. ?limit=N sets how
// many, defaulting to a week's worth.
func (h *APIHandlers) MoodTrendHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.limitParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Moods.Trend(limit))
}

// MoodSummaryHandler returns per-mood counts
func (h *APIHandlers) MoodSummaryHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Moods.Summary())
}

// ListJournalHandler lists entries filtered by ?q= and ?mood=
func (h *APIHandlers) ListJournalHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.svc.Journal.List(services.JournalFilter{
		Query: q.Get("q"),
		Mood:  q.Get("mood"),
	}))
}

// CreateJournalHandler creates a new journal entry
func (h *APIHandlers) CreateJournalHandler(w http.ResponseWriter, r *http.Request) {
	var req services.JournalInput
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	view, err := h.svc.Journal.Create(req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// GetJournalHandler returns one entry
func (h *APIHandlers) GetJournalHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Journal.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// UpdateJournalHandler replaces an entry's editable fields
func (h *APIHandlers) UpdateJournalHandler(w http.ResponseWriter, r *http.Request) {
	var req services.JournalInput
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	view, err := h.svc.Journal.Update(chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// DeleteJournalHandler removes an entry
func (h *APIHandlers) DeleteJournalHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Journal.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// QuestionsHandler returns the questionnaire
func (h *APIHandlers) QuestionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Assessment.Questions())
}

// SubmitAssessmentHandler scores either an ordered "answers" array or
// question-keyed "responses"
func (h *APIHandlers) SubmitAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers   []int                       `json:"answers"`
		Responses []models.AssessmentResponse `json:"responses"`
	}
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	var (
		result *models.Assessment
		err    error
	)
	if len(req.Responses) > 0 {
		result, err = h.svc.Assessment.SubmitResponses(req.Responses)
	} else {
		result, err = h.svc.Assessment.Submit(req.Answers)
	}
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// LatestAssessmentHandler returns the most recent result
func (h *APIHandlers) LatestAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Assessment.Last()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ResetAssessmentHandler discards the latest result
func (h *APIHandlers) ResetAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	h.svc.Assessment.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// StartChatHandler opens a conversation
func (h *APIHandlers) StartChatHandler(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Chat.Start()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.ConvertChatSession(session))
}

// GetChatHandler returns a transcript
func (h *APIHandlers) GetChatHandler(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Chat.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ConvertChatSession(session))
}

// SendChatHandler posts a user message. The reply arrives asynchronously.
func (h *APIHandlers) SendChatHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	msg, err := h.svc.Chat.Send(chi.URLParam(r, "id"), req.Message)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusAccepted, msg)
}

// CloseChatHandler ends a conversation
func (h *APIHandlers) CloseChatHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Chat.Close(chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// QuickPromptsHandler returns suggested chat openers
func (h *APIHandlers) QuickPromptsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Chat.QuickPrompts())
}

// VideosHandler lists wellness videos, optionally by ?category=
func (h *APIHandlers) VideosHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": catalog.VideoCategories(),
		"videos":     catalog.Videos(r.URL.Query().Get("category")),
	})
}

// VideoHandler returns one video
func (h *APIHandlers) VideoHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	video, ok := catalog.Video(id)
	if !ok {
		writeError(w, h.logger, errors.New(errors.ErrTypeNotFound, "VIDEO_NOT_FOUND", "video not found").
			WithUserMessage("That video is no longer available").
			WithContext("videoId", id))
		return
	}
	writeJSON(w, http.StatusOK, video)
}

// SoundsHandler lists sound tracks, optionally by ?category=
func (h *APIHandlers) SoundsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": catalog.SoundCategories(),
		"sounds":     catalog.Sounds(r.URL.Query().Get("category")),
	})
}

// SearchHandler suggests features matching ?q=
func (h *APIHandlers) SearchHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Search.Search(r.URL.Query().Get("q")))
}

// ClearSearchHandler empties the search box
func (h *APIHandlers) ClearSearchHandler(w http.ResponseWriter, r *http.Request) {
	h.svc.Search.Clear()
	w.WriteHeader(http.StatusNoContent)
}
