package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"mindwell/pkg/auth"
	"mindwell/pkg/config"
	"mindwell/pkg/crypto"
	"mindwell/pkg/handlers"
	"mindwell/pkg/services"
	"mindwell/pkg/state"
	"mindwell/pkg/storage"
)

const sessionCleanupInterval = 5 * time.Minute

// App wires configuration, storage and services into an HTTP handler
type App struct {
	config   *config.Config
	logger   zerolog.Logger
	backend  storage.Backend
	codec    crypto.Codec
	store    *state.Store
	sessions *auth.Manager

	authService *services.AuthService
	chatService *services.ChatService
	persister   *services.Persister

	handler http.Handler
}

// NewApp builds the application from cfg
func NewApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	backend, err := storage.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   cfg,
		logger:   logger,
		backend:  backend,
		store:    state.NewStore(state.Initial(), logger),
		sessions: auth.NewManager(),
	}

	kv := storage.NewKV(backend, cfg.StorageScope, logger)
	keys := storage.NewKV(backend, cfg.StorageScope+"-keys", logger)
	codec, err := services.NewJournalCodec(ctx, keys, cfg.JournalPassphrase, logger)
	if err != nil {
		backend.Close()
		return nil, err
	}
	a.codec = codec

	moods := services.NewMoodService(a.store, logger)
	journal := services.NewJournalService(a.store, codec, logger)
	assessments := services.NewAssessmentService(a.store, logger)
	a.chatService = services.NewChatService(a.store, cfg.ChatTypingDelay, logger)
	a.authService = services.NewAuthService(a.store, a.sessions, kv, codec, a.chatService, assessments, logger)

	if cfg.PersistState {
		a.persister = services.NewPersister(a.store, kv, cfg.PersistDelay, logger)
		if a.persister.Restore(ctx) {
			logger.Info().Msg("restored saved state")
		}
		a.persister.Start()
	}

	api := handlers.NewAPIHandlers(handlers.Services{
		Moods:      moods,
		Journal:    journal,
		Assessment: assessments,
		Chat:       a.chatService,
		Dashboard:  services.NewDashboardService(a.store, moods, journal),
		Search:     services.NewSearchService(a.store),
		UI:         services.NewUIService(a.store),
	}, logger)
	a.handler = handlers.NewRouter(handlers.NewAuthHandlers(a.authService, a.sessions, logger), api, a.authService, logger)

	return a, nil
}

// Handler returns the root HTTP handler
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run removes expired sessions until ctx is done
func (a *App) Run(ctx context.Context) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := a.sessions.CleanupExpiredSessions(); n > 0 {
				a.logger.Debug().Int("removed", n).Msg("expired sessions cleaned up")
			}
		case <-ctx.Done():
			return
		}
	}
}

// Close stops background work and flushes state before closing storage
func (a *App) Close() error {
	a.chatService.CloseAll()
	if a.persister != nil {
		a.persister.Stop()
	}
	return a.backend.Close()
}
