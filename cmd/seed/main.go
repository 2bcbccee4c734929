package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"mindwell/pkg/config"
	"mindwell/pkg/logger"
	"mindwell/pkg/models"
	"mindwell/pkg/services"
	"mindwell/pkg/state"
	"mindwell/pkg/storage"
)

// demoJournal returns sample entries with markdown-ish content
func demoJournal() []services.JournalInput {
	return []services.JournalInput{
		{
			Title:   "First week of term",
			Content: "Lots of new faces. I felt nervous walking into the lecture hall but the tutor was kind.",
			Mood:    models.MoodAnxious,
			Tags:    []string{"school", "social"},
		},
		{
			Title:   "Morning run",
			Content: "Went for a short run before class. Everything felt lighter afterwards.",
			Mood:    models.MoodHappy,
			Tags:    []string{"exercise"},
		},
		{
			Title:   "Exam prep",
			Content: "Three chapters left. Trying the 25 minute focus blocks from the study tips.",
			Mood:    models.MoodNeutral,
			Tags:    []string{"school", "study"},
		},
	}
}

var demoMoods = []models.Mood{models.MoodAnxious, models.MoodNeutral, models.MoodHappy, models.MoodVeryHappy}

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.StorageBackend == config.BackendMemory {
		fmt.Fprintln(os.Stderr, "Seeding needs a persistent backend, set MINDWELL_STORAGE_BACKEND=file or sqlite")
		os.Exit(1)
	}

	log := logger.New("mindwell-seed", cfg.LogLevel)
	if err := seed(context.Background(), cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed data: %v\n", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	backend, err := storage.Open(cfg, log)
	if err != nil {
		return err
	}
	defer backend.Close()

	kv := storage.NewKV(backend, cfg.StorageScope, log)
	keys := storage.NewKV(backend, cfg.StorageScope+"-keys", log)
	codec, err := services.NewJournalCodec(ctx, keys, cfg.JournalPassphrase, log)
	if err != nil {
		return err
	}

	store := state.NewStore(state.Initial(), log)
	persister := services.NewPersister(store, kv, 0, log)
	persister.Restore(ctx)
	persister.Start()
	defer persister.Stop()

	if store.State().User == nil {
		store.Dispatch(state.SetUser{User: services.MockUser(time.Now())})
	}

	moods := services.NewMoodService(store, log)
	for _, m := range demoMoods {
		if _, err := moods.CheckIn(m, ""); err != nil {
			return err
		}
	}

	journal := services.NewJournalService(store, codec, log)
	for _, in := range demoJournal() {
		entry, err := journal.Create(in)
		if err != nil {
			return err
		}
		fmt.Printf("Generated journal entry with ID: %s\n", entry.ID)
	}

	fmt.Printf("Seeded %d mood check-ins for %s\n", len(demoMoods), store.State().User.Name)
	return nil
}
