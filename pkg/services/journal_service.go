package services

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mindwell/pkg/crypto"
	"mindwell/pkg/errors"
	"mindwell/pkg/models"
	"mindwell/pkg/state"
	"mindwell/pkg/utils"
)

// PreviewLength is the number of characters shown in journal listings
const PreviewLength = 150

// JournalInput carries the editable fields of a journal entry
type JournalInput struct {
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Mood    models.Mood `json:"mood,omitempty"`
	Tags    []string    `json:"tags"`
	// Defaults to true when omitted
	IsEncrypted *bool `json:"is_encrypted,omitempty"`
}

// JournalFilter narrows a journal listing. An empty Mood or "all" matches
// every entry.
type JournalFilter struct {
	Query string
	Mood  string
}

// JournalView is an entry with its content decoded for display
type JournalView struct {
	models.JournalEntry
	Preview string `json:"preview"`
}

// JournalService handles journal business logic
type JournalService struct {
	store     *state.Store
	codec     crypto.Codec
	validator *errors.Validator
	now       func() time.Time
	logger    zerolog.Logger
}

// NewJournalService creates a new journal service
func NewJournalService(store *state.Store, codec crypto.Codec, logger zerolog.Logger) *JournalService {
	return &JournalService{
		store:     store,
		codec:     codec,
		validator: errors.NewValidator(),
		now:       time.Now,
		logger:    logger.With().Str("service", "journal").Logger(),
	}
}

func (s *JournalService) validate(in JournalInput) error {
	if result := s.validator.ValidateJournalEntry(in.Title, in.Content); !result.IsValid {
		return result.GetFirstError()
	}
	if result := s.validator.ValidateOptionalMood(in.Mood); !result.IsValid {
		return result.GetFirstError()
	}
	return nil
}

// build fills the stored form of an entry from in
func (s *JournalService) build(entry models.JournalEntry, in JournalInput) (models.JournalEntry, error) {
	entry.Title = strings.TrimSpace(in.Title)
	entry.Mood = in.Mood
	entry.Tags = utils.NormalizeTags(in.Tags)
	entry.IsEncrypted = in.IsEncrypted == nil || *in.IsEncrypted
	entry.Content = in.Content
	if entry.IsEncrypted {
		encoded, err := s.codec.Encode(in.Content)
		if err != nil {
			return models.JournalEntry{}, errors.Wrap(err, errors.ErrEncryptionFailed.Type,
				errors.ErrEncryptionFailed.Code, "failed to encode journal content").
				WithUserMessage(errors.ErrEncryptionFailed.UserMessage)
		}
		entry.Content = encoded
	}
	return entry, nil
}

// Create adds a new entry for the signed-in user
func (s *JournalService) Create(in JournalInput) (*JournalView, error) {
	current := s.store.State()
	if current.User == nil {
		return nil, errors.ErrNotAuthenticated
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}

	now := s.now()
	entry, err := s.build(models.JournalEntry{
		ID:        utils.NewID(),
		UserID:    current.User.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}, in)
	if err != nil {
		return nil, err
	}

	_, applied := s.store.Update(func(current state.State) (state.Action, bool) {
		return state.AddJournalEntry{Entry: entry}, signedInAs(current, entry.UserID)
	})
	if !applied {
		return nil, errors.ErrNotAuthenticated
	}
	s.logger.Info().Str("entry_id", entry.ID).Bool("encrypted", entry.IsEncrypted).Msg("journal entry created")

	view := s.view(entry)
	return &view, nil
}

// Update replaces the editable fields of entry id. CreatedAt is preserved.
func (s *JournalService) Update(id string, in JournalInput) (*JournalView, error) {
	if result := s.validator.ValidateID(id); !result.IsValid {
		return nil, result.GetFirstError()
	}
	current := s.store.State()
	if current.User == nil {
		return nil, errors.ErrNotAuthenticated
	}
	existing, ok := current.JournalEntry(id)
	if !ok {
		return nil, errors.ErrJournalEntryNotFound.WithContext("entryId", id)
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}

	existing.UpdatedAt = s.now()
	entry, err := s.build(existing, in)
	if err != nil {
		return nil, err
	}

	_, applied := s.store.Update(func(current state.State) (state.Action, bool) {
		_, exists := current.JournalEntry(id)
		return state.UpdateJournalEntry{Entry: entry}, exists && signedInAs(current, entry.UserID)
	})
	if !applied {
		return nil, errors.ErrJournalEntryNotFound.WithContext("entryId", id)
	}
	s.logger.Info().Str("entry_id", id).Msg("journal entry updated")

	view := s.view(entry)
	return &view, nil
}

// Delete removes entry id
func (s *JournalService) Delete(id string) error {
	_, applied := s.store.Update(func(current state.State) (state.Action, bool) {
		_, exists := current.JournalEntry(id)
		return state.DeleteJournalEntry{ID: id}, exists
	})
	if !applied {
		return errors.ErrJournalEntryNotFound.WithContext("entryId", id)
	}
	s.logger.Info().Str("entry_id", id).Msg("journal entry deleted")
	return nil
}

// Get returns entry id with decoded content
func (s *JournalService) Get(id string) (*JournalView, error) {
	entry, ok := s.store.State().JournalEntry(id)
	if !ok {
		return nil, errors.ErrJournalEntryNotFound.WithContext("entryId", id)
	}
	view := s.view(entry)
	return &view, nil
}

// List returns matching entries newest first. The query is matched against
// the title and the decoded content, ignoring case.
func (s *JournalService) List(filter JournalFilter) []JournalView {
	entries := s.store.State().JournalEntries
	query := strings.TrimSpace(filter.Query)
	mood := strings.TrimSpace(filter.Mood)

	out := []JournalView{}
	for _, e := range entries {
		if mood != "" && mood != "all" && string(e.Mood) != mood {
			continue
		}
		view := s.view(e.Clone())
		if query != "" && !utils.ContainsFold(view.Title, query) && !utils.ContainsFold(view.Content, query) {
			continue
		}
		out = append(out, view)
	}
	return out
}

// Recent returns the n newest entries
func (s *JournalService) Recent(n int) []JournalView {
	all := s.List(JournalFilter{})
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all
}

// signedInAs reports whether userID is still the signed-in user in current
func signedInAs(current state.State, userID string) bool {
	return current.IsAuthenticated && current.User != nil && current.User.ID == userID
}

func (s *JournalService) view(entry models.JournalEntry) JournalView {
	if entry.IsEncrypted {
		entry.Content = s.codec.Decode(entry.Content)
	}
	return JournalView{
		JournalEntry: entry,
		Preview:      utils.Preview(entry.Content, PreviewLength),
	}
}
