package state

import "mindwell/pkg/models"

// Kind names an action for logging
type Kind string

const (
	KindSetUser            Kind = "SET_USER"
	KindLogout             Kind = "LOGOUT"
	KindAddMoodEntry       Kind = "ADD_MOOD_ENTRY"
	KindAddJournalEntry    Kind = "ADD_JOURNAL_ENTRY"
	KindUpdateJournalEntry Kind = "UPDATE_JOURNAL_ENTRY"
	KindDeleteJournalEntry Kind = "DELETE_JOURNAL_ENTRY"
	KindSetCurrentMood     Kind = "SET_CURRENT_MOOD"
	KindSetLoading         Kind = "SET_LOADING"
	KindSetConsentSeen     Kind = "SET_CONSENT_SEEN"
	KindAcceptConsent      Kind = "ACCEPT_CONSENT"
	KindSetSearchQuery     Kind = "SET_SEARCH_QUERY"
	KindRestore            Kind = "RESTORE"
)

// Action is a request to change the state. The set of actions is closed:
// only types in this package implement it.
type Action interface {
	Kind() Kind
	action()
}

// SetUser signs a user in
type SetUser struct{ User models.User }

// Logout resets everything to Initial
type Logout struct{}

// AddMoodEntry records a check-in and makes it the current mood. The
// signed-in user's LastMoodCheckIn moves to the entry's timestamp.
type AddMoodEntry struct{ Entry models.MoodEntry }

// AddJournalEntry prepends a journal entry
type AddJournalEntry struct{ Entry models.JournalEntry }

// UpdateJournalEntry replaces the entry with the same id
type UpdateJournalEntry struct{ Entry models.JournalEntry }

// DeleteJournalEntry removes the entry with ID
type DeleteJournalEntry struct{ ID string }

// SetCurrentMood overwrites the current mood
type SetCurrentMood struct{ Mood models.Mood }

// SetLoading toggles the global loading flag
type SetLoading struct{ Loading bool }

// SetConsentSeen records whether the consent notice was shown
type SetConsentSeen struct{ Seen bool }

// AcceptConsent marks the signed-in user as having consented and the
// notice as seen. Without a user it does nothing.
type AcceptConsent struct{}

// SetSearchQuery stores the feature search text
type SetSearchQuery struct{ Query string }

// Restore replaces the whole snapshot, used when rehydrating from storage
type Restore struct{ State State }

func (SetUser) Kind() Kind            { return KindSetUser }
func (Logout) Kind() Kind             { return KindLogout }
func (AddMoodEntry) Kind() Kind       { return KindAddMoodEntry }
func (AddJournalEntry) Kind() Kind    { return KindAddJournalEntry }
func (UpdateJournalEntry) Kind() Kind { return KindUpdateJournalEntry }
func (DeleteJournalEntry) Kind() Kind { return KindDeleteJournalEntry }
func (SetCurrentMood) Kind() Kind     { return KindSetCurrentMood }
func (SetLoading) Kind() Kind         { return KindSetLoading }
func (SetConsentSeen) Kind() Kind     { return KindSetConsentSeen }
func (AcceptConsent) Kind() Kind      { return KindAcceptConsent }
func (SetSearchQuery) Kind() Kind     { return KindSetSearchQuery }
func (Restore) Kind() Kind            { return KindRestore }

func (SetUser) action()            {}
func (Logout) action()             {}
func (AddMoodEntry) action()       {}
func (AddJournalEntry) action()    {}
func (UpdateJournalEntry) action() {}
func (DeleteJournalEntry) action() {}
func (SetCurrentMood) action()     {}
func (SetLoading) action()         {}
func (SetConsentSeen) action()     {}
func (AcceptConsent) action()      {}
func (SetSearchQuery) action()     {}
func (Restore) action()            {}
