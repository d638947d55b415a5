package wizard

import "sync"

type Kind string

const (
	KindSaveEvent       Kind = "save-event"
	KindRecognition     Kind = "recognition"
	KindAssignMC        Kind = "assign-mc"
	KindAssignPresenter Kind = "assign-presenter"
	KindAssignImpact    Kind = "assign-impact"
)

// Choice is one selectable option of a choice or toggle step. Value is what
// the session records; Label is what the menu shows.
type Choice struct {
	Value string
	Label string
}

// Session is the in-flight state of one user's wizard. It lives in the
// session store from Start until commit or cancel; a process restart loses
// it, which is fine since wizards restart from scratch.
type Session struct {
	// ID is a per-session nonce embedded in rendered menus, so a click on
	// a menu from an earlier session surfaces as expired.
	ID     string
	UserID string
	Kind   Kind
	Step   int

	// Values holds completed step inputs, keyed by step name.
	Values map[string]string
	// Selected is the toggle-step selection set, in toggle order.
	Selected []string
	// Options are the choices enumerated when the current step was
	// prompted; picks are validated against this snapshot, never against
	// a fresh fetch.
	Options []Choice
}

// Toggle adds or removes v from the selection set; applying it twice is a
// no-op.
func (s *Session) Toggle(v string) {
	for i, cur := range s.Selected {
		if cur == v {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return
		}
	}
	s.Selected = append(s.Selected, v)
}

func (s *Session) HasSelected(v string) bool {
	for _, cur := range s.Selected {
		if cur == v {
			return true
		}
	}
	return false
}

func (s *Session) optionAllowed(v string) bool {
	for _, c := range s.Options {
		if c.Value == v {
			return true
		}
	}
	return false
}

// SessionStore keeps at most one live session per user, whatever the wizard
// kind; starting a new wizard overwrites whatever the user had going.
type SessionStore interface {
	Get(userID string) (*Session, bool)
	Set(ses *Session)
	Delete(userID string)
}

type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

var _ SessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Get(userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ses, ok := m.sessions[userID]
	return ses, ok
}

func (m *MemoryStore) Set(ses *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[ses.UserID] = ses
}

func (m *MemoryStore) Delete(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
