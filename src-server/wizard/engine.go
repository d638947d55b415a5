package wizard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Engine runs registered wizards over an injected session store. It is the
// only writer of that store; handlers feed it raw user actions and render
// whatever prompt comes back.
type Engine struct {
	sessions SessionStore
	wizards  map[Kind]*Wizard
}

func NewEngine(sessions SessionStore) *Engine {
	return &Engine{
		sessions: sessions,
		wizards:  make(map[Kind]*Wizard),
	}
}

func (e *Engine) Register(w *Wizard) {
	e.wizards[w.Kind] = w
}

// Prompt is one pending step, ready to render.
type Prompt struct {
	Session *Session
	Step    Step
	Index   int // 0-based position in the wizard
	Total   int
}

// Start begins a wizard for the user, silently overwriting any session left
// by an abandoned flow. If the first step's lookup fails, no session is
// created.
func (e *Engine) Start(ctx context.Context, kind Kind, userID string) (*Prompt, error) {
	w, ok := e.wizards[kind]
	if !ok {
		return nil, fmt.Errorf("Start: unknown wizard kind %q", kind)
	}
	ses := &Session{
		ID:     uuid.NewString(),
		UserID: userID,
		Kind:   kind,
		Values: make(map[string]string),
	}
	prompt, err := e.buildPrompt(ctx, w, ses)
	if err != nil {
		return nil, err
	}
	e.sessions.Set(ses)
	return prompt, nil
}

// AwaitingText reports whether the user's current step wants a free-text
// message; the message router drops everything else.
func (e *Engine) AwaitingText(userID string) bool {
	ses, ok := e.sessions.Get(userID)
	if !ok {
		return false
	}
	w, ok := e.wizards[ses.Kind]
	if !ok || ses.Step >= len(w.Steps) {
		return false
	}
	return w.Steps[ses.Step].Kind == StepText
}

// HandleText feeds a free-text message to the user's pending text step.
// On a validation failure the same prompt comes back alongside the
// *ValidationError and the session is untouched. A (nil, Session, nil)
// return means the wizard auto-committed after its last step.
func (e *Engine) HandleText(ctx context.Context, userID, text string) (*Prompt, *Session, error) {
	ses, ok := e.sessions.Get(userID)
	if !ok {
		return nil, nil, ErrExpiredSession
	}
	w := e.wizards[ses.Kind]
	step := w.Steps[ses.Step]
	if step.Kind != StepText {
		return nil, nil, ErrExpiredSession
	}

	value, err := step.Parse(text)
	if err != nil {
		return &Prompt{Session: ses, Step: step, Index: ses.Step, Total: len(w.Steps)}, nil, err
	}
	ses.Values[step.Name] = value
	return e.advance(ctx, w, ses)
}

// HandleChoice records a single-choice pick. The pick must carry the live
// session's nonce and belong to the options enumerated at prompt time;
// anything else is an expired session, per the stale-menu rule.
func (e *Engine) HandleChoice(ctx context.Context, userID, sessionID, value string) (*Prompt, *Session, error) {
	ses, ok := e.sessions.Get(userID)
	if !ok || ses.ID != sessionID {
		return nil, nil, ErrExpiredSession
	}
	w := e.wizards[ses.Kind]
	step := w.Steps[ses.Step]
	if step.Kind != StepChoice || !ses.optionAllowed(value) {
		return nil, nil, ErrExpiredSession
	}

	ses.Values[step.Name] = value
	return e.advance(ctx, w, ses)
}

// ToggleChoice flips one operand in the toggle step's selection set and
// returns the session so the menu can be re-rendered with current
// membership. Toggling is its own inverse.
func (e *Engine) ToggleChoice(userID, sessionID, value string) (*Session, error) {
	ses, ok := e.sessions.Get(userID)
	if !ok || ses.ID != sessionID {
		return nil, ErrExpiredSession
	}
	w := e.wizards[ses.Kind]
	if w.Steps[ses.Step].Kind != StepToggle || !ses.optionAllowed(value) {
		return nil, ErrExpiredSession
	}
	ses.Toggle(value)
	e.sessions.Set(ses)
	return ses, nil
}

// Commit finishes a toggle step: one write through the query layer, then
// the session is gone. If the write fails the session stays so the same
// commit action can be retried.
func (e *Engine) Commit(ctx context.Context, userID, sessionID string) (*Session, error) {
	ses, ok := e.sessions.Get(userID)
	if !ok || ses.ID != sessionID {
		return nil, ErrExpiredSession
	}
	w := e.wizards[ses.Kind]
	if w.Steps[ses.Step].Kind != StepToggle {
		return nil, ErrExpiredSession
	}
	if err := w.Commit(ctx, ses); err != nil {
		return nil, err
	}
	e.sessions.Delete(userID)
	return ses, nil
}

// Cancel drops the user's session, whatever state it is in. Calling it
// without a session is fine.
func (e *Engine) Cancel(userID string) (Kind, bool) {
	ses, ok := e.sessions.Get(userID)
	if !ok {
		return "", false
	}
	e.sessions.Delete(userID)
	return ses.Kind, true
}

// advance moves past a completed step: either prompts the next one or, when
// the last step just finished, commits. A failed commit rolls the step back
// so the user can retry by re-entering the last input; a failed lookup for
// the next step discards the session.
func (e *Engine) advance(ctx context.Context, w *Wizard, ses *Session) (*Prompt, *Session, error) {
	ses.Step++
	if ses.Step >= len(w.Steps) {
		if err := w.Commit(ctx, ses); err != nil {
			ses.Step--
			e.sessions.Set(ses)
			return nil, nil, err
		}
		e.sessions.Delete(ses.UserID)
		return nil, ses, nil
	}

	prompt, err := e.buildPrompt(ctx, w, ses)
	if err != nil {
		e.sessions.Delete(ses.UserID)
		return nil, nil, err
	}
	e.sessions.Set(ses)
	return prompt, nil, nil
}

func (e *Engine) buildPrompt(ctx context.Context, w *Wizard, ses *Session) (*Prompt, error) {
	step := w.Steps[ses.Step]
	if step.Kind == StepChoice || step.Kind == StepToggle {
		options, err := step.Options(ctx)
		if err != nil {
			return nil, err
		}
		ses.Options = options
	} else {
		ses.Options = nil
	}
	return &Prompt{Session: ses, Step: step, Index: ses.Step, Total: len(w.Steps)}, nil
}
