// Package editor implements the autosave engine behind the note editor: it
// turns raw edit events into durable repository writes and a timer-driven
// "last saved" label. Writes are write-through on every event; the 1-second
// debounce only gates the settled transition and the label, never
// durability.
package editor

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"wnotes/internal/kvstore"
	"wnotes/internal/notes"
)

// draftKey is the store slot mirroring the in-progress note so the editor
// survives a reload.
const draftKey = "current-note"

var (
	// ErrTagRequired is returned by Save when a brand-new note has no tag.
	ErrTagRequired = errors.New("tag required for new note")
	// ErrSessionClosed is returned by operations on a closed session.
	ErrSessionClosed = errors.New("editor session closed")
)

// State is the label state machine's position.
type State int

const (
	// StateIdle means nothing has been typed yet, or the session was reset.
	StateIdle State = iota
	// StateTyping means an edit burst is in progress.
	StateTyping
	// StateSettled means the last burst ended and content is persisted.
	StateSettled
)

// draft is the persisted shape of the current-note slot.
type draft struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Tag     string `json:"tag,omitempty"`
}

// Options configures a Session. The zero value gives production defaults.
type Options struct {
	// Clock defaults to the system clock.
	Clock Clock
	// Debounce is the quiescence window before a burst settles. Default 1s.
	Debounce time.Duration
	// SettleFlash is how long the just-settled flag stays up. Default 2s.
	SettleFlash time.Duration
	// TickInterval drives the label refresh callback. Default 1s.
	TickInterval time.Duration
	// OnLabel, when set, receives the re-derived age label every tick and
	// after every settle transition.
	OnLabel func(label string)
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = systemClock{}
	}
	if o.Debounce <= 0 {
		o.Debounce = time.Second
	}
	if o.SettleFlash <= 0 {
		o.SettleFlash = 2 * time.Second
	}
	if o.TickInterval <= 0 {
		o.TickInterval = time.Second
	}
	return o
}

// Session is one editor session: the currently open note's field values,
// the label state machine, and the timers that drive it. All timers are
// owned by the session and cancelled by Close, so nothing fires against a
// torn-down view.
type Session struct {
	mu    sync.Mutex
	mgr   *notes.Manager
	store kvstore.Store
	opts  Options

	state        State
	activeNoteID string
	title        string
	content      string
	tag          string

	typingStartedAt time.Time
	lastSavedAt     time.Time
	justSettled     bool
	// draftNew is true while the bound note was auto-created by this
	// session and has not been explicitly saved. Explicit saves of such a
	// note still require a tag.
	draftNew bool

	debounce    Timer
	settleFlash Timer
	tick        Timer
	closed      bool
}

// NewSession creates a session over the given manager and store. A draft
// left in the store by a previous session is restored. When Options.OnLabel
// is set, the 1-second label tick starts immediately.
func NewSession(mgr *notes.Manager, store kvstore.Store, opts Options) (*Session, error) {
	s := &Session{
		mgr:   mgr,
		store: store,
		opts:  opts.withDefaults(),
	}

	var d draft
	found, err := store.Get(draftKey, &d)
	if err != nil {
		return nil, fmt.Errorf("restore draft: %w", err)
	}
	if found {
		s.activeNoteID = d.ID
		s.title = d.Title
		s.content = d.Content
		s.tag = d.Tag
	}

	if s.opts.OnLabel != nil {
		s.armTick()
	}
	return s, nil
}

// SetTitle records a title edit event.
func (s *Session) SetTitle(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.title = title
	return s.handleEdit()
}

// SetContent records a body edit event.
func (s *Session) SetContent(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.content = content
	return s.handleEdit()
}

// SetTag records a tag edit event.
func (s *Session) SetTag(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.tag = tag
	return s.handleEdit()
}

// handleEdit runs the shared edit-event path: enter or stay in the typing
// state, restart the quiescence timer, and persist the current field values
// immediately. Caller holds the lock.
func (s *Session) handleEdit() error {
	if s.state != StateTyping {
		s.state = StateTyping
		s.typingStartedAt = s.opts.Clock.Now()
		s.lastSavedAt = time.Time{}
		s.justSettled = false
		s.stopTimer(&s.settleFlash)
	}

	s.stopTimer(&s.debounce)
	s.debounce = s.opts.Clock.AfterFunc(s.opts.Debounce, s.settle)

	if strings.TrimSpace(s.title) == "" && strings.TrimSpace(s.content) == "" {
		return nil
	}
	return s.persistDraft()
}

// settle is the quiescence timer callback: the burst ended, mark settled
// and raise the short-lived just-settled flag.
func (s *Session) settle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != StateTyping {
		return
	}

	s.state = StateSettled
	s.lastSavedAt = s.opts.Clock.Now()
	s.justSettled = true
	s.stopTimer(&s.settleFlash)
	s.settleFlash = s.opts.Clock.AfterFunc(s.opts.SettleFlash, s.clearJustSettled)
	s.notifyLabel()
}

func (s *Session) clearJustSettled() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.justSettled = false
	s.notifyLabel()
}

// Save is the explicit save action. An empty note is a silent no-op. A
// brand-new note without a tag is rejected with ErrTagRequired and no state
// changes. Otherwise the note is persisted and the session settles
// immediately.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	if (s.activeNoteID == "" || s.draftNew) && strings.TrimSpace(s.tag) == "" {
		return ErrTagRequired
	}
	if strings.TrimSpace(s.title) == "" && strings.TrimSpace(s.content) == "" {
		return nil
	}

	if err := s.persistDraft(); err != nil {
		return err
	}

	s.draftNew = false
	s.stopTimer(&s.debounce)
	s.state = StateSettled
	s.lastSavedAt = s.opts.Clock.Now()
	s.justSettled = true
	s.stopTimer(&s.settleFlash)
	s.settleFlash = s.opts.Clock.AfterFunc(s.opts.SettleFlash, s.clearJustSettled)
	s.notifyLabel()
	return nil
}

// NewNote resets the session for a fresh draft: idle state, no bound note,
// empty fields, draft slot removed.
func (s *Session) NewNote() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	s.stopTimer(&s.debounce)
	s.stopTimer(&s.settleFlash)
	s.state = StateIdle
	s.activeNoteID = ""
	s.title = ""
	s.content = ""
	s.tag = ""
	s.typingStartedAt = time.Time{}
	s.lastSavedAt = time.Time{}
	s.justSettled = false
	s.draftNew = false

	if err := s.store.Delete(draftKey); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// OpenNote loads an existing note into the session and binds it as the
// active note. Returns notes.ErrNotFound for an unknown id.
func (s *Session) OpenNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	n, err := s.mgr.Repository().Get(id)
	if err != nil {
		return err
	}
	s.activeNoteID = n.ID
	s.title = n.Title
	s.content = n.Content
	s.tag = n.Tag
	s.draftNew = false
	return s.writeDraftSlot()
}

// Close tears the session down: all pending timers are cancelled so none of
// them fires against disposed state. Further calls return ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.stopTimer(&s.debounce)
	s.stopTimer(&s.settleFlash)
	s.stopTimer(&s.tick)
}

// Label derives the current age label.
func (s *Session) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labelLocked()
}

// State returns the state machine's position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ActiveNoteID returns the bound note id, or "" for an unsaved draft.
func (s *Session) ActiveNoteID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeNoteID
}

// Fields returns the current title, content, and tag.
func (s *Session) Fields() (title, content, tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title, s.content, s.tag
}

// persistDraft writes the current field values through to the repository
// (creating and binding a note on first content) and mirrors them into the
// draft slot. Caller holds the lock.
func (s *Session) persistDraft() error {
	title := s.title
	if strings.TrimSpace(title) == "" {
		title = notes.UntitledTitle
	}

	bound := s.activeNoteID != ""
	saved, err := s.mgr.Upsert(notes.Note{
		ID:      s.activeNoteID,
		Title:   title,
		Content: s.content,
		Tag:     s.tag,
	})
	if err != nil {
		return fmt.Errorf("autosave: %w", err)
	}
	if !bound {
		s.draftNew = true
	}
	s.activeNoteID = saved.ID
	return s.writeDraftSlot()
}

// writeDraftSlot mirrors the session fields into the current-note slot.
// Caller holds the lock.
func (s *Session) writeDraftSlot() error {
	err := s.store.Set(draftKey, draft{
		ID:      s.activeNoteID,
		Title:   s.title,
		Content: s.content,
		Tag:     s.tag,
	})
	if err != nil {
		return fmt.Errorf("persist draft: %w", err)
	}
	return nil
}

func (s *Session) labelLocked() string {
	return AgeLabel(s.opts.Clock.Now(), LabelState{
		Typing:          s.state == StateTyping,
		TypingStartedAt: s.typingStartedAt,
		LastSavedAt:     s.lastSavedAt,
		JustSettled:     s.justSettled,
	})
}

// notifyLabel pushes the re-derived label to the callback. Caller holds the
// lock.
func (s *Session) notifyLabel() {
	if s.opts.OnLabel != nil {
		s.opts.OnLabel(s.labelLocked())
	}
}

// armTick schedules the next label refresh. Each fire re-arms itself until
// the session closes. Caller holds the lock (or the session is still being
// constructed).
func (s *Session) armTick() {
	s.tick = s.opts.Clock.AfterFunc(s.opts.TickInterval, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.notifyLabel()
		s.armTick()
	})
}

func (s *Session) stopTimer(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
