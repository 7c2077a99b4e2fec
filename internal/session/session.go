package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mahitha-23/ClassPilot/internal/config"
	"github.com/Mahitha-23/ClassPilot/internal/lesson"
	"github.com/Mahitha-23/ClassPilot/internal/module"
)

var (
	ErrEmptyTopic   = errors.New("topic is required")
	ErrNoLesson     = errors.New("no lesson to save")
	ErrNoModuleName = errors.New("module name is required")
)

// minModuleNameLen is the shortest module name that triggers content
// regeneration.
const minModuleNameLen = 3

// Session owns the working record for one generation cycle: the lesson being
// authored, the module metadata around it, and the debounced module-content
// regeneration that follows module-name edits. All methods are safe for
// concurrent use.
type Session struct {
	svc   lesson.Service
	store module.Store

	mu    sync.Mutex
	state State

	topic      string
	lesson     *lesson.Lesson
	moduleName string
	meta       metadata
	edited     editedFields

	// contentSubject is the subject of the most recent module-content
	// generation; edits that restate it do not regenerate.
	contentSubject  string
	contentInFlight bool
	pendingSubject  string

	debounce *debouncer
}

func New(svc lesson.Service, store module.Store, debounceInterval time.Duration) *Session {
	return &Session{
		svc:      svc,
		store:    store,
		state:    StateIdle,
		debounce: newDebouncer(debounceInterval),
	}
}

// Snapshot is a read-only view of the working record.
type Snapshot struct {
	State         State          `json:"state"`
	Topic         string         `json:"topic"`
	Lesson        *lesson.Lesson `json:"lesson,omitempty"`
	ModuleName    string         `json:"moduleName"`
	Difficulty    string         `json:"difficulty"`
	Prerequisites string         `json:"prerequisites"`
	EstimatedTime string         `json:"estimatedTime"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:         s.state,
		Topic:         s.topic,
		ModuleName:    s.moduleName,
		Difficulty:    s.meta.Difficulty,
		Prerequisites: s.meta.Prerequisites,
		EstimatedTime: s.meta.EstimatedTime,
	}
	if s.lesson != nil {
		l := *s.lesson
		snap.Lesson = &l
	}
	return snap
}

// SubmitTopic runs the first two pipeline stages: lesson generation for the
// topic, then module-metadata suggestion for the same subject. A failed
// lesson stage surfaces its error and returns the session to Idle; a failed
// metadata stage is non-fatal and leaves the metadata fields untouched.
func (s *Session) SubmitTopic(ctx context.Context, topic string) error {
	log := config.WithContext(ctx)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}

	s.mu.Lock()
	s.topic = topic
	s.state = StateLessonPending
	s.mu.Unlock()

	l, err := s.svc.GenerateLesson(ctx, topic)
	if err != nil {
		log.WithError(err).Error("Lesson generation failed")
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		return err
	}

	// Lesson ready; the metadata suggestion is chained immediately for the
	// same subject.
	s.mu.Lock()
	s.lesson = l
	s.state = StateModuleMetaPending
	s.mu.Unlock()

	meta, err := s.svc.SuggestModuleMetadata(ctx, topic)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.WithError(err).Warn("Module metadata suggestion failed; lesson remains usable")
		s.state = StateModuleMetaReady
		return nil
	}

	s.moduleName = meta.ModuleName
	s.meta = metadata{
		Difficulty:    meta.Difficulty,
		Prerequisites: meta.Prerequisites,
		EstimatedTime: meta.Time,
	}
	s.state = StateModuleMetaReady
	return nil
}

// EditModuleName records a module-name edit and schedules a debounced
// module-content regeneration when the edit qualifies: at least three
// characters and, once the quiet interval elapses, different from the last
// generated subject with no generation in flight. A later edit inside the
// interval cancels the pending firing and restarts the timer.
func (s *Session) EditModuleName(name string) {
	s.mu.Lock()
	s.moduleName = name
	s.mu.Unlock()

	if len(name) < minModuleNameLen {
		return
	}
	s.debounce.Trigger(func() { s.maybeGenerateContent(name) })
}

// SetDifficulty records a manual difficulty choice; merged generations will
// not overwrite it.
func (s *Session) SetDifficulty(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.Difficulty = v
	s.edited.Difficulty = true
}

func (s *Session) SetPrerequisites(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.Prerequisites = v
	s.edited.Prerequisites = true
}

func (s *Session) SetEstimatedTime(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.EstimatedTime = v
	s.edited.EstimatedTime = true
}

// SetDescription replaces the lesson description with edited rich text.
// A no-op until a lesson exists.
func (s *Session) SetDescription(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lesson != nil {
		s.lesson.Description = html
	}
}

// Save hands the working record to the sink. Refused without a lesson or a
// module name. On sink failure the working data stays intact in SavePending
// so the save can be retried; on success everything resets to Idle.
func (s *Session) Save(ctx context.Context) (*module.Module, error) {
	log := config.WithContext(ctx)

	s.mu.Lock()
	if s.lesson == nil {
		s.mu.Unlock()
		return nil, ErrNoLesson
	}
	if strings.TrimSpace(s.moduleName) == "" {
		s.mu.Unlock()
		return nil, ErrNoModuleName
	}
	s.state = StateSavePending
	m := &module.Module{
		ID:            uuid.New(),
		ModuleName:    s.moduleName,
		Lesson:        *s.lesson,
		Difficulty:    s.meta.Difficulty,
		Prerequisites: s.meta.Prerequisites,
		Time:          s.meta.EstimatedTime,
	}
	s.mu.Unlock()

	if err := s.store.Append(ctx, m); err != nil {
		log.WithError(err).Error("Failed to save module; working record retained")
		return nil, err
	}

	s.mu.Lock()
	s.reset()
	s.mu.Unlock()

	log.Infof("Saved module %q", m.ModuleName)
	return m, nil
}

// maybeGenerateContent fires after the quiet interval. At most one content
// generation runs at a time; a subject arriving while one is in flight is
// kept as the pending subject and rescheduled when the flight ends.
func (s *Session) maybeGenerateContent(subject string) {
	s.mu.Lock()
	if subject == s.contentSubject {
		s.mu.Unlock()
		return
	}
	if s.contentInFlight {
		s.pendingSubject = subject
		s.mu.Unlock()
		return
	}
	s.contentInFlight = true
	s.contentSubject = subject
	prev := s.state
	s.state = StateModuleContentPending
	s.mu.Unlock()

	go s.generateModuleContent(subject, prev)
}

func (s *Session) generateModuleContent(subject string, prev State) {
	ctx := context.Background()
	log := config.WithContext(ctx)

	l, err := s.svc.GenerateModuleLesson(ctx, subject)

	s.mu.Lock()
	s.contentInFlight = false
	pending := s.pendingSubject
	s.pendingSubject = ""

	if err != nil {
		log.WithError(err).Error("Module content generation failed")
		s.state = prev
	} else {
		s.lesson = l
		s.meta = mergeMetadata(s.meta, metadata{
			Difficulty:    l.Difficulty,
			Prerequisites: l.Prerequisites,
			EstimatedTime: l.EstimatedTime,
		}, s.edited)
		s.state = StateModuleContentReady
	}
	s.mu.Unlock()

	if pending != "" {
		s.debounce.Trigger(func() { s.maybeGenerateContent(pending) })
	}
}

// reset clears all working fields and returns the session to Idle. The
// caller holds the lock.
func (s *Session) reset() {
	s.debounce.Cancel()
	s.topic = ""
	s.lesson = nil
	s.moduleName = ""
	s.meta = metadata{}
	s.edited = editedFields{}
	s.contentSubject = ""
	s.pendingSubject = ""
	s.state = StateIdle
}
