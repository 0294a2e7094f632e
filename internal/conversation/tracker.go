package conversation

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Config carries everything the tracker needs: phrase tables, the step
// limit and the question/statement split. The random source is injectable
// so selection can be driven deterministically in tests.
type Config struct {
	MaxSteps            int
	QuestionProbability float64
	DefaultLanguage     string
	Greetings           map[string]string
	Questions           map[string][]string
	Statements          map[string][]string
	Rand                *rand.Rand
}

func DefaultConfig() Config {
	return Config{
		MaxSteps:            5,
		QuestionProbability: 0.3,
		DefaultLanguage:     "en-US",
		Greetings:           Greetings,
		Questions:           Questions,
		Statements:          Statements,
		Rand:                rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// session is the mutable record for one learner working through the
// phrase-repetition steps.
type session struct {
	id             string
	language       string
	expectedPhrase string
	completedSteps int
	usedPhrases    map[string]struct{}
}

// Tracker holds at most one active practice session. Starting a new session
// unconditionally discards the previous one; the mutex only keeps that
// single slot consistent under a multi-threaded server.
type Tracker struct {
	mu     sync.Mutex
	cfg    Config
	active *session
}

func NewTracker(cfg Config) *Tracker {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Tracker{cfg: cfg}
}

// Start opens a fresh session seeded with the language's greeting and
// returns its id together with the greeting verbatim. It never fails:
// unknown languages fall back to the default language's greeting.
func (t *Tracker) Start(language string) (string, string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	greeting, ok := t.cfg.Greetings[language]
	if !ok {
		greeting = t.cfg.Greetings[t.cfg.DefaultLanguage]
	}

	t.active = &session{
		id:             uuid.NewString(),
		language:       language,
		expectedPhrase: greeting,
		usedPhrases:    map[string]struct{}{Normalize(greeting): {}},
	}
	return t.active.id, greeting
}

// Reply is the tracker's verdict on one user utterance. Every outcome is a
// normal return value; "ended" covers both completion and unknown session
// ids, so callers always know whether to start over.
type Reply struct {
	Message string
	Ended   bool
}

func (t *Tracker) Reply(sessionID, userText, language string) Reply {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil || t.active.id != sessionID {
		return Reply{
			Message: "Conversation not found. Please start a new conversation.",
			Ended:   true,
		}
	}

	sess := t.active
	if Normalize(userText) != Normalize(sess.expectedPhrase) {
		// State stays untouched; echo the original phrase for a retry.
		return Reply{Message: fmt.Sprintf("Please say %s again.", sess.expectedPhrase)}
	}

	sess.completedSteps++
	if sess.completedSteps >= t.cfg.MaxSteps {
		t.active = nil
		return Reply{
			Message: fmt.Sprintf("You've completed all %d prompts. Fantastic work!", t.cfg.MaxSteps),
			Ended:   true,
		}
	}

	next := t.nextPhrase(sess, language)
	sess.expectedPhrase = next
	sess.usedPhrases[Normalize(next)] = struct{}{}
	return Reply{Message: next}
}

// CompletedSteps reports the step counter of the active session, or -1 when
// no session matches the id.
func (t *Tracker) CompletedSteps(sessionID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil || t.active.id != sessionID {
		return -1
	}
	return t.active.completedSteps
}

func (t *Tracker) nextPhrase(sess *session, language string) string {
	pool := t.cfg.Statements
	if t.cfg.Rand.Float64() < t.cfg.QuestionProbability {
		pool = t.cfg.Questions
	}

	phrases, ok := pool[language]
	if !ok {
		phrases = pool[t.cfg.DefaultLanguage]
	}

	candidates := lo.Filter(phrases, func(phrase string, _ int) bool {
		_, used := sess.usedPhrases[Normalize(phrase)]
		return !used
	})
	// Pool exhausted: allow a repeat rather than stalling the session.
	if len(candidates) == 0 {
		candidates = phrases
	}
	// No pool configured for this language or the default: repeat the
	// current phrase instead of panicking on an empty draw.
	if len(candidates) == 0 {
		return sess.expectedPhrase
	}

	return candidates[t.cfg.Rand.Intn(len(candidates))]
}
