package conversation_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/lingokit/lingua-api/internal/conversation"
)

func testConfig(seed int64) conversation.Config {
	return conversation.Config{
		MaxSteps:            5,
		QuestionProbability: 0.3,
		DefaultLanguage:     "en-US",
		Greetings: map[string]string{
			"en-US": "How are you?",
			"tl-PH": "Kumusta ka?",
		},
		Questions: map[string][]string{
			"en-US": {
				"What do you eat for breakfast?",
				"Do you like cooking?",
				"What music do you like?",
				"Do you have any pets?",
			},
		},
		Statements: map[string][]string{
			"en-US": {
				"The weather is nice today.",
				"I love coffee in the morning.",
				"My family is doing well.",
				"Work has been busy lately.",
			},
		},
		Rand: rand.New(rand.NewSource(seed)),
	}
}

func TestStart(t *testing.T) {
	t.Run("ReturnsConfiguredGreeting", func(t *testing.T) {
		tracker := conversation.NewTracker(testConfig(1))

		id, greeting := tracker.Start("tl-PH")
		if id == "" {
			t.Fatal("Start returned an empty session id")
		}
		if greeting != "Kumusta ka?" {
			t.Errorf("greeting = %q, want %q", greeting, "Kumusta ka?")
		}
	})

	t.Run("FallsBackToDefaultGreeting", func(t *testing.T) {
		tracker := conversation.NewTracker(testConfig(1))

		_, greeting := tracker.Start("sv-SE")
		if greeting != "How are you?" {
			t.Errorf("greeting = %q, want default %q", greeting, "How are you?")
		}
	})

	t.Run("InvalidatesPreviousSession", func(t *testing.T) {
		tracker := conversation.NewTracker(testConfig(1))

		oldID, greeting := tracker.Start("en-US")
		newID, _ := tracker.Start("en-US")
		if oldID == newID {
			t.Fatal("expected a fresh session id on restart")
		}

		reply := tracker.Reply(oldID, greeting, "en-US")
		if !reply.Ended {
			t.Error("stale session id should yield a terminal reply")
		}
		if !strings.Contains(reply.Message, "not found") {
			t.Errorf("unexpected message for stale session: %q", reply.Message)
		}
	})
}

func TestReply(t *testing.T) {
	t.Run("MatchAdvancesExactlyOneStep", func(t *testing.T) {
		tracker := conversation.NewTracker(testConfig(1))
		id, _ := tracker.Start("en-US")

		// Case and punctuation differences must not matter.
		reply := tracker.Reply(id, "how are you", "en-US")
		if reply.Ended {
			t.Fatal("session ended after the first correct reply")
		}
		if got := tracker.CompletedSteps(id); got != 1 {
			t.Errorf("completed steps = %d, want 1", got)
		}
		if reply.Message == "" || strings.Contains(reply.Message, "again") {
			t.Errorf("expected a fresh phrase, got %q", reply.Message)
		}
	})

	t.Run("MismatchLeavesStateUntouched", func(t *testing.T) {
		tracker := conversation.NewTracker(testConfig(1))
		id, greeting := tracker.Start("en-US")

		reply := tracker.Reply(id, "something else entirely", "en-US")
		if reply.Ended {
			t.Fatal("mismatch must not end the session")
		}
		if want := "Please say " + greeting + " again."; reply.Message != want {
			t.Errorf("retry message = %q, want %q", reply.Message, want)
		}
		if got := tracker.CompletedSteps(id); got != 0 {
			t.Errorf("completed steps = %d, want 0", got)
		}

		// The expected phrase is unchanged, so the greeting still advances.
		reply = tracker.Reply(id, greeting, "en-US")
		if got := tracker.CompletedSteps(id); got != 1 {
			t.Errorf("completed steps after recovery = %d, want 1", got)
		}
		if reply.Ended {
			t.Error("session ended unexpectedly")
		}
	})

	t.Run("UnknownSessionIsTerminal", func(t *testing.T) {
		tracker := conversation.NewTracker(testConfig(1))
		tracker.Start("en-US")

		reply := tracker.Reply("no-such-session", "How are you?", "en-US")
		if !reply.Ended {
			t.Error("unknown session id should yield a terminal reply")
		}
	})

	t.Run("SessionDestroyedAfterMaxSteps", func(t *testing.T) {
		tracker := conversation.NewTracker(testConfig(7))
		id, phrase := tracker.Start("en-US")

		var last conversation.Reply
		for i := 0; i < 5; i++ {
			last = tracker.Reply(id, phrase, "en-US")
			phrase = last.Message
		}

		if !last.Ended {
			t.Fatal("session should end after 5 correct replies")
		}
		if !strings.Contains(last.Message, "completed all 5") {
			t.Errorf("unexpected completion message: %q", last.Message)
		}

		reply := tracker.Reply(id, phrase, "en-US")
		if !reply.Ended || !strings.Contains(reply.Message, "not found") {
			t.Errorf("destroyed session should be gone, got %+v", reply)
		}
	})
}

func TestPhraseSelection(t *testing.T) {
	t.Run("NoRepeatsWhileUnseenPhrasesRemain", func(t *testing.T) {
		cfg := testConfig(3)
		cfg.QuestionProbability = 1 // question pool only
		cfg.MaxSteps = 10
		tracker := conversation.NewTracker(cfg)

		id, phrase := tracker.Start("en-US")
		seen := map[string]bool{conversation.Normalize(phrase): true}

		// Four distinct questions are available; the first four draws must
		// all be new.
		for i := 0; i < 4; i++ {
			reply := tracker.Reply(id, phrase, "en-US")
			norm := conversation.Normalize(reply.Message)
			if seen[norm] {
				t.Fatalf("phrase %q repeated while alternatives remained", reply.Message)
			}
			seen[norm] = true
			phrase = reply.Message
		}

		// Pool exhausted: the next draw must still produce something from
		// the question pool, repeats now allowed.
		reply := tracker.Reply(id, phrase, "en-US")
		var inPool bool
		for _, q := range cfg.Questions["en-US"] {
			if conversation.Normalize(q) == conversation.Normalize(reply.Message) {
				inPool = true
			}
		}
		if !inPool {
			t.Errorf("post-exhaustion phrase %q not from the question pool", reply.Message)
		}
	})

	t.Run("ProbabilityOnePicksQuestions", func(t *testing.T) {
		cfg := testConfig(5)
		cfg.QuestionProbability = 1
		tracker := conversation.NewTracker(cfg)

		id, phrase := tracker.Start("en-US")
		reply := tracker.Reply(id, phrase, "en-US")
		if !strings.HasSuffix(reply.Message, "?") {
			t.Errorf("expected a question, got %q", reply.Message)
		}
	})

	t.Run("ProbabilityZeroPicksStatements", func(t *testing.T) {
		cfg := testConfig(5)
		cfg.QuestionProbability = 0
		tracker := conversation.NewTracker(cfg)

		id, phrase := tracker.Start("en-US")
		reply := tracker.Reply(id, phrase, "en-US")
		if strings.HasSuffix(reply.Message, "?") {
			t.Errorf("expected a statement, got %q", reply.Message)
		}
	})

	t.Run("MissingPoolFallsBackToDefaultLanguage", func(t *testing.T) {
		cfg := testConfig(5)
		cfg.QuestionProbability = 0
		tracker := conversation.NewTracker(cfg)

		// tl-PH has a greeting but no pools, so draws come from en-US.
		id, phrase := tracker.Start("tl-PH")
		reply := tracker.Reply(id, phrase, "tl-PH")

		var inPool bool
		for _, s := range cfg.Statements["en-US"] {
			if s == reply.Message {
				inPool = true
			}
		}
		if !inPool {
			t.Errorf("phrase %q not drawn from the default-language pool", reply.Message)
		}
	})

	t.Run("EmptyPoolsRepeatCurrentPhrase", func(t *testing.T) {
		cfg := testConfig(5)
		cfg.Questions = map[string][]string{}
		cfg.Statements = map[string][]string{}
		tracker := conversation.NewTracker(cfg)

		id, phrase := tracker.Start("en-US")
		reply := tracker.Reply(id, phrase, "en-US")
		if reply.Message != phrase {
			t.Errorf("expected the current phrase repeated, got %q", reply.Message)
		}
		if reply.Ended {
			t.Error("session should stay open")
		}
	})
}
