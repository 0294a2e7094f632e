package story_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lingokit/lingua-api/internal/story"
	"google.golang.org/genai"
)

// sequencedProvider returns one canned response per call, in order.
type sequencedProvider struct {
	responses []string
	err       error
	calls     int
}

func (s *sequencedProvider) GenerateText(_ context.Context, _, _ string, _ *genai.GenerateContentConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.calls >= len(s.responses) {
		return "", nil
	}
	out := s.responses[s.calls]
	s.calls++
	return out, nil
}

func (s *sequencedProvider) GenerateWithImage(_ context.Context, _, _, _ string, _ []byte) (string, error) {
	return "", nil
}

func TestGenerateStory(t *testing.T) {
	req := story.GenerateRequest{Topic: "a lost dog", Language: "tl-PH"}

	t.Run("ReturnsBothVersions", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{
			"May isang asong naligaw sa bayan.",
			"There was a dog lost in town.",
		}}
		svc := story.NewService(provider, "test-model")

		result, err := svc.GenerateStory(context.Background(), req)
		if err != nil {
			t.Fatalf("GenerateStory failed: %v", err)
		}
		if result.StoryTargetLanguage != "May isang asong naligaw sa bayan." {
			t.Errorf("unexpected target story: %q", result.StoryTargetLanguage)
		}
		if result.StoryEnglish != "There was a dog lost in town." {
			t.Errorf("unexpected translation: %q", result.StoryEnglish)
		}
		if result.Topic != "a lost dog" || result.Language != "tl-PH" {
			t.Errorf("request fields not echoed: %+v", result)
		}
		if provider.calls != 2 {
			t.Errorf("expected 2 generation calls, got %d", provider.calls)
		}
	})

	t.Run("FlattensLineBreaks", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{
			"Unang linya.\n\nPangalawang   linya.\r\nPangatlo.",
			"First line.\nSecond line.",
		}}
		svc := story.NewService(provider, "test-model")

		result, err := svc.GenerateStory(context.Background(), req)
		if err != nil {
			t.Fatalf("GenerateStory failed: %v", err)
		}
		if result.StoryTargetLanguage != "Unang linya. Pangalawang linya. Pangatlo." {
			t.Errorf("story not flattened: %q", result.StoryTargetLanguage)
		}
		if result.StoryEnglish != "First line. Second line." {
			t.Errorf("translation not flattened: %q", result.StoryEnglish)
		}
	})

	t.Run("TruncatesLongStories", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{
			strings.Repeat("a", 900),
			"short translation",
		}}
		svc := story.NewService(provider, "test-model")

		result, err := svc.GenerateStory(context.Background(), req)
		if err != nil {
			t.Fatalf("GenerateStory failed: %v", err)
		}
		if len(result.StoryTargetLanguage) != 803 {
			t.Errorf("got length %d, want 800 plus ellipsis", len(result.StoryTargetLanguage))
		}
		if !strings.HasSuffix(result.StoryTargetLanguage, "...") {
			t.Error("truncated story should end with ellipsis")
		}
	})

	t.Run("PropagatesProviderError", func(t *testing.T) {
		svc := story.NewService(&sequencedProvider{err: context.DeadlineExceeded}, "test-model")

		if _, err := svc.GenerateStory(context.Background(), req); err == nil {
			t.Error("expected provider error")
		}
	})
}
