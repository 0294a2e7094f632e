package lesson_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lingokit/lingua-api/internal/lesson"
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

const chapter3Titles = `{"1": "Pagkilala sa mga Kapamilya", "2": "Paggamit ng Panghalip Paari", "3": "Pagpapakilala ng Ibang Tao"}`

func chapterJSON(moduleNums ...int) string {
	modules := make([]string, len(moduleNums))
	for i, num := range moduleNums {
		modules[i] = fmt.Sprintf(`{
			"module_number": %d,
			"title": "Module %d",
			"vocabulary": [{"number": 1, "english": "Uncle", "target": "Tiyo"}],
			"grammar": {"topic": "Topic", "requirement": "Explanation.", "examples": ["Example."]}
		}`, num, num)
	}
	return fmt.Sprintf(`{"modules": [%s]}`, strings.Join(modules, ","))
}

func TestListChapters(t *testing.T) {
	svc := lesson.NewService(&sequencedProvider{}, "test-model")

	result := svc.ListChapters()
	if len(result.AvailableChapters) != 4 || result.TotalChapters != 4 {
		t.Errorf("expected 4 chapters, got %+v", result)
	}
	for i, want := range []int{1, 2, 3, 4} {
		if result.AvailableChapters[i] != want {
			t.Errorf("chapters not sorted: %v", result.AvailableChapters)
		}
	}
}

func TestModuleTitles(t *testing.T) {
	t.Run("ParsesFencedJSON", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{"```json\n" + chapter3Titles + "\n```"}}
		svc := lesson.NewService(provider, "test-model")

		result, err := svc.ModuleTitles(context.Background(), 3, "tl-PH")
		if err != nil {
			t.Fatalf("ModuleTitles failed: %v", err)
		}
		if len(result.Titles) != 3 {
			t.Errorf("got %d titles, want 3", len(result.Titles))
		}
		if result.Titles[1] != "Pagkilala sa mga Kapamilya" {
			t.Errorf("unexpected title for module 1: %q", result.Titles[1])
		}
	})

	t.Run("UnknownChapter", func(t *testing.T) {
		svc := lesson.NewService(&sequencedProvider{}, "test-model")

		if _, err := svc.ModuleTitles(context.Background(), 9, "tl-PH"); !errors.Is(err, lesson.ErrChapterNotFound) {
			t.Errorf("expected ErrChapterNotFound, got %v", err)
		}
	})

	t.Run("MalformedResponse", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{"here are your titles"}}
		svc := lesson.NewService(provider, "test-model")

		if _, err := svc.ModuleTitles(context.Background(), 3, "tl-PH"); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("RejectsModuleOutsideChapter", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{`{"7": "Labas ng Saklaw"}`}}
		svc := lesson.NewService(provider, "test-model")

		_, err := svc.ModuleTitles(context.Background(), 3, "tl-PH")
		if err == nil || !strings.Contains(err.Error(), "module 7") {
			t.Errorf("expected out-of-range module error, got %v", err)
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Run("AllModulesWhenNoTitlesGiven", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{chapterJSON(1, 2, 3)}}
		svc := lesson.NewService(provider, "test-model")

		result, err := svc.Generate(context.Background(), 3, lesson.GenerateRequest{TargetLanguage: "tl-PH"})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if provider.calls != 1 {
			t.Errorf("expected 1 generation call, got %d", provider.calls)
		}
		if got := result.GenerationInfo.RequestedModules; len(got) != 3 {
			t.Errorf("expected all 3 modules requested, got %v", got)
		}
		if len(result.Chapter.Modules) != 3 || result.GenerationInfo.ModulesCount != 3 {
			t.Errorf("unexpected chapter content: %+v", result)
		}
		if !strings.Contains(result.Message, "Identify family members") {
			t.Errorf("message should name the modules: %q", result.Message)
		}
	})

	t.Run("ResolvesTitlesByNormalizedMatch", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{chapter3Titles, chapterJSON(1)}}
		svc := lesson.NewService(provider, "test-model")

		result, err := svc.Generate(context.Background(), 3, lesson.GenerateRequest{
			TargetLanguage: "tl-PH",
			ModuleTitles:   []string{"  pagkilala sa mga kapamilya!  "},
		})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if provider.calls != 2 {
			t.Errorf("expected titles call plus generation call, got %d", provider.calls)
		}
		if got := result.GenerationInfo.RequestedModules; len(got) != 1 || got[0] != 1 {
			t.Errorf("expected module 1, got %v", got)
		}
		if result.GenerationInfo.MatchedTitles["  pagkilala sa mga kapamilya!  "] != "Pagkilala sa mga Kapamilya" {
			t.Errorf("matched titles not recorded: %v", result.GenerationInfo.MatchedTitles)
		}
	})

	t.Run("DeduplicatesAndSortsModules", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{chapter3Titles, chapterJSON(1, 3)}}
		svc := lesson.NewService(provider, "test-model")

		result, err := svc.Generate(context.Background(), 3, lesson.GenerateRequest{
			TargetLanguage: "tl-PH",
			ModuleTitles: []string{
				"Pagpapakilala ng Ibang Tao",
				"Pagkilala sa mga Kapamilya",
				"pagkilala sa mga kapamilya",
			},
		})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		got := result.GenerationInfo.RequestedModules
		if len(got) != 2 || got[0] != 1 || got[1] != 3 {
			t.Errorf("expected modules [1 3], got %v", got)
		}
	})

	t.Run("UnmatchedTitleListsAvailable", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{chapter3Titles}}
		svc := lesson.NewService(provider, "test-model")

		_, err := svc.Generate(context.Background(), 3, lesson.GenerateRequest{
			TargetLanguage: "tl-PH",
			ModuleTitles:   []string{"mga kulay"},
		})

		var titleErr *lesson.TitleMatchError
		if !errors.As(err, &titleErr) {
			t.Fatalf("expected TitleMatchError, got %v", err)
		}
		if titleErr.Title != "mga kulay" {
			t.Errorf("unexpected title in error: %q", titleErr.Title)
		}
		if !strings.Contains(titleErr.Error(), "Pagkilala sa mga Kapamilya") {
			t.Errorf("error should list available titles: %v", titleErr)
		}
	})

	t.Run("RejectsTitlesNamingModuleOutsideChapter", func(t *testing.T) {
		provider := &sequencedProvider{responses: []string{`{"7": "Labas ng Saklaw"}`}}
		svc := lesson.NewService(provider, "test-model")

		_, err := svc.Generate(context.Background(), 3, lesson.GenerateRequest{
			TargetLanguage: "tl-PH",
			ModuleTitles:   []string{"labas ng saklaw"},
		})
		if err == nil || !strings.Contains(err.Error(), "module 7") {
			t.Errorf("expected out-of-range module error, got %v", err)
		}
	})

	t.Run("UnknownChapter", func(t *testing.T) {
		svc := lesson.NewService(&sequencedProvider{}, "test-model")

		_, err := svc.Generate(context.Background(), 7, lesson.GenerateRequest{TargetLanguage: "tl-PH"})
		if !errors.Is(err, lesson.ErrChapterNotFound) {
			t.Errorf("expected ErrChapterNotFound, got %v", err)
		}
	})
}
