package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/conversation"
	"github.com/lingokit/lingua-api/internal/gemini"
	"github.com/samber/lo"
)

var ErrChapterNotFound = errors.New("chapter not found")

// TitleMatchError reports a requested module title that matched nothing in
// the chapter's translated titles.
type TitleMatchError struct {
	Title     string
	Available []string
}

func (e *TitleMatchError) Error() string {
	return fmt.Sprintf("could not match title %q to any module. Available titles: %s",
		e.Title, strings.Join(e.Available, ", "))
}

type Service interface {
	ListChapters() *ChapterListResponse
	ModuleTitles(ctx context.Context, chapter int, targetLanguage string) (*TitlesResponse, error)
	Generate(ctx context.Context, chapter int, req GenerateRequest) (*GenerateResponse, error)
}

type service struct {
	provider gemini.Provider
	model    string
}

func NewService(provider gemini.Provider, model string) Service {
	return &service{provider: provider, model: model}
}

func (s *service) ListChapters() *ChapterListResponse {
	nums := chapterNumbers()
	return &ChapterListResponse{
		AvailableChapters: nums,
		TotalChapters:     len(nums),
		Description:       "Currently available language learning chapters",
	}
}

func (s *service) ModuleTitles(ctx context.Context, chapter int, targetLanguage string) (*TitlesResponse, error) {
	specs, ok := chapters[chapter]
	if !ok {
		return nil, ErrChapterNotFound
	}

	titles, err := s.translateTitles(ctx, targetLanguage, specs)
	if err != nil {
		return nil, err
	}

	return &TitlesResponse{
		Message: fmt.Sprintf("Successfully retrieved module titles for %s", targetLanguage),
		Titles:  titles,
	}, nil
}

func (s *service) translateTitles(ctx context.Context, targetLanguage string, specs []moduleSpec) (map[int]string, error) {
	raw, err := s.provider.GenerateText(ctx, s.model, buildTitlesPrompt(targetLanguage, specs), nil)
	if err != nil {
		return nil, err
	}

	var titles map[int]string
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &titles); err != nil {
		return nil, fmt.Errorf("parsing module titles: %w", err)
	}
	for num := range titles {
		if num < 1 || num > len(specs) {
			return nil, fmt.Errorf("module titles response named module %d, chapter has %d modules", num, len(specs))
		}
	}
	return titles, nil
}

func (s *service) Generate(ctx context.Context, chapter int, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	specs, ok := chapters[chapter]
	if !ok {
		return nil, ErrChapterNotFound
	}

	var (
		moduleNums    []int
		matchedTitles map[string]string
	)
	if len(req.ModuleTitles) > 0 {
		translated, err := s.translateTitles(ctx, req.TargetLanguage, specs)
		if err != nil {
			return nil, err
		}

		nums, matched, err := resolveTitles(req.ModuleTitles, translated)
		if err != nil {
			return nil, err
		}
		moduleNums, matchedTitles = nums, matched
	} else {
		moduleNums = lo.RangeFrom(1, len(specs))
	}

	languageName := config.LanguageName(req.TargetLanguage)
	raw, err := s.provider.GenerateText(ctx, s.model, buildGenerationPrompt(chapter, languageName, specs, moduleNums), nil)
	if err != nil {
		return nil, err
	}

	var content ChapterContent
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &content); err != nil {
		return nil, fmt.Errorf("parsing chapter content: %w", err)
	}

	names := lo.Map(moduleNums, func(num int, _ int) string {
		return specs[num-1].Title
	})

	log.WithFields(map[string]interface{}{
		"chapter": chapter,
		"modules": moduleNums,
	}).Info("Generated lesson modules")

	return &GenerateResponse{
		Message: fmt.Sprintf("Successfully generated modules for %s: %s",
			req.TargetLanguage, strings.Join(names, ", ")),
		Chapter: &content,
		GenerationInfo: &GenerationInfo{
			Model:            s.model,
			ModulesCount:     len(content.Modules),
			RequestedModules: moduleNums,
			MatchedTitles:    matchedTitles,
		},
	}, nil
}

// resolveTitles maps user-provided titles to module numbers by normalized
// exact match against the translated titles.
func resolveTitles(userTitles []string, translated map[int]string) ([]int, map[string]string, error) {
	byNormalized := make(map[string]int, len(translated))
	for num, title := range translated {
		byNormalized[conversation.Normalize(title)] = num
	}

	var nums []int
	matched := make(map[string]string, len(userTitles))
	for _, title := range userTitles {
		num, ok := byNormalized[conversation.Normalize(title)]
		if !ok {
			available := lo.Values(translated)
			sort.Strings(available)
			return nil, nil, &TitleMatchError{Title: title, Available: available}
		}
		nums = append(nums, num)
		matched[title] = translated[num]
	}

	nums = lo.Uniq(nums)
	sort.Ints(nums)
	return nums, matched, nil
}
