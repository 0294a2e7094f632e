package container

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/conversation"
	"github.com/lingokit/lingua-api/internal/dialogue"
	"github.com/lingokit/lingua-api/internal/dictionary"
	"github.com/lingokit/lingua-api/internal/flashcards"
	"github.com/lingokit/lingua-api/internal/gemini"
	"github.com/lingokit/lingua-api/internal/general"
	"github.com/lingokit/lingua-api/internal/lesson"
	"github.com/lingokit/lingua-api/internal/listening"
	"github.com/lingokit/lingua-api/internal/roleplay"
	"github.com/lingokit/lingua-api/internal/story"
	"github.com/lingokit/lingua-api/internal/writing"
)

type Container struct {
	GeneralContainer      *general.GeneralContainer
	ConversationContainer *conversation.ConversationContainer
	DictionaryContainer   *dictionary.DictionaryContainer
	FlashcardsContainer   *flashcards.FlashcardsContainer
	RoleplayContainer     *roleplay.RoleplayContainer
	DialogueContainer     *dialogue.DialogueContainer
	ListeningContainer    *listening.ListeningContainer
	StoryContainer        *story.StoryContainer
	WritingContainer      *writing.WritingContainer
	LessonContainer       *lesson.LessonContainer
}

func New(ctx context.Context) *Container {
	config.Init()

	apiKey, err := config.Get().APIKey()
	if err != nil {
		logrus.Fatalf("failed to configure Gemini: %v", err)
	}

	provider, err := gemini.NewProvider(ctx, apiKey)
	if err != nil {
		logrus.Fatalf("failed to create Gemini client: %v", err)
	}

	return &Container{
		GeneralContainer:      general.NewGeneralContainer(),
		ConversationContainer: conversation.NewConversationContainer(),
		DictionaryContainer:   dictionary.NewDictionaryContainer(provider),
		FlashcardsContainer:   flashcards.NewFlashcardsContainer(provider),
		RoleplayContainer:     roleplay.NewRoleplayContainer(provider),
		DialogueContainer:     dialogue.NewDialogueContainer(provider),
		ListeningContainer:    listening.NewListeningContainer(provider),
		StoryContainer:        story.NewStoryContainer(provider),
		WritingContainer:      writing.NewWritingContainer(provider),
		LessonContainer:       lesson.NewLessonContainer(provider),
	}
}
