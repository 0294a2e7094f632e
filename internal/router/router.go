package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lingokit/lingua-api/internal/conversation"
	"github.com/lingokit/lingua-api/internal/dialogue"
	"github.com/lingokit/lingua-api/internal/dictionary"
	"github.com/lingokit/lingua-api/internal/flashcards"
	"github.com/lingokit/lingua-api/internal/general"
	"github.com/lingokit/lingua-api/internal/lesson"
	"github.com/lingokit/lingua-api/internal/listening"
	"github.com/lingokit/lingua-api/internal/middlewares"
	"github.com/lingokit/lingua-api/internal/roleplay"
	"github.com/lingokit/lingua-api/internal/story"
	"github.com/lingokit/lingua-api/internal/writing"
)

type RouterConfig struct {
	GeneralHandler      *general.Handler
	ConversationHandler *conversation.Handler
	DictionaryHandler   *dictionary.Handler
	FlashcardsHandler   *flashcards.Handler
	RoleplayHandler     *roleplay.Handler
	DialogueHandler     *dialogue.Handler
	ListeningHandler    *listening.Handler
	StoryHandler        *story.Handler
	WritingHandler      *writing.Handler
	LessonHandler       *lesson.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Mount("/", general.Routes(cfg.GeneralHandler))
	r.Mount("/conversation", conversation.Routes(cfg.ConversationHandler))
	r.Mount("/dictionary", dictionary.Routes(cfg.DictionaryHandler))
	r.Mount("/flashcards", flashcards.Routes(cfg.FlashcardsHandler))
	r.Mount("/roleplay", roleplay.Routes(cfg.RoleplayHandler))
	r.Mount("/dialogue", dialogue.Routes(cfg.DialogueHandler))
	r.Mount("/listening", listening.Routes(cfg.ListeningHandler))
	r.Mount("/story", story.Routes(cfg.StoryHandler))
	r.Mount("/writing", writing.Routes(cfg.WritingHandler))
	r.Mount("/lesson", lesson.Routes(cfg.LessonHandler))

	return r
}
