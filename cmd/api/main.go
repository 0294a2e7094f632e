package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/container"
	"github.com/lingokit/lingua-api/internal/router"
)

func main() {
	c := container.New(context.Background())

	handler := router.New(router.RouterConfig{
		GeneralHandler:      c.GeneralContainer.Handler,
		ConversationHandler: c.ConversationContainer.Handler,
		DictionaryHandler:   c.DictionaryContainer.Handler,
		FlashcardsHandler:   c.FlashcardsContainer.Handler,
		RoleplayHandler:     c.RoleplayContainer.Handler,
		DialogueHandler:     c.DialogueContainer.Handler,
		ListeningHandler:    c.ListeningContainer.Handler,
		StoryHandler:        c.StoryContainer.Handler,
		WritingHandler:      c.WritingContainer.Handler,
		LessonHandler:       c.LessonContainer.Handler,
	})

	settings := config.Get()
	addr := fmt.Sprintf("%s:%d", settings.Host, settings.Port)

	logrus.WithField("addr", addr).Info("Starting server")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
