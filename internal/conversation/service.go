package conversation

import (
	"context"

	"github.com/lingokit/lingua-api/internal/config"
)

type Service interface {
	Start(ctx context.Context, language string) StartResponse
	Reply(ctx context.Context, req ReplyRequest) ReplyResponse
}

type service struct {
	tracker *Tracker
}

func NewService(tracker *Tracker) Service {
	return &service{tracker: tracker}
}

func (s *service) Start(ctx context.Context, language string) StartResponse {
	log := config.WithContext(ctx)

	id, greeting := s.tracker.Start(language)
	log.WithField("language", language).Info("Started conversation practice session")

	return StartResponse{
		ConversationID: id,
		AIMessage:      greeting,
	}
}

func (s *service) Reply(ctx context.Context, req ReplyRequest) ReplyResponse {
	log := config.WithContext(ctx)

	reply := s.tracker.Reply(req.ConversationID, req.UserMessage, req.Language)
	if reply.Ended {
		log.WithField("conversation_id", req.ConversationID).Info("Conversation practice session ended")
	}

	return ReplyResponse{
		AIMessage:         reply.Message,
		ConversationEnded: reply.Ended,
	}
}
