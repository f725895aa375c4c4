package service

import (
	"context"

	"leafit-be/internal/dto"
	"leafit-be/pkg/assistant"
)

// systemPersona frames every conversation before the user's message.
const systemPersona = "You are LeafBot, a friendly sustainability assistant. " +
	"Give practical, encouraging eco-living advice. Keep answers short and concrete."

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	chain *assistant.Chain
}

func NewChatService(chain *assistant.Chain) IChatService {
	return &chatService{chain: chain}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	history := []assistant.Message{
		{Role: "system", Content: systemPersona},
		{Role: "user", Content: req.Message},
	}

	reply, err := s.chain.Complete(ctx, history)
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{Success: true, Reply: reply}, nil
}
