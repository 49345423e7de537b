package services

import (
	"context"

	"careconnect-api/config"
	careconnect_errors "careconnect-api/pkg/errors"

	openai "github.com/sashabaranov/go-openai"
)

const chatSystemPrompt = "You are a helpful assistant."

// ChatCompleter is the slice of the OpenAI client the chat proxy needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatService forwards a single user message to the completion API and
// returns the first completion's text. No history, no streaming.
type ChatService struct {
	client ChatCompleter
	model  string
}

func NewChatService(client ChatCompleter, cfg *config.Config) *ChatService {
	return &ChatService{
		client: client,
		model:  cfg.OpenAIModel,
	}
}

func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", careconnect_errors.ErrServiceUnavailable
	}

	return resp.Choices[0].Message.Content, nil
}
