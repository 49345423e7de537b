package services

import (
	"context"
	"testing"

	"careconnect-api/config"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	lastReq openai.ChatCompletionRequest
	resp    openai.ChatCompletionResponse
	err     error
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func chatTestConfig() *config.Config {
	return &config.Config{OpenAIModel: "gpt-3.5-turbo"}
}

func TestReplyForwardsMessage(t *testing.T) {
	completer := &fakeCompleter{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "Hello there"}},
				{Message: openai.ChatCompletionMessage{Content: "ignored second choice"}},
			},
		},
	}
	svc := NewChatService(completer, chatTestConfig())

	reply, err := svc.Reply(context.Background(), "How are you?")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", reply)

	assert.Equal(t, "gpt-3.5-turbo", completer.lastReq.Model)
	require.Len(t, completer.lastReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, completer.lastReq.Messages[0].Role)
	assert.Equal(t, chatSystemPrompt, completer.lastReq.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, completer.lastReq.Messages[1].Role)
	assert.Equal(t, "How are you?", completer.lastReq.Messages[1].Content)
}

func TestReplyPropagatesUpstreamError(t *testing.T) {
	completer := &fakeCompleter{err: assert.AnError}
	svc := NewChatService(completer, chatTestConfig())

	_, err := svc.Reply(context.Background(), "hi")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestReplyWithoutChoices(t *testing.T) {
	completer := &fakeCompleter{resp: openai.ChatCompletionResponse{}}
	svc := NewChatService(completer, chatTestConfig())

	_, err := svc.Reply(context.Background(), "hi")
	assert.Error(t, err)
}
