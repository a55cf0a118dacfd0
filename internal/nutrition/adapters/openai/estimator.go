// Package openai adapts the chat-completion API into the macro estimator
// port. It is only wired when an API key is configured.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"lifeboard-service/internal/nutrition/core/domain"
	"lifeboard-service/internal/nutrition/core/ports"
)

const systemPrompt = `You are a nutrition assistant. Given a food description, ` +
	`estimate its macros and answer with a single JSON object: ` +
	`{"calories": number, "protein_g": number, "carbs_g": number, "fat_g": number}. ` +
	`No prose, JSON only.`

type chatClient interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

type Estimator struct {
	client chatClient
	model  string
}

func NewEstimator(apiKey string) *Estimator {
	return &Estimator{
		client: goopenai.NewClient(apiKey),
		model:  goopenai.GPT4oMini,
	}
}

var _ ports.EstimatorPort = (*Estimator)(nil)

func (e *Estimator) EstimateMacros(ctx context.Context, description string) (domain.MacroEstimate, error) {
	resp, err := e.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: e.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: description},
		},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return domain.MacroEstimate{}, fmt.Errorf("estimate macros: %w", err)
	}

	if len(resp.Choices) == 0 {
		return domain.MacroEstimate{}, errors.New("estimate macros: empty completion")
	}

	var est domain.MacroEstimate
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &est); err != nil {
		return domain.MacroEstimate{}, fmt.Errorf("estimate macros: unparseable completion: %w", err)
	}

	return est, nil
}
