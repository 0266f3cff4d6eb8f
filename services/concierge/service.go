package concierge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// systemPrompt anchors the assistant to house facts so answers stay on
// topic and never invent amenities or prices.
const systemPrompt = `You are the virtual concierge of Casa Herenia y Pedro, a guesthouse in Viñales, Cuba.
The house has three bookable options: Junior Suite I (room_1, up to 3 guests),
Junior Suite II (room_2, up to 3 guests) and the TWO-BEDROOM SUITE (full_villa,
the whole house, up to 6 guests). Nightly rates: 55 USD per suite, 120 USD for
the full villa. Free cancellation up to 5 days before check-in. Breakfast and
airport transfer from Havana can be arranged (colectivo 25 USD per person,
private car 120 USD). Answer guest questions briefly and warmly. If you do not
know something, say so and suggest contacting the hosts; never invent details.`

var ErrNotConfigured = errors.New("concierge assistant is not configured")

// Service answers guest questions with a Gemini model primed on house
// facts. A nil model means the feature is off, not broken.
type Service struct {
	model  *genai.GenerativeModel
	logger *zap.Logger
}

// NewService builds the concierge. An empty API key disables the feature
// without error.
func NewService(ctx context.Context, apiKey string, logger *zap.Logger) (*Service, error) {
	if apiKey == "" {
		logger.Info("concierge disabled: no Gemini API key")
		return &Service{logger: logger}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-flash")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	return &Service{model: model, logger: logger}, nil
}

// Ask sends one guest question and returns the assistant's reply.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if s.model == nil {
		return "", ErrNotConfigured
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("empty question")
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(question))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
