package g2p

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/example/go-phonosim/internal/ipa"
)

const transcriptionPrompt = "You are a phonetician. Reply with only the IPA " +
	"transcription of the given word in the requested language. If several " +
	"pronunciations exist, separate them with commas. No slashes, brackets, " +
	"or commentary."

// OpenAIGenerator produces IPA transcriptions through a chat-completion
// model. It is an external collaborator: the core only consumes the IPA
// strings it returns.
type OpenAIGenerator struct {
	client   *openai.Client
	model    string
	language string
	timeout  time.Duration
}

// OpenAIOption configures an OpenAIGenerator.
type OpenAIOption func(*OpenAIGenerator)

// WithModel overrides the completion model.
func WithModel(model string) OpenAIOption {
	return func(g *OpenAIGenerator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithTimeout overrides the per-request deadline.
func WithTimeout(d time.Duration) OpenAIOption {
	return func(g *OpenAIGenerator) { g.timeout = d }
}

func NewOpenAIGenerator(apiKey, language string, opts ...OpenAIOption) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key not configured")
	}
	g := &OpenAIGenerator{
		client:   openai.NewClient(apiKey),
		model:    openai.GPT4o,
		language: language,
		timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *OpenAIGenerator) Generate(ctx context.Context, word string) ([]Pronunciation, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: transcriptionPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Language: %s\nWord: %s", g.language, word),
			},
		},
		Temperature: 0.3,
		MaxTokens:   100,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("g2p completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("word %q: empty completion: %w", word, ErrNotFound)
	}

	prons := parseCompletion(resp.Choices[0].Message.Content)
	if len(prons) == 0 {
		return nil, fmt.Errorf("word %q: no usable transcription in completion: %w", word, ErrNotFound)
	}
	return prons, nil
}

// parseCompletion splits a model reply into candidate transcriptions.
// The chat API exposes no sequence scores, so all candidates carry
// confidence 1.0.
func parseCompletion(content string) []Pronunciation {
	fields := strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]Pronunciation, 0, len(fields))
	for _, f := range fields {
		if cleaned := ipa.Clean(f); cleaned != "" {
			out = append(out, Pronunciation{IPA: cleaned, Confidence: 1.0})
		}
	}
	return out
}
