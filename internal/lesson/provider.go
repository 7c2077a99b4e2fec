package lesson

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/Mahitha-23/ClassPilot/internal/config"
)

// ErrEmptyCompletion is returned when the model produces no usable text.
var ErrEmptyCompletion = errors.New("empty model response")

// Provider executes a prompt against a text-generation model and returns the
// raw completion text.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &geminiProvider{client: client, model: model}, nil
}

// Complete streams the completion and concatenates the chunks in order.
func (p *geminiProvider) Complete(ctx context.Context, prompt Prompt) (string, error) {
	log := config.WithContext(ctx)

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(prompt.Temperature),
		MaxOutputTokens: int32(prompt.MaxOutputTokens),
	}
	if prompt.SystemPersona != "" {
		cfg.SystemInstruction = genai.NewContentFromText(prompt.SystemPersona, genai.RoleUser)
	}

	var sb strings.Builder
	for chunk, err := range p.client.Models.GenerateContentStream(ctx, p.model, genai.Text(prompt.Text), cfg) {
		if err != nil {
			log.WithError(err).Error("Gemini stream failed")
			return "", fmt.Errorf("failed to generate content: %w", err)
		}
		sb.WriteString(chunk.Text())
	}

	raw := sb.String()
	log.Debugf("Raw model response:\n%s", raw)

	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyCompletion
	}
	return raw, nil
}
