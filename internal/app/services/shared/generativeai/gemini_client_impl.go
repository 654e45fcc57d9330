package generativeai

import (
	"context"
	"errors"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// contentGenerator is satisfied by *genai.GenerativeModel.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiClient struct {
	client *genai.Client
	model  contentGenerator
	name   string
}

// NewGeminiClient opens a Gemini API client bound to one model.
func NewGeminiClient(ctx context.Context, apiKey, model string, temperature float32) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New(constvars.ErrDevGenerativeAIKeyMissing)
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	m := cl.GenerativeModel(strings.TrimSpace(model))
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(temperature),
	}

	return &GeminiClient{client: cl, model: m, name: constvars.AIProviderGemini}, nil
}

func (c *GeminiClient) Name() string { return c.name }

func (c *GeminiClient) GenerateContent(ctx context.Context, request contracts.GenerateRequest) (string, error) {
	parts := make([]genai.Part, 0, len(request.Images)+1)
	parts = append(parts, genai.Text(request.Prompt))
	for _, image := range request.Images {
		parts = append(parts, &genai.Blob{MIMEType: image.MIMEType, Data: image.Data})
	}

	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	text := firstText(resp)
	if text == "" {
		return "", errors.New(constvars.ErrDevGenerativeAIEmptyResponse)
	}
	return text, nil
}

func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// firstText concatenates the text parts of the first candidate that has any.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
