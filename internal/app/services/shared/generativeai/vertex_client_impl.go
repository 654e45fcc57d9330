package generativeai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

const vertexScope = "https://www.googleapis.com/auth/cloud-platform"

type VertexConfig struct {
	ProjectID   string
	Location    string
	Model       string
	ClientEmail string
	PrivateKey  string
	Temperature float32
}

// VertexClient calls the Vertex AI generateContent REST endpoint with a service account.
type VertexClient struct {
	httpc    *http.Client
	endpoint string
	temp     float32
}

func NewVertexClient(ctx context.Context, cfg VertexConfig) (*VertexClient, error) {
	if cfg.ProjectID == "" || cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return nil, errors.New(constvars.ErrDevVertexNotConfigured)
	}
	jwtConfig := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{vertexScope},
		TokenURL:   google.JWTTokenURL,
	}
	return newVertexClient(jwtConfig.Client(ctx), vertexEndpoint(cfg), cfg.Temperature), nil
}

func newVertexClient(httpc *http.Client, endpoint string, temperature float32) *VertexClient {
	return &VertexClient{httpc: httpc, endpoint: endpoint, temp: temperature}
}

func vertexEndpoint(cfg VertexConfig) string {
	location := cfg.Location
	if location == "" {
		location = constvars.DefaultVertexLocation
	}
	return fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		location, cfg.ProjectID, location, cfg.Model,
	)
}

func (c *VertexClient) Name() string { return constvars.AIProviderVertex }

type vertexPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *vertexInlineData `json:"inlineData,omitempty"`
}

type vertexInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

type vertexRequest struct {
	Contents []struct {
		Role  string       `json:"role"`
		Parts []vertexPart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature float32 `json:"temperature"`
	} `json:"generationConfig"`
}

type vertexResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *VertexClient) GenerateContent(ctx context.Context, request contracts.GenerateRequest) (string, error) {
	parts := []vertexPart{{Text: request.Prompt}}
	for _, image := range request.Images {
		parts = append(parts, vertexPart{InlineData: &vertexInlineData{MIMEType: image.MIMEType, Data: image.Data}})
	}

	var body vertexRequest
	body.Contents = append(body.Contents, struct {
		Role  string       `json:"role"`
		Parts []vertexPart `json:"parts"`
	}{Role: "user", Parts: parts})
	body.GenerationConfig.Temperature = c.temp

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("vertex %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var out vertexResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	for _, candidate := range out.Candidates {
		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			sb.WriteString(part.Text)
		}
		if sb.Len() > 0 {
			return sb.String(), nil
		}
	}
	return "", errors.New(constvars.ErrDevGenerativeAIEmptyResponse)
}

func (c *VertexClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}
