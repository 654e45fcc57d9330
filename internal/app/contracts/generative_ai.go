package contracts

import "context"

type InlineImage struct {
	MIMEType string
	Data     []byte
}

type GenerateRequest struct {
	Prompt string
	Images []InlineImage
}

type GenerativeClient interface {
	Name() string
	GenerateContent(ctx context.Context, request GenerateRequest) (string, error)
	Close() error
}
