package contracts

import (
	"context"
	"io"
)

type ProxiedImage struct {
	ContentType string
	Body        io.ReadCloser
}

type NewsService interface {
	FetchHealthcareNews(ctx context.Context) ([]byte, error)
	ProxyImage(ctx context.Context, rawURL string) (*ProxiedImage, error)
}
