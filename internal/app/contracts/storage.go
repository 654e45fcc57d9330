package contracts

import (
	"context"
)

type Storage interface {
	UploadObject(ctx context.Context, data []byte, bucketName, objectName, contentType string) (string, error)
}
