package prescriptions

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClient struct {
	reply    string
	err      error
	requests []contracts.GenerateRequest
}

func (s *stubClient) Name() string { return constvars.AIProviderGemini }

func (s *stubClient) GenerateContent(ctx context.Context, request contracts.GenerateRequest) (string, error) {
	s.requests = append(s.requests, request)
	return s.reply, s.err
}

func (s *stubClient) Close() error { return nil }

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, data []byte, bucketName, objectName, contentType string) (string, error) {
	args := m.Called(ctx, data, bucketName, objectName, contentType)
	return args.String(0), args.Error(1)
}

func newTestUsecase(client contracts.GenerativeClient, storage contracts.Storage) *prescriptionUsecase {
	return &prescriptionUsecase{
		Client:       client,
		Storage:      storage,
		BucketName:   "prescriptions",
		MaxImageSize: constvars.MaxPrescriptionImageSize,
		Log:          zap.NewNop(),
	}
}

func customErrorOf(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr
}

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

const fencedReply = "Here you go:\n```json\n{\"fullText\":\"Amoxicillin 500mg\",\"medicines\":[{\"name\":\"Amoxicillin\",\"dosage\":\"500mg\",\"instructions\":\"twice daily\"}],\"diagnosis\":\"Sinusitis\",\"followUp\":\"1 week\",\"recommendations\":[\"Rest\"]}\n```"

func TestImageSizeLimitPerType(t *testing.T) {
	ctx := context.Background()

	for _, mimeType := range []string{constvars.MIMEImageJPEG, constvars.MIMEImagePNG, constvars.MIMEImageWebP} {
		t.Run(mimeType, func(t *testing.T) {
			uc := newTestUsecase(&stubClient{reply: "{}"}, nil)

			atLimit := bytes.Repeat([]byte{1}, constvars.MaxPrescriptionImageSize)
			_, err := uc.ScanPrescription(ctx, &requests.PrescriptionImage{MIMEType: mimeType, Data: atLimit})
			require.NoError(t, err)

			overLimit := append(atLimit, 1)
			_, err = uc.ScanPrescription(ctx, &requests.PrescriptionImage{MIMEType: mimeType, Data: overLimit})
			assert.Equal(t, constvars.ErrClientImageTooLarge, customErrorOf(t, err).ClientMessage)
		})
	}
}

func TestRejectsOtherTypes(t *testing.T) {
	ctx := context.Background()
	client := &stubClient{reply: "{}"}
	uc := newTestUsecase(client, nil)

	for _, mimeType := range []string{"image/gif", "application/pdf", "text/plain", "image/svg+xml"} {
		_, err := uc.ScanPrescription(ctx, &requests.PrescriptionImage{MIMEType: mimeType, Data: []byte("data")})
		customErr := customErrorOf(t, err)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidImageType, customErr.ClientMessage)
	}
	assert.Empty(t, client.requests)
}

func TestScanPrescription(t *testing.T) {
	ctx := context.Background()

	t.Run("No image", func(t *testing.T) {
		_, err := newTestUsecase(&stubClient{}, nil).ScanPrescription(ctx, &requests.PrescriptionImage{})
		assert.Equal(t, constvars.ErrClientNoImageProvided, customErrorOf(t, err).ClientMessage)
	})

	t.Run("Missing client is a configuration error", func(t *testing.T) {
		_, err := newTestUsecase(nil, nil).ScanPrescription(ctx, &requests.PrescriptionImage{MIMEType: constvars.MIMEImagePNG, Data: pngHeader})
		customErr := customErrorOf(t, err)
		assert.Equal(t, 500, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientServerConfiguration, customErr.ClientMessage)
	})

	t.Run("Parsed reply with sniffed type and archive", func(t *testing.T) {
		client := &stubClient{reply: fencedReply}
		storage := new(MockStorage)
		storage.On("UploadObject", mock.Anything, pngHeader, "prescriptions",
			mock.MatchedBy(func(name string) bool {
				return strings.HasPrefix(name, "prescriptions/patient-1/") && strings.HasSuffix(name, ".png")
			}), constvars.MIMEImagePNG).Return("etag", nil)
		uc := newTestUsecase(client, storage)

		scan, err := uc.ScanPrescription(ctx, &requests.PrescriptionImage{OwnerID: "patient-1", Data: pngHeader})

		require.NoError(t, err)
		assert.Equal(t, constvars.ParseStatusParsed, scan.ParseStatus)
		require.Len(t, scan.Medicines, 1)
		assert.Equal(t, "Amoxicillin", scan.Medicines[0].Name)
		assert.Equal(t, "Sinusitis", scan.Diagnosis)
		assert.NotEmpty(t, scan.ImageObject)
		require.Len(t, client.requests, 1)
		assert.Equal(t, constvars.MIMEImagePNG, client.requests[0].Images[0].MIMEType)
		storage.AssertExpectations(t)
	})

	t.Run("Plain text reply falls back to full text", func(t *testing.T) {
		uc := newTestUsecase(&stubClient{reply: "I could not read this prescription."}, nil)

		scan, err := uc.ScanPrescription(ctx, &requests.PrescriptionImage{MIMEType: constvars.MIMEImageJPEG, Data: []byte{0xFF, 0xD8, 0xFF}})

		require.NoError(t, err)
		assert.Equal(t, constvars.ParseStatusFallback, scan.ParseStatus)
		assert.Equal(t, "I could not read this prescription.", scan.FullText)
		assert.NotNil(t, scan.Medicines)
		assert.NotNil(t, scan.Recommendations)
	})

	t.Run("Archive failure does not fail the scan", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("minio down"))
		uc := newTestUsecase(&stubClient{reply: "{}"}, storage)

		scan, err := uc.ScanPrescription(ctx, &requests.PrescriptionImage{MIMEType: constvars.MIMEImageWebP, Data: []byte("RIFF0000WEBP")})

		require.NoError(t, err)
		assert.Empty(t, scan.ImageObject)
	})

	t.Run("Provider failure", func(t *testing.T) {
		uc := newTestUsecase(&stubClient{err: errors.New("quota")}, nil)

		_, err := uc.ScanPrescription(ctx, &requests.PrescriptionImage{MIMEType: constvars.MIMEImagePNG, Data: pngHeader})

		customErr := customErrorOf(t, err)
		assert.Equal(t, 502, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientPrescriptionProcessingFailed, customErr.ClientMessage)
	})

	t.Run("Provider deadline", func(t *testing.T) {
		uc := newTestUsecase(&stubClient{err: context.DeadlineExceeded}, nil)

		_, err := uc.ScanPrescription(ctx, &requests.PrescriptionImage{MIMEType: constvars.MIMEImagePNG, Data: pngHeader})

		assert.Equal(t, 504, customErrorOf(t, err).StatusCode)
	})
}
