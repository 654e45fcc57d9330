package prescriptions

import (
	"context"
	"errors"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/metrics"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/aiparse"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	Client       contracts.GenerativeClient
	Storage      contracts.Storage
	BucketName   string
	MaxImageSize int64
	Log          *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

// NewPrescriptionUsecase accepts a nil client when no API key is configured and a
// nil storage when archiving is disabled.
func NewPrescriptionUsecase(
	client contracts.GenerativeClient,
	storage contracts.Storage,
	bucketName string,
	maxImageSize int64,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		if maxImageSize <= 0 {
			maxImageSize = constvars.MaxPrescriptionImageSize
		}
		prescriptionUsecaseInstance = &prescriptionUsecase{
			Client:       client,
			Storage:      storage,
			BucketName:   bucketName,
			MaxImageSize: maxImageSize,
			Log:          logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) ScanPrescription(ctx context.Context, request *requests.PrescriptionImage) (*models.PrescriptionScan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.ScanPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSizeKey, len(request.Data)),
	)

	mimeType, err := uc.validateImage(request)
	if err != nil {
		uc.Log.Info("prescriptionUsecase.ScanPrescription image rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if uc.Client == nil {
		uc.Log.Error("prescriptionUsecase.ScanPrescription generative client not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrGenerativeAIConfig(nil)
	}

	text, err := uc.Client.GenerateContent(ctx, contracts.GenerateRequest{
		Prompt: prescriptionPrompt,
		Images: []contracts.InlineImage{{MIMEType: mimeType, Data: request.Data}},
	})
	if err != nil {
		uc.Log.Error("prescriptionUsecase.ScanPrescription error calling provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, uc.Client.Name()),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrGenerativeAIUpstream(err, constvars.ErrClientPrescriptionProcessingFailed)
	}

	scan := new(models.PrescriptionScan)
	status := aiparse.Decode(text, scan)
	aiparse.NormalizePrescription(scan, text, status)
	scan.Provider = uc.Client.Name()
	if status == aiparse.StatusFallback {
		metrics.AIParseFallbackTotal.WithLabelValues(constvars.AIFeaturePrescription).Inc()
	}

	scan.ImageObject = uc.archive(ctx, request, mimeType)

	uc.Log.Info("prescriptionUsecase.ScanPrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingParseStatusKey, scan.ParseStatus),
		zap.Int("medicines", len(scan.Medicines)),
	)
	return scan, nil
}

func (uc *prescriptionUsecase) validateImage(request *requests.PrescriptionImage) (string, error) {
	if len(request.Data) == 0 {
		return "", exceptions.ErrNoImageProvided(nil)
	}
	if int64(len(request.Data)) > uc.MaxImageSize {
		return "", exceptions.ErrImageTooLarge(nil)
	}
	mimeType := utils.PickImageMIME(request.MIMEType, request.Data)
	if _, ok := constvars.AllowedPrescriptionImageTypes[mimeType]; !ok {
		return "", exceptions.ErrInvalidImageType(nil, mimeType)
	}
	return mimeType, nil
}

// archive stores the image and returns its object name, or "" when archiving is
// disabled or fails.
func (uc *prescriptionUsecase) archive(ctx context.Context, request *requests.PrescriptionImage, mimeType string) string {
	if uc.Storage == nil || uc.BucketName == "" {
		return ""
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectName := utils.GeneratePrescriptionObjectName(request.OwnerID, constvars.AllowedPrescriptionImageTypes[mimeType])
	_, err := uc.Storage.UploadObject(ctx, request.Data, uc.BucketName, objectName, mimeType)
	if err != nil {
		uc.Log.Warn("prescriptionUsecase.ScanPrescription error archiving image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return ""
	}
	return objectName
}
