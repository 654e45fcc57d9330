package controllers

import (
	"context"
	"errors"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// multipartOverhead leaves room for boundaries and part headers around the image.
const multipartOverhead = 1 << 20

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
	MaxImageSize        int64
	Timeout             time.Duration
}

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase, maxImageSize int64, timeout time.Duration) *PrescriptionController {
	if maxImageSize <= 0 {
		maxImageSize = constvars.MaxPrescriptionImageSize
	}
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: prescriptionUsecase,
		MaxImageSize:        maxImageSize,
		Timeout:             timeout,
	}
}

func (ctrl *PrescriptionController) ScanPrescription(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	err := r.ParseMultipartForm(ctrl.MaxImageSize + multipartOverhead)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageTooLarge(err))
			return
		}
		if errors.Is(err, http.ErrNotMultipart) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNoImageProvided(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(constvars.FormFieldImage)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNoImageProvided(err))
		return
	}
	defer file.Close()

	// One byte past the limit is enough for the usecase to reject the upload.
	data, err := io.ReadAll(io.LimitReader(file, ctrl.MaxImageSize+1))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.PrescriptionImage{
		FileName: header.Filename,
		MIMEType: header.Header.Get(constvars.HeaderContentType),
		Data:     data,
	}
	if session := utils.GetSession(r.Context()); session != nil {
		request.OwnerID = session.UserID
	}

	ctrl.Log.Info("PrescriptionController.ScanPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMIMETypeKey, request.MIMEType),
		zap.Int(constvars.LoggingSizeKey, len(data)))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.ScanPrescription(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionScanSuccessMessage, result)
}
