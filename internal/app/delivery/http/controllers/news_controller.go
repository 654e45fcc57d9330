package controllers

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/utils"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type NewsController struct {
	Log         *zap.Logger
	NewsService contracts.NewsService
	Timeout     time.Duration
}

func NewNewsController(logger *zap.Logger, newsService contracts.NewsService, timeout time.Duration) *NewsController {
	return &NewsController{
		Log:         logger,
		NewsService: newsService,
		Timeout:     timeout,
	}
}

// GetHealthcareNews passes the upstream news document through untouched.
func (ctrl *NewsController) GetHealthcareNews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	body, err := ctrl.NewsService.FetchHealthcareNews(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawJSONResponse(w, constvars.StatusOK, body)
}

func (ctrl *NewsController) ProxyImage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	image, err := ctrl.NewsService.ProxyImage(ctx, r.URL.Query().Get(constvars.URLQueryParamURL))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	defer image.Body.Close()

	w.Header().Set(constvars.HeaderContentType, image.ContentType)
	w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlImmutableOneYear)
	w.WriteHeader(constvars.StatusOK)

	if _, err := io.Copy(w, image.Body); err != nil {
		ctrl.Log.Warn("NewsController.ProxyImage stream interrupted",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err))
	}
}
