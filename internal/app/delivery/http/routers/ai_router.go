package routers

import (
	"healthportal-service/internal/app/delivery/http/controllers"
	"healthportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// attachAIRoutes mounts the generative AI features. OptionalAuthenticate runs first so the quota is keyed by session when there is one.
func attachAIRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	prescriptionController *controllers.PrescriptionController,
	symptomController *controllers.SymptomController,
) {
	router.With(middlewares.OptionalAuthenticate, middlewares.AIQuotaLimit).Post("/ocr", prescriptionController.ScanPrescription)
	router.With(middlewares.OptionalAuthenticate, middlewares.AIQuotaLimit).Post("/analyze-symptoms", symptomController.AnalyzeSymptoms)
}
