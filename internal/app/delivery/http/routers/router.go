package routers

import (
	"fmt"
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/app/delivery/http/controllers"
	"healthportal-service/internal/app/delivery/http/middlewares"
	"healthportal-service/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	pageController *controllers.PageController,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	appointmentController *controllers.AppointmentController,
	prescriptionController *controllers.PrescriptionController,
	symptomController *controllers.SymptomController,
	translationController *controllers.TranslationController,
	newsController *controllers.NewsController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimitByIP())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.LimitRequestBody)

	router.Get("/healthz", healthController.Healthz)
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middlewares.ProtectRoutes)
		attachPageRoutes(r, pageController)
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, doctorController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			attachAIRoutes(r, middlewares, prescriptionController, symptomController)
			attachTranslationRoutes(r, translationController)

			r.Route("/news", func(r chi.Router) {
				attachNewsRoutes(r, newsController)
			})
		})
	})
}
