package routers

import (
	"healthportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTranslationRoutes(router chi.Router, translationController *controllers.TranslationController) {
	router.Post("/translate", translationController.Translate)
	router.Post("/translate-gemini", translationController.TranslateWithGemini)
	router.Post("/translate-fallback", translationController.TranslateWithFallbackPrompt)
	router.Get("/translations/ui", translationController.GetUITranslations)
	router.Get("/translations/languages", translationController.GetLanguages)
}
