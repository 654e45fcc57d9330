package routers

import (
	"healthportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachNewsRoutes(router chi.Router, newsController *controllers.NewsController) {
	router.Get("/", newsController.GetHealthcareNews)
	router.Get("/image", newsController.ProxyImage)
}
