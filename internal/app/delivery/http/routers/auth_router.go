package routers

import (
	"healthportal-service/internal/app/delivery/http/controllers"
	"healthportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/register", authController.Register)
	router.Post("/google", authController.LoginWithGoogle)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.OptionalAuthenticate).Get("/session", authController.Session)
}
