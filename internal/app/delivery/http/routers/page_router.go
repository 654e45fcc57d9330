package routers

import (
	"healthportal-service/internal/app/delivery/http/controllers"
	"healthportal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPageRoutes(router chi.Router, pageController *controllers.PageController) {
	router.Get(constvars.PagePathAuth, pageController.AuthPage)
	router.Get(constvars.PagePathPatientDashboard, pageController.PatientDashboard)
	router.Get(constvars.PagePathPatientAppts, pageController.PatientAppointments)
	router.Get(constvars.PagePathProviderDashboard, pageController.ProviderDashboard)
	router.Get(constvars.PagePathAdminDashboard, pageController.AdminDashboard)
}
