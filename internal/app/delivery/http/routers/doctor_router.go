package routers

import (
	"healthportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Get("/specialities", doctorController.FindSpecialities)
	router.Get("/{doctor_id}", doctorController.FindByID)
	router.Get("/{doctor_id}/related", doctorController.FindRelated)
}
