package dashboards

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/responses"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

const appointmentDateLayout = "2006-01-02"

var patientQuickLinks = []responses.QuickLink{
	{Label: "Book Appointment", Path: "/patient/appointments/book"},
	{Label: "Scan Prescription", Path: "/patient/prescription-scanner"},
	{Label: "My Records", Path: "/patient/records"},
	{Label: "Symptom Checker", Path: "/patient/symptom-checker"},
}

type dashboardUsecase struct {
	AppointmentStore contracts.AppointmentStore
	DoctorRepository contracts.DoctorRepository
	UserRepository   contracts.UserRepository
	Log              *zap.Logger
	now              func() time.Time
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(
	appointmentStore contracts.AppointmentStore,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			AppointmentStore: appointmentStore,
			DoctorRepository: doctorRepository,
			UserRepository:   userRepository,
			Log:              logger,
			now:              time.Now,
		}
	})
	return dashboardUsecaseInstance
}

func (uc *dashboardUsecase) PatientDashboard(ctx context.Context, session *models.Session) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.PatientDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	list, err := uc.AppointmentStore.List(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("dashboardUsecase.PatientDashboard error listing appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	today := uc.now().Format(appointmentDateLayout)
	upcoming := make([]models.Appointment, 0, len(list))
	for _, appointment := range list {
		if appointment.Date >= today {
			upcoming = append(upcoming, appointment)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].Time < upcoming[j].Time
	})

	links := make([]responses.QuickLink, len(patientQuickLinks))
	copy(links, patientQuickLinks)

	return &responses.PatientDashboard{
		User:                 session,
		UpcomingAppointments: upcoming,
		QuickLinks:           links,
	}, nil
}

func (uc *dashboardUsecase) ProviderDashboard(ctx context.Context, session *models.Session) (*responses.ProviderDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.ProviderDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	doctors, err := uc.DoctorRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	all, err := uc.AppointmentStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := uc.now().Format(appointmentDateLayout)
	count := 0
	for _, appointment := range all {
		if appointment.Date == today {
			count++
		}
	}

	return &responses.ProviderDashboard{
		User:                   session,
		Doctors:                len(doctors),
		TodayAppointmentsCount: count,
	}, nil
}

func (uc *dashboardUsecase) AdminDashboard(ctx context.Context, session *models.Session) (*responses.AdminDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.AdminDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	users, err := uc.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := uc.DoctorRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	all, err := uc.AppointmentStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	usersByRole := map[string]int{
		constvars.RolePatient:  0,
		constvars.RoleProvider: 0,
		constvars.RoleAdmin:    0,
	}
	for _, user := range users {
		usersByRole[string(user.Role)]++
	}

	return &responses.AdminDashboard{
		User:              session,
		UsersByRole:       usersByRole,
		DoctorsCount:      len(doctors),
		AppointmentsCount: len(all),
	}, nil
}
