package routers

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) LoginWithEmailPassword(ctx context.Context, request *requests.LoginUser) (*responses.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) LoginWithGoogle(ctx context.Context, request *requests.GoogleLogin) (*responses.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionToken string) error {
	args := m.Called(ctx, sessionToken)
	return args.Error(0)
}

func (m *MockAuthUsecase) GetSession(ctx context.Context, sessionToken string) (*models.Session, error) {
	args := m.Called(ctx, sessionToken)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) ListAppointments(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	args := m.Called(ctx, ownerID)
	result, _ := args.Get(0).([]models.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) AddAppointment(ctx context.Context, ownerID string, request *requests.CreateAppointment) (*responses.AppointmentMutation, error) {
	args := m.Called(ctx, ownerID, request)
	result, _ := args.Get(0).(*responses.AppointmentMutation)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) RemoveAppointment(ctx context.Context, ownerID string, index int) (*responses.AppointmentMutation, error) {
	args := m.Called(ctx, ownerID, index)
	result, _ := args.Get(0).(*responses.AppointmentMutation)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) RemoveAppointmentByID(ctx context.Context, ownerID, appointmentID string) (*responses.AppointmentMutation, error) {
	args := m.Called(ctx, ownerID, appointmentID)
	result, _ := args.Get(0).(*responses.AppointmentMutation)
	return result, args.Error(1)
}

type MockPrescriptionUsecase struct {
	mock.Mock
}

func (m *MockPrescriptionUsecase) ScanPrescription(ctx context.Context, request *requests.PrescriptionImage) (*models.PrescriptionScan, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.PrescriptionScan)
	return result, args.Error(1)
}

type MockTranslationUsecase struct {
	mock.Mock
}

func (m *MockTranslationUsecase) Translate(ctx context.Context, request *requests.Translate) (*models.Translation, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Translation)
	return result, args.Error(1)
}

func (m *MockTranslationUsecase) TranslateWithGemini(ctx context.Context, request *requests.Translate) (*models.Translation, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Translation)
	return result, args.Error(1)
}

func (m *MockTranslationUsecase) TranslateWithFallbackPrompt(ctx context.Context, request *requests.Translate) (*models.Translation, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Translation)
	return result, args.Error(1)
}

func (m *MockTranslationUsecase) GetUITranslations(ctx context.Context, language string) *responses.UITranslations {
	args := m.Called(ctx, language)
	result, _ := args.Get(0).(*responses.UITranslations)
	return result
}

func (m *MockTranslationUsecase) ListLanguages(ctx context.Context) *responses.Languages {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Languages)
	return result
}

type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) FetchHealthcareNews(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]byte)
	return result, args.Error(1)
}

func (m *MockNewsService) ProxyImage(ctx context.Context, rawURL string) (*contracts.ProxiedImage, error) {
	args := m.Called(ctx, rawURL)
	result, _ := args.Get(0).(*contracts.ProxiedImage)
	return result, args.Error(1)
}

type MockDashboardUsecase struct {
	mock.Mock
}

func (m *MockDashboardUsecase) PatientDashboard(ctx context.Context, session *models.Session) (*responses.PatientDashboard, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.PatientDashboard)
	return result, args.Error(1)
}

func (m *MockDashboardUsecase) ProviderDashboard(ctx context.Context, session *models.Session) (*responses.ProviderDashboard, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.ProviderDashboard)
	return result, args.Error(1)
}

func (m *MockDashboardUsecase) AdminDashboard(ctx context.Context, session *models.Session) (*responses.AdminDashboard, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.AdminDashboard)
	return result, args.Error(1)
}
