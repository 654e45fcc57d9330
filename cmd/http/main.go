package main

import (
	"context"
	"fmt"
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/delivery/http/controllers"
	"healthportal-service/internal/app/delivery/http/middlewares"
	"healthportal-service/internal/app/delivery/http/routers"
	"healthportal-service/internal/app/drivers/database"
	"healthportal-service/internal/app/drivers/logger"
	"healthportal-service/internal/app/drivers/messaging"
	"healthportal-service/internal/app/drivers/storage"
	"healthportal-service/internal/app/metrics"
	"healthportal-service/internal/app/services/core/appointments"
	"healthportal-service/internal/app/services/core/auth"
	"healthportal-service/internal/app/services/core/dashboards"
	"healthportal-service/internal/app/services/core/doctors"
	"healthportal-service/internal/app/services/core/prescriptions"
	"healthportal-service/internal/app/services/core/session"
	"healthportal-service/internal/app/services/core/symptoms"
	"healthportal-service/internal/app/services/core/translations"
	"healthportal-service/internal/app/services/core/users"
	"healthportal-service/internal/app/services/shared/generativeai"
	"healthportal-service/internal/app/services/shared/googleauth"
	"healthportal-service/internal/app/services/shared/locker"
	"healthportal-service/internal/app/services/shared/news"
	"healthportal-service/internal/app/services/shared/notifier"
	"healthportal-service/internal/app/services/shared/ratelimiter"
	"healthportal-service/internal/app/services/shared/redis"
	sharedStorage "healthportal-service/internal/app/services/shared/storage"
	"healthportal-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	metrics.Register()

	ctx := context.Background()
	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.Redis.Enabled() {
		bootstrap.Redis = database.NewRedisClient(ctx, driverConfig)
	}
	if driverConfig.MongoDB.Enabled() && internalConfig.Storage.Driver == constvars.StorageDriverMongo {
		bootstrap.MongoDB = database.NewMongoDB(ctx, driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled() && internalConfig.RabbitMQ.AppointmentQueue != "" {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err := bootstrapingTheApp(ctx, bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Key-value store: Redis when configured, the in-process store otherwise
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	} else {
		redisRepository = redis.NewMemoryRepository()
	}

	// Users and doctors
	var userRepository contracts.UserRepository
	var doctorRepository contracts.DoctorRepository
	if bootstrap.MongoDB != nil {
		userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
		if mongoRepository, ok := userMongoRepository.(*users.UserMongoRepository); ok {
			err := mongoRepository.EnsureIndexes(ctx)
			if err != nil {
				return err
			}
		}
		userRepository = userMongoRepository
		doctorRepository = doctors.NewDoctorMongoRepository(bootstrap.MongoDB)
	} else {
		userRepository = users.NewUserMemoryRepository(users.MockUsers())
		doctorRepository = doctors.NewDoctorMemoryRepository(doctors.Catalog())
	}

	// Session
	sessionRepository := redis.NewMemoryRepository()
	if cfg.Session.Store == constvars.StorageDriverRedis && bootstrap.Redis != nil {
		sessionRepository = redisRepository
	}
	sessionMaxAge := time.Duration(cfg.Session.MaxAgeInHours) * time.Hour
	sessionService := session.NewSessionService(session.NewSessionStore(sessionRepository), cfg.JWT.Secret, sessionMaxAge, log)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, googleauth.NewGoogleVerifier(cfg.GoogleAuth.ClientID), cfg, log)

	// Appointments
	var appointmentStore contracts.AppointmentStore
	if cfg.Storage.AppointmentStore == constvars.StorageDriverRedis && bootstrap.Redis != nil {
		appointmentStore = appointments.NewAppointmentRedisStore(redisRepository, locker.NewLockService(redisRepository, log), log)
	} else {
		appointmentStore = appointments.NewAppointmentMemoryStore()
	}

	var appointmentNotifier contracts.AppointmentNotifier
	if bootstrap.RabbitMQ != nil {
		rabbitMQNotifier, err := notifier.NewRabbitMQNotifier(bootstrap.RabbitMQ, cfg.RabbitMQ.AppointmentQueue)
		if err != nil {
			return err
		}
		appointmentNotifier = rabbitMQNotifier
	}
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentStore, doctorRepository, appointmentNotifier, log)

	// Doctors and dashboards
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, log)
	dashboardUsecase := dashboards.NewDashboardUsecase(appointmentStore, doctorRepository, userRepository, log)

	// Generative AI
	aiConfig := cfg.GenerativeAI
	prescriptionClient, err := newGeminiClient(ctx, bootstrap, aiConfig.PrescriptionModel, constvars.AIFeaturePrescription)
	if err != nil {
		return err
	}
	symptomClient, err := newGeminiClient(ctx, bootstrap, aiConfig.SymptomModel, constvars.AIFeatureSymptoms)
	if err != nil {
		return err
	}
	translationClient, err := newGeminiClient(ctx, bootstrap, aiConfig.TranslationModel, constvars.AIFeatureTranslation)
	if err != nil {
		return err
	}

	var vertexClient contracts.GenerativeClient
	if cfg.Vertex.Enabled() {
		client, err := generativeai.NewVertexClient(ctx, generativeai.VertexConfig{
			ProjectID:   cfg.Vertex.ProjectID,
			Location:    cfg.Vertex.Location,
			Model:       cfg.Vertex.Model,
			ClientEmail: cfg.Vertex.ClientEmail,
			PrivateKey:  cfg.Vertex.PrivateKey,
			Temperature: float32(aiConfig.Temperature),
		})
		if err != nil {
			return err
		}
		throttled := generativeai.NewThrottledClient(client, constvars.AIFeatureTranslation, aiConfig.MaxRequestsPerSecond, aiConfig.BurstRequests)
		bootstrap.Closers = append(bootstrap.Closers, throttled)
		vertexClient = throttled
	} else {
		log.Warn("Vertex AI is not configured, translations go straight to Gemini")
	}

	var archiveStorage contracts.Storage
	bucketName := cfg.Minio.PrescriptionBucketName
	if bootstrap.DriverConfig.Minio.Enabled() && bucketName != "" {
		archiveStorage = sharedStorage.NewMinioStorage(storage.NewMinio(ctx, bootstrap.DriverConfig, bucketName))
	}

	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionClient, archiveStorage, bucketName, aiConfig.MaxImageSizeInByte, log)
	symptomUsecase := symptoms.NewSymptomUsecase(symptomClient, log)
	translationUsecase := translations.NewTranslationUsecase(
		vertexClient,
		translationClient,
		redisRepository,
		time.Duration(cfg.Translation.CacheTTLInHours)*time.Hour,
		log,
	)

	// News
	newsService := news.NewNewsService(
		cfg.News.BaseUrl,
		cfg.News.APIKey,
		time.Duration(cfg.News.CacheTTLInMinutes)*time.Minute,
		time.Duration(cfg.News.HTTPTimeoutInSeconds)*time.Second,
		redisRepository,
		log,
	)

	// AI quota is only metered against a shared Redis
	var aiQuota contracts.ResourceLimiter
	if bootstrap.Redis != nil {
		aiQuota = ratelimiter.NewResourceLimiter(redisRepository, log, "generative_ai", time.Minute, cfg.App.AIQuotaPerMinute)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, authUsecase, aiQuota, cfg)

	// Controllers
	requestTimeout := time.Duration(cfg.App.RequestTimeoutInSeconds) * time.Second
	aiTimeout := time.Duration(cfg.App.AIRequestTimeoutInSeconds) * time.Second

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewares,
		controllers.NewHealthController(cfg),
		controllers.NewPageController(log, dashboardUsecase, appointmentUsecase, cfg, requestTimeout),
		controllers.NewAuthController(log, authUsecase, cfg),
		controllers.NewDoctorController(log, doctorUsecase, requestTimeout),
		controllers.NewAppointmentController(log, appointmentUsecase, requestTimeout),
		controllers.NewPrescriptionController(log, prescriptionUsecase, aiConfig.MaxImageSizeInByte, aiTimeout),
		controllers.NewSymptomController(log, symptomUsecase, aiTimeout),
		controllers.NewTranslationController(log, translationUsecase, aiTimeout),
		controllers.NewNewsController(log, newsService, requestTimeout),
	)
	return nil
}

// newGeminiClient returns a nil interface when no API key is set so the usecases answer with a configuration error.
func newGeminiClient(ctx context.Context, bootstrap *config.Bootstrap, model, feature string) (contracts.GenerativeClient, error) {
	aiConfig := bootstrap.InternalConfig.GenerativeAI
	if aiConfig.GeminiAPIKey == "" {
		bootstrap.Logger.Warn("Gemini API key is not configured", zap.String(constvars.LoggingFeatureKey, feature))
		return nil, nil
	}

	client, err := generativeai.NewGeminiClient(ctx, aiConfig.GeminiAPIKey, model, float32(aiConfig.Temperature))
	if err != nil {
		return nil, err
	}

	throttled := generativeai.NewThrottledClient(client, feature, aiConfig.MaxRequestsPerSecond, aiConfig.BurstRequests)
	bootstrap.Closers = append(bootstrap.Closers, throttled)
	return throttled, nil
}
