package appointments

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/app/services/shared/locker"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// appointmentRedisStore keeps each owner's list as one JSON value under
// appointments:<owner>. Mutations hold lock:appointments:<owner>.
type appointmentRedisStore struct {
	RedisRepository contracts.RedisRepository
	Locker          contracts.LockerService
	Log             *zap.Logger
}

func NewAppointmentRedisStore(redisRepository contracts.RedisRepository, lockerService contracts.LockerService, logger *zap.Logger) contracts.AppointmentStore {
	return &appointmentRedisStore{
		RedisRepository: redisRepository,
		Locker:          lockerService,
		Log:             logger,
	}
}

func (s *appointmentRedisStore) List(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	return s.load(ctx, constvars.RedisKeyAppointmentsPrefix+ownerID)
}

func (s *appointmentRedisStore) Mutate(ctx context.Context, ownerID string, fn func([]models.Appointment) ([]models.Appointment, error)) ([]models.Appointment, error) {
	key := constvars.RedisKeyAppointmentsPrefix + ownerID
	var updated []models.Appointment

	err := locker.WithLock(ctx, s.Locker, constvars.RedisKeyAppointmentsLock+ownerID,
		constvars.AppointmentLockExpiration,
		constvars.AppointmentLockMaxRetries,
		constvars.AppointmentLockRetryBackoff,
		func() error {
			current, err := s.load(ctx, key)
			if err != nil {
				return err
			}
			updated, err = fn(current)
			if err != nil {
				return err
			}
			return s.RedisRepository.Set(ctx, key, updated, 0)
		},
	)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		s.Log.Info("appointmentRedisStore.Mutate failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}
	return updated, nil
}

func (s *appointmentRedisStore) ListAll(ctx context.Context) ([]models.Appointment, error) {
	keys, err := s.RedisRepository.ScanKeys(ctx, constvars.RedisKeyAppointmentsPrefix+"*")
	if err != nil {
		return nil, err
	}

	var result []models.Appointment
	for _, key := range keys {
		list, err := s.load(ctx, key)
		if err != nil {
			return nil, err
		}
		result = append(result, list...)
	}
	return result, nil
}

func (s *appointmentRedisStore) load(ctx context.Context, key string) ([]models.Appointment, error) {
	raw, err := s.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	list := make([]models.Appointment, 0)
	if raw == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return list, nil
}
