package appointments

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"sort"
	"sync"
)

type appointmentMemoryStore struct {
	mu     sync.Mutex
	owners map[string][]models.Appointment
}

func NewAppointmentMemoryStore() contracts.AppointmentStore {
	return &appointmentMemoryStore{
		owners: make(map[string][]models.Appointment),
	}
}

func (s *appointmentMemoryStore) List(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAppointments(s.owners[ownerID]), nil
}

func (s *appointmentMemoryStore) Mutate(ctx context.Context, ownerID string, fn func([]models.Appointment) ([]models.Appointment, error)) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(cloneAppointments(s.owners[ownerID]))
	if err != nil {
		return nil, err
	}
	s.owners[ownerID] = cloneAppointments(updated)
	return cloneAppointments(updated), nil
}

func (s *appointmentMemoryStore) ListAll(ctx context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owners := make([]string, 0, len(s.owners))
	for owner := range s.owners {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	var result []models.Appointment
	for _, owner := range owners {
		result = append(result, s.owners[owner]...)
	}
	return cloneAppointments(result), nil
}

func cloneAppointments(list []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, len(list))
	copy(out, list)
	return out
}
