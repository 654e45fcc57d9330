package doctors

import (
	"context"
	"fmt"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"sync"
)

// doctorMemoryRepository keeps insertion order so listings match the catalog.
type doctorMemoryRepository struct {
	mu      sync.RWMutex
	order   []string
	doctors map[string]models.Doctor
}

func NewDoctorMemoryRepository(seed []models.Doctor) contracts.DoctorRepository {
	repo := &doctorMemoryRepository{
		doctors: make(map[string]models.Doctor, len(seed)),
	}
	for _, doctor := range seed {
		repo.order = append(repo.order, doctor.ID)
		repo.doctors[doctor.ID] = doctor
	}
	return repo
}

func (r *doctorMemoryRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor, ok := r.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *doctorMemoryRepository) List(ctx context.Context) ([]models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Doctor, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.doctors[id])
	}
	return result, nil
}

func (r *doctorMemoryRepository) Insert(ctx context.Context, doctor *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.doctors[doctor.ID]; exists {
		return fmt.Errorf("doctor %s already exists", doctor.ID)
	}
	r.order = append(r.order, doctor.ID)
	r.doctors[doctor.ID] = *doctor
	return nil
}
