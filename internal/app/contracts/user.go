package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Insert fails with exceptions.ErrUserAlreadyExists when the email is taken.
	Insert(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
}
