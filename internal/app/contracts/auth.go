package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	LoginWithEmailPassword(ctx context.Context, request *requests.LoginUser) (*responses.AuthResult, error)
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResult, error)
	LoginWithGoogle(ctx context.Context, request *requests.GoogleLogin) (*responses.AuthResult, error)
	Logout(ctx context.Context, sessionToken string) error
	GetSession(ctx context.Context, sessionToken string) (*models.Session, error)
}

type GoogleIdentity struct {
	Email   string
	Name    string
	Picture string
}

type GoogleTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}
