package googleauth

import (
	"context"
	"errors"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/exceptions"
	"strings"

	"google.golang.org/api/idtoken"
)

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type googleVerifier struct {
	clientID string
	validate validateFunc
}

func NewGoogleVerifier(clientID string) contracts.GoogleTokenVerifier {
	return &googleVerifier{clientID: clientID, validate: idtoken.Validate}
}

func (v *googleVerifier) Verify(ctx context.Context, idToken string) (*contracts.GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, exceptions.ErrGoogleClientIDMissing(nil)
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, exceptions.ErrGoogleTokenInvalid(err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, exceptions.ErrGoogleTokenInvalid(errors.New("token has no email claim"))
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, exceptions.ErrGoogleTokenInvalid(errors.New("email is not verified"))
	}

	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	return &contracts.GoogleIdentity{
		Email:   strings.ToLower(email),
		Name:    name,
		Picture: picture,
	}, nil
}
