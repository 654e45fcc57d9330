package googleauth

import (
	"context"
	"errors"
	"testing"

	"healthportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestGoogleVerifier(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing client id is a configuration error", func(t *testing.T) {
		verifier := NewGoogleVerifier("")

		_, err := verifier.Verify(ctx, "token")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 500, customErr.StatusCode)
	})

	t.Run("Valid token yields identity", func(t *testing.T) {
		verifier := &googleVerifier{clientID: "client", validate: func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "client", audience)
			return &idtoken.Payload{Claims: map[string]interface{}{
				"email":          "Jane@Gmail.com",
				"email_verified": true,
				"name":           "Jane",
				"picture":        "https://lh3.googleusercontent.com/a/pic",
			}}, nil
		}}

		identity, err := verifier.Verify(ctx, "token")

		require.NoError(t, err)
		assert.Equal(t, "jane@gmail.com", identity.Email)
		assert.Equal(t, "Jane", identity.Name)
		assert.Equal(t, "https://lh3.googleusercontent.com/a/pic", identity.Picture)
	})

	t.Run("Invalid token", func(t *testing.T) {
		verifier := &googleVerifier{clientID: "client", validate: func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return nil, errors.New("audience mismatch")
		}}

		_, err := verifier.Verify(ctx, "token")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("Unverified email", func(t *testing.T) {
		verifier := &googleVerifier{clientID: "client", validate: func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Claims: map[string]interface{}{"email": "a@b.co", "email_verified": false}}, nil
		}}

		_, err := verifier.Verify(ctx, "token")

		assert.Error(t, err)
	})
}
