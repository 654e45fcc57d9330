package users

import (
	"context"
	"testing"

	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeded users are found case-insensitively", func(t *testing.T) {
		repo := NewUserMemoryRepository(MockUsers())

		user, err := repo.FindByEmail(ctx, "Admin@Example.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "admin-1", user.ID)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.True(t, utils.CheckPasswordHash("admin123", user.Password))
	})

	t.Run("Unknown email returns nil without error", func(t *testing.T) {
		repo := NewUserMemoryRepository(MockUsers())

		user, err := repo.FindByEmail(ctx, "nobody@example.com")

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Duplicate insert is rejected", func(t *testing.T) {
		repo := NewUserMemoryRepository(nil)
		first := &models.User{ID: "user-1", Email: "new@example.com"}
		second := &models.User{ID: "user-2", Email: "NEW@example.com"}

		require.NoError(t, repo.Insert(ctx, first))
		err := repo.Insert(ctx, second)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("List is ordered by id", func(t *testing.T) {
		repo := NewUserMemoryRepository(MockUsers())

		list, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []string{"admin-1", "doctor-1", "patient-1"}, []string{list[0].ID, list[1].ID, list[2].ID})
	})
}
