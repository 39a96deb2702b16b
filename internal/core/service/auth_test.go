package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/service"
)

func TestLogin(t *testing.T) {
	t.Run("ShortPassword", func(t *testing.T) {
		auth := service.NewAuthService(newFileStore(t))
		_, err := auth.Login(t.Context(), "john@example.com", "12345")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.False(t, auth.IsAuthenticated())
	})

	t.Run("EmptyEmail", func(t *testing.T) {
		auth := service.NewAuthService(newFileStore(t))
		_, err := auth.Login(t.Context(), "", "123456")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("DerivesNameFromEmail", func(t *testing.T) {
		auth := service.NewAuthService(newFileStore(t))
		user, err := auth.Login(t.Context(), "john@example.com", "123456")
		require.NoError(t, err)
		assert.NotEmpty(t, user.UserID)
		assert.Equal(t, "John", user.FirstName)
		assert.Equal(t, "User", user.LastName)
		assert.True(t, auth.IsAuthenticated())
	})
}

func TestRegister(t *testing.T) {
	t.Run("MissingField", func(t *testing.T) {
		auth := service.NewAuthService(newFileStore(t))
		_, err := auth.Register(t.Context(), "jane@example.com", "123456", "", "Doe")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidRegistration)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		auth := service.NewAuthService(newFileStore(t))
		_, err := auth.Register(t.Context(), "jane@example.com", "123", "Jane", "Doe")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidRegistration)
	})

	t.Run("OverwritesResidentIdentity", func(t *testing.T) {
		auth := service.NewAuthService(newFileStore(t))

		_, err := auth.Login(t.Context(), "john@example.com", "123456")
		require.NoError(t, err)

		user, err := auth.Register(
			t.Context(), "jane@example.com", "123456", "Jane", "Doe",
		)
		require.NoError(t, err)

		current := auth.Current()
		require.NotNil(t, current)
		assert.Equal(t, user.UserID, current.UserID)
		assert.Equal(t, "jane@example.com", current.Email)
	})
}

func TestLogout(t *testing.T) {
	store := newFileStore(t)
	auth := service.NewAuthService(store)

	_, err := auth.Login(t.Context(), "john@example.com", "123456")
	require.NoError(t, err)

	auth.Logout()
	assert.Nil(t, auth.Current())
	assert.False(t, auth.IsAuthenticated())

	// the snapshot is gone as well: a fresh service sees nobody
	fresh := service.NewAuthService(store)
	assert.Nil(t, fresh.Current())
}

func TestAuthPersistence(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		store := newFileStore(t)

		first := service.NewAuthService(store)
		user, err := first.Login(t.Context(), "john@example.com", "123456")
		require.NoError(t, err)

		second := service.NewAuthService(store)
		current := second.Current()
		require.NotNil(t, current)
		assert.Equal(t, user, *current)
	})

	t.Run("CorruptSnapshotStartsLoggedOut", func(t *testing.T) {
		store := newFileStore(t)
		require.NoError(t, store.Save("techmart_user", 42))

		auth := service.NewAuthService(store)
		assert.Nil(t, auth.Current())
	})
}
