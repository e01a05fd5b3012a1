package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sakibh04/Job-Application-Tracker/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	repo := repository.NewUserRepository(newTestDB(t))
	return NewAuthService(repo), repo
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:        "alice",
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRegister_FieldValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		field   string
		message string
	}{
		{"missing username", func(in *RegisterInput) { in.Username = "" }, "username", "Username is required"},
		{"short username", func(in *RegisterInput) { in.Username = "ab" }, "username", "Username must be at least 3 characters"},
		{"missing email", func(in *RegisterInput) { in.Email = "" }, "email", "Email is required"},
		{"email without at", func(in *RegisterInput) { in.Email = "not-an-email" }, "email", "Please enter a valid email address"},
		{"missing password", func(in *RegisterInput) { in.Password = ""; in.ConfirmPassword = "" }, "password", "Password is required"},
		{"short password", func(in *RegisterInput) { in.Password = "abc12"; in.ConfirmPassword = "abc12" }, "password", "Password must be at least 6 characters"},
		{"confirm mismatch", func(in *RegisterInput) { in.ConfirmPassword = "other1" }, "confirmPassword", "Passwords do not match"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newAuthService(t)
			input := validRegisterInput()
			tt.mutate(&input)

			_, err := svc.Register(input)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Fields[tt.field])
		})
	}
}

func TestRegister_ShortPasswordCreatesNoUser(t *testing.T) {
	t.Parallel()

	svc, repo := newAuthService(t)
	input := validRegisterInput()
	input.Password = "abc"
	input.ConfirmPassword = "abc"

	_, err := svc.Register(input)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "password")

	user, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRegister_StoresDerivedHash(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	user, err := svc.Register(validRegisterInput())
	require.NoError(t, err)

	assert.NotContains(t, user.PasswordHash, "secret1")
	assert.Contains(t, user.PasswordHash, ":")
	assert.Equal(t, "a@x.com", user.Email)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	_, err := svc.Register(validRegisterInput())
	require.NoError(t, err)

	second := validRegisterInput()
	second.Email = "other@x.com"
	_, err = svc.Register(second)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Username or email is not available", validationErr.Fields["username"])
	assert.Equal(t, "Username or email is not available", validationErr.Fields["email"])
}

func TestRegister_DuplicateEmailDifferentCase(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	_, err := svc.Register(validRegisterInput())
	require.NoError(t, err)

	second := validRegisterInput()
	second.Username = "bob"
	second.Email = "A@X.COM"
	_, err = svc.Register(second)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	registered, err := svc.Register(validRegisterInput())
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		user, err := svc.Authenticate("alice", "secret1")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("by email any case", func(t *testing.T) {
		user, err := svc.Authenticate("A@X.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("alice", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := svc.Authenticate("nobody", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Authenticate(" ", "secret1")
		assert.ErrorIs(t, err, ErrMissingCredentials)
		_, err = svc.Authenticate("alice", "")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{"email": "x", "username": "y"}}
	assert.Equal(t, "invalid input: email, username", err.Error())
	assert.Equal(t, "invalid input", (&ValidationError{}).Error())
}
