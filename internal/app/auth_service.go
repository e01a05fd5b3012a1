package app

import (
	"errors"
	"strings"

	"github.com/Sakibh04/Job-Application-Tracker/internal/model"
	"github.com/Sakibh04/Job-Application-Tracker/internal/pkg/passhash"
	"github.com/Sakibh04/Job-Application-Tracker/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("username/email and password are required")
	ErrInvalidCredential  = errors.New("invalid username/email or password")
)

type AuthService struct {
	userRepo *repository.UserRepository
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register validates and stores a new account. Field-level problems come back
// as a *ValidationError; the duplicate check deliberately reports the same
// message on both fields so the response does not reveal which one is taken.
func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := input.Password

	fields := map[string]string{}
	switch {
	case username == "":
		fields["username"] = "Username is required"
	case len(username) < 3:
		fields["username"] = "Username must be at least 3 characters"
	}
	switch {
	case email == "":
		fields["email"] = "Email is required"
	case !strings.Contains(email, "@"):
		fields["email"] = "Please enter a valid email address"
	}
	switch {
	case password == "":
		fields["password"] = "Password is required"
	case len(password) < 6:
		fields["password"] = "Password must be at least 6 characters"
	}
	if password != input.ConfirmPassword {
		fields["confirmPassword"] = "Passwords do not match"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	existingByName, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	existingByEmail, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existingByName != nil || existingByEmail != nil {
		message := "Username or email is not available"
		return nil, &ValidationError{Fields: map[string]string{
			"username": message,
			"email":    message,
		}}
	}

	hash, err := passhash.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves identifier as a username first, then as a lower-cased
// email, and verifies the password against the stored hash.
func (s *AuthService) Authenticate(identifier, password string) (*model.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetByUsername(identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.GetByEmail(strings.ToLower(identifier))
		if err != nil {
			return nil, err
		}
	}
	if user == nil || !passhash.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}
	return user, nil
}
