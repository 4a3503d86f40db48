// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"strings"

	"disaster_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailAndDigest retrieves a user only if both email and password digest
	// match exactly. It returns ErrUserNotFound otherwise.
	FindByEmailAndDigest(ctx context.Context, email, digest string) (*entity.User, error)
}

// PasswordHasher produces the fixed-length digest stored for a user's password.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/hash).
type PasswordHasher interface {
	// Hash derives a deterministic, fixed-length hex digest from a plaintext password.
	Hash(plaintext string) string
}

// AuthUsecase implements registration and authentication.
type AuthUsecase struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewAuthUsecase creates a new AuthUsecase with the given repository and hasher.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher) *AuthUsecase {
	return &AuthUsecase{users: users, hasher: hasher}
}

// requireFields trims each value and returns a MissingFieldError naming the
// first field that is empty after trimming. The trimmed values are written back.
func requireFields(fields map[string]*string, order []string) error {
	for _, name := range order {
		v := strings.TrimSpace(*fields[name])
		if v == "" {
			return &MissingFieldError{Field: name}
		}
		*fields[name] = v
	}
	return nil
}

// Register creates a new user with a hashed password and returns the stored record.
// The email uniqueness pre-check is an optimization; the store's unique constraint
// is the arbiter when two registrations race on the same email.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password, phone string) (*entity.User, error) {
	err := requireFields(map[string]*string{
		"name": &name, "email": &email, "password": &password, "phone": &phone,
	}, []string{"name", "email", "password", "phone"})
	if err != nil {
		return nil, err
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: u.hasher.Hash(password),
		Phone:        phone,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by email and password.
// The lookup matches on email and digest together, so an unknown email and a
// wrong password both surface as the same ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	err := requireFields(map[string]*string{
		"email": &email, "password": &password,
	}, []string{"email", "password"})
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByEmailAndDigest(ctx, email, u.hasher.Hash(password))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
