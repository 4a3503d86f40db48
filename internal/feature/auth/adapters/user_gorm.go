// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"disaster_backend/internal/feature/auth/domain/entity"
	"disaster_backend/internal/feature/auth/usecase"
)

// userGorm is the GORM implementation of the UserRepository interface.
// It works against SQLite by default and Postgres in production.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements usecase.UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm backed by the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// GORM's error translation covers SQLite; Postgres is additionally matched on
// SQLSTATE 23505 in case the driver surfaces the raw pgconn error.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create persists the user inside a single transaction.
// If a user with the same email already exists, it returns usecase.ErrEmailAlreadyExists;
// on any other failure the transaction is rolled back and nothing remains visible.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// It returns usecase.ErrUserNotFound if no user matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmailAndDigest retrieves a user only when both email and password digest
// match exactly. It returns usecase.ErrUserNotFound if no row matches.
func (r *userGorm) FindByEmailAndDigest(ctx context.Context, email, digest string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND password_hash = ?", email, digest).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
