// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and its Favorites list.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createUser, user.Email, user.Username, user.PasswordHash)
		if err := scanUser(row, &created); err != nil {
			if r.db.classify(err) == ClassUniqueViolation {
				return ErrEmailAlreadyExists
			}
			return err
		}

		if _, err := tx.ExecContext(ctx, createList, created.UserID, models.FavoritesListTitle, "[]", false); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, err
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_id", created.UserID).Msg("user created")
	return created, nil
}

// FindUserByEmail returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	if err := scanUser(r.db.QueryRowContext(ctx, findUserByEmail, email), &user); err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	if err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID), &user); err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error finding user")
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) UpdateEmail(ctx context.Context, userID int64, email string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateUserEmail, email, userID)
	if err != nil {
		if r.db.classify(err) == ClassUniqueViolation {
			return ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateEmail").Int64("user_id", userID).Msg("error updating email")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrUserNotFound)
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateUserPassword, passwordHash, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Int64("user_id", userID).Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrUserNotFound)
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrUserNotFound)
}

func scanUser(row *sql.Row, user *models.User) error {
	var profileImage sql.NullString
	err := row.Scan(&user.UserID, &user.Email, &user.Username, &user.PasswordHash,
		&profileImage, &user.Admin, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if profileImage.Valid {
		user.ProfileImage = &profileImage.String
	}
	return nil
}

// expectAffected returns notFound when res reports zero affected rows.
func expectAffected(res sql.Result, notFound error) error {
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
