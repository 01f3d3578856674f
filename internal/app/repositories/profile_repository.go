package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
)

// IProfileRepository defines the interface for profile database operations
type IProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, profile *models.Profile) error
}

// ProfileRepository handles profile rows.
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByUserID retrieves the profile belonging to a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	var p models.Profile
	err := r.db.QueryRow(ctx, `
		SELECT id, name, bio, avatar, dob, user_id, created_at, updated_at
		FROM profiles WHERE user_id = $1`, userID).
		Scan(&p.ID, &p.Name, &p.Bio, &p.Avatar, &p.DOB, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}
	return &p, nil
}

// GetByUsername loads a user together with their profile in one query.
func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	var p models.Profile
	err := r.db.QueryRow(ctx, `
		SELECT u.id, u.username, u.email, u.is_active, u.created_at,
			p.id, p.name, p.bio, p.avatar, p.dob, p.user_id, p.created_at, p.updated_at
		FROM users u
		JOIN profiles p ON p.user_id = u.id
		WHERE u.username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.IsActive, &u.CreatedAt,
			&p.ID, &p.Name, &p.Bio, &p.Avatar, &p.DOB, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching profile by username: %w", err)
	}
	u.Profile = &p
	return &u, nil
}

// Update persists profile fields
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles SET name = $2, bio = $3, avatar = $4, dob = $5, updated_at = NOW()
		WHERE user_id = $1`,
		profile.UserID, profile.Name, profile.Bio, profile.Avatar, profile.DOB)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
