package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/db"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
	"github.com/chimailo/algorice/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	FindByIdentity(ctx context.Context, identity string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	RecordSignIn(ctx context.Context, userID int64, ip string) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// UserRepository handles account rows and their sign-in bookkeeping.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password, is_active, is_admin, sign_in_count,
	current_sign_in_on, current_sign_in_ip, last_sign_in_on, last_sign_in_ip,
	created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.IsActive, &u.IsAdmin,
		&u.SignInCount, &u.CurrentSignInOn, &u.CurrentSignInIP,
		&u.LastSignInOn, &u.LastSignInIP, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &u, nil
}

// CreateWithProfile inserts the user and its profile in one transaction so a
// half-created account can never be observed.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (username, email, password, is_active, is_admin)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at`,
			user.Username, user.Email, user.Password, user.IsActive, user.IsAdmin,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
				return apperrors.ErrUsernameAlreadyExists
			}
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		profile.UserID = user.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO profiles (name, bio, avatar, dob, user_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at`,
			profile.Name, profile.Bio, profile.Avatar, profile.DOB, profile.UserID,
		).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating profile: %w", err)
		}

		user.Profile = profile
		return nil
	})
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// FindByIdentity matches the identity against username or email, so the
// login form can accept either.
func (r *UserRepository) FindByIdentity(ctx context.Context, identity string) (*models.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $1`, identity)
	return scanUser(row)
}

// UsernameExists checks if a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}
	return exists, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// RecordSignIn shifts the current sign-in pair to last and stamps a fresh
// current pair, bumping the counter. One UPDATE, no read-modify-write.
func (r *UserRepository) RecordSignIn(ctx context.Context, userID int64, ip string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			sign_in_count = sign_in_count + 1,
			last_sign_in_on = current_sign_in_on,
			last_sign_in_ip = current_sign_in_ip,
			current_sign_in_on = $2,
			current_sign_in_ip = $3,
			updated_at = NOW()
		WHERE id = $1`,
		userID, time.Now(), ip)
	if err != nil {
		return fmt.Errorf("error recording sign-in: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Update persists mutable account fields
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET username = $2, email = $3, is_active = $4, is_admin = $5,
			updated_at = NOW()
		WHERE id = $1`,
		user.ID, user.Username, user.Email, user.IsActive, user.IsAdmin)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes the account. Profile, content, edges and grants go with it
// through the schema's cascade rules.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// List returns a page of users ordered by creation time, newest first,
// along with the total count.
func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`,
		offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}
