package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chimailo/algorice/internal/app/models"
)

// IFollowRepository defines the interface for follower-graph operations
type IFollowRepository interface {
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	Followers(ctx context.Context, userID int64, offset, limit int) ([]*models.User, int64, error)
	Following(ctx context.Context, userID int64, offset, limit int) ([]*models.User, int64, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
}

// FollowRepository handles the followers edge table.
type FollowRepository struct {
	db *pgxpool.Pool
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{db: db}
}

// Follow inserts the edge; following someone twice is a no-op.
func (r *FollowRepository) Follow(ctx context.Context, followerID, followedID int64) error {
	query := squirrel.Insert("followers").
		Columns("follower_id", "followed_id").
		Values(followerID, followedID).
		Suffix("ON CONFLICT (follower_id, followed_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating follow edge: %w", err)
	}
	return nil
}

// Unfollow removes the edge; an absent edge is a no-op.
func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followedID int64) error {
	query := squirrel.Delete("followers").
		Where(squirrel.Eq{"follower_id": followerID, "followed_id": followedID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error removing follow edge: %w", err)
	}
	return nil
}

// IsFollowing checks whether the edge exists
func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM followers WHERE follower_id = $1 AND followed_id = $2)`,
		followerID, followedID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking follow edge: %w", err)
	}
	return exists, nil
}

// Followers returns a page of users following userID, newest edge first.
func (r *FollowRepository) Followers(ctx context.Context, userID int64, offset, limit int) ([]*models.User, int64, error) {
	return r.edgePage(ctx, userID, "f.followed_id", "f.follower_id", offset, limit)
}

// Following returns a page of users that userID follows, newest edge first.
func (r *FollowRepository) Following(ctx context.Context, userID int64, offset, limit int) ([]*models.User, int64, error) {
	return r.edgePage(ctx, userID, "f.follower_id", "f.followed_id", offset, limit)
}

// edgePage selects the users on the far side of the edges anchored at
// anchorCol = userID, joined with their profile for display fields.
func (r *FollowRepository) edgePage(ctx context.Context, userID int64, anchorCol, farCol string, offset, limit int) ([]*models.User, int64, error) {
	countQuery := squirrel.Select("COUNT(*)").
		From("followers f").
		Where(anchorCol+" = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting follow edges: %w", err)
	}

	query := squirrel.Select("u.id", "u.username", "p.name", "p.avatar").
		From("followers f").
		Join("users u ON u.id = " + farCol).
		LeftJoin("profiles p ON p.user_id = u.id").
		Where(anchorCol+" = ?", userID).
		OrderBy("f.created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		var p models.Profile
		if err := rows.Scan(&u.ID, &u.Username, &p.Name, &p.Avatar); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		u.Profile = &p
		users = append(users, &u)
	}
	return users, total, rows.Err()
}

// CountFollowers returns the number of users following userID
func (r *FollowRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM followers WHERE followed_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting followers: %w", err)
	}
	return count, nil
}

// CountFollowing returns the number of users userID follows
func (r *FollowRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM followers WHERE follower_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting following: %w", err)
	}
	return count, nil
}
