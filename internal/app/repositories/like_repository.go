package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ILikeRepository defines the interface for like toggles on posts and comments
type ILikeRepository interface {
	TogglePostLike(ctx context.Context, userID, postID int64) (bool, error)
	ToggleCommentLike(ctx context.Context, userID, commentID int64) (bool, error)
	CountPostLikes(ctx context.Context, postID int64) (int64, error)
	CountCommentLikes(ctx context.Context, commentID int64) (int64, error)
	PostLikeCounts(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	CommentLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error)
	PostsLikedBy(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error)
	CommentsLikedBy(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error)
}

// LikeRepository handles the post_likes and comment_likes edge tables.
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// TogglePostLike likes the post if the user hasn't, unlikes it otherwise.
// Returns whether the post is liked after the call.
func (r *LikeRepository) TogglePostLike(ctx context.Context, userID, postID int64) (bool, error) {
	return r.toggle(ctx, "post_likes", "post_id", userID, postID)
}

// ToggleCommentLike toggles a like on a comment, returning the new state.
func (r *LikeRepository) ToggleCommentLike(ctx context.Context, userID, commentID int64) (bool, error) {
	return r.toggle(ctx, "comment_likes", "comment_id", userID, commentID)
}

// toggle attempts the insert first; zero rows affected means the edge was
// already there, so it is removed instead. The primary key arbitrates
// concurrent toggles.
func (r *LikeRepository) toggle(ctx context.Context, table, col string, userID, targetID int64) (bool, error) {
	insert := squirrel.Insert(table).
		Columns("user_id", col).
		Values(userID, targetID).
		Suffix(fmt.Sprintf("ON CONFLICT (user_id, %s) DO NOTHING", col)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := insert.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error inserting like: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	del := squirrel.Delete(table).
		Where(squirrel.Eq{"user_id": userID, col: targetID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = del.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return false, fmt.Errorf("error deleting like: %w", err)
	}
	return false, nil
}

// CountPostLikes returns the number of likes on a post
func (r *LikeRepository) CountPostLikes(ctx context.Context, postID int64) (int64, error) {
	return r.count(ctx, "post_likes", "post_id", postID)
}

// CountCommentLikes returns the number of likes on a comment
func (r *LikeRepository) CountCommentLikes(ctx context.Context, commentID int64) (int64, error) {
	return r.count(ctx, "comment_likes", "comment_id", commentID)
}

func (r *LikeRepository) count(ctx context.Context, table, col string, targetID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", table, col), targetID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting likes: %w", err)
	}
	return count, nil
}

// PostLikeCounts counts likes for multiple posts in one query.
func (r *LikeRepository) PostLikeCounts(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	return r.groupCounts(ctx, "post_likes", "post_id", postIDs)
}

// CommentLikeCounts counts likes for multiple comments in one query.
func (r *LikeRepository) CommentLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	return r.groupCounts(ctx, "comment_likes", "comment_id", commentIDs)
}

func (r *LikeRepository) groupCounts(ctx context.Context, table, col string, ids []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	if len(ids) == 0 {
		return counts, nil
	}

	query := squirrel.Select(col, "COUNT(*)").
		From(table).
		Where(squirrel.Eq{col: ids}).
		GroupBy(col).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

// PostsLikedBy reports which of the given posts the user has liked.
func (r *LikeRepository) PostsLikedBy(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	return r.likedSet(ctx, "post_likes", "post_id", userID, postIDs)
}

// CommentsLikedBy reports which of the given comments the user has liked.
func (r *LikeRepository) CommentsLikedBy(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error) {
	return r.likedSet(ctx, "comment_likes", "comment_id", userID, commentIDs)
}

func (r *LikeRepository) likedSet(ctx context.Context, table, col string, userID int64, ids []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool)
	if len(ids) == 0 {
		return liked, nil
	}

	query := squirrel.Select(col).
		From(table).
		Where(squirrel.Eq{"user_id": userID, col: ids}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		liked[id] = true
	}
	return liked, rows.Err()
}
