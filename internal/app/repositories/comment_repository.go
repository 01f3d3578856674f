package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
)

// ICommentRepository defines the interface for comment database operations
type ICommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) error
	ListByPost(ctx context.Context, postID int64, offset, limit int) ([]*models.Comment, int64, error)
	ListReplies(ctx context.Context, parentID int64, offset, limit int) ([]*models.Comment, int64, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*models.Comment, int64, error)
	ReplyCountsByCommentIDs(ctx context.Context, commentIDs []int64) (map[int64]int64, error)
	CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error)
}

// CommentRepository handles comment rows and the reply tree.
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment, optionally as a reply via CommentID.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (body, user_id, post_id, comment_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		comment.Body, comment.UserID, comment.PostID, comment.CommentID,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment with its author summary
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT c.id, c.body, c.user_id, c.post_id, c.comment_id, c.created_at, c.updated_at,
			u.id, u.username, p.name, p.avatar
		FROM comments c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE c.id = $1`, id)

	c, err := scanCommentRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error fetching comment: %w", err)
	}
	return c, nil
}

// Update persists a new comment body
func (r *CommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE comments SET body = $2, updated_at = NOW() WHERE id = $1`,
		comment.ID, comment.Body)
	if err != nil {
		return fmt.Errorf("error updating comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment. Replies survive with their parent reference
// nulled by the schema, reattaching them to the post root.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

// ListByPost returns a page of a post's top-level comments, newest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64, offset, limit int) ([]*models.Comment, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE post_id = $1 AND comment_id IS NULL`, postID).
		Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting comments: %w", err)
	}

	query := commentProjection().
		Where("c.post_id = ?", postID).
		Where("c.comment_id IS NULL").
		OrderBy("c.created_at DESC", "c.id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	comments, err := r.queryComments(ctx, query)
	return comments, total, err
}

// ListReplies returns a page of direct replies to a comment, oldest first
// so a thread reads top to bottom.
func (r *CommentRepository) ListReplies(ctx context.Context, parentID int64, offset, limit int) ([]*models.Comment, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE comment_id = $1`, parentID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting replies: %w", err)
	}

	query := commentProjection().
		Where("c.comment_id = ?", parentID).
		OrderBy("c.created_at ASC", "c.id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	comments, err := r.queryComments(ctx, query)
	return comments, total, err
}

// ListByUser returns a page of a user's comments across all posts.
func (r *CommentRepository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*models.Comment, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting comments: %w", err)
	}

	query := commentProjection().
		Where("c.user_id = ?", userID).
		OrderBy("c.created_at DESC", "c.id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	comments, err := r.queryComments(ctx, query)
	return comments, total, err
}

func commentProjection() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.body", "c.user_id", "c.post_id", "c.comment_id",
		"c.created_at", "c.updated_at",
		"u.id", "u.username", "p.name", "p.avatar",
	).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		LeftJoin("profiles p ON p.user_id = u.id")
}

func scanCommentRow(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	var author models.User
	var profile models.Profile
	err := row.Scan(&c.ID, &c.Body, &c.UserID, &c.PostID, &c.CommentID,
		&c.CreatedAt, &c.UpdatedAt,
		&author.ID, &author.Username, &profile.Name, &profile.Avatar)
	if err != nil {
		return nil, err
	}
	author.Profile = &profile
	c.Author = &author
	return &c, nil
}

func (r *CommentRepository) queryComments(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Comment, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		c, err := scanCommentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// ReplyCountsByCommentIDs counts direct replies for multiple comments in
// one query.
func (r *CommentRepository) ReplyCountsByCommentIDs(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	return r.groupCounts(ctx, "comment_id", commentIDs, nil)
}

// CountByPostIDs counts comments for multiple posts in one query.
func (r *CommentRepository) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	return r.groupCounts(ctx, "post_id", postIDs, nil)
}

func (r *CommentRepository) groupCounts(ctx context.Context, col string, ids []int64, extra squirrel.Sqlizer) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	if len(ids) == 0 {
		return counts, nil
	}

	query := squirrel.Select(col, "COUNT(*)").
		From("comments").
		Where(squirrel.Eq{col: ids}).
		GroupBy(col).
		PlaceholderFormat(squirrel.Dollar)
	if extra != nil {
		query = query.Where(extra)
	}

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
