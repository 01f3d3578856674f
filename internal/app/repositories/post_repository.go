package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/db"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
	"github.com/chimailo/algorice/internal/pkg/dberrors"
)

// IPostRepository defines the interface for post database operations
type IPostRepository interface {
	Create(ctx context.Context, post *models.Post, tags []models.Tag) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*models.Post, int64, error)
	ListLikedBy(ctx context.Context, userID int64, offset, limit int) ([]*models.Post, int64, error)
	TagsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.Tag, error)
}

// PostRepository handles post and tag rows.
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts the post and its tags in one transaction. A tag name that
// already exists on another post surfaces as a conflict.
func (r *PostRepository) Create(ctx context.Context, post *models.Post, tags []models.Tag) error {
	return db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO posts (body, user_id) VALUES ($1, $2)
			RETURNING id, created_at, updated_at`,
			post.Body, post.UserID,
		).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating post: %w", err)
		}

		for i := range tags {
			tags[i].PostID = post.ID
			err := tx.QueryRow(ctx, `
				INSERT INTO tags (name, slug, post_id) VALUES ($1, $2, $3)
				RETURNING id`,
				tags[i].Name, tags[i].Slug, tags[i].PostID,
			).Scan(&tags[i].ID)
			if err != nil {
				if dberrors.IsUniqueViolation(err) {
					return apperrors.NewConflictError(
						fmt.Sprintf("tag '%s' is already in use", tags[i].Name))
				}
				return fmt.Errorf("error creating tag: %w", err)
			}
		}

		post.Tags = tags
		return nil
	})
}

// GetByID retrieves a post together with its author summary
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	var author models.User
	var profile models.Profile
	err := r.db.QueryRow(ctx, `
		SELECT po.id, po.body, po.user_id, po.created_at, po.updated_at,
			u.id, u.username, pr.name, pr.avatar
		FROM posts po
		JOIN users u ON u.id = po.user_id
		LEFT JOIN profiles pr ON pr.user_id = u.id
		WHERE po.id = $1`, id).
		Scan(&p.ID, &p.Body, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
			&author.ID, &author.Username, &profile.Name, &profile.Avatar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error fetching post: %w", err)
	}
	author.Profile = &profile
	p.Author = &author
	return &p, nil
}

// Update persists a new post body
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE posts SET body = $2, updated_at = NOW() WHERE id = $1`,
		post.ID, post.Body)
	if err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// Delete removes a post; comments, likes and tags cascade in the store.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// Exists checks whether a post id is present
func (r *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking post: %w", err)
	}
	return exists, nil
}

// ListByUser returns a page of a user's posts, newest first.
func (r *PostRepository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*models.Post, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	query := postProjection().
		Where("po.user_id = ?", userID).
		OrderBy("po.created_at DESC", "po.id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	posts, err := r.queryPosts(ctx, query)
	return posts, total, err
}

// ListLikedBy returns a page of posts the user has liked, ordered by when
// the like was placed.
func (r *PostRepository) ListLikedBy(ctx context.Context, userID int64, offset, limit int) ([]*models.Post, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM post_likes WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting liked posts: %w", err)
	}

	query := postProjection().
		Join("post_likes pl ON pl.post_id = po.id").
		Where("pl.user_id = ?", userID).
		OrderBy("pl.created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	posts, err := r.queryPosts(ctx, query)
	return posts, total, err
}

func postProjection() squirrel.SelectBuilder {
	return squirrel.Select(
		"po.id", "po.body", "po.user_id", "po.created_at", "po.updated_at",
		"u.id", "u.username", "pr.name", "pr.avatar",
	).
		From("posts po").
		Join("users u ON u.id = po.user_id").
		LeftJoin("profiles pr ON pr.user_id = u.id")
}

func (r *PostRepository) queryPosts(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Post, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var p models.Post
		var author models.User
		var profile models.Profile
		err := rows.Scan(&p.ID, &p.Body, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
			&author.ID, &author.Username, &profile.Name, &profile.Avatar)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		author.Profile = &profile
		p.Author = &author
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// TagsByPostIDs loads the tags of multiple posts in one query.
func (r *PostRepository) TagsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.Tag, error) {
	tags := make(map[int64][]models.Tag)
	if len(postIDs) == 0 {
		return tags, nil
	}

	query := squirrel.Select("id", "name", "slug", "post_id").
		From("tags").
		Where(squirrel.Eq{"post_id": postIDs}).
		OrderBy("name").
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
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.PostID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		tags[t.PostID] = append(tags[t.PostID], t)
	}
	return tags, rows.Err()
}
