package dto

import "time"

// CreatePostRequest creates a post, optionally tagged.
type CreatePostRequest struct {
	Body string   `json:"body" binding:"required,min=1,max=5000"`
	Tags []string `json:"tags" binding:"omitempty,max=10,dive,min=1,max=32"`
}

// UpdatePostRequest replaces a post's body.
type UpdatePostRequest struct {
	Body string `json:"body" binding:"required,min=1,max=5000"`
}

// TagResponse is a tag attached to a post.
type TagResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostResponse is the full projection of a post.
type PostResponse struct {
	ID        int64         `json:"id"`
	Body      string        `json:"body"`
	Author    UserSummary   `json:"author"`
	Tags      []TagResponse `json:"tags,omitempty"`
	Likes     int64         `json:"likes"`
	LikedByMe bool          `json:"likedByMe"`
	Comments  int64         `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CommentRequest creates or updates a comment body.
type CommentRequest struct {
	Body string `json:"body" binding:"required,min=1,max=2000"`
}

// CommentResponse is the projection of a comment within a post's thread.
type CommentResponse struct {
	ID        int64       `json:"id"`
	Body      string      `json:"body"`
	Author    UserSummary `json:"author"`
	PostID    int64       `json:"postId"`
	ParentID  *int64      `json:"parentId,omitempty"`
	Likes     int64       `json:"likes"`
	LikedByMe bool        `json:"likedByMe"`
	Replies   int64       `json:"replies"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// LikeResponse reports the result of a like toggle.
type LikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}
