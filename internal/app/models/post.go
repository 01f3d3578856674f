package models

import "time"

// Post is a top-level piece of content authored by a user.
type Post struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Author *User `json:"author,omitempty"`
	Tags   []Tag `json:"tags,omitempty"`
}

// Comment belongs to a post and may reply to another comment on the same
// post through CommentID, forming a tree of unbounded depth.
type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	UserID    int64     `json:"userId"`
	PostID    int64     `json:"postId"`
	CommentID *int64    `json:"commentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Author *User `json:"author,omitempty"`
}

// Tag labels a post with a unique name and url-safe slug.
type Tag struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	PostID int64  `json:"postId"`
}
