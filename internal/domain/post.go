package domain

import "time"

type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	EventID      *string   `json:"event_id"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"image_url"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreatePostInput struct {
	AuthorID string
	EventID  *string
	Content  string
	ImageURL string
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
