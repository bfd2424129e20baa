package blog

import (
	"time"
)

// TagView is a resolved tag on a composed post view.
type TagView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommentView is a comment with its author's display name resolved.
type CommentView struct {
	Body       string    `json:"body"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostView is the full display state of one post, composed from the
// post row, its resolved tags, the like ledger, and the comment log.
// It is derived per request and never persisted.
type PostView struct {
	ID               string        `json:"id"`
	Heading          string        `json:"heading"`
	PageTitle        string        `json:"page_title"`
	Content          string        `json:"content"`
	ShortDescription string        `json:"short_description"`
	FeaturedImageURL string        `json:"featured_image_url"`
	Slug             string        `json:"slug"`
	PublishedAt      time.Time     `json:"published_at"`
	Author           string        `json:"author"`
	Visible          bool          `json:"visible"`
	Tags             []TagView     `json:"tags"`
	TotalLikes       int64         `json:"total_likes"`
	ViewerLiked      bool          `json:"viewer_liked"`
	Comments         []CommentView `json:"comments"`
}
