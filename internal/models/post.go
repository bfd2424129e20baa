package models

import (
	"time"
)

// Post represents a blog post
type Post struct {
	ID               string    `gorm:"type:uuid;primaryKey;column:id"`
	Heading          string    `gorm:"type:varchar(255);not null;column:heading"`
	PageTitle        string    `gorm:"type:varchar(255);column:page_title"`
	Content          string    `gorm:"type:text;not null;column:content"`
	ShortDescription string    `gorm:"type:varchar(512);column:short_description"`
	FeaturedImageURL string    `gorm:"type:varchar(512);column:featured_image_url"`
	Slug             string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_blog_posts_slug;column:slug"`
	PublishedAt      time.Time `gorm:"not null;column:published_at"`
	Author           string    `gorm:"type:varchar(255);column:author"`
	Visible          bool      `gorm:"not null;default:true;column:visible"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "blog_posts"
}

// PostTag represents a post-to-tag mapping
type PostTag struct {
	PostID string `gorm:"type:uuid;primaryKey;column:post_id"`
	TagID  string `gorm:"type:uuid;primaryKey;column:tag_id"`
}

// TableName specifies the table name for PostTag
func (PostTag) TableName() string {
	return "blog_post_tags"
}
