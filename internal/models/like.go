package models

import (
	"time"
)

// Like records that one account likes one post. The composite unique
// index is what makes like toggling idempotent per (post, account) pair.
type Like struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_blog_post_likes_pair;column:post_id"`
	AccountID string    `gorm:"type:uuid;not null;uniqueIndex:idx_blog_post_likes_pair;column:account_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
}

// TableName specifies the table name for Like
func (Like) TableName() string {
	return "blog_post_likes"
}
