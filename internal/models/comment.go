package models

import (
	"time"
)

// Comment is an append-only reader comment on a post. Display order is
// creation time ascending.
type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id"`
	PostID    string    `gorm:"type:uuid;not null;index:idx_blog_post_comments_post;column:post_id"`
	AccountID string    `gorm:"type:uuid;not null;column:account_id"`
	Body      string    `gorm:"type:text;not null;column:body"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "blog_post_comments"
}
