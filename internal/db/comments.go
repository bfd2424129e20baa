package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/quillpress/quillpress/internal/models"
)

// CommentRepository owns the append-only comment log for posts.
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// Append inserts a comment row. Post existence is the caller's check;
// comments themselves are never edited or deleted individually.
func (r *CommentRepository) Append(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListForPost retrieves the post's comments in creation order.
func (r *CommentRepository) ListForPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CascadeDelete removes all comment rows for a post. Called from the
// post deletion transaction, so it operates on the supplied tx handle.
func (r *CommentRepository) CascadeDelete(ctx context.Context, tx *gorm.DB, postID string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}
