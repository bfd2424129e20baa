package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quillpress/quillpress/internal/models"
)

// LikeRepository owns the per-account like facts for posts.
type LikeRepository struct {
	*Repository
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(repo *Repository) *LikeRepository {
	return &LikeRepository{Repository: repo}
}

// Toggle inserts a like row for the pair, or removes the existing one.
// Returns whether the post is liked by the account after the call.
//
// Concurrent toggles on the same pair serialize through the composite
// unique index: the delete-then-insert runs in one transaction, and a
// racing insert loses to conflict-do-nothing instead of duplicating the
// row, so the committed state is always zero or one row per pair.
func (r *LikeRepository) Toggle(ctx context.Context, postID, accountID string) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND account_id = ?", postID, accountID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		like := &models.Like{
			ID:        uuid.NewString(),
			PostID:    postID,
			AccountID: accountID,
			CreatedAt: time.Now().UTC(),
		}
		res = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "account_id"}},
			DoNothing: true,
		}).Create(like)
		if res.Error != nil {
			return res.Error
		}
		liked = true
		return nil
	})
	return liked, err
}

// CountFor returns the number of live like rows for the post.
func (r *LikeRepository) CountFor(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// HasLiked reports whether the account has a live like row for the post.
func (r *LikeRepository) HasLiked(ctx context.Context, postID, accountID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND account_id = ?", postID, accountID).
		Count(&count).Error
	return count > 0, err
}

// CascadeDelete removes all like rows for a post. Called from the post
// deletion transaction, so it operates on the supplied tx handle.
func (r *LikeRepository) CascadeDelete(ctx context.Context, tx *gorm.DB, postID string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.Like{}).Error
}
