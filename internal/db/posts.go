package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quillpress/quillpress/internal/models"
)

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a post by its URL slug
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListAll retrieves all posts
func (r *PostRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// TagsFor retrieves the tags associated with a post
func (r *PostRepository) TagsFor(ctx context.Context, postID string) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN blog_post_tags ON blog_post_tags.tag_id = blog_tags.id").
		Where("blog_post_tags.post_id = ?", postID).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// ReplaceTags replaces the post's entire tag association set within tx.
func (r *PostRepository) ReplaceTags(ctx context.Context, tx *gorm.DB, postID string, tagIDs []string) error {
	if err := tx.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.PostTag{}).Error; err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		row := &models.PostTag{PostID: postID, TagID: tagID}
		if err := tx.WithContext(ctx).Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}
