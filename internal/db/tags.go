package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quillpress/quillpress/internal/models"
)

// TagRepository provides tag-related database operations
type TagRepository struct {
	*Repository
}

// NewTagRepository creates a new tag repository
func NewTagRepository(repo *Repository) *TagRepository {
	return &TagRepository{Repository: repo}
}

// GetAll retrieves all tags
func (r *TagRepository) GetAll(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetByID retrieves a tag by ID
func (r *TagRepository) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// GetByIDs retrieves the subset of tags whose ids exist. Ids with no
// matching row are simply absent from the result.
func (r *TagRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []*models.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Create creates a new tag
func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// Delete removes a tag and any post associations referencing it.
// Returns false when no tag with the id exists.
func (r *TagRepository) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.WithContext(ctx).Where("id = ?", id).Delete(&models.Tag{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.WithContext(ctx).Where("tag_id = ?", id).Delete(&models.PostTag{}).Error
	})
	return found, err
}
