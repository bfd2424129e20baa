package blog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/quillpress/quillpress/internal/db"
	"github.com/quillpress/quillpress/internal/models"
	"github.com/quillpress/quillpress/pkg/logging"
)

// SavePostInput carries the admin-provided fields for a post save. An
// empty ID means create; otherwise the save is a full replace of the
// existing post, tag set included.
type SavePostInput struct {
	ID               string    `json:"id"`
	Heading          string    `json:"heading"`
	PageTitle        string    `json:"page_title"`
	Content          string    `json:"content"`
	ShortDescription string    `json:"short_description"`
	FeaturedImageURL string    `json:"featured_image_url"`
	Slug             string    `json:"slug"`
	PublishedAt      time.Time `json:"published_at"`
	Author           string    `json:"author"`
	Visible          bool      `json:"visible"`
	TagIDs           []string  `json:"tag_ids"`
}

// PostStore owns post rows and their tag associations, and orchestrates
// the cross-store cascade when a post is deleted.
type PostStore struct {
	posts    *db.PostRepository
	tags     *db.TagRepository
	likes    *db.LikeRepository
	comments *db.CommentRepository
	logger   *zap.Logger
}

// NewPostStore creates a new post store
func NewPostStore(posts *db.PostRepository, tags *db.TagRepository, likes *db.LikeRepository, comments *db.CommentRepository) *PostStore {
	return &PostStore{
		posts:    posts,
		tags:     tags,
		likes:    likes,
		comments: comments,
		logger:   logging.GetLogger().With(zap.String("component", "post-store")),
	}
}

// Save validates and persists a post together with its tag set. Tag ids
// that do not resolve against the catalog are dropped, not rejected; on
// edit the resolved subset replaces the prior association entirely.
func (s *PostStore) Save(ctx context.Context, in SavePostInput) (*models.Post, []*models.Tag, error) {
	if err := validatePost(in); err != nil {
		return nil, nil, err
	}
	normalized := slug.Make(in.Slug)

	existing, err := s.posts.GetBySlug(ctx, normalized)
	if err != nil {
		return nil, nil, storageErr("slug lookup", err)
	}
	if existing != nil && existing.ID != in.ID {
		return nil, nil, &ValidationError{Field: "slug", Reason: "already in use by another post"}
	}

	resolved, err := s.tags.GetByIDs(ctx, dedupe(in.TagIDs))
	if err != nil {
		return nil, nil, storageErr("tag resolution", err)
	}
	if dropped := len(dedupe(in.TagIDs)) - len(resolved); dropped > 0 {
		s.logger.Debug("dropped unresolvable tag ids", zap.Int("count", dropped))
	}
	tagIDs := make([]string, 0, len(resolved))
	for _, tag := range resolved {
		tagIDs = append(tagIDs, tag.ID)
	}

	publishedAt := in.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}

	var post *models.Post
	err = s.posts.Transaction(func(tx *gorm.DB) error {
		creating := in.ID == ""
		if creating {
			post = &models.Post{ID: uuid.NewString()}
		} else {
			post = &models.Post{}
			if err := tx.WithContext(ctx).Where("id = ?", in.ID).First(post).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
		}
		post.Heading = in.Heading
		post.PageTitle = in.PageTitle
		post.Content = in.Content
		post.ShortDescription = in.ShortDescription
		post.FeaturedImageURL = in.FeaturedImageURL
		post.Slug = normalized
		post.PublishedAt = publishedAt
		post.Author = in.Author
		post.Visible = in.Visible

		if creating {
			if err := tx.WithContext(ctx).Create(post).Error; err != nil {
				return err
			}
		} else if err := tx.WithContext(ctx).Save(post).Error; err != nil {
			return err
		}
		return s.posts.ReplaceTags(ctx, tx, post.ID, tagIDs)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, err
		}
		return nil, nil, storageErr("post save", err)
	}
	return post, resolved, nil
}

// GetByID retrieves a post with its tag set for the admin surface.
func (s *PostStore) GetByID(ctx context.Context, id string) (*models.Post, []*models.Tag, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, nil, storageErr("post lookup", err)
	}
	if post == nil {
		return nil, nil, ErrNotFound
	}
	tags, err := s.posts.TagsFor(ctx, post.ID)
	if err != nil {
		return nil, nil, storageErr("tag resolution", err)
	}
	return post, tags, nil
}

// ListAll retrieves every post for the admin listing.
func (s *PostStore) ListAll(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, storageErr("post list", err)
	}
	return posts, nil
}

// Delete removes the post and cascades removal of its tag associations,
// likes, and comments. Child rows go first inside one transaction so no
// live post is ever left with a missing dependency.
func (s *PostStore) Delete(ctx context.Context, id string) error {
	err := s.posts.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := s.comments.CascadeDelete(ctx, tx, id); err != nil {
			return err
		}
		if err := s.likes.CascadeDelete(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.WithContext(ctx).Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return storageErr("post delete", err)
	}
	s.logger.Info("post deleted", zap.String("post_id", id))
	return nil
}

func validatePost(in SavePostInput) error {
	switch {
	case strings.TrimSpace(in.Heading) == "":
		return &ValidationError{Field: "heading", Reason: "must not be empty"}
	case strings.TrimSpace(in.Content) == "":
		return &ValidationError{Field: "content", Reason: "must not be empty"}
	case strings.TrimSpace(in.Slug) == "":
		return &ValidationError{Field: "slug", Reason: "must not be empty"}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
