package blog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quillpress/quillpress/internal/models"
	"github.com/quillpress/quillpress/pkg/logging"
	"github.com/quillpress/quillpress/pkg/telemetry"
)

// UnknownAuthorLabel is substituted for a comment author whose display
// name cannot be resolved, so one dead account never hides the rest of
// the comment list.
const UnknownAuthorLabel = "unknown user"

// PostFinder is the read surface of the post store the aggregator needs.
type PostFinder interface {
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	TagsFor(ctx context.Context, postID string) ([]*models.Tag, error)
}

// LikeLedger owns the per-account like facts for posts.
type LikeLedger interface {
	Toggle(ctx context.Context, postID, accountID string) (bool, error)
	CountFor(ctx context.Context, postID string) (int64, error)
	HasLiked(ctx context.Context, postID, accountID string) (bool, error)
}

// CommentLog owns the append-only comment list for posts.
type CommentLog interface {
	Append(ctx context.Context, comment *models.Comment) error
	ListForPost(ctx context.Context, postID string) ([]*models.Comment, error)
}

// NameResolver maps an account id to its display name. Account identity
// is owned by the external identity system.
type NameResolver interface {
	ResolveDisplayName(ctx context.Context, accountID string) (string, error)
}

// Aggregator composes a post's full display state from the post store,
// like ledger, comment log, and the account-name resolver. It owns no
// persisted state; writes are delegated to the owning store.
type Aggregator struct {
	posts    PostFinder
	likes    LikeLedger
	comments CommentLog
	resolver NameResolver
	logger   *zap.Logger
}

// NewAggregator creates a new post view aggregator
func NewAggregator(posts PostFinder, likes LikeLedger, comments CommentLog, resolver NameResolver) *Aggregator {
	return &Aggregator{
		posts:    posts,
		likes:    likes,
		comments: comments,
		resolver: resolver,
		logger:   logging.GetLogger().With(zap.String("component", "aggregator")),
	}
}

// ComposeView assembles the display state for the post behind slug as
// seen by viewer. Invisible posts are not found on this public path.
// Returns ErrNotFound when the slug does not resolve; never partial state.
func (a *Aggregator) ComposeView(ctx context.Context, slug string, viewer Viewer) (*PostView, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.compose_view")
	defer span.End()

	post, err := a.visiblePost(ctx, slug)
	if err != nil {
		return nil, err
	}

	totalLikes, err := a.likes.CountFor(ctx, post.ID)
	if err != nil {
		return nil, storageErr("like count", err)
	}

	viewerLiked := false
	if accountID, ok := viewer.AccountID(); ok {
		viewerLiked, err = a.likes.HasLiked(ctx, post.ID, accountID)
		if err != nil {
			return nil, storageErr("like status", err)
		}
	}

	tags, err := a.posts.TagsFor(ctx, post.ID)
	if err != nil {
		return nil, storageErr("tag resolution", err)
	}

	comments, err := a.comments.ListForPost(ctx, post.ID)
	if err != nil {
		return nil, storageErr("comment list", err)
	}

	view := &PostView{
		ID:               post.ID,
		Heading:          post.Heading,
		PageTitle:        post.PageTitle,
		Content:          post.Content,
		ShortDescription: post.ShortDescription,
		FeaturedImageURL: post.FeaturedImageURL,
		Slug:             post.Slug,
		PublishedAt:      post.PublishedAt,
		Author:           post.Author,
		Visible:          post.Visible,
		TotalLikes:       totalLikes,
		ViewerLiked:      viewerLiked,
		Tags:             make([]TagView, 0, len(tags)),
		Comments:         make([]CommentView, 0, len(comments)),
	}
	for _, tag := range tags {
		view.Tags = append(view.Tags, TagView{ID: tag.ID, Name: tag.Name})
	}

	// Resolver results are memoized per compose call so a post with many
	// comments from one account costs a single lookup.
	names := map[string]string{}
	for _, comment := range comments {
		name, ok := names[comment.AccountID]
		if !ok {
			name, err = a.resolver.ResolveDisplayName(ctx, comment.AccountID)
			if err != nil {
				a.logger.Warn("comment author did not resolve",
					zap.String("account_id", comment.AccountID),
					zap.Error(err))
				name = UnknownAuthorLabel
			}
			names[comment.AccountID] = name
		}
		view.Comments = append(view.Comments, CommentView{
			Body:       comment.Body,
			AuthorName: name,
			CreatedAt:  comment.CreatedAt,
		})
	}

	return view, nil
}

// SubmitComment appends a comment by viewer to the post behind slug.
// Anonymous viewers are forbidden. The caller re-runs ComposeView for
// the refreshed state; there is no auto-refresh here.
func (a *Aggregator) SubmitComment(ctx context.Context, slug string, viewer Viewer, body string) (*models.Comment, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.submit_comment")
	defer span.End()

	accountID, ok := viewer.AccountID()
	if !ok {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(body) == "" {
		return nil, &ValidationError{Field: "body", Reason: "must not be empty"}
	}

	post, err := a.visiblePost(ctx, slug)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		PostID:    post.ID,
		AccountID: accountID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.comments.Append(ctx, comment); err != nil {
		return nil, storageErr("comment append", err)
	}
	return comment, nil
}

// ToggleLike flips viewer's like on the post behind slug and reports the
// resulting state. Anonymous viewers are forbidden.
func (a *Aggregator) ToggleLike(ctx context.Context, slug string, viewer Viewer) (bool, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.toggle_like")
	defer span.End()

	accountID, ok := viewer.AccountID()
	if !ok {
		return false, ErrForbidden
	}

	post, err := a.visiblePost(ctx, slug)
	if err != nil {
		return false, err
	}

	liked, err := a.likes.Toggle(ctx, post.ID, accountID)
	if err != nil {
		return false, storageErr("like toggle", err)
	}
	return liked, nil
}

func (a *Aggregator) visiblePost(ctx context.Context, slug string) (*models.Post, error) {
	post, err := a.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, storageErr("post lookup", err)
	}
	if post == nil || !post.Visible {
		return nil, ErrNotFound
	}
	return post, nil
}
