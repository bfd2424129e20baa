package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quillpress/quillpress/internal/models"
)

type fakePostFinder struct {
	posts map[string]*models.Post
	tags  map[string][]*models.Tag
}

func (f *fakePostFinder) GetBySlug(_ context.Context, slug string) (*models.Post, error) {
	return f.posts[slug], nil
}

func (f *fakePostFinder) TagsFor(_ context.Context, postID string) ([]*models.Tag, error) {
	return f.tags[postID], nil
}

type fakeLikeLedger struct {
	counts  map[string]int64
	likedBy map[string]map[string]bool
	toggled []string
}

func (f *fakeLikeLedger) Toggle(_ context.Context, postID, accountID string) (bool, error) {
	f.toggled = append(f.toggled, postID+"/"+accountID)
	liked := !f.likedBy[postID][accountID]
	if f.likedBy[postID] == nil {
		f.likedBy[postID] = map[string]bool{}
	}
	f.likedBy[postID][accountID] = liked
	return liked, nil
}

func (f *fakeLikeLedger) CountFor(_ context.Context, postID string) (int64, error) {
	return f.counts[postID], nil
}

func (f *fakeLikeLedger) HasLiked(_ context.Context, postID, accountID string) (bool, error) {
	if accountID == "" {
		return false, errors.New("empty account id must never reach the ledger")
	}
	return f.likedBy[postID][accountID], nil
}

type fakeCommentLog struct {
	comments map[string][]*models.Comment
	appended []*models.Comment
}

func (f *fakeCommentLog) Append(_ context.Context, comment *models.Comment) error {
	f.appended = append(f.appended, comment)
	return nil
}

func (f *fakeCommentLog) ListForPost(_ context.Context, postID string) ([]*models.Comment, error) {
	return f.comments[postID], nil
}

type fakeResolver struct {
	names map[string]string
	calls int
}

func (f *fakeResolver) ResolveDisplayName(_ context.Context, accountID string) (string, error) {
	f.calls++
	name, ok := f.names[accountID]
	if !ok {
		return "", errors.New("resolver failure")
	}
	return name, nil
}

func helloWorldFixture() (*fakePostFinder, *fakeLikeLedger, *fakeCommentLog, *fakeResolver) {
	post := &models.Post{
		ID:          "post-1",
		Heading:     "Hello World",
		Content:     "The first post.",
		Slug:        "hello-world",
		PublishedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		Author:      "admin",
		Visible:     true,
	}
	posts := &fakePostFinder{
		posts: map[string]*models.Post{"hello-world": post},
		tags: map[string][]*models.Tag{
			"post-1": {{ID: "tag-1", Name: "golang"}},
		},
	}
	likes := &fakeLikeLedger{
		counts: map[string]int64{"post-1": 3},
		likedBy: map[string]map[string]bool{
			"post-1": {"acct-a": true, "acct-b": true, "acct-c": true},
		},
	}
	comments := &fakeCommentLog{
		comments: map[string][]*models.Comment{
			"post-1": {
				{ID: "c1", PostID: "post-1", AccountID: "acct-a", Body: "first!", CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)},
				{ID: "c2", PostID: "post-1", AccountID: "acct-b", Body: "second", CreatedAt: time.Date(2026, 2, 1, 11, 0, 0, 0, time.UTC)},
			},
		},
	}
	resolver := &fakeResolver{names: map[string]string{
		"acct-a": "Alice",
		"acct-b": "Bob",
		"acct-c": "Carol",
	}}
	return posts, likes, comments, resolver
}

func TestComposeView_AuthenticatedLiker(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	view, err := agg.ComposeView(context.Background(), "hello-world", Authenticated("acct-b"))
	require.NoError(t, err)

	require.EqualValues(t, 3, view.TotalLikes)
	require.True(t, view.ViewerLiked)
	require.Len(t, view.Comments, 2)
	require.Equal(t, "first!", view.Comments[0].Body)
	require.Equal(t, "Alice", view.Comments[0].AuthorName)
	require.Equal(t, "second", view.Comments[1].Body)
	require.Equal(t, "Bob", view.Comments[1].AuthorName)
	require.Len(t, view.Tags, 1)
	require.Equal(t, "golang", view.Tags[0].Name)
}

func TestComposeView_AnonymousViewerNeverHitsLedger(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	view, err := agg.ComposeView(context.Background(), "hello-world", Anonymous())
	require.NoError(t, err)
	require.EqualValues(t, 3, view.TotalLikes)
	require.False(t, view.ViewerLiked)
}

func TestComposeView_NonLikerViewer(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	view, err := agg.ComposeView(context.Background(), "hello-world", Authenticated("acct-z"))
	require.NoError(t, err)
	require.EqualValues(t, 3, view.TotalLikes)
	require.False(t, view.ViewerLiked)
}

func TestComposeView_UnknownSlug(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	_, err := agg.ComposeView(context.Background(), "no-such-post", Anonymous())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestComposeView_InvisiblePostIsNotFound(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	posts.posts["hello-world"].Visible = false
	agg := NewAggregator(posts, likes, comments, resolver)

	_, err := agg.ComposeView(context.Background(), "hello-world", Anonymous())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestComposeView_ResolverFailureDegradesToSentinel(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	delete(resolver.names, "acct-a")
	agg := NewAggregator(posts, likes, comments, resolver)

	view, err := agg.ComposeView(context.Background(), "hello-world", Anonymous())
	require.NoError(t, err)
	require.Len(t, view.Comments, 2)
	require.Equal(t, UnknownAuthorLabel, view.Comments[0].AuthorName)
	require.Equal(t, "Bob", view.Comments[1].AuthorName)
}

func TestComposeView_MemoizesResolverPerAuthor(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	comments.comments["post-1"] = append(comments.comments["post-1"],
		&models.Comment{ID: "c3", PostID: "post-1", AccountID: "acct-a", Body: "me again", CreatedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)},
	)
	agg := NewAggregator(posts, likes, comments, resolver)

	view, err := agg.ComposeView(context.Background(), "hello-world", Anonymous())
	require.NoError(t, err)
	require.Len(t, view.Comments, 3)
	// Two distinct authors, so two lookups despite three comments.
	require.Equal(t, 2, resolver.calls)
}

func TestSubmitComment_AnonymousForbidden(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	_, err := agg.SubmitComment(context.Background(), "hello-world", Anonymous(), "hi")
	require.ErrorIs(t, err, ErrForbidden)
	require.Empty(t, comments.appended)
}

func TestSubmitComment_EmptyBodyRejected(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	_, err := agg.SubmitComment(context.Background(), "hello-world", Authenticated("acct-a"), "   ")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "body", validationErr.Field)
}

func TestSubmitComment_AppendsWithViewerIdentity(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	comment, err := agg.SubmitComment(context.Background(), "hello-world", Authenticated("acct-c"), "great read")
	require.NoError(t, err)
	require.NotEmpty(t, comment.ID)
	require.Equal(t, "post-1", comment.PostID)
	require.Equal(t, "acct-c", comment.AccountID)
	require.Len(t, comments.appended, 1)
}

func TestSubmitComment_UnknownSlug(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	_, err := agg.SubmitComment(context.Background(), "no-such-post", Authenticated("acct-a"), "hi")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestToggleLike_AnonymousForbidden(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	_, err := agg.ToggleLike(context.Background(), "hello-world", Anonymous())
	require.ErrorIs(t, err, ErrForbidden)
	require.Empty(t, likes.toggled)
}

func TestToggleLike_DelegatesToLedger(t *testing.T) {
	posts, likes, comments, resolver := helloWorldFixture()
	agg := NewAggregator(posts, likes, comments, resolver)

	liked, err := agg.ToggleLike(context.Background(), "hello-world", Authenticated("acct-b"))
	require.NoError(t, err)
	require.False(t, liked) // acct-b already liked, so toggle removes
	require.Equal(t, []string{"post-1/acct-b"}, likes.toggled)
}
