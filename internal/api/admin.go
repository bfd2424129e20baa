package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quillpress/quillpress/internal/blog"
	"github.com/quillpress/quillpress/internal/db"
	"github.com/quillpress/quillpress/internal/models"
)

// AdminHandlers serves the administrator surface: post authoring, tag
// catalog management, and the account listing.
type AdminHandlers struct {
	store    *blog.PostStore
	tags     *db.TagRepository
	accounts *db.AccountRepository
}

// NewAdminHandlers creates the admin handlers
func NewAdminHandlers(store *blog.PostStore, tags *db.TagRepository, accounts *db.AccountRepository) *AdminHandlers {
	return &AdminHandlers{store: store, tags: tags, accounts: accounts}
}

type postResponse struct {
	ID               string         `json:"id"`
	Heading          string         `json:"heading"`
	PageTitle        string         `json:"page_title"`
	Content          string         `json:"content"`
	ShortDescription string         `json:"short_description"`
	FeaturedImageURL string         `json:"featured_image_url"`
	Slug             string         `json:"slug"`
	PublishedAt      time.Time      `json:"published_at"`
	Author           string         `json:"author"`
	Visible          bool           `json:"visible"`
	Tags             []blog.TagView `json:"tags"`
}

func newPostResponse(post *models.Post, tags []*models.Tag) postResponse {
	resp := postResponse{
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
		Tags:             make([]blog.TagView, 0, len(tags)),
	}
	for _, tag := range tags {
		resp.Tags = append(resp.Tags, blog.TagView{ID: tag.ID, Name: tag.Name})
	}
	return resp
}

// CreatePost handles POST /admin/posts
func (h *AdminHandlers) CreatePost(c *gin.Context) {
	var in blog.SavePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, &blog.ValidationError{Field: "body", Reason: "malformed request body"})
		return
	}
	in.ID = ""
	post, tags, err := h.store.Save(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPostResponse(post, tags))
}

// UpdatePost handles PUT /admin/posts/:id
func (h *AdminHandlers) UpdatePost(c *gin.Context) {
	var in blog.SavePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, &blog.ValidationError{Field: "body", Reason: "malformed request body"})
		return
	}
	in.ID = c.Param("id")
	post, tags, err := h.store.Save(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPostResponse(post, tags))
}

// GetPost handles GET /admin/posts/:id
func (h *AdminHandlers) GetPost(c *gin.Context) {
	post, tags, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPostResponse(post, tags))
}

// ListPosts handles GET /admin/posts
func (h *AdminHandlers) ListPosts(c *gin.Context) {
	posts, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]postResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, newPostResponse(post, nil))
	}
	c.JSON(http.StatusOK, out)
}

// DeletePost handles DELETE /admin/posts/:id
func (h *AdminHandlers) DeletePost(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type tagRequest struct {
	Name string `json:"name"`
}

// CreateTag handles POST /admin/tags
func (h *AdminHandlers) CreateTag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		writeError(c, &blog.ValidationError{Field: "name", Reason: "must not be empty"})
		return
	}
	tag := &models.Tag{ID: uuid.NewString(), Name: strings.TrimSpace(req.Name)}
	if err := h.tags.Create(c.Request.Context(), tag); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog.TagView{ID: tag.ID, Name: tag.Name})
}

// DeleteTag handles DELETE /admin/tags/:id
func (h *AdminHandlers) DeleteTag(c *gin.Context) {
	found, err := h.tags.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		writeError(c, blog.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAccounts handles GET /admin/accounts
func (h *AdminHandlers) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	type accountResponse struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
	}
	out := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, accountResponse{
			ID:          account.ID,
			DisplayName: account.DisplayName,
			Email:       account.Email,
		})
	}
	c.JSON(http.StatusOK, out)
}
