package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillpress/quillpress/internal/blog"
	"github.com/quillpress/quillpress/internal/db"
)

// BlogHandlers serves the public read-and-interact routes.
type BlogHandlers struct {
	aggregator *blog.Aggregator
	tags       *db.TagRepository
}

// NewBlogHandlers creates the public blog handlers
func NewBlogHandlers(aggregator *blog.Aggregator, tags *db.TagRepository) *BlogHandlers {
	return &BlogHandlers{aggregator: aggregator, tags: tags}
}

// GetPost handles GET /posts/:slug
func (h *BlogHandlers) GetPost(c *gin.Context) {
	view, err := h.aggregator.ComposeView(c.Request.Context(), c.Param("slug"), viewerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type commentRequest struct {
	Body string `json:"body"`
}

// SubmitComment handles POST /posts/:slug/comments
func (h *BlogHandlers) SubmitComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, &blog.ValidationError{Field: "body", Reason: "malformed request body"})
		return
	}
	comment, err := h.aggregator.SubmitComment(c.Request.Context(), c.Param("slug"), viewerFrom(c), req.Body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":         comment.ID,
		"created_at": comment.CreatedAt,
	})
}

// ToggleLike handles POST /posts/:slug/like
func (h *BlogHandlers) ToggleLike(c *gin.Context) {
	liked, err := h.aggregator.ToggleLike(c.Request.Context(), c.Param("slug"), viewerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// ListTags handles GET /tags
func (h *BlogHandlers) ListTags(c *gin.Context) {
	tags, err := h.tags.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]blog.TagView, 0, len(tags))
	for _, tag := range tags {
		out = append(out, blog.TagView{ID: tag.ID, Name: tag.Name})
	}
	c.JSON(http.StatusOK, out)
}
