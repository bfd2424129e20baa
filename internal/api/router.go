package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quillpress/quillpress/internal/accounts"
	"github.com/quillpress/quillpress/internal/blog"
	"github.com/quillpress/quillpress/internal/cache"
	"github.com/quillpress/quillpress/internal/db"
	"github.com/quillpress/quillpress/pkg/logging"
)

// Router wires the repositories, domain services, and handlers onto a
// gin engine.
type Router struct {
	blogHandlers  *BlogHandlers
	adminHandlers *AdminHandlers
	accountRepo   *db.AccountRepository
	db            *db.DB
	logger        *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, nameTTL time.Duration) *Router {
	repo := db.NewRepository(database.DB)

	postRepo := db.NewPostRepository(repo)
	tagRepo := db.NewTagRepository(repo)
	likeRepo := db.NewLikeRepository(repo)
	commentRepo := db.NewCommentRepository(repo)
	accountRepo := db.NewAccountRepository(repo)

	resolver := accounts.NewCachedResolver(accounts.NewResolver(accountRepo), redisCache, nameTTL)
	aggregator := blog.NewAggregator(postRepo, likeRepo, commentRepo, resolver)
	store := blog.NewPostStore(postRepo, tagRepo, likeRepo, commentRepo)

	return &Router{
		blogHandlers:  NewBlogHandlers(aggregator, tagRepo),
		adminHandlers: NewAdminHandlers(store, tagRepo, accountRepo),
		accountRepo:   accountRepo,
		db:            database,
		logger:        logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	public := engine.Group("/", ViewerMiddleware())
	public.GET("/posts/:slug", r.blogHandlers.GetPost)
	public.POST("/posts/:slug/comments", r.blogHandlers.SubmitComment)
	public.POST("/posts/:slug/like", r.blogHandlers.ToggleLike)
	public.GET("/tags", r.blogHandlers.ListTags)

	admin := engine.Group("/admin", ViewerMiddleware(), RequireAdmin(r.accountRepo))
	admin.POST("/posts", r.adminHandlers.CreatePost)
	admin.PUT("/posts/:id", r.adminHandlers.UpdatePost)
	admin.GET("/posts/:id", r.adminHandlers.GetPost)
	admin.GET("/posts", r.adminHandlers.ListPosts)
	admin.DELETE("/posts/:id", r.adminHandlers.DeletePost)
	admin.POST("/tags", r.adminHandlers.CreateTag)
	admin.DELETE("/tags/:id", r.adminHandlers.DeleteTag)
	admin.GET("/accounts", r.adminHandlers.ListAccounts)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	if err := r.db.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DEGRADED",
			"service": "quillpress-api",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "quillpress-api",
	})
}
