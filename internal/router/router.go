package router

import (
	"time"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/config"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/handler"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/middleware"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/repository"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/service"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// Async job dispatcher; the consuming worker pool is started in cmd/server
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	pubRepo := repository.NewPublicationRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	pubSvc := service.NewPublicationService(pubRepo, categoryRepo, tagRepo, visitRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	tagSvc := service.NewTagService(tagRepo)
	commentSvc := service.NewCommentService(commentRepo, pubRepo)
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo, cfg.BootstrapAdmins())
	contactSvc := service.NewContactService(contactRepo, dispatcher, cfg.AdminRecipients())

	// ── Handlers ─────────────────────────────────────────────────────────────
	pubsH := handler.NewPublicationsHandler(pubSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	tagsH := handler.NewTagsHandler(tagSvc)
	commentsH := handler.NewCommentsHandler(commentSvc)
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	contactH := handler.NewContactHandler(contactSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Operational endpoints
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh-token", authH.Refresh)
	}

	// Public reads — the website itself is anonymous
	r.GET("/v1/publications", pubsH.List)
	r.GET("/v1/publications/:id", pubsH.Get)
	r.GET("/v1/categories", categoriesH.List)
	r.GET("/v1/tags", tagsH.List)
	r.GET("/v1/contact-subjects", contactH.ListSubjects)

	// Public writes — visitor comments, reactions and contact form
	r.POST("/v1/publications/:id/comments", commentsH.Create)
	r.POST("/v1/comments/:id/reactions", commentsH.AddReaction)
	r.POST("/v1/contact", middleware.RateLimiter(10, time.Minute), contactH.Submit)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Publication writes — any authenticated user may create; updates and
		// deletes are further checked against ownership in the service layer
		v1.POST("/publications", pubsH.Create)
		v1.PUT("/publications/:id", pubsH.Update)
		v1.DELETE("/publications/:id", pubsH.Delete)

		adminMW := middleware.RequireRole(model.RoleAdmin, model.RoleSuperAdmin)

		categories := v1.Group("/categories", adminMW)
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		tags := v1.Group("/tags", adminMW)
		{
			tags.POST("", tagsH.Create)
			tags.DELETE("/:id", tagsH.Delete)
		}

		comments := v1.Group("/comments", adminMW)
		{
			comments.GET("", commentsH.List)
			comments.PATCH("/:id/approve", commentsH.Approve)
			comments.DELETE("/:id", commentsH.Delete)
		}

		contact := v1.Group("/contact/messages", adminMW)
		{
			contact.GET("", contactH.ListMessages)
			contact.PATCH("/:id/read", contactH.MarkRead)
		}

		// Role check plus the bootstrap allow-list happens in the service
		v1.GET("/users", usersH.List)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
