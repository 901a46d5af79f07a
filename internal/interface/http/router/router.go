package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/marketplace/internal/infrastructure/config"
	"github.com/xiebiao/marketplace/internal/interface/http/handler"
	"github.com/xiebiao/marketplace/internal/interface/http/middleware"
	"github.com/xiebiao/marketplace/pkg/response"
)

// Handlers 所有HTTP处理器
type Handlers struct {
	User    *handler.UserHandler
	Store   *handler.StoreHandler
	Review  *handler.ReviewHandler
	Seller  *handler.SellerHandler
	Product *handler.ProductHandler
	Admin   *handler.AdminHandler
}

// New 创建Gin引擎并注册全部路由
// 中间件顺序：Recovery → RequestID → Logger → Metrics → 路由级Auth
func New(cfg *config.Config, logger *zap.Logger, h *Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler.RegisterValidatorTagName()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 生产环境建议关闭Swagger或加访问控制
	if cfg.Server.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", h.User.Register)
			users.POST("/login", h.User.Login)
			users.POST("/logout", auth.RequireAuth(), h.User.Logout)
		}

		v1.GET("/categories", h.Admin.ListCategories)

		store := v1.Group("/store")
		{
			store.GET("", h.Store.List)
			store.GET("/search", h.Store.Search)
			store.GET("/category/:category_slug", h.Store.Category)
			store.GET("/category/:category_slug/:product_slug", auth.OptionalAuth(), h.Store.Detail)

			reviews := store.Group("/category/:category_slug/:product_slug/reviews", auth.RequireAuth())
			{
				reviews.POST("", h.Review.Add)
				reviews.PUT("/:review_id", h.Review.Edit)
				reviews.DELETE("/:review_id", h.Review.Delete)
			}
		}

		sellers := v1.Group("/sellers")
		{
			sellers.GET("/:user_id", h.Seller.Profile)
			sellers.POST("/:user_id/messages", auth.RequireAuth(), h.Seller.Contact)
		}

		v1.GET("/messages/:id", auth.RequireAuth(), h.Seller.Message)

		products := v1.Group("/products", auth.RequireAuth())
		{
			products.POST("", h.Product.Create)
			products.PUT("/:id", h.Product.Update)
			products.DELETE("/:id", h.Product.Delete)
			products.PATCH("/:id/status", h.Product.SetStatus)
			products.POST("/:id/variations", h.Product.AddVariation)
		}

		admin := v1.Group("/admin", auth.RequireAuth(), auth.RequireStaff())
		{
			admin.POST("/categories", h.Admin.CreateCategory)
			admin.PATCH("/products/:id/approval", h.Admin.SetApproval)
			admin.PATCH("/variations/:id", h.Admin.SetVariationActive)
		}
	}

	return r
}
