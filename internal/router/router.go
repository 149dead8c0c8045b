// Package router assembles the gin engine: middleware chain plus the
// public storefront and admin panel route trees.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	adminhandlers "github.com/myseringan/texnokross-bolt-sub000/internal/http/handlers/admin"
	publichandlers "github.com/myseringan/texnokross-bolt-sub000/internal/http/handlers/public"
	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/kvstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/provider"
	"github.com/myseringan/texnokross-bolt-sub000/internal/router/middleware"
)

// New builds the HTTP engine.
func New(container *provider.Container) *gin.Engine {
	gin.SetMode(ginMode(container.Cfg.Server.Mode))

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(&container.Cfg.CORS),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	public := publichandlers.New(container)
	admin := adminhandlers.New(container)

	api := engine.Group("/api")
	api.Use(middleware.Session(), middleware.UserAuth(container.Auth))
	{
		api.GET("/products", public.ListProducts)
		api.GET("/products/:id", public.GetProduct)
		api.GET("/categories", public.ListCategories)
		api.GET("/banners", public.ListBanners)
		api.GET("/captcha/image", public.CaptchaImage)

		cart := api.Group("/cart")
		{
			cart.GET("", public.GetCart)
			cart.DELETE("", public.ClearCart)
			cart.POST("/items", public.AddCartItem)
			cart.PUT("/items/:id", public.UpdateCartItem)
			cart.DELETE("/items/:id", public.RemoveCartItem)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", public.Register)
			auth.POST("/login", public.Login)
			auth.POST("/forgot-password", public.ForgotPassword)
			auth.POST("/reset-password", public.ResetPassword)
			auth.POST("/change-password", public.ChangePassword)
			auth.GET("/me", middleware.RequireUser(), public.Me)
		}

		api.POST("/orders", public.PlaceOrder)
		api.GET("/orders", public.ListOrders)
		api.GET("/orders/:id", public.GetOrder)
	}

	adminGroup := engine.Group("/api/admin")
	{
		adminGroup.POST("/login",
			middleware.LoginRateLimit(
				&container.Cfg.Security.LoginRateLimit,
				redisClient(container),
				container.Cfg.Redis.Prefix,
			),
			admin.Login,
		)

		guarded := adminGroup.Group("")
		guarded.Use(middleware.AdminAuth(container.AdminAuth))
		{
			guarded.GET("/products", admin.ListProducts)
			guarded.POST("/products", admin.CreateProduct)
			guarded.PUT("/products/:id", admin.UpdateProduct)
			guarded.DELETE("/products/:id", admin.DeleteProduct)

			guarded.GET("/categories", admin.ListCategories)
			guarded.POST("/categories", admin.CreateCategory)
			guarded.PUT("/categories/:id", admin.UpdateCategory)
			guarded.DELETE("/categories/:id", admin.DeleteCategory)

			guarded.GET("/banners", admin.ListBanners)
			guarded.PUT("/banners", admin.SaveBanners)

			guarded.GET("/orders", admin.ListOrders)
			guarded.GET("/orders/:id", admin.GetOrder)
			guarded.PUT("/orders/:id/status", admin.UpdateOrderStatus)
		}
	}

	return engine
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// redisClient surfaces the shared redis connection when the kvstore runs
// on redis, for middleware that wants cross-instance state.
func redisClient(container *provider.Container) *redis.Client {
	if store, ok := container.KV.(*kvstore.RedisStore); ok {
		return store.Client()
	}
	return nil
}
