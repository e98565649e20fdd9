package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle_backend/internal/api"
	authhandler "vehicle_backend/internal/feature/auth/transport/handler"
	cataloghandler "vehicle_backend/internal/feature/catalog/transport/handler"
	jwtmw "vehicle_backend/internal/platform/jwt"
	"vehicle_backend/internal/shared/ratelimiter"
)

// loginAttemptsPerMinute はIPごとのログイン試行の上限です。
const loginAttemptsPerMinute = 10

// NewRouter は全ルートを登録したginエンジンを返します。
func NewRouter(
	decoder jwtmw.TokenDecoder,
	auth *authhandler.AuthHandler,
	brands *cataloghandler.BrandHandler,
	models *cataloghandler.ModelHandler,
	vehicles *cataloghandler.VehicleHandler,
) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	base := r.Group("/api")

	// ログイン（JWT 発行）。ブルートフォース緩和のためIP単位で試行を制限する。
	loginLimiter := ratelimiter.NewRateLimiter(loginAttemptsPerMinute, time.Minute)
	base.POST("/auth/login", func(c *gin.Context) {
		if !loginLimiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "too many login attempts"})
			return
		}
		auth.Login(c)
	})

	// カタログルート。jwtmw.Authenticateは有効なトークンがあれば
	// アイデンティティを付与し、期限切れトークンのみ401で遮断する。
	catalog := base.Group("/")
	catalog.Use(jwtmw.Authenticate(decoder))
	{
		catalog.GET("/brands", brands.List)
		catalog.GET("/brands/deleted", brands.ListDeleted)
		catalog.GET("/brands/:id", brands.Get)
		catalog.POST("/brands", brands.Create)
		catalog.PUT("/brands/:id", brands.Update)
		catalog.DELETE("/brands/:id", brands.Delete)

		catalog.GET("/models", models.List)
		catalog.GET("/models/deleted", models.ListDeleted)
		catalog.GET("/models/:id", models.Get)
		catalog.POST("/models", models.Create)
		catalog.PUT("/models/:id", models.Update)
		catalog.DELETE("/models/:id", models.Delete)

		catalog.GET("/vehicles", vehicles.List)
		catalog.GET("/vehicles/deleted", vehicles.ListDeleted)
		catalog.GET("/vehicles/:id", vehicles.Get)
		catalog.POST("/vehicles", vehicles.Create)
		catalog.PUT("/vehicles/:id", vehicles.Update)
		catalog.DELETE("/vehicles/:id", vehicles.Delete)
	}

	return r
}
