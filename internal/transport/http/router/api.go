package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"product-portal/internal/core/auth"
	"product-portal/internal/core/config"
	"product-portal/internal/domain"
	"product-portal/internal/repo"
	"product-portal/internal/service"
	"product-portal/internal/transport/http/handler"
	mdw "product-portal/internal/transport/http/middleware"
	resp "product-portal/internal/transport/http/response"
)

// New 组装完整的 API 引擎：中间件链 + 路由 + 依赖注入都在这里完成
func New(l *zap.Logger, cfg *config.Config, db *gorm.DB, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	origins := cfg.CORS.Origins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	corsCfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(
		mdw.RequestID(),
		cors.New(corsCfg),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		// panic 只打日志，客户端永远只看到笼统的 500 信封
		ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, _ any) {
			resp.AbortFail(c, http.StatusInternalServerError, "Internal server error")
		}),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api/health", func(c *gin.Context) {
		resp.OK(c, http.StatusOK, "Server is running", gin.H{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c, http.StatusNotFound, "Route not found")
	})

	users := repo.NewUserRepo(db)
	catalog := repo.NewCatalogRepo(db)
	authH := handler.NewAuthHandler(service.NewAuthService(users, jwter))
	prodH := handler.NewProductHandler(service.NewCatalogService(catalog))

	// 先认证后授权，顺序不可调换
	authn := mdw.Authenticate(jwter, users)

	api := r.Group("/api")

	ag := api.Group("/auth")
	ag.POST("/register", mdw.RateLimitPerIP(10, 30), authH.Register)
	ag.POST("/login", mdw.RateLimitPerIP(10, 30), authH.Login)
	ag.GET("/me", authn, authH.Me)

	pg := api.Group("/products")
	pg.Use(authn)
	pg.POST("", mdw.RequireRole(domain.RoleUser), prodH.Create)
	pg.GET("", mdw.RequireRole(domain.RoleAdmin), prodH.ListAll)
	pg.GET("/my", mdw.RequireRole(domain.RoleUser), prodH.ListMine)
	pg.GET("/:id", prodH.Get)
	pg.DELETE("/:id", mdw.RequireRole(domain.RoleAdmin), prodH.Delete)

	return r
}
