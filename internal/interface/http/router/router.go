// Package router 注册HTTP路由和中间件
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookcatalog/docs" // swagger文档
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/internal/web"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// Deps 路由依赖
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *metrics.Metrics    // 可为nil
	Gatherer prometheus.Gatherer // /metrics的数据来源,nil时使用默认Registry
	Books    *handler.BookHandler
	Health   *handler.HealthHandler
}

// New 创建Gin引擎
// 中间件顺序:追踪 → 日志(取trace_id) → panic恢复 → 指标 → CORS
func New(d Deps) *gin.Engine {
	cfg := d.Config
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode, gin.DebugMode:
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(
		middleware.Tracing(),
		middleware.Logger(d.Logger),
		middleware.Recovery(),
		middleware.Metrics(d.Metrics),
		middleware.CORS(cfg.CORS),
	)

	// 健康检查
	r.GET("/ping", d.Health.Ping)
	r.GET("/healthz", d.Health.Ready)

	if cfg.Metrics.Enabled {
		gatherer := d.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger文档: http://localhost:8080/swagger/index.html
	if cfg.Server.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		api.GET("/books", d.Books.ListBooks)
	}

	if cfg.Server.ServeClient {
		registerClient(r)
	}

	return r
}

// registerClient 内置前端页面
func registerClient(r *gin.Engine) {
	r.StaticFS("/assets", http.FS(web.Assets()))
	r.GET("/", func(c *gin.Context) {
		html, err := web.IndexHTML()
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", html)
	})
}
