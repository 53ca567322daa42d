package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence"
	grpcapi "github.com/xiebiao/bookcatalog/internal/interface/grpc"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// App 进程内的顶层组件
type App struct {
	Engine *gin.Engine
	GRPC   *grpcapi.Server
	Seeder *appbook.SeedCatalogUseCase
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg prometheus.Registerer) *metrics.Metrics {
	return metrics.New(reg)
}

func provideBookRepository(s *persistence.Store) book.Repository {
	return s.Books
}

func provideTransactor(s *persistence.Store) book.Transactor {
	return s.Tx
}

func provideRouter(
	cfg *config.Config,
	log *zap.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	books *handler.BookHandler,
	health *handler.HealthHandler,
) *gin.Engine {
	return router.New(router.Deps{
		Config:   cfg,
		Logger:   log,
		Metrics:  m,
		Gatherer: gatherer,
		Books:    books,
		Health:   health,
	})
}

func provideGRPCServer(catalog grpcapi.CatalogServer, log *zap.Logger) *grpcapi.Server {
	return grpcapi.NewServer(catalog, log.Named("grpc"))
}
