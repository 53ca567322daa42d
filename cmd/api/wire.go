//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改后执行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence"
	grpcapi "github.com/xiebiao/bookcatalog/internal/interface/grpc"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
)

// observabilitySet 指标
var observabilitySet = wire.NewSet(
	provideRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	provideMetrics,
)

// persistenceSet 存储层
var persistenceSet = wire.NewSet(
	persistence.Open,
	provideBookRepository,
	provideTransactor,
	wire.Bind(new(handler.Pinger), new(*persistence.Store)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewSeedCatalogUseCase,
)

// interfaceSet HTTP与gRPC入口
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewHealthHandler,
	provideRouter,
	grpcapi.NewCatalogService,
	provideGRPCServer,
)

// InitializeApp 组装整个应用
// 返回的cleanup关闭数据库连接
func InitializeApp(cfg *config.Config, log *zap.Logger) (*App, func(), error) {
	wire.Build(
		observabilitySet,
		persistenceSet,
		domainSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
