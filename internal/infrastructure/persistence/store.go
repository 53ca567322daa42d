// Package persistence 按配置组装存储层
//
// 调用链: 熔断器 → 追踪 → 具体仓储(sqldb / memory)
package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// Store 存储层组件
type Store struct {
	Books book.Repository
	Tx    book.Transactor
	db    *gorm.DB // memory驱动时为nil
}

// Open 根据database.driver创建存储层
// 返回的cleanup关闭数据库连接
func Open(cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (*Store, func(), error) {
	var (
		store = &Store{}
		repo  book.Repository
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		repo = memory.NewBookRepository()
		store.Tx = memory.TxManager{}
	default:
		db, err := sqldb.NewDB(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		store.db = db
		repo = sqldb.NewBookRepository(db, cfg.Database.QueryTimeout)
		store.Tx = sqldb.NewTxManager(db)
	}

	repo = newTracedRepository(repo)
	if cfg.Breaker.Enabled {
		repo = newBreakerRepository(repo, cfg.Breaker, log, m)
	}
	store.Books = repo

	cleanup := func() {
		if err := store.Close(); err != nil && log != nil {
			log.Warn("关闭数据库连接失败", zap.Error(err))
		}
	}
	return store, cleanup, nil
}

// Close 关闭数据库连接,可重复调用
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return sqldb.Close(s.db)
}

// Ping 就绪检查
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if err := sqldb.Ping(ctx, s.db); err != nil {
		return fmt.Errorf("数据库不可用: %w", err)
	}
	return nil
}
