package book

import (
	"context"
)

// Service 图书领域服务接口
type Service interface {
	// ListBooks 分页查询图书列表
	// 业务规则:
	// - page、pageSize必须为正整数(不交给数据库处理负数offset/limit)
	// - 总数与分页、排序无关
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// SeedIfEmpty 表为空时写入初始数据,返回写入条数
	SeedIfEmpty(ctx context.Context, books []*Book) (int, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	if params.Page < 1 {
		return nil, 0, ErrInvalidPage
	}
	if params.PageSize < 1 {
		return nil, 0, ErrInvalidPageSize
	}
	if params.Sort.compare == nil {
		params.Sort = ResolveSortField(DefaultSortField)
	}
	return s.repo.List(ctx, params)
}

// SeedIfEmpty 初始化数据
func (s *service) SeedIfEmpty(ctx context.Context, books []*Book) (int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 || len(books) == 0 {
		return 0, nil
	}

	for _, b := range books {
		if err := b.Validate(); err != nil {
			return 0, err
		}
	}

	if err := s.repo.CreateBatch(ctx, books); err != nil {
		return 0, err
	}
	return len(books), nil
}
