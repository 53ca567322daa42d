package client

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// PageSizeOptions 可选的每页数量
var PageSizeOptions = []int{5, 10, 20}

// ErrStale 响应返回时已经有更新的请求发出,该响应被丢弃
var ErrStale = errors.New("stale response discarded")

// State 分页状态快照
type State struct {
	Page      int
	PageSize  int
	SortField string
	Books     []Book
	Total     int64
}

// TotalPages ceil(Total / PageSize)
func (s State) TotalPages() int {
	if s.PageSize <= 0 {
		return 0
	}
	return int((s.Total + int64(s.PageSize) - 1) / int64(s.PageSize))
}

// HasPrev 是否有上一页
func (s State) HasPrev() bool {
	return s.Page > 1
}

// HasNext 是否有下一页
func (s State) HasNext() bool {
	return s.Page < s.TotalPages()
}

// Pager 分页状态机
// 页码、每页数量、排序字段任一变化都会重新请求(排序方向固定为asc);
// 每次请求分配递增序号,只有最新请求的响应会更新状态;请求失败时保持原状态
type Pager struct {
	client Client
	log    *zap.Logger

	mu    sync.Mutex
	seq   uint64
	state State
}

// NewPager 创建分页器,初始为第1页
func NewPager(client Client, log *zap.Logger, pageSize int, sortField string) *Pager {
	if log == nil {
		log = zap.NewNop()
	}
	if pageSize <= 0 {
		pageSize = PageSizeOptions[0]
	}
	if sortField == "" {
		sortField = "Title"
	}
	return &Pager{
		client: client,
		log:    log,
		state:  State{Page: 1, PageSize: pageSize, SortField: sortField, Books: []Book{}},
	}
}

// State 当前状态的副本
func (p *Pager) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.state
	s.Books = slices.Clone(p.state.Books)
	return s
}

// Load 按当前参数重新请求
func (p *Pager) Load(ctx context.Context) error {
	return p.fetch(ctx, func(s *State) {})
}

// SetPage 跳转到指定页
func (p *Pager) SetPage(ctx context.Context, page int) error {
	return p.fetch(ctx, func(s *State) { s.Page = page })
}

// Next 下一页
func (p *Pager) Next(ctx context.Context) error {
	return p.fetch(ctx, func(s *State) { s.Page++ })
}

// Prev 上一页
func (p *Pager) Prev(ctx context.Context) error {
	return p.fetch(ctx, func(s *State) { s.Page-- })
}

// SetPageSize 修改每页数量,回到第1页
func (p *Pager) SetPageSize(ctx context.Context, size int) error {
	return p.fetch(ctx, func(s *State) {
		s.PageSize = size
		s.Page = 1
	})
}

// SetSortField 修改排序字段,回到第1页
func (p *Pager) SetSortField(ctx context.Context, field string) error {
	return p.fetch(ctx, func(s *State) {
		s.SortField = field
		s.Page = 1
	})
}

func (p *Pager) fetch(ctx context.Context, change func(s *State)) error {
	p.mu.Lock()
	p.seq++
	id := p.seq
	next := p.state
	change(&next)
	p.mu.Unlock()

	page, err := p.client.ListBooks(ctx, Query{
		Page:      next.Page,
		PageSize:  next.PageSize,
		SortField: next.SortField,
		SortOrder: "asc",
	})

	p.mu.Lock()
	defer p.mu.Unlock()

	if id != p.seq {
		p.log.Debug("丢弃过期响应", zap.Uint64("seq", id), zap.Uint64("latest", p.seq))
		return ErrStale
	}
	if err != nil {
		p.log.Error("获取图书列表失败", zap.Error(err),
			zap.Int("page", next.Page),
			zap.Int("page_size", next.PageSize),
			zap.String("sort_field", next.SortField),
		)
		return err
	}

	next.Books = page.Books
	next.Total = page.TotalBooks
	p.state = next
	return nil
}
