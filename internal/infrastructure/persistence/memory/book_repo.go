// Package memory 内存版图书仓储
// 进程重启后数据丢失,用于本地演示和测试(database.driver=memory)
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// BookRepository 并发安全
type BookRepository struct {
	mu     sync.RWMutex
	books  []book.Book // 按插入顺序(即ID顺序)保存
	nextID uint
}

// NewBookRepository 创建内存仓储
func NewBookRepository() *BookRepository {
	return &BookRepository{nextID: 1}
}

var _ book.Repository = (*BookRepository)(nil)

// List 排序 + 分页
// 稳定排序,升降序时并列记录都保持插入顺序
func (r *BookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, book.NewStorageError(err, "查询图书列表失败")
	}

	r.mu.RLock()
	sorted := slices.Clone(r.books)
	r.mu.RUnlock()

	total := int64(len(sorted))
	offset, ok := params.Offset()
	if !ok || offset >= total {
		return []*book.Book{}, total, nil
	}

	col := params.Sort
	if col.Column == "" {
		col = book.ResolveSortField(book.DefaultSortField)
	}
	slices.SortStableFunc(sorted, func(a, b book.Book) int {
		if params.Desc {
			return col.Compare(&b, &a)
		}
		return col.Compare(&a, &b)
	})

	end := offset + int64(params.PageSize)
	if end > total || end < offset {
		end = total
	}

	page := make([]*book.Book, 0, end-offset)
	for i := offset; i < end; i++ {
		b := sorted[i]
		page = append(page, &b)
	}
	return page, total, nil
}

// Count 图书总数
func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, book.NewStorageError(err, "查询图书总数失败")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.books)), nil
}

// CreateBatch 写入并分配ID
func (r *BookRepository) CreateBatch(ctx context.Context, books []*book.Book) error {
	if err := ctx.Err(); err != nil {
		return book.NewStorageError(err, "写入图书失败")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range books {
		b.ID = r.nextID
		r.nextID++
		r.books = append(r.books, *b)
	}
	return nil
}

// TxManager 内存存储没有事务,直接执行fn
type TxManager struct{}

// Transaction 执行fn,不支持回滚
func (TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
