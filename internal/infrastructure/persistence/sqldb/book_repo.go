package sqldb

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// bookRepository 图书仓储实现(gorm)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 所有数据库错误统一转换为存储错误(50001)
type bookRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewBookRepository 创建图书仓储
// timeout为每次存储调用的超时时间,0表示只受调用方context控制
func NewBookRepository(db *gorm.DB, timeout time.Duration) book.Repository {
	return &bookRepository{db: db, timeout: timeout}
}

// List 排序 + 分页查询
// SELECT ... FROM books ORDER BY <col> <dir>, book_id ASC LIMIT ? OFFSET ?
// 总数单独查询,不受分页、排序影响
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	conn := connFrom(ctx, r.db)

	var total int64
	if err := conn.Model(&BookModel{}).Count(&total).Error; err != nil {
		return nil, 0, book.NewStorageError(err, "查询图书总数失败")
	}

	offset, ok := params.Offset()
	if !ok || offset >= total {
		return []*book.Book{}, total, nil
	}

	var models []BookModel
	err := conn.Model(&BookModel{}).
		Order(r.orderBy(params.Sort, params.Desc)).
		Limit(params.PageSize).
		Offset(int(offset)).
		Find(&models).Error
	if err != nil {
		return nil, 0, book.NewStorageError(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := connFrom(ctx, r.db).Model(&BookModel{}).Count(&total).Error; err != nil {
		return 0, book.NewStorageError(err, "查询图书总数失败")
	}
	return total, nil
}

// CreateBatch 批量写入并回填自增ID
func (r *bookRepository) CreateBatch(ctx context.Context, books []*book.Book) error {
	if len(books) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	models := make([]*BookModel, len(books))
	for i, b := range books {
		models[i] = toBookModel(b)
	}

	if err := connFrom(ctx, r.db).CreateInBatches(models, 100).Error; err != nil {
		return book.NewStorageError(err, "写入图书失败")
	}

	for i, m := range models {
		books[i].ID = m.ID
	}
	return nil
}

// orderBy 排序子句
// 价格列按方言转换为数值再排序;book_id ASC作为并列时的兜底顺序(两个方向都一样)
func (r *bookRepository) orderBy(col book.SortColumn, desc bool) clause.OrderBy {
	if col.Column == "" {
		col = book.ResolveSortField(book.DefaultSortField)
	}

	primary := clause.Column{Name: col.Column}
	if col.Decimal {
		primary = clause.Column{Name: numericCast(r.db.Dialector.Name(), col.Column), Raw: true}
	}

	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: primary, Desc: desc},
		{Column: clause.Column{Name: "book_id"}},
	}}
}

// numericCast 各方言的数值转换表达式
func numericCast(dialect, column string) string {
	switch dialect {
	case "mysql":
		return "CAST(" + column + " AS DECIMAL(18,2))"
	case "postgres":
		return "CAST(" + column + " AS NUMERIC)"
	default:
		return "CAST(" + column + " AS REAL)"
	}
}

func (r *bookRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}
