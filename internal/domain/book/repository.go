package book

import (
	"context"
)

// Repository 图书仓储接口
// 由domain层定义,infrastructure层实现
type Repository interface {
	// List 按排序列排序后分页查询,同时返回不受分页影响的总数
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Count 图书总数
	Count(ctx context.Context) (int64, error)

	// CreateBatch 批量写入(只在启动时的初始化数据步骤中使用)
	CreateBatch(ctx context.Context, books []*Book) error
}

// ListParams 列表查询参数(已完成解析和校验)
type ListParams struct {
	Page     int        // 页码(从1开始)
	PageSize int        // 每页数量
	Sort     SortColumn // 排序列
	Desc     bool       // 是否降序
}

// Offset 跳过的记录数
// 第二个返回值为false表示溢出,此时分页结果必然为空
func (p ListParams) Offset() (int64, bool) {
	page := int64(p.Page) - 1
	size := int64(p.PageSize)
	if page <= 0 {
		return 0, true
	}
	if size > 0 && page > maxInt64/size {
		return 0, false
	}
	return page * size, true
}

const maxInt64 = int64(^uint64(0) >> 1)

// Transactor 事务边界
// fn内通过ctx传递事务,仓储方法使用同一个ctx时参与该事务
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
