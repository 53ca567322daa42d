package book

import (
	"cmp"
	"strings"
)

// SortColumn 排序列描述
// 对外字段名 → 数据库列 + 比较函数,每次请求只查一次表
type SortColumn struct {
	Field   string // 规范化后的对外字段名
	Column  string // 数据库列名
	Decimal bool   // 货币列:排序前需转换为数值类型(部分数据库把decimal存成文本)
	compare func(a, b *Book) int
}

// Compare 按该列比较两本图书(升序语义)
// 文本列区分大小写,按字节序比较
func (c SortColumn) Compare(a, b *Book) int {
	return c.compare(a, b)
}

// DefaultSortField 未识别或未传入排序字段时使用的字段
const DefaultSortField = "title"

var sortColumns = map[string]SortColumn{
	"title": {Field: "title", Column: "title", compare: func(a, b *Book) int {
		return strings.Compare(a.Title, b.Title)
	}},
	"author": {Field: "author", Column: "author", compare: func(a, b *Book) int {
		return strings.Compare(a.Author, b.Author)
	}},
	"publisher": {Field: "publisher", Column: "publisher", compare: func(a, b *Book) int {
		return strings.Compare(a.Publisher, b.Publisher)
	}},
	"isbn": {Field: "isbn", Column: "isbn", compare: func(a, b *Book) int {
		return strings.Compare(a.ISBN, b.ISBN)
	}},
	"category": {Field: "category", Column: "category", compare: func(a, b *Book) int {
		return strings.Compare(a.Category, b.Category)
	}},
	"classification": {Field: "classification", Column: "classification", compare: func(a, b *Book) int {
		return strings.Compare(a.Classification, b.Classification)
	}},
	// 前端下拉框使用"Pages"
	"pages": {Field: "pages", Column: "page_count", compare: func(a, b *Book) int {
		return cmp.Compare(a.PageCount, b.PageCount)
	}},
	"price": {Field: "price", Column: "price", Decimal: true, compare: func(a, b *Book) int {
		return a.Price.Cmp(b.Price)
	}},
}

// ResolveSortField 解析排序字段(不区分大小写的精确匹配)
// 未识别的值回退到title,不报错
func ResolveSortField(field string) SortColumn {
	if col, ok := sortColumns[strings.ToLower(field)]; ok {
		return col
	}
	return sortColumns[DefaultSortField]
}

// ResolveSortOrder 解析排序方向,返回是否降序
// 只有"asc"(不区分大小写)是升序,其它任何值都按降序处理
func ResolveSortOrder(order string) bool {
	return strings.ToLower(order) != "asc"
}

// SortFields 所有可识别的排序字段
func SortFields() []string {
	return []string{"title", "author", "publisher", "isbn", "category", "classification", "pages", "price"}
}
