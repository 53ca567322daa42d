// Package grpc 图书目录gRPC接口
//
// 服务: bookstore.catalog.v1.CatalogService
// 方法: ListBooks,语义与 GET /api/books 一致
// 编码: json(见codec.go);另外注册标准的grpc.health.v1.Health
package grpc

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
)

// ServiceName 完整服务名
const ServiceName = "bookstore.catalog.v1.CatalogService"

const listBooksMethod = "/" + ServiceName + "/ListBooks"

// ListBooksRequest 列表请求
// 字段为nil表示未传,使用默认值;0或负数会被拒绝
type ListBooksRequest struct {
	Page      *int32  `json:"page,omitempty"`
	PageSize  *int32  `json:"pageSize,omitempty"`
	SortField *string `json:"sortField,omitempty"`
	SortOrder *string `json:"sortOrder,omitempty"`
}

// Book 图书消息
type Book struct {
	BookID         uint        `json:"bookId"`
	Title          string      `json:"title"`
	Author         string      `json:"author"`
	Publisher      string      `json:"publisher"`
	ISBN           string      `json:"isbn"`
	Category       string      `json:"category"`
	Classification string      `json:"classification,omitempty"`
	PageCount      int         `json:"pageCount"`
	Price          json.Number `json:"price"`
}

// ListBooksResponse 列表响应
type ListBooksResponse struct {
	TotalBooks int64  `json:"totalBooks"`
	Books      []Book `json:"books"`
}

// CatalogServer 服务端接口
type CatalogServer interface {
	ListBooks(ctx context.Context, req *ListBooksRequest) (*ListBooksResponse, error)
}

// CatalogServiceDesc 手写的服务描述(等价于protoc-gen-go-grpc生成的_ServiceDesc)
var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListBooks",
			Handler:    listBooksHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bookstore/catalog/v1/catalog.proto",
}

// RegisterCatalogServer 注册服务
func RegisterCatalogServer(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

func listBooksHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListBooksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServer).ListBooks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: listBooksMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServer).ListBooks(ctx, req.(*ListBooksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogClient 客户端
type CatalogClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogClient 创建客户端,调用时自动使用json编码
func NewCatalogClient(cc grpc.ClientConnInterface) *CatalogClient {
	return &CatalogClient{cc: cc}
}

// ListBooks 调用远端ListBooks
func (c *CatalogClient) ListBooks(ctx context.Context, req *ListBooksRequest, opts ...grpc.CallOption) (*ListBooksResponse, error) {
	out := new(ListBooksResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, listBooksMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// catalogService CatalogServer实现,复用HTTP同一个用例
type catalogService struct {
	listBooks *appbook.ListBooksUseCase
	log       *zap.Logger
}

// NewCatalogService 创建服务实现
func NewCatalogService(listBooks *appbook.ListBooksUseCase, log *zap.Logger) CatalogServer {
	if log == nil {
		log = zap.NewNop()
	}
	return &catalogService{listBooks: listBooks, log: log}
}

func (s *catalogService) ListBooks(ctx context.Context, req *ListBooksRequest) (*ListBooksResponse, error) {
	q := s.listBooks.DefaultRequest()
	if req.Page != nil {
		q.Page = int(*req.Page)
	}
	if req.PageSize != nil {
		q.PageSize = int(*req.PageSize)
	}
	if req.SortField != nil && *req.SortField != "" {
		q.SortField = *req.SortField
	}
	if req.SortOrder != nil && *req.SortOrder != "" {
		q.SortOrder = *req.SortOrder
	}

	result, err := s.listBooks.Execute(ctx, q)
	if err != nil {
		st := toStatus(err)
		if status.Code(st) == codes.Internal {
			s.log.Error("ListBooks失败", zap.Error(err))
		}
		return nil, st
	}

	books := make([]Book, len(result.Books))
	for i, b := range result.Books {
		books[i] = Book{
			BookID:         b.ID,
			Title:          b.Title,
			Author:         b.Author,
			Publisher:      b.Publisher,
			ISBN:           b.ISBN,
			Category:       b.Category,
			Classification: b.Classification,
			PageCount:      b.PageCount,
			Price:          json.Number(b.Price.String()),
		}
	}
	return &ListBooksResponse{TotalBooks: result.TotalBooks, Books: books}, nil
}
