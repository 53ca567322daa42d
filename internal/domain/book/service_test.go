package book

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	args := m.Called(ctx, params)
	books, _ := args.Get(0).([]*Book)
	return books, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) CreateBatch(ctx context.Context, books []*Book) error {
	return m.Called(ctx, books).Error(0)
}

func TestService_ListBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("参数合法时调用仓储", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)
		params := ListParams{Page: 1, PageSize: 5, Sort: ResolveSortField("price"), Desc: true}
		want := []*Book{{ID: 1, Title: "A"}}
		// ListParams含函数字段,不能用DeepEqual匹配
		repo.On("List", ctx, mock.MatchedBy(func(p ListParams) bool {
			return p.Page == 1 && p.PageSize == 5 && p.Sort.Field == "price" && p.Desc
		})).Return(want, int64(7), nil).Once()

		books, total, err := svc.ListBooks(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, want, books)
		assert.Equal(t, int64(7), total)
		repo.AssertExpectations(t)
	})

	t.Run("未指定排序列时使用title", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)
		repo.On("List", ctx, mock.MatchedBy(func(p ListParams) bool {
			return p.Sort.Field == DefaultSortField
		})).Return([]*Book{}, int64(0), nil).Once()

		_, _, err := svc.ListBooks(ctx, ListParams{Page: 1, PageSize: 5})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("非正数页码被拒绝", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)

		for _, page := range []int{0, -1} {
			_, _, err := svc.ListBooks(ctx, ListParams{Page: page, PageSize: 5})
			assert.ErrorIs(t, err, ErrInvalidPage)
		}
		for _, size := range []int{0, -3} {
			_, _, err := svc.ListBooks(ctx, ListParams{Page: 1, PageSize: size})
			assert.ErrorIs(t, err, ErrInvalidPageSize)
		}
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("仓储错误原样返回", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)
		storageErr := NewStorageError(errors.New("connection refused"), "查询图书列表失败")
		repo.On("List", ctx, mock.Anything).Return(nil, int64(0), storageErr).Once()

		_, _, err := svc.ListBooks(ctx, ListParams{Page: 1, PageSize: 5})
		assert.Same(t, storageErr, err)
	})
}

func TestService_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	books := []*Book{
		NewBook("Go", "Pike", "AW", "978-0", "Programming", "", 300, decimal.RequireFromString("39.99")),
	}

	t.Run("空表写入", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Count", ctx).Return(int64(0), nil).Once()
		repo.On("CreateBatch", ctx, books).Return(nil).Once()

		n, err := NewService(repo).SeedIfEmpty(ctx, books)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		repo.AssertExpectations(t)
	})

	t.Run("非空表跳过", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Count", ctx).Return(int64(3), nil).Once()

		n, err := NewService(repo).SeedIfEmpty(ctx, books)
		require.NoError(t, err)
		assert.Zero(t, n)
		repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("负数价格被拒绝", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Count", ctx).Return(int64(0), nil).Once()
		bad := []*Book{NewBook("X", "Y", "Z", "1", "C", "", 10, decimal.NewFromInt(-1))}

		_, err := NewService(repo).SeedIfEmpty(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidPrice)
		repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})
}
