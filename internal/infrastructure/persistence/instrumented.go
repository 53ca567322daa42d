package persistence

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/circuitbreaker"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const (
	tracerName  = "book.repository"
	breakerName = "book-repository"
)

// tracedRepository 为每次存储调用创建Span
type tracedRepository struct {
	next book.Repository
}

func newTracedRepository(next book.Repository) book.Repository {
	return &tracedRepository{next: next}
}

func (r *tracedRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "List",
		attribute.Int("page", params.Page),
		attribute.Int("page_size", params.PageSize),
		attribute.String("sort_field", params.Sort.Field),
		attribute.Bool("desc", params.Desc),
	)
	defer span.End()

	books, total, err := r.next.List(ctx, params)
	tracing.RecordError(span, err)
	span.SetAttributes(attribute.Int64("total", total), attribute.Int("returned", len(books)))
	return books, total, err
}

func (r *tracedRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "Count")
	defer span.End()

	total, err := r.next.Count(ctx)
	tracing.RecordError(span, err)
	return total, err
}

func (r *tracedRepository) CreateBatch(ctx context.Context, books []*book.Book) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateBatch", attribute.Int("count", len(books)))
	defer span.End()

	err := r.next.CreateBatch(ctx, books)
	tracing.RecordError(span, err)
	return err
}

// breakerRepository 熔断保护
// 熔断打开时直接返回存储错误,不访问数据库
type breakerRepository struct {
	next book.Repository
	cb   *circuitbreaker.CircuitBreaker
	m    *metrics.Metrics
}

func newBreakerRepository(next book.Repository, cfg config.BreakerConfig, log *zap.Logger, m *metrics.Metrics) *breakerRepository {
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}

	cb := circuitbreaker.New(breakerName, circuitbreaker.Config{
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
		// 调用方取消请求不算数据库故障
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			if log != nil {
				log.Warn("熔断器状态变化",
					zap.String("name", name),
					zap.Stringer("from", from),
					zap.Stringer("to", to),
				)
			}
			m.SetBreakerState(name, int(to))
		},
	})
	m.SetBreakerState(breakerName, int(circuitbreaker.StateClosed))

	return &breakerRepository{next: next, cb: cb, m: m}
}

func (r *breakerRepository) execute(fn func() error) error {
	err := r.cb.Execute(fn)
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		r.m.IncBreakerRequest(breakerName, "rejected")
		return book.NewStorageError(err, "存储暂时不可用")
	case err != nil:
		r.m.IncBreakerRequest(breakerName, "failure")
	default:
		r.m.IncBreakerRequest(breakerName, "success")
	}
	return err
}

func (r *breakerRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var (
		books []*book.Book
		total int64
	)
	err := r.execute(func() error {
		var err error
		books, total, err = r.next.List(ctx, params)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *breakerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.execute(func() error {
		var err error
		total, err = r.next.Count(ctx)
		return err
	})
	return total, err
}

func (r *breakerRepository) CreateBatch(ctx context.Context, books []*book.Book) error {
	return r.execute(func() error {
		return r.next.CreateBatch(ctx, books)
	})
}
