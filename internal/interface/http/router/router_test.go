package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

func testConfig() *config.Config {
	v := config.NewViper()
	v.Set("server.mode", "test")
	v.Set("database.driver", config.DriverSQLite)
	v.Set("database.dsn", ":memory:")
	cfg, err := config.FromViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

type fixture struct {
	handler http.Handler
	store   *persistence.Store
}

func newFixture(t *testing.T, cfg *config.Config, books []*book.Book) *fixture {
	t.Helper()
	store, cleanup, err := persistence.Open(cfg, zap.NewNop(), nil)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	svc := book.NewService(store.Books)
	if len(books) > 0 {
		_, err = appbook.NewSeedCatalogUseCase(svc, store.Tx, nil).Execute(context.Background(), books)
		require.NoError(t, err)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	r := New(Deps{
		Config:   cfg,
		Logger:   zap.NewNop(),
		Metrics:  m,
		Gatherer: reg,
		Books:    handler.NewBookHandler(appbook.NewListBooksUseCase(svc, cfg, m)),
		Health:   handler.NewHealthHandler(store),
	})
	return &fixture{handler: r, store: store}
}

func fiveBooks() []*book.Book {
	p := decimal.RequireFromString
	return []*book.Book{
		book.NewBook("Refactoring", "Martin Fowler", "Addison-Wesley", "978-0134757599", "Software", "QA76.76", 448, p("39.99")),
		book.NewBook("Clean Code", "Robert C. Martin", "Prentice Hall", "978-0132350884", "Software", "", 464, p("39.99")),
		book.NewBook("The Pragmatic Programmer", "Andrew Hunt", "Addison-Wesley", "978-0201616224", "Software", "QA76.6", 352, p("45.00")),
		book.NewBook("Domain-Driven Design", "Eric Evans", "Addison-Wesley", "978-0321125217", "Architecture", "", 560, p("120.50")),
		book.NewBook("Design Patterns", "Erich Gamma", "Addison-Wesley", "978-0201633610", "Software", "QA76.64", 395, p("9.99")),
	}
}

func (f *fixture) get(t *testing.T, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) dto.ListBooksResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListBooksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func titles(resp dto.ListBooksResponse) []string {
	out := make([]string, len(resp.Books))
	for i, b := range resp.Books {
		out[i] = b.Title
	}
	return out
}

func TestListBooks_HTTP(t *testing.T) {
	f := newFixture(t, testConfig(), fiveBooks())

	t.Run("默认参数", func(t *testing.T) {
		resp := decodeList(t, f.get(t, "/api/books"))
		assert.Equal(t, int64(5), resp.TotalBooks)
		assert.Equal(t, []string{
			"Clean Code", "Design Patterns", "Domain-Driven Design", "Refactoring", "The Pragmatic Programmer",
		}, titles(resp))
	})

	t.Run("第2页为空", func(t *testing.T) {
		resp := decodeList(t, f.get(t, "/api/books?page=2&pageSize=5&sortField=Title&sortOrder=asc"))
		assert.Equal(t, int64(5), resp.TotalBooks)
		assert.Empty(t, resp.Books)
		assert.NotNil(t, resp.Books, "空页返回[]而不是null")
	})

	t.Run("价格降序", func(t *testing.T) {
		resp := decodeList(t, f.get(t, "/api/books?sortField=Price&sortOrder=desc"))
		assert.Equal(t, []string{
			"Domain-Driven Design", "The Pragmatic Programmer", "Refactoring", "Clean Code", "Design Patterns",
		}, titles(resp))
	})

	t.Run("每页2条第3页", func(t *testing.T) {
		resp := decodeList(t, f.get(t, "/api/books?page=3&pageSize=2&sortField=Title&sortOrder=asc"))
		assert.Equal(t, []string{"The Pragmatic Programmer"}, titles(resp))
	})

	t.Run("未识别排序字段按title", func(t *testing.T) {
		a := decodeList(t, f.get(t, "/api/books?sortField=bogus"))
		b := decodeList(t, f.get(t, "/api/books?sortField=TITLE"))
		assert.Equal(t, titles(b), titles(a))
	})

	t.Run("空sortOrder按默认asc", func(t *testing.T) {
		a := decodeList(t, f.get(t, "/api/books?sortOrder="))
		b := decodeList(t, f.get(t, "/api/books?sortOrder=asc"))
		assert.Equal(t, titles(b), titles(a))
	})
}

func TestListBooks_JSONShape(t *testing.T) {
	f := newFixture(t, testConfig(), fiveBooks())

	w := f.get(t, "/api/books?pageSize=5&sortField=Pages&sortOrder=desc")
	require.Equal(t, http.StatusOK, w.Code)

	var raw struct {
		TotalBooks int64            `json:"totalBooks"`
		Books      []map[string]any `json:"books"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw.Books, 5)

	first := raw.Books[0]
	assert.Equal(t, "Domain-Driven Design", first["title"])
	assert.EqualValues(t, 4, first["bookId"])
	assert.EqualValues(t, 560, first["pageCount"])
	assert.Equal(t, 120.5, first["price"], "price是JSON数字")
	assert.NotContains(t, first, "classification", "空classification不输出")

	assert.NotContains(t, raw.Books[1], "classification")
	assert.Equal(t, "QA76.76", raw.Books[2]["classification"])
}

func TestListBooks_InvalidParams(t *testing.T) {
	f := newFixture(t, testConfig(), fiveBooks())

	for _, query := range []string{
		"page=0", "page=-1", "pageSize=0", "pageSize=-5", "page=abc", "pageSize=1.5",
	} {
		t.Run(query, func(t *testing.T) {
			w := f.get(t, "/api/books?"+query)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body response.ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, 40900, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestListBooks_StorageFailure(t *testing.T) {
	f := newFixture(t, testConfig(), fiveBooks())
	require.NoError(t, f.store.Close())

	w := f.get(t, "/api/books")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 50001, body.Code)
	assert.NotContains(t, w.Body.String(), "closed", "内部错误原因不返回给客户端")

	assert.Equal(t, http.StatusServiceUnavailable, f.get(t, "/healthz").Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, testConfig(), nil)

	w := f.get(t, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong","status":"healthy"}`, w.Body.String())

	w = f.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	f := newFixture(t, testConfig(), fiveBooks())

	w := f.get(t, "/api/books", "Origin", "http://localhost:3000")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = f.get(t, "/api/books", "Origin", "http://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestRequestID(t *testing.T) {
	f := newFixture(t, testConfig(), nil)

	w := f.get(t, "/ping")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = f.get(t, "/ping", "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, testConfig(), fiveBooks())
	f.get(t, "/api/books?sortField=price")

	w := f.get(t, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/books",status="200"} 1`)
	assert.Contains(t, body, `book_list_queries_total{result="success",sort_field="price",sort_order="asc"} 1`)
}

func TestEmbeddedClient(t *testing.T) {
	f := newFixture(t, testConfig(), nil)

	w := f.get(t, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Book List")

	w = f.get(t, "/assets/app.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/books")
}

func TestOptionalRoutesDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.ServeClient = false
	cfg.Server.Swagger = false
	cfg.Metrics.Enabled = false
	f := newFixture(t, cfg, nil)

	assert.Equal(t, http.StatusNotFound, f.get(t, "/").Code)
	assert.Equal(t, http.StatusNotFound, f.get(t, "/metrics").Code)
	assert.Equal(t, http.StatusNotFound, f.get(t, "/swagger/index.html").Code)
}
