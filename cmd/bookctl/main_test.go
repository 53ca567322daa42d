package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/client"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := render(&buf, client.State{
		Page:      2,
		PageSize:  5,
		SortField: "Price",
		Total:     12,
		Books: []client.Book{
			{BookID: 7, Title: "The Go Programming Language", Author: "Donovan", PageCount: 380, Price: decimal.RequireFromString("39.5")},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "The Go Programming Language")
	assert.Contains(t, out, "39.50")
	assert.Contains(t, out, "第 2/3 页, 共 12 本")
}

// catalogServer 返回total本书,按请求页码切片
func catalogServer(t *testing.T, total int, seen *[]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		*seen = append(*seen, r.URL.RawQuery)
		page, _ := strconv.Atoi(q.Get("page"))
		size, _ := strconv.Atoi(q.Get("pageSize"))

		var items []string
		for i := (page - 1) * size; i < total && i < page*size; i++ {
			items = append(items, fmt.Sprintf(`{"bookId":%d,"title":"Book %02d","pageCount":100,"price":10}`, i+1, i+1))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"totalBooks":%d,"books":[%s]}`, total, strings.Join(items, ","))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf
	err := app.RunContext(context.Background(), append([]string{"bookctl"}, args...))
	return buf.String(), err
}

func TestRun_SinglePage(t *testing.T) {
	var seen []string
	srv := catalogServer(t, 12, &seen)

	out, err := runApp(t, "--server", srv.URL, "--page", "3", "--sort", "Author")
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Contains(t, seen[0], "page=3")
	assert.Contains(t, seen[0], "sortField=Author")
	assert.Contains(t, seen[0], "sortOrder=asc")
	assert.Contains(t, out, "Book 11")
	assert.Contains(t, out, "第 3/3 页, 共 12 本")
}

func TestRun_DescendingOrder(t *testing.T) {
	var seen []string
	srv := catalogServer(t, 3, &seen)

	_, err := runApp(t, "--server", srv.URL, "--order", "desc")
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Contains(t, seen[0], "sortOrder=desc")
}

func TestRun_All(t *testing.T) {
	var seen []string
	srv := catalogServer(t, 12, &seen)

	out, err := runApp(t, "--server", srv.URL, "--all", "--page-size", "5")
	require.NoError(t, err)
	assert.Len(t, seen, 3)
	assert.Contains(t, out, "Book 01")
	assert.Contains(t, out, "Book 12")
	assert.Equal(t, 3, strings.Count(out, "共 12 本"))
}

func TestRun_InvalidPageSize(t *testing.T) {
	_, err := runApp(t, "--page-size", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page-size")
}

func TestRun_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":40900,"message":"页码必须是正整数"}`))
	}))
	defer srv.Close()

	_, err := runApp(t, "--server", srv.URL, "--page", "0")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 40900, apiErr.Code)
}
