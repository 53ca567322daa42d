// bookctl 终端图书列表客户端
//
//	bookctl --server http://localhost:8080 --page 2 --page-size 10 --sort Price
//	bookctl --sort Pages --all
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/client"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "错误:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "bookctl",
		Usage: "分页浏览图书目录",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Value:   "http://localhost:8080",
				Usage:   "API服务地址",
				EnvVars: []string{"BOOKCTL_SERVER"},
			},
			&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Value: 1, Usage: "页码"},
			&cli.IntFlag{
				Name:    "page-size",
				Aliases: []string{"n"},
				Value:   client.PageSizeOptions[0],
				Usage:   fmt.Sprintf("每页数量 %v", client.PageSizeOptions),
			},
			&cli.StringFlag{Name: "sort", Aliases: []string{"s"}, Value: "Title", Usage: "排序字段"},
			&cli.StringFlag{Name: "order", Value: "asc", Usage: "排序方向 asc|desc"},
			&cli.BoolFlag{Name: "all", Usage: "从第1页开始打印所有页(仅asc)"},
			&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second, Usage: "单次请求超时"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "输出调试日志"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	pageSize := c.Int("page-size")
	if !slices.Contains(client.PageSizeOptions, pageSize) {
		return fmt.Errorf("page-size必须是%v之一", client.PageSizeOptions)
	}

	log := zap.NewNop()
	if c.Bool("verbose") {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	api := client.NewAPIClient(c.String("server"), c.Duration("timeout"))
	out := c.App.Writer
	if out == nil {
		out = os.Stdout
	}

	// 非asc方向不走Pager,直接请求
	if !strings.EqualFold(c.String("order"), "asc") {
		page, err := api.ListBooks(c.Context, client.Query{
			Page:      c.Int("page"),
			PageSize:  pageSize,
			SortField: c.String("sort"),
			SortOrder: c.String("order"),
		})
		if err != nil {
			return err
		}
		state := client.State{
			Page:      c.Int("page"),
			PageSize:  pageSize,
			SortField: c.String("sort"),
			Books:     page.Books,
			Total:     page.TotalBooks,
		}
		return render(out, state)
	}

	pager := client.NewPager(api, log, pageSize, c.String("sort"))
	if c.Bool("all") {
		return printAll(c.Context, out, pager)
	}

	if err := pager.SetPage(c.Context, c.Int("page")); err != nil {
		return err
	}
	return render(out, pager.State())
}
