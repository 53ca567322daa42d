package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/xiebiao/bookcatalog/internal/client"
)

var columns = []string{"ID", "TITLE", "AUTHOR", "PUBLISHER", "ISBN", "CATEGORY", "CLASSIFICATION", "PAGES", "PRICE"}

// render 打印一页表格和页脚
func render(w io.Writer, s client.State) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)

	for _, b := range s.Books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			b.BookID, b.Title, b.Author, b.Publisher, b.ISBN, b.Category,
			b.Classification, b.PageCount, b.Price.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "第 %d/%d 页, 共 %d 本 (每页 %d, 按 %s 排序)\n",
		s.Page, s.TotalPages(), s.Total, s.PageSize, s.SortField)
	return err
}

// printAll 从第1页翻到最后一页
func printAll(ctx context.Context, w io.Writer, p *client.Pager) error {
	if err := p.SetPage(ctx, 1); err != nil {
		return err
	}
	for {
		s := p.State()
		if err := render(w, s); err != nil {
			return err
		}
		if !s.HasNext() {
			return nil
		}
		fmt.Fprintln(w)
		if err := p.Next(ctx); err != nil {
			return err
		}
	}
}
