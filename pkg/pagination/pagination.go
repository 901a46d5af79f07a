// Package pagination 实现列表分页的页码解析
//
// 规则：
//   - 页码非数字或为空时返回第一页
//   - 页码小于1时返回第一页，大于最后一页（包括超出int范围）时返回最后一页
//   - 结果集为空时仍然有一页（空页）
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

// Paginator 分页器，total为过滤后的总记录数
type Paginator struct {
	total   int64
	perPage int
}

// New 创建分页器，perPage<1时按1处理
func New(total int64, perPage int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	return &Paginator{total: total, perPage: perPage}
}

// NumPages 总页数，至少为1
func (p *Paginator) NumPages() int {
	if p.total == 0 {
		return 1
	}
	pages := int(p.total / int64(p.perPage))
	if p.total%int64(p.perPage) != 0 {
		pages++
	}
	return pages
}

// Page 解析原始页码参数并返回对应页
func (p *Paginator) Page(raw string) *Page {
	raw = strings.TrimSpace(raw)
	last := p.NumPages()
	number, err := strconv.Atoi(raw)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-"):
		// 超出int范围的正整数同样视为超过最后一页
		number = last
	case err != nil || number < 1:
		number = 1
	case number > last:
		number = last
	}
	return &Page{
		Number:   number,
		NumPages: last,
		PerPage:  p.perPage,
		Total:    p.total,
	}
}

// Page 解析后的页
type Page struct {
	Number   int   `json:"page"`
	NumPages int   `json:"total_pages"`
	PerPage  int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// Offset 数据库查询偏移量
func (p *Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// Limit 数据库查询条数
func (p *Page) Limit() int {
	return p.PerPage
}

func (p *Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p *Page) HasPrevious() bool {
	return p.Number > 1
}
